package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	aerrors "github.com/thoreinstein/graymatter/internal/errors"
	"github.com/thoreinstein/graymatter/internal/logging"
)

var (
	parseJSON bool
	parseShow string
)

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false,
		"output the whole result (data, content, excerpt, matter) as JSON")
	parseCmd.Flags().StringVar(&parseShow, "show", "",
		"print a single field: data, matter, body, excerpt")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Extract front matter, body and excerpt from a document",
	Long: `Parse a document and print its front matter, body content and
excerpt. Reads from the given file, or from stdin when no file is given.

Missing or malformed front matter is not an error: the data section is
simply empty and the whole input is treated as content.`,
	Example: `  # Colored summary of a post
  graymatter parse post.md

  # Machine-readable result
  graymatter parse post.md --json

  # Only the body, for piping
  graymatter parse post.md --show body`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	m, err := newMatter()
	if err != nil {
		return err
	}

	result := m.Parse(input)

	out := cmd.OutOrStdout()

	if parseJSON {
		payload := map[string]any{
			"content": result.Content,
			"matter":  result.Matter,
		}
		if result.Data != nil {
			payload["data"] = result.Data.Interface()
		}
		if result.Excerpt != nil {
			payload["excerpt"] = *result.Excerpt
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	switch parseShow {
	case "":
		// fall through to the sectioned summary below
	case "data":
		if result.Data == nil {
			return nil
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Data.Interface())
	case "matter":
		fmt.Fprintln(out, result.Matter)
		return nil
	case "body":
		fmt.Fprintln(out, result.Content)
		return nil
	case "excerpt":
		if result.Excerpt != nil {
			fmt.Fprintln(out, *result.Excerpt)
		}
		return nil
	default:
		return aerrors.NewUserError(
			errors.Newf("unknown field %q", parseShow),
			"valid fields: data, matter, body, excerpt")
	}

	heading := func(s string) string { return s }
	if f, ok := out.(*os.File); ok && logging.SupportsColor(f) {
		heading = func(s string) string { return color.CyanString(s) }
	}

	if result.Data != nil {
		fmt.Fprintln(out, heading("Front matter:"))
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result.Data.Interface()); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
	if result.Excerpt != nil {
		fmt.Fprintln(out, heading("Excerpt:"))
		fmt.Fprintf(out, "%s\n\n", *result.Excerpt)
	}
	fmt.Fprintln(out, heading("Content:"))
	fmt.Fprintln(out, result.Content)
	return nil
}

// readInput returns the document text from the file argument or stdin.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", aerrors.NewSystemError(
				errors.Wrapf(err, "reading %s", args[0]), "")
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", aerrors.NewSystemError(errors.Wrap(err, "reading stdin"), "")
	}
	if len(data) == 0 {
		return "", aerrors.NewUserError(aerrors.ErrNoInput,
			"pass a file argument or pipe a document to stdin")
	}
	return string(data), nil
}
