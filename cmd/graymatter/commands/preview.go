package commands

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Render a document body to HTML",
	Long: `Parse a document, strip its front matter, and render the remaining
Markdown body to HTML. The front matter is printed as JSON before the
rendered output.`,
	Example: `  graymatter preview post.md

  # TOML front matter
  graymatter preview --format toml post.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	m, err := newMatter()
	if err != nil {
		return err
	}

	result := m.Parse(input)

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	var buf bytes.Buffer
	if err := md.Convert([]byte(result.Content), &buf); err != nil {
		return errors.Wrap(err, "rendering markdown")
	}

	out := cmd.OutOrStdout()
	if result.Data != nil {
		meta, err := json.MarshalIndent(result.Data.Interface(), "", "  ")
		if err == nil {
			fmt.Fprintf(out, "Front matter:\n%s\n\n", meta)
		}
	}
	fmt.Fprintf(out, "%s", buf.String())
	return nil
}
