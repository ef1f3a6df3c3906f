// Package commands implements the CLI commands for graymatter.
package commands

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/graymatter/internal/config"
	aerrors "github.com/thoreinstein/graymatter/internal/errors"
	"github.com/thoreinstein/graymatter/internal/logging"
	"github.com/thoreinstein/graymatter/pkg/engine"
	"github.com/thoreinstein/graymatter/pkg/matter"
)

// version is set at build time via ldflags.
const version = "0.1.0"

var (
	formatFlag       string
	delimiterFlag    string
	closeDelimFlag   string
	excerptDelimFlag string
	verbosity        int
	quiet            bool
	logFormat        string

	// cfg holds the loaded configuration; flag values take precedence.
	cfg *config.Config
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "",
		"front matter format: yaml, toml, json (default from config, yaml)")
	rootCmd.PersistentFlags().StringVarP(&delimiterFlag, "delimiter", "d", "",
		`open delimiter (default "---")`)
	rootCmd.PersistentFlags().StringVar(&closeDelimFlag, "close-delimiter", "",
		"close delimiter (default: same as --delimiter)")
	rootCmd.PersistentFlags().StringVar(&excerptDelimFlag, "excerpt-delimiter", "",
		"excerpt delimiter (default: same as --delimiter)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("graymatter version {{.Version}}\n")

	// Silence errors and usage so main controls error output.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	loaded, err := config.Load("")
	if err != nil {
		loaded = &config.Config{Format: "yaml", Delimiter: matter.DefaultDelimiter}
	}
	cfg = loaded
}

var rootCmd = &cobra.Command{
	Use:   "graymatter",
	Short: "Extract front matter from text documents",
	Long: `graymatter extracts a delimited metadata block ("front matter") from
the head of a text document, separates it from the body, and optionally
captures a short excerpt.

YAML, TOML and JSON front matter are supported. Delimiters are
configurable, including asymmetric open/close pairs such as "<!--" and
"-->". Defaults can be stored in a config file under
$XDG_CONFIG_HOME/graymatter.`,
	Example: `  # Print the front matter of a post as JSON
  graymatter parse post.md

  # TOML front matter delimited by "+++"
  graymatter parse --format toml --delimiter "+++" post.md

  # Just the body, reading from stdin
  cat post.md | graymatter parse --show body

  # Render the body to HTML
  graymatter preview post.md`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupLogging(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return aerrors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	level := logging.LevelFromVerbosity(verbosity)
	if quiet {
		level = slog.LevelError
	}

	slog.SetDefault(logging.New(logging.Config{
		Level:  level,
		Format: logging.Format(logFormat),
		Output: cmd.ErrOrStderr(),
	}))
	return nil
}

// newMatter builds a Matter from flags layered over config values.
func newMatter() (*matter.Matter, error) {
	format := formatFlag
	if format == "" && cfg != nil {
		format = cfg.Format
	}
	eng, err := engineFor(format)
	if err != nil {
		return nil, err
	}

	m := matter.New(eng)
	if cfg != nil {
		if cfg.Delimiter != "" {
			m.Delimiter = cfg.Delimiter
		}
		m.CloseDelimiter = cfg.CloseDelimiter
		m.ExcerptDelimiter = cfg.ExcerptDelimiter
	}
	if delimiterFlag != "" {
		m.Delimiter = delimiterFlag
	}
	if closeDelimFlag != "" {
		m.CloseDelimiter = closeDelimFlag
	}
	if excerptDelimFlag != "" {
		m.ExcerptDelimiter = excerptDelimFlag
	}
	return m, nil
}

func engineFor(format string) (engine.Engine, error) {
	switch format {
	case "", "yaml":
		return engine.YAML{}, nil
	case "toml":
		return engine.TOML{}, nil
	case "json":
		return engine.JSON{}, nil
	}
	return nil, aerrors.NewUserError(
		errors.Wrapf(aerrors.ErrUnknownFormat, "%q", format),
		"supported formats: yaml, toml, json")
}
