// Package cli implements the inspiration command-line interface.
//
// The root command fetches a quote and a photo, composes them into a single
// image and reports where it was saved. Configuration comes from an optional
// TOML file (--config) with a few flags layered on top.
//
// # Logging
//
// --verbose (-v) switches the charmbracelet/log logger to debug level. The
// logger is attached to the command context so every step logs through the
// same instance.
//
// # Errors
//
// The root command does not print its error; main reports it once on stderr
// through errors.UserMessage.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    os.Exit(1)
//	}
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/inspiration/pkg/buildinfo"
)

// appName is the application name used for display.
const appName = "inspiration"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Running it without a subcommand produces one image.
func (c *CLI) RootCommand() *cobra.Command {
	var opts runOptions

	root := &cobra.Command{
		Use:   appName,
		Short: "Inspiration composes a random quote onto a random photo",
		Long: `Inspiration fetches a random quote from ZenQuotes and a random photo from
Lorem Picsum, writes the quote onto the blurred photo with a purple glow,
and saves the result as a PNG.`,
		Args:          cobra.NoArgs,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.outputSet = cmd.Flags().Changed("output")
			opts.fontSet = cmd.Flags().Changed("font")
			return c.runInspire(cmd.Context(), opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML configuration file")
	root.Flags().StringVarP(&opts.output, "output", "o", "", "output image path (default \"inspiration.png\")")
	root.Flags().StringVar(&opts.font, "font", "", "font file, system font name, or \"gomono\" (default \"cmtt10.ttf\")")

	root.AddCommand(c.completionCommand())

	return root
}
