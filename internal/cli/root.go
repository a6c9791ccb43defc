package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the quadsheet CLI and returns an error if any command fails.
//
// The function sets up the root command with all subcommands (generate,
// presets, completion), configures logging based on the --verbose flag, and
// executes the command tree under ctx so a Ctrl-C propagates as
// context.Canceled.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:   "quadsheet",
		Short: "quadsheet composes PDF pages and images into letter-size quadrant sheets",
		Long: `quadsheet creates letter-size PDFs divided into 4 quadrants:

  Q1: top-left     Q2: top-right
  Q3: bottom-left  Q4: bottom-right

Each quadrant can hold a page of a PDF or an image file, scaled to fit and
optionally rotated. Use presets for common shipping-label layouts or
configure each quadrant manually.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true, // main prints the error once
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("quadsheet %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newPresetsCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
