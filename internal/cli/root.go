// Package cli implements the collage command-line interface.
//
// The root command is the whole tool: point it at a folder of images and it
// writes a grid collage JPEG. Flags control the canvas geometry, the grid
// shape, the title overlay, and the JPEG encoder. Defaults can also come
// from a TOML config file; explicit flags win over the file, which wins
// over the built-in defaults.
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/collage/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "collage"

// Execute runs the collage CLI and returns an error if the run fails.
// This is the main entry point for the CLI application.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	flags := newRunFlags()

	root := &cobra.Command{
		Use:   "collage <folder> [output]",
		Short: "Collage arranges a folder of photos into a single grid image",
		Long: `Collage scans a folder for images, estimates their dominant aspect
ratio, lays them out on a uniform grid and writes the result as a JPEG.

The output path defaults to a file named after the folder in the current
directory. Cell shape follows the most common aspect ratio among the
inputs, so mixed portrait and landscape sets still produce a tidy grid.`,
		Version:      buildinfo.Version,
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, flags)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	flags.register(root)

	root.AddCommand(completionCommand())

	return root.ExecuteContext(ctx)
}
