package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/collage/pkg/pipeline"
)

// runFlags holds every flag value for the root command. The values here
// are cobra's defaults until the command line is parsed; precedence against
// the config file is resolved in buildOptions.
type runFlags struct {
	configPath string

	size    int
	width   int
	height  int
	padding int
	columns int
	maxRows int

	background string
	quality    int

	title            string
	titleSize        float64
	titleFont        string
	titleColor       string
	titleBorder      int
	titleBorderColor string
	titleMargin      bool

	workers int
	seed    uint64
}

func newRunFlags() *runFlags {
	return &runFlags{}
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "config file (default ~/.config/collage/config.toml)")

	cmd.Flags().IntVarP(&f.size, "size", "s", pipeline.DefaultSize, "target canvas width in pixels")
	cmd.Flags().IntVar(&f.width, "width", 0, "exact canvas width (overrides --size)")
	cmd.Flags().IntVar(&f.height, "height", 0, "exact canvas height (overrides --size)")
	cmd.Flags().IntVarP(&f.padding, "padding", "p", pipeline.DefaultPadding, "gap between cells in pixels")
	cmd.Flags().IntVarP(&f.columns, "columns", "c", 0, "number of grid columns (default automatic)")
	cmd.Flags().IntVar(&f.maxRows, "max-rows", 0, "cap on grid rows; overflow is sampled (requires --columns)")

	cmd.Flags().StringVarP(&f.background, "background", "b", pipeline.DefaultBackground, "canvas background color (#RRGGBB)")
	cmd.Flags().IntVarP(&f.quality, "quality", "q", pipeline.DefaultQuality, "JPEG quality (1-100)")

	cmd.Flags().StringVarP(&f.title, "title", "t", "", "title text rendered above the grid")
	cmd.Flags().Float64Var(&f.titleSize, "title-size", pipeline.DefaultTitleSize, "title font size in points")
	cmd.Flags().StringVar(&f.titleFont, "title-font", "", "title font file (default system font)")
	cmd.Flags().StringVar(&f.titleColor, "title-color", pipeline.DefaultTitleColor, "title text color (#RRGGBB)")
	cmd.Flags().IntVar(&f.titleBorder, "title-border", pipeline.DefaultTitleBorder, "title outline width in pixels")
	cmd.Flags().StringVar(&f.titleBorderColor, "title-border-color", pipeline.DefaultTitleBorderColor, "title outline color (#RRGGBB)")
	cmd.Flags().BoolVar(&f.titleMargin, "title-margin", false, "reserve a band above the grid for the title")

	cmd.Flags().IntVar(&f.workers, "workers", 0, "concurrent image loads (default GOMAXPROCS)")
	cmd.Flags().Uint64Var(&f.seed, "seed", pipeline.DefaultSeed, "random seed for aspect ratio sampling")
}

// run executes the collage pipeline for the root command.
func run(cmd *cobra.Command, args []string, flags *runFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(flags.configPath, logger)
	if err != nil {
		return err
	}

	opts := buildOptions(cmd, flags, cfg, args)
	opts.Logger = logger

	runner := pipeline.NewRunner(logger)
	prog := newProgress(logger)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Building collage from %s...", opts.Folder))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Collage failed")
		return err
	}
	spinner.StopWithSuccess(fmt.Sprintf("Collage written (%d images)", result.SampleCount))
	prog.done(fmt.Sprintf("Placed %d of %d images", result.SampleCount, result.TotalCount))

	printFile(result.OutputPath)
	printStats(result)
	return nil
}

// buildOptions resolves each option with flag > config file > default
// precedence. A flag the user set on the command line always wins; values
// from the config file beat cobra's defaults.
func buildOptions(cmd *cobra.Command, flags *runFlags, cfg *Config, args []string) pipeline.Options {
	opts := pipeline.Options{Folder: args[0]}
	if len(args) > 1 {
		opts.Output = args[1]
	}

	changed := cmd.Flags().Changed

	pickInt := func(name string, flag int, file *int) int {
		if !changed(name) && file != nil {
			return *file
		}
		return flag
	}
	pickString := func(name string, flag string, file *string) string {
		if !changed(name) && file != nil {
			return *file
		}
		return flag
	}

	opts.Size = pickInt("size", flags.size, cfg.Size)
	opts.Width = pickInt("width", flags.width, cfg.Width)
	opts.Height = pickInt("height", flags.height, cfg.Height)
	opts.Padding = pickInt("padding", flags.padding, cfg.Padding)
	opts.Columns = pickInt("columns", flags.columns, cfg.Columns)
	opts.MaxRows = pickInt("max-rows", flags.maxRows, cfg.MaxRows)
	opts.Background = pickString("background", flags.background, cfg.Background)
	opts.Quality = pickInt("quality", flags.quality, cfg.Quality)
	opts.Workers = pickInt("workers", flags.workers, cfg.Workers)

	opts.Title = flags.title
	opts.TitleSize = flags.titleSize
	if !changed("title-size") && cfg.TitleSize != nil {
		opts.TitleSize = *cfg.TitleSize
	}
	opts.TitleFont = pickString("title-font", flags.titleFont, cfg.TitleFont)
	opts.TitleColor = pickString("title-color", flags.titleColor, cfg.TitleColor)
	opts.TitleBorder = pickInt("title-border", flags.titleBorder, cfg.TitleBorder)
	opts.TitleBorderColor = pickString("title-border-color", flags.titleBorderColor, cfg.TitleBorderColor)
	opts.TitleMargin = flags.titleMargin

	opts.Seed = flags.seed
	if !changed("seed") && cfg.Seed != nil {
		opts.Seed = *cfg.Seed
	}

	return opts
}
