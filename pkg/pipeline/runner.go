package pipeline

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/collage/pkg/compose"
	"github.com/matzehuels/collage/pkg/layout"
	"github.com/matzehuels/collage/pkg/observability"
	"github.com/matzehuels/collage/pkg/source"
)

// Runner executes the scan → estimate → layout → compose → encode pipeline.
//
// The Runner is stateless except for the logger - it doesn't store run
// results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Stats collects per-stage timings for a run.
type Stats struct {
	ScanTime     time.Duration
	EstimateTime time.Duration
	LayoutTime   time.Duration
	ComposeTime  time.Duration
	EncodeTime   time.Duration
}

// Result describes a completed run.
type Result struct {
	// OutputPath is the written JPEG file.
	OutputPath string

	// Grid is the computed layout.
	Grid layout.Grid

	// Aspect is the estimated cell aspect ratio.
	Aspect layout.Aspect

	// Sampled reports whether the input set was reduced to fit the grid.
	Sampled bool

	// SampleCount is the number of images placed; TotalCount is the
	// number of images found in the folder.
	SampleCount int
	TotalCount  int

	Stats Stats
}

// Execute runs the complete pipeline and writes the collage to disk.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger
	hooks := observability.Pipeline()

	result := &Result{}

	// Stage 1: Scan
	scanStart := time.Now()
	hooks.OnScanStart(ctx, opts.Folder)
	files, err := source.ListImages(opts.Folder)
	result.Stats.ScanTime = time.Since(scanStart)
	hooks.OnScanComplete(ctx, opts.Folder, len(files), result.Stats.ScanTime, err)
	if err != nil {
		return nil, err
	}
	result.TotalCount = len(files)
	logger.Info("scanned folder", "folder", opts.Folder, "images", len(files))

	outputPath, err := source.OutputPath(opts.Output, opts.Folder)
	if err != nil {
		return nil, err
	}
	result.OutputPath = outputPath

	// Stage 2: Sample down to grid capacity
	constraints := layout.Constraints{
		Size:    opts.Size,
		Width:   opts.Width,
		Height:  opts.Height,
		Columns: opts.Columns,
		MaxRows: opts.MaxRows,
		Padding: opts.Padding,
	}
	if capacity := constraints.Capacity(); capacity > 0 && len(files) > capacity {
		files = layout.Sample(files, capacity)
		result.Sampled = true
		logger.Info("sampled images to fit grid",
			"selected", len(files),
			"total", result.TotalCount)
	} else if opts.MaxRows > 0 && opts.Columns == 0 {
		logger.Warn("max rows has no effect without an explicit column count")
	}
	result.SampleCount = len(files)

	// Stage 3: Estimate aspect ratio
	estimateStart := time.Now()
	hooks.OnEstimateStart(ctx, source.DefaultSampleSize)
	estimator := &source.Estimator{
		Rand:   rand.New(rand.NewPCG(opts.Seed, opts.Seed^0xdeadbeef)),
		Logger: logger,
	}
	aspect, err := estimator.Estimate(files)
	result.Stats.EstimateTime = time.Since(estimateStart)
	hooks.OnEstimateComplete(ctx, aspect.Ratio, result.Stats.EstimateTime, err)
	if err != nil {
		return nil, err
	}
	result.Aspect = aspect
	logger.Info("estimated aspect ratio", "aspect", aspect.String(), "ratio", aspect.Ratio)

	// Stage 4: Layout
	layoutStart := time.Now()
	hooks.OnLayoutStart(ctx, len(files))
	grid, err := layout.Calculate(len(files), aspect.Ratio, constraints)
	result.Stats.LayoutTime = time.Since(layoutStart)
	hooks.OnLayoutComplete(ctx, grid.Cols, grid.Rows, result.Stats.LayoutTime, err)
	if err != nil {
		return nil, err
	}
	result.Grid = grid
	logger.Info("computed layout",
		"grid", fmt.Sprintf("%dx%d", grid.Cols, grid.Rows),
		"canvas", fmt.Sprintf("%dx%d", grid.CanvasWidth, grid.CanvasHeight),
		"cell", fmt.Sprintf("%dx%d", grid.CellWidth, grid.CellHeight))

	bg, err := compose.ParseHex(opts.Background)
	if err != nil {
		return nil, err
	}

	// Stage 5: Compose
	composeStart := time.Now()
	compositor := &compose.Compositor{Workers: opts.Workers, Logger: logger}
	canvas, err := compositor.Compose(ctx, files, grid, bg)
	result.Stats.ComposeTime = time.Since(composeStart)
	if err != nil {
		return nil, err
	}
	logger.Info("composed collage", "images", len(files), "duration", result.Stats.ComposeTime)

	// Stage 6: Title band and labels
	final, err := r.decorate(canvas, opts, result, bg)
	if err != nil {
		return nil, err
	}

	// Stage 7: Encode
	encodeStart := time.Now()
	hooks.OnEncodeStart(ctx, outputPath)
	err = compose.WriteJPEG(final, outputPath, opts.Quality)
	result.Stats.EncodeTime = time.Since(encodeStart)
	size := 0
	if info, statErr := os.Stat(outputPath); statErr == nil {
		size = int(info.Size())
	}
	hooks.OnEncodeComplete(ctx, outputPath, size, result.Stats.EncodeTime, err)
	if err != nil {
		return nil, err
	}
	logger.Info("wrote collage", "path", outputPath, "bytes", size)

	return result, nil
}
