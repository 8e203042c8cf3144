package compose

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"io"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/panjf2000/ants/v2"

	"github.com/matzehuels/collage/pkg/errors"
	"github.com/matzehuels/collage/pkg/layout"
	"github.com/matzehuels/collage/pkg/observability"
)

// Compositor pastes fitted images into a grid canvas.
type Compositor struct {
	// Workers bounds the concurrent decode/fit stage. Zero or negative
	// uses one worker per logical CPU.
	Workers int

	// Logger receives per-image skip warnings. Nil discards them.
	Logger *log.Logger
}

// Compose decodes files, fits each into its cell, and pastes the cells
// onto a background-colored canvas in row-major order.
//
// Decoding and fitting run concurrently on a worker pool: each cell writes
// to its own slot of the result slice, so no two workers touch the same
// memory. The paste loop that follows is sequential, keeping byte-identical
// output regardless of worker count. Files that fail to decode leave their
// cell as plain background and never abort the run.
func (c *Compositor) Compose(ctx context.Context, files []string, grid layout.Grid, bg color.Color) (*image.NRGBA, error) {
	logger := c.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	workers := c.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	canvas := imaging.New(grid.CanvasWidth, grid.CanvasHeight, bg)
	cells := make([]*image.NRGBA, len(files))

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "cannot start worker pool")
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, path := range files {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			img, err := imaging.Open(path)
			if err != nil {
				logger.Warn("skipping image", "path", path, "err", err)
				observability.Compose().OnImageSkipped(ctx, path, err)
				return
			}
			cells[i] = FitCell(img, grid.CellWidth, grid.CellHeight, bg)
		}
		if err := pool.Submit(task); err != nil {
			// Pool rejected the task (released or overloaded): fall back
			// to running it on the calling goroutine.
			task()
		}
	}
	wg.Wait()

	for i, cell := range cells {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if cell == nil {
			continue // decode failed, background-only slot
		}
		x, y := grid.CellOrigin(i)
		r := cell.Bounds().Add(image.Pt(x, y))
		draw.Draw(canvas, r, cell, image.Point{}, draw.Src)
		observability.Compose().OnImagePlaced(ctx, i, len(files))
	}

	return canvas, nil
}
