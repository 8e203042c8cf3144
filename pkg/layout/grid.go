package layout

import (
	"math"

	"github.com/matzehuels/collage/pkg/errors"
)

// DefaultSize is the target size in pixels for the larger canvas dimension
// when neither an explicit width nor height is supplied.
const DefaultSize = 1920

// Grid contains all calculated grid layout parameters.
// A Grid is a value object: compute once, never mutate.
type Grid struct {
	CanvasWidth  int // full canvas width in pixels
	CanvasHeight int // full canvas height in pixels
	Cols         int // number of grid columns
	Rows         int // number of grid rows
	CellWidth    int // width of a single cell in pixels
	CellHeight   int // height of a single cell in pixels
	Padding      int // gap between cells and canvas edge in pixels
	OffsetX      int // extra horizontal translation of the whole grid
	OffsetY      int // extra vertical translation of the whole grid
}

// Capacity returns the number of cells in the grid.
func (g Grid) Capacity() int {
	return g.Cols * g.Rows
}

// CellOrigin returns the top-left pixel position of the cell holding the
// image at index (row-major order).
func (g Grid) CellOrigin(index int) (x, y int) {
	col := index % g.Cols
	row := index / g.Cols
	x = col*(g.CellWidth+g.Padding) + g.Padding + g.OffsetX
	y = row*(g.CellHeight+g.Padding) + g.Padding + g.OffsetY
	return x, y
}

// Constraints is the user-supplied constraint set for grid calculation.
// A zero value means "unset". The constraints are mutually exclusive by
// priority: (Width and Height) > Width > Height > Columns (with optional
// MaxRows) > Size. Exactly one branch is active per calculation.
type Constraints struct {
	Size    int // target size for the larger dimension (0 = DefaultSize)
	Width   int // explicit canvas width, overrides Size
	Height  int // explicit canvas height, overrides Size
	Columns int // fixed column count (0 = auto square-ish grid)
	MaxRows int // row cap, only meaningful together with Columns
	Padding int // pixel gap between cells and canvas border
}

// Capacity returns the maximum number of images the constraints can hold,
// or 0 when there is no cap (sampling requires both Columns and MaxRows).
func (c Constraints) Capacity() int {
	if c.Columns > 0 && c.MaxRows > 0 {
		return c.Columns * c.MaxRows
	}
	return 0
}

// Calculate derives the complete grid layout for numImages images with the
// given representative aspect ratio (width/height). It is the single source
// of truth for all grid geometry.
//
// The calculation proceeds in ordered steps:
//
//  1. Grid shape: explicit Columns (rows capped by MaxRows), or a
//     square-ish ceil(sqrt(n)) guess.
//  2. Canvas sizing: one of four mutually exclusive branches depending on
//     which of Width/Height are set. The auto branch may swap cols and rows
//     so the grid orientation matches the combined grid aspect ratio.
//  3. Cell normalization: cell dimensions are always recomputed from the
//     final canvas width, overriding any tentative values from step 2.
//  4. Height reconciliation: unless an explicit Height was supplied, the
//     canvas height is adjusted to exactly bound the grid.
//
// An explicit Height is authoritative and never overridden. Offsets are
// always zero; the centering rule for non-square canvases is deliberately
// left undefined.
func Calculate(numImages int, aspectRatio float64, c Constraints) (Grid, error) {
	if numImages < 1 {
		return Grid{}, errors.New(errors.ErrCodeInvalidInput, "need at least one image, got %d", numImages)
	}
	if aspectRatio <= 0 {
		return Grid{}, errors.New(errors.ErrCodeInvalidInput, "aspect ratio must be positive, got %g", aspectRatio)
	}
	if c.Padding < 0 {
		return Grid{}, errors.New(errors.ErrCodeInvalidInput, "padding cannot be negative, got %d", c.Padding)
	}

	size := c.Size
	if size == 0 {
		size = DefaultSize
	}
	padding := c.Padding

	// Step 1: grid shape.
	var cols, rows int
	if c.Columns > 0 {
		cols = c.Columns
		rows = ceilDiv(numImages, cols)
		if c.MaxRows > 0 && rows > c.MaxRows {
			rows = c.MaxRows
		}
	} else {
		cols = int(math.Ceil(math.Sqrt(float64(numImages))))
		rows = ceilDiv(numImages, cols)
	}

	// Step 2: canvas sizing.
	var canvasWidth, canvasHeight int
	switch {
	case c.Width > 0 && c.Height > 0:
		canvasWidth, canvasHeight = c.Width, c.Height

	case c.Width > 0:
		canvasWidth = c.Width
		cellWidth := (canvasWidth - (cols+1)*padding) / cols
		cellHeight := int(float64(cellWidth) / aspectRatio)
		canvasHeight = rows*cellHeight + (rows+1)*padding

	case c.Height > 0:
		canvasHeight = c.Height
		cellHeight := (canvasHeight - (rows+1)*padding) / rows
		cellWidth := int(float64(cellHeight) * aspectRatio)
		canvasWidth = cols*cellWidth + (cols+1)*padding

	default:
		if c.Columns == 0 {
			// Reshape the grid so its orientation matches the combined
			// grid aspect ratio, then size from it.
			gridRatio := float64(cols) / float64(rows) * aspectRatio
			if (gridRatio > 1 && cols < rows) || (gridRatio < 1 && cols > rows) {
				cols, rows = rows, cols
			}
			gridRatio = float64(cols) / float64(rows) * aspectRatio

			if gridRatio >= 1 {
				canvasWidth = size
				canvasHeight = int(float64(size) / gridRatio)
			} else {
				canvasHeight = size
				canvasWidth = int(float64(size) * gridRatio)
			}
		} else {
			// Explicit column count: no reshaping, size from the image
			// aspect ratio alone.
			if aspectRatio >= 1 {
				canvasWidth = size
				canvasHeight = int(float64(canvasWidth) / aspectRatio)
			} else {
				canvasHeight = size
				canvasWidth = int(float64(canvasHeight) * aspectRatio)
			}
		}
	}

	// Step 3: cell normalization. This recomputation is the single source
	// of truth for final cell dimensions, regardless of sizing branch.
	cellWidth := (canvasWidth - (cols+1)*padding) / cols
	cellHeight := int(float64(cellWidth) / aspectRatio)

	if cellWidth <= 0 || cellHeight <= 0 {
		return Grid{}, errors.New(errors.ErrCodeInvalidLayout,
			"degenerate cell size %dx%d for canvas %dx%d (cols=%d, padding=%d)",
			cellWidth, cellHeight, canvasWidth, canvasHeight, cols, padding)
	}

	// Step 4: height reconciliation. An explicit Height is authoritative.
	if c.Height == 0 {
		canvasHeight = rows*cellHeight + (rows+1)*padding
	}

	return Grid{
		CanvasWidth:  canvasWidth,
		CanvasHeight: canvasHeight,
		Cols:         cols,
		Rows:         rows,
		CellWidth:    cellWidth,
		CellHeight:   cellHeight,
		Padding:      padding,
	}, nil
}

// ceilDiv returns ceil(a/b) for positive integers.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
