package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/collage/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library Callers
// =============================================================================

const (
	// DefaultSize is the target canvas width in pixels when no explicit
	// dimensions are given.
	DefaultSize = 1920

	// DefaultPadding is the gap between cells and around the canvas edge.
	DefaultPadding = 5

	// DefaultQuality is the JPEG encoder quality.
	DefaultQuality = 80

	// DefaultBackground is the canvas fill color.
	DefaultBackground = "#000000"

	// DefaultTitleSize is the title font size in points.
	DefaultTitleSize = 24.0

	// DefaultTitleColor is the title fill color.
	DefaultTitleColor = "#FFFFFF"

	// DefaultTitleBorder is the title stroke radius in pixels.
	DefaultTitleBorder = 2

	// DefaultTitleBorderColor is the title stroke color.
	DefaultTitleBorderColor = "#000000"

	// DefaultSeed seeds the aspect-ratio sampler for reproducible runs.
	DefaultSeed = uint64(42)
)

// Options configures a complete collage run. The zero value is not usable;
// call ValidateAndSetDefaults before Execute, or let Execute do it.
type Options struct {
	// Folder is the directory scanned for input images. Required.
	Folder string

	// Output is the destination JPEG path. Empty means a file named after
	// the folder in the current directory; a missing extension gets ".jpg".
	Output string

	// Size is the target canvas width used when neither Width nor Height
	// is set. Zero means DefaultSize.
	Size int

	// Width and Height, when positive, fix the canvas dimensions exactly.
	Width  int
	Height int

	// Padding is the gap in pixels between cells and around the edge.
	Padding int

	// Columns fixes the number of grid columns. Zero means automatic.
	Columns int

	// MaxRows caps the number of rows. Only effective together with
	// Columns; overflowing images are sampled down to fit.
	MaxRows int

	// Background is the canvas color as a hex string.
	Background string

	// Quality is the JPEG quality from 1 to 100.
	Quality int

	// Title, when non-empty, reserves a band above the grid and renders
	// the text in the top-left corner.
	Title string

	// TitleSize is the title font size in points.
	TitleSize float64

	// TitleFont is an explicit font file path. Empty falls back to system
	// fonts and then an embedded face.
	TitleFont string

	// TitleColor and TitleBorderColor are hex strings for the title fill
	// and stroke.
	TitleColor       string
	TitleBorderColor string

	// TitleBorder is the stroke radius in pixels. Zero disables the stroke.
	TitleBorder int

	// TitleMargin reserves a band above the grid for the title instead of
	// drawing it over the top edge of the collage. Ignored without Title.
	TitleMargin bool

	// Workers bounds the concurrent image loads. Zero means GOMAXPROCS.
	Workers int

	// Seed seeds the aspect-ratio file sampler. Zero means DefaultSeed.
	Seed uint64

	// Logger receives progress output. Nil discards it.
	Logger *log.Logger
}

// ValidateAndSetDefaults normalizes opts in place and rejects values the
// pipeline cannot run with.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Folder == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input folder is required")
	}

	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if o.Quality == 0 {
		o.Quality = DefaultQuality
	}
	if o.Background == "" {
		o.Background = DefaultBackground
	}
	if o.TitleSize == 0 {
		o.TitleSize = DefaultTitleSize
	}
	if o.TitleColor == "" {
		o.TitleColor = DefaultTitleColor
	}
	if o.TitleBorderColor == "" {
		o.TitleBorderColor = DefaultTitleBorderColor
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	if err := errors.ValidateQuality(o.Quality); err != nil {
		return err
	}
	if err := errors.ValidatePadding(o.Padding); err != nil {
		return err
	}
	if err := errors.ValidateDimension("size", o.Size); err != nil {
		return err
	}
	if err := errors.ValidateDimension("width", o.Width); err != nil {
		return err
	}
	if err := errors.ValidateDimension("height", o.Height); err != nil {
		return err
	}
	if err := errors.ValidateDimension("columns", o.Columns); err != nil {
		return err
	}
	if err := errors.ValidateDimension("max rows", o.MaxRows); err != nil {
		return err
	}
	if err := errors.ValidateHexColor(o.Background); err != nil {
		return err
	}
	if err := errors.ValidateHexColor(o.TitleColor); err != nil {
		return err
	}
	if err := errors.ValidateHexColor(o.TitleBorderColor); err != nil {
		return err
	}
	if o.TitleBorder < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "title border must be >= 0")
	}
	return nil
}
