package source

import (
	"image"
	"io"
	"math/rand/v2"
	"os"

	// Register decoders for the supported input formats. Probing and
	// compositing both rely on the global image registry.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/collage/pkg/errors"
	"github.com/matzehuels/collage/pkg/layout"
)

// DefaultSampleSize is the number of images probed for aspect-ratio
// analysis when the folder holds more than that.
const DefaultSampleSize = 20

// Estimator determines the representative aspect ratio for a set of image
// files by probing a random sample of them.
type Estimator struct {
	// Rand is the random source for sample selection. Nil falls back to
	// the global source; tests inject a seeded generator for
	// reproducibility.
	Rand *rand.Rand

	// SampleSize caps how many files are probed (default 20).
	SampleSize int

	// Logger receives skip warnings. Nil discards them.
	Logger *log.Logger
}

// Estimate probes up to SampleSize files, uniformly chosen without
// replacement, and returns the modal aspect ratio snapped to a canonical
// pair when close enough. Files that fail to decode are skipped with a
// warning; if every probe fails the whole run cannot proceed and a
// NO_VALID_IMAGES error is returned.
func (e *Estimator) Estimate(files []string) (layout.Aspect, error) {
	logger := e.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	sampleSize := e.SampleSize
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}

	picks := files
	if len(files) > sampleSize {
		picks = make([]string, sampleSize)
		for i, idx := range e.perm(len(files))[:sampleSize] {
			picks[i] = files[idx]
		}
		logger.Debug("analyzing aspect ratio from random sample", "sample", sampleSize, "total", len(files))
	} else {
		logger.Debug("analyzing aspect ratio from all images", "total", len(files))
	}

	var ratios []float64
	for _, path := range picks {
		w, h, err := ProbeDimensions(path)
		if err != nil {
			logger.Warn("skipping unreadable image", "path", path, "err", err)
			continue
		}
		ratios = append(ratios, float64(w)/float64(h))
	}

	mode, ok := layout.ModalRatio(ratios)
	if !ok {
		return layout.Aspect{}, errors.New(errors.ErrCodeNoValidImages, "no valid images in aspect-ratio sample")
	}

	aspect := layout.Snap(mode)
	logger.Debug("estimated aspect ratio", "modal", mode, "aspect", aspect.String())
	return aspect, nil
}

// perm returns a random permutation of [0, n) from the configured source.
func (e *Estimator) perm(n int) []int {
	if e.Rand != nil {
		return e.Rand.Perm(n)
	}
	return rand.Perm(n)
}

// ProbeDimensions reads the pixel dimensions of the image at path without
// decoding the full pixel data.
func ProbeDimensions(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeDecodeFailed, err, "cannot open %s", path)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeDecodeFailed, err, "cannot decode %s", path)
	}
	if cfg.Height == 0 {
		return 0, 0, errors.New(errors.ErrCodeDecodeFailed, "image %s has zero height", path)
	}
	return cfg.Width, cfg.Height, nil
}
