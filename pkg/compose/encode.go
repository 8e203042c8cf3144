package compose

import (
	"image"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/matzehuels/collage/pkg/errors"
)

// WriteJPEG encodes img as JPEG at the given quality (1-100) and writes it
// to path, creating parent directories as needed.
func WriteJPEG(img image.Image, path string, quality int) error {
	if err := errors.ValidateQuality(quality); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeEncodeFailed, err, "cannot create directory %s", dir)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeEncodeFailed, err, "cannot create %s", path)
	}
	defer f.Close()

	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: quality}); err != nil {
		return errors.Wrap(errors.ErrCodeEncodeFailed, err, "cannot encode %s", path)
	}
	return nil
}
