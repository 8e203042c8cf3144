// Package text renders title and label overlays onto a finished collage.
//
// Font resolution walks a chain that never fails the run: an explicit font
// path, then well-known system fonts located via findfont, then the
// embedded Go Bold face, and finally a minimal built-in bitmap face.
package text

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/flopp/go-findfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// defaultFontCandidates are tried in order when no explicit font path is
// supplied. findfont searches the platform font directories for each name.
var defaultFontCandidates = []string{
	"DejaVuSans-Bold.ttf",
	"LiberationSans-Bold.ttf",
	"Arialbd.ttf",
	"Arial.ttf",
	"Helvetica.ttf",
}

// LoadFace resolves a font face at the given pixel size. An explicit path
// takes priority; failures at any step log a warning and fall through to
// the next candidate, ending at a built-in bitmap face, so the returned
// face is always usable.
func LoadFace(path string, size float64, logger *log.Logger) font.Face {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	if path != "" {
		face, err := faceFromFile(path, size)
		if err == nil {
			return face
		}
		logger.Warn("cannot load font, falling back to defaults", "path", path, "err", err)
	}

	for _, name := range defaultFontCandidates {
		fontPath, err := findfont.Find(name)
		if err != nil {
			continue
		}
		if face, err := faceFromFile(fontPath, size); err == nil {
			return face
		}
	}

	if face, err := faceFromBytes(gobold.TTF, size); err == nil {
		logger.Warn("no system font found, using embedded font")
		return face
	}

	logger.Warn("using minimal built-in font")
	return basicfont.Face7x13
}

func faceFromFile(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return faceFromBytes(data, size)
}

func faceFromBytes(data []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
