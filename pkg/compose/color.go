package compose

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/collage/pkg/errors"
)

// ParseHex parses a CSS-style hex color ("#000", "#1a2b3c") into an opaque
// NRGBA value.
func ParseHex(s string) (color.NRGBA, error) {
	if err := errors.ValidateHexColor(s); err != nil {
		return color.NRGBA{}, err
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "cannot parse color %q", s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
