package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// edgePadding is the inset from the canvas edges, and the vertical padding
// applied above and below reserved title bands.
const edgePadding = 20

// Anchor selects the horizontal placement of an overlay.
type Anchor int

const (
	// TopLeft places text in the top-left corner (titles).
	TopLeft Anchor = iota
	// TopRight places text in the top-right corner (sample labels).
	TopRight
)

// Style bundles the face and colors for a text overlay.
type Style struct {
	Face        font.Face   // resolved font face
	Fill        color.Color // main glyph color
	Border      color.Color // stroke color
	BorderWidth int         // stroke radius in pixels, 0 disables the stroke
}

// Band returns the vertical space in pixels needed to reserve for text at
// the top of a canvas: the measured text height plus fixed padding above
// and below plus room for the stroke.
func Band(face font.Face, s string, borderWidth int) int {
	bounds, _ := font.BoundString(face, s)
	height := (bounds.Max.Y - bounds.Min.Y).Ceil()
	return height + 2*edgePadding + 2*borderWidth
}

// Draw renders s onto dst at the given anchor. The stroke is produced by
// repeating the glyph run at every integer offset within the border radius
// (except the origin) in the border color, then drawing the fill on top.
// This is stroke-by-repetition, not a true outline, which matches the
// visual style of thin borders at title sizes.
func Draw(dst draw.Image, s string, style Style, anchor Anchor) {
	bounds, advance := font.BoundString(style.Face, s)

	var x int
	switch anchor {
	case TopRight:
		x = dst.Bounds().Max.X - advance.Ceil() - edgePadding - 2*style.BorderWidth
	default:
		x = dst.Bounds().Min.X + edgePadding
	}
	// Shift the baseline down so the glyph tops sit at the edge padding.
	baseline := dst.Bounds().Min.Y + edgePadding + (-bounds.Min.Y).Ceil()

	drawRun := func(dx, dy int, col color.Color) {
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(col),
			Face: style.Face,
			Dot:  fixed.P(x+dx, baseline+dy),
		}
		d.DrawString(s)
	}

	if style.BorderWidth > 0 {
		for dx := -style.BorderWidth; dx <= style.BorderWidth; dx++ {
			for dy := -style.BorderWidth; dy <= style.BorderWidth; dy++ {
				if dx == 0 && dy == 0 {
					continue
				}
				drawRun(dx, dy, style.Border)
			}
		}
	}
	drawRun(0, 0, style.Fill)
}
