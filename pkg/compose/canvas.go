package compose

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// ReserveBand returns a new canvas grown by band pixels at the top, filled
// with the background color, with the collage pasted below the reserved
// strip. Used when a title margin keeps text off the image grid.
func ReserveBand(collage image.Image, band int, bg color.Color) *image.NRGBA {
	b := collage.Bounds()
	full := imaging.New(b.Dx(), b.Dy()+band, bg)
	draw.Draw(full, image.Rect(0, band, b.Dx(), band+b.Dy()), collage, b.Min, draw.Src)
	return full
}
