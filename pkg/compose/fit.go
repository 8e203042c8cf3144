package compose

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// FitCell resizes img to fit within a cellWidth x cellHeight cell while
// preserving its aspect ratio, centered on a background-filled cell. The
// unused border becomes letterbox (top/bottom) or pillarbox (left/right)
// bars in the background color. Lanczos resampling keeps downscaled photos
// sharp.
func FitCell(img image.Image, cellWidth, cellHeight int, bg color.Color) *image.NRGBA {
	cell := imaging.New(cellWidth, cellHeight, bg)
	fitted := imaging.Fit(img, cellWidth, cellHeight, imaging.Lanczos)
	return imaging.PasteCenter(cell, fitted)
}
