package pipeline

import (
	"fmt"
	"image"
	"image/color"

	"github.com/matzehuels/collage/pkg/compose"
	"github.com/matzehuels/collage/pkg/text"
)

// decorate stamps the title and sample label onto the composed canvas.
// The band above the grid is reserved only when a title is combined with
// TitleMargin; without the margin, text draws directly over the top of the
// finished canvas and its dimensions stay untouched. A margin without a
// title is a no-op.
func (r *Runner) decorate(canvas *image.NRGBA, opts Options, result *Result, bg color.Color) (image.Image, error) {
	sampleLabel := ""
	if result.Sampled {
		sampleLabel = fmt.Sprintf("Sample %d of %d", result.SampleCount, result.TotalCount)
	}
	if opts.Title == "" && sampleLabel == "" {
		return canvas, nil
	}

	face := text.LoadFace(opts.TitleFont, opts.TitleSize, opts.Logger)
	fill, err := compose.ParseHex(opts.TitleColor)
	if err != nil {
		return nil, err
	}
	border, err := compose.ParseHex(opts.TitleBorderColor)
	if err != nil {
		return nil, err
	}
	style := text.Style{
		Face:        face,
		Fill:        fill,
		Border:      border,
		BorderWidth: opts.TitleBorder,
	}

	dst := canvas
	if opts.Title != "" {
		if opts.TitleMargin {
			band := text.Band(face, opts.Title, opts.TitleBorder)
			dst = compose.ReserveBand(canvas, band, bg)
		}
		text.Draw(dst, opts.Title, style, text.TopLeft)
	}
	if sampleLabel != "" {
		text.Draw(dst, sampleLabel, style, text.TopRight)
	}
	return dst, nil
}
