package processor

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/timkrebs/appstore-screenshots/internal/models"
)

// Render scales src by the largest factor that fits the target canvas,
// preserving aspect ratio, and centers it on the background color. The
// canvas always has exactly the target dimensions and is fully opaque.
func (p *Processor) Render(src image.Image, target models.Size) (*image.NRGBA, Placement, error) {
	if err := target.Validate(); err != nil {
		return nil, Placement{}, err
	}
	srcBounds := src.Bounds()
	if srcBounds.Dx() <= 0 || srcBounds.Dy() <= 0 {
		return nil, Placement{}, fmt.Errorf("source image has no pixels")
	}

	placement := p.placeContent(srcBounds.Dx(), srcBounds.Dy(), target)

	// Lanczos resampling for high quality, both up and down
	resized := imaging.Resize(src, placement.Width, placement.Height, imaging.Lanczos)
	canvas := imaging.New(target.Width, target.Height, p.opts.Background)

	pos := image.Pt(placement.OffsetX, placement.OffsetY)
	if hasTransparency(src) {
		canvas = imaging.Overlay(canvas, resized, pos, 1.0)
	} else {
		canvas = imaging.Paste(canvas, resized, pos)
	}

	return canvas, placement, nil
}

// placeContent computes the scaled content dimensions and the centered
// offset for a srcW x srcH source on the target canvas
func (p *Processor) placeContent(srcW, srcH int, target models.Size) Placement {
	boxW, boxH := target.Width, target.Height
	if p.opts.Mode == models.FitModePadded {
		pad := p.opts.Padding
		if pad < 0 {
			pad = 0
		}
		boxW = target.Width - 2*pad
		boxH = target.Height - 2*pad
		// The margin must leave at least one pixel of fit box
		if boxW < 1 {
			boxW = 1
		}
		if boxH < 1 {
			boxH = 1
		}
	}

	scale := float64(boxW) / float64(srcW)
	if s := float64(boxH) / float64(srcH); s < scale {
		scale = s
	}
	if p.opts.MaxScale > 0 && scale > p.opts.MaxScale {
		scale = p.opts.MaxScale
	}

	// Floor, then clamp so rounding never exceeds the fit box
	w := int(float64(srcW) * scale)
	if w < 1 {
		w = 1
	}
	if w > boxW {
		w = boxW
	}
	h := int(float64(srcH) * scale)
	if h < 1 {
		h = 1
	}
	if h > boxH {
		h = boxH
	}

	return Placement{
		Scale:   scale,
		Width:   w,
		Height:  h,
		OffsetX: (target.Width - w) / 2,
		OffsetY: (target.Height - h) / 2,
	}
}

// hasTransparency reports whether the image carries an alpha channel that is
// actually in use. Opaque sources are pasted directly; anything else is
// composited over the background.
func hasTransparency(img image.Image) bool {
	if op, ok := img.(interface{ Opaque() bool }); ok {
		return !op.Opaque()
	}
	return true
}
