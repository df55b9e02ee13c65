package processor

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"io"

	"github.com/timkrebs/appstore-screenshots/internal/models"
)

var (
	// GrayBackground is the light neutral gray behind padded renders
	GrayBackground = color.NRGBA{R: 245, G: 245, B: 247, A: 255}
	// WhiteBackground is the background for edge-to-edge renders
	WhiteBackground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Options controls how a screenshot is fitted onto the target canvas
type Options struct {
	// Mode selects the fit strategy. Defaults to FitModePadded.
	Mode models.FitMode
	// Background fills the canvas around the content. A fully transparent
	// value selects the mode's default background.
	Background color.NRGBA
	// Padding is the margin in pixels reserved on every canvas side in
	// padded mode. Ignored in edge-to-edge mode.
	Padding int
	// MaxScale caps upscaling of small sources. Zero or negative means
	// no cap.
	MaxScale float64
}

// DefaultOptions returns the padded fit used for App Store uploads: a 100px
// margin on every side, at most 2x upscaling, light gray background
func DefaultOptions() Options {
	return Options{
		Mode:       models.FitModePadded,
		Background: GrayBackground,
		Padding:    100,
		MaxScale:   2.0,
	}
}

// EdgeToEdgeOptions returns a fit that touches the canvas on the binding
// axis, with no margin and no upscale cap, on a white background
func EdgeToEdgeOptions() Options {
	return Options{
		Mode:       models.FitModeEdgeToEdge,
		Background: WhiteBackground,
	}
}

// Processor renders screenshots onto fixed-size canvases
type Processor struct {
	opts Options
}

// New creates a processor with the given fit options
func New(opts Options) *Processor {
	if opts.Mode == "" {
		opts.Mode = models.FitModePadded
	}
	if opts.Background.A == 0 {
		if opts.Mode == models.FitModeEdgeToEdge {
			opts.Background = WhiteBackground
		} else {
			opts.Background = GrayBackground
		}
	}
	return &Processor{opts: opts}
}

// Placement records the scale factor applied to a source and where the
// scaled content landed on the canvas
type Placement struct {
	Scale   float64
	Width   int
	Height  int
	OffsetX int
	OffsetY int
}

// ProcessResult contains the rendered image and its geometry
type ProcessResult struct {
	Data      []byte
	Width     int
	Height    int
	Placement Placement
}

// Process reads one source image, renders it at the target size and returns
// the PNG-encoded result
func (p *Processor) Process(reader io.Reader, target models.Size) (*ProcessResult, error) {
	img, _, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	canvas, placement, err := p.Render(img, target)
	if err != nil {
		return nil, fmt.Errorf("failed to render image: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}

	bounds := canvas.Bounds()
	return &ProcessResult{
		Data:      buf.Bytes(),
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
		Placement: placement,
	}, nil
}
