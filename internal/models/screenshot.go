package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FitMode represents the strategy for fitting a screenshot onto the canvas.
// Padded mode reserves a margin inside the canvas and caps upscaling; edge
// mode scales until the binding axis touches the canvas edges.
type FitMode string

const (
	FitModePadded     FitMode = "padded"
	FitModeEdgeToEdge FitMode = "edge"
)

// OutputDirName is the directory rendered screenshots are written to,
// relative to the working directory. It is created on demand.
const OutputDirName = "AppStore_Screenshots"

// DefaultScreenshots lists the source captures the converter processes,
// in processing order.
var DefaultScreenshots = []string{
	"mainscreen.png",
	"settings.png",
	"compact.png",
}

// OutputName returns the output filename for an input rendered at the given
// size: the input's base name, a _WxH suffix, and a .png extension. The
// input's directory and original extension do not survive into the name.
func OutputName(inputPath string, size Size) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return fmt.Sprintf("%s_%dx%d.png", base, size.Width, size.Height)
}
