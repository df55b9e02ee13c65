package models

import "fmt"

// Size represents a target canvas size in pixels
type Size struct {
	Width  int
	Height int
}

// String returns the size in WxH form, the same form used in output filenames
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Validate checks that both dimensions are positive
func (s Size) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d: dimensions must be positive", s.Width, s.Height)
	}
	return nil
}

// AspectRatio returns width divided by height
func (s Size) AspectRatio() float64 {
	return float64(s.Width) / float64(s.Height)
}

// AppStoreSizes lists the 16:10 canvas sizes App Store Connect accepts for
// Mac screenshots. Every input is rendered once per entry, in this order.
var AppStoreSizes = []Size{
	{Width: 1280, Height: 800},
	{Width: 1440, Height: 900},
	{Width: 2560, Height: 1600},
	{Width: 2880, Height: 1800},
}
