package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorSample is the channel tuple read from one pixel.
//
// R, G and B are always part of the sample. A is part of it only when Alpha
// is set, which happens for images with an alpha channel. Values are
// 8-bit and non-premultiplied.
type ColorSample struct {
	R     uint8 `json:"r"`
	G     uint8 `json:"g"`
	B     uint8 `json:"b"`
	A     uint8 `json:"a"`
	Alpha bool  `json:"alpha"`
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// NewColorSample converts any color to a sample. When alpha is false the
// alpha channel is left out of the tuple.
func NewColorSample(c color.Color, alpha bool) ColorSample {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	s := ColorSample{R: n.R, G: n.G, B: n.B}
	if alpha {
		s.A = n.A
		s.Alpha = true
	}
	return s
}

// Len returns the number of channels in the sample, 3 or 4.
func (c ColorSample) Len() int {
	if c.Alpha {
		return 4
	}
	return 3
}

// Channels returns the channel values in tuple order.
func (c ColorSample) Channels() []uint8 {
	if c.Alpha {
		return []uint8{c.R, c.G, c.B, c.A}
	}
	return []uint8{c.R, c.G, c.B}
}

// Hex returns the "#rrggbb" encoding of the first three channels.
// Alpha is dropped.
func (c ColorSample) Hex() string {
	return FormatHex(c.R, c.G, c.B)
}

// FormatHex formats three 8-bit channels as a lowercase "#rrggbb" string.
func FormatHex(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// String prints the sample as a tuple, e.g. "(255, 0, 0)".
func (c ColorSample) String() string {
	channels := c.Channels()
	parts := make([]string, len(channels))
	for i, v := range channels {
		parts[i] = strconv.Itoa(int(v))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// HSL returns the HSL representation of the sample's RGB channels.
func (c ColorSample) HSL() HSLColor {
	h, s, l := c.toColorful().Hsl()
	return HSLColor{
		H: int(h),
		S: int(s * 100),
		L: int(l * 100),
	}
}

func (c ColorSample) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Compare orders samples lexicographically by channel tuple.
// It returns -1, 0 or +1. A shorter tuple that is a prefix of a longer one
// sorts first.
func (c ColorSample) Compare(o ColorSample) int {
	a, b := c.Channels(), o.Channels()
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// SampleColor extracts the color at a specific pixel coordinate.
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//   - alpha: Whether the sample carries the alpha channel. Pass the result of
//     HasAlphaChannel for the whole image so samples and palette entries agree.
//
// Coordinates are relative to the image's top-left corner, even when the
// image bounds do not start at (0,0).
//
// Returns an error if the coordinates are outside the image.
func SampleColor(img image.Image, x, y int, alpha bool) (ColorSample, error) {
	bounds := img.Bounds()
	px, py := bounds.Min.X+x, bounds.Min.Y+y
	if x < 0 || y < 0 || px >= bounds.Max.X || py >= bounds.Max.Y {
		return ColorSample{}, fmt.Errorf("coordinates (%d,%d) outside image bounds %dx%d",
			x, y, bounds.Dx(), bounds.Dy())
	}

	return NewColorSample(img.At(px, py), alpha), nil
}
