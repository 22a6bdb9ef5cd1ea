package imaging

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
)

// Region represents a rectangular region within an image.
//
// Coordinates follow the standard image convention:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
//   - Width = X2 - X1, Height = Y2 - Y1
type Region struct {
	X1 int `json:"x1"` // Left edge X coordinate (inclusive)
	Y1 int `json:"y1"` // Top edge Y coordinate (inclusive)
	X2 int `json:"x2"` // Right edge X coordinate (exclusive)
	Y2 int `json:"y2"` // Bottom edge Y coordinate (exclusive)
}

// String prints the region in the "x1,y1,x2,y2" form accepted by ParseRegion.
func (r Region) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", r.X1, r.Y1, r.X2, r.Y2)
}

// Pixels returns the number of pixels covered by the region.
func (r Region) Pixels() int {
	return (r.X2 - r.X1) * (r.Y2 - r.Y1)
}

// ParseRegion parses "x1,y1,x2,y2". Whitespace around the numbers is ignored.
func ParseRegion(s string) (Region, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Region{}, fmt.Errorf("invalid region %q: expected x1,y1,x2,y2", s)
	}

	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Region{}, fmt.Errorf("invalid region %q: %w", s, err)
		}
		v[i] = n
	}

	r := Region{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return Region{}, fmt.Errorf("invalid region %q: x1 must be < x2, y1 must be < y2", s)
	}
	return r, nil
}

// Crop extracts a rectangular region from an image.
//
// Region coordinates are relative to the image's top-left corner. The result
// is an *image.NRGBA whose bounds start at (0,0).
//
// Returns an error if the region is empty or extends beyond the image.
func Crop(img image.Image, r Region) (image.Image, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if r.X1 < 0 || r.Y1 < 0 || r.X2 > w || r.Y2 > h {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (0,0)-(%d,%d)",
			r.X1, r.Y1, r.X2, r.Y2, w, h)
	}
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	rect := image.Rect(r.X1, r.Y1, r.X2, r.Y2).Add(bounds.Min)
	return imaging.Crop(img, rect), nil
}
