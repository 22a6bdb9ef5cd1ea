package imaging

import (
	"image"
	"sort"
	"strconv"
	"strings"
)

// DefaultMaxColors is the distinct-color cap used when none is configured.
const DefaultMaxColors = 1000

// PaletteEntry is one distinct color and the number of pixels that have it.
type PaletteEntry struct {
	Count int         `json:"count"`
	Color ColorSample `json:"color"`
}

// String prints the entry as "(count, (r, g, b))".
func (e PaletteEntry) String() string {
	return "(" + strconv.Itoa(e.Count) + ", " + e.Color.String() + ")"
}

// Palette is the set of distinct colors of an image with their frequencies.
type Palette []PaletteEntry

// Total returns the sum of all entry counts.
func (p Palette) Total() int {
	total := 0
	for _, e := range p {
		total += e.Count
	}
	return total
}

// String prints the palette as a bracketed list of entries.
func (p Palette) String() string {
	parts := make([]string, len(p))
	for i, e := range p {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Sorted returns a copy of the palette ordered by descending count, with ties
// broken by descending color tuple.
func (p Palette) Sorted() Palette {
	sorted := make(Palette, len(p))
	copy(sorted, p)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Color.Compare(sorted[j].Color) > 0
	})
	return sorted
}

// MostCommon returns the n most frequent entries in Sorted order.
// Fewer entries are returned when the palette is smaller than n.
func (p Palette) MostCommon(n int) Palette {
	sorted := p.Sorted()
	if n < 0 {
		n = 0
	}
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// CountColors counts the occurrences of every distinct color in img.
//
// Parameters:
//   - img: The image (or cropped region) to analyze. Every pixel is visited.
//   - maxColors: The maximum number of distinct colors. Must be positive.
//   - alpha: Whether colors are distinguished by their alpha channel and carry
//     it in their samples.
//
// Returns:
//   - Palette: One entry per distinct color, in no particular order. The counts
//     sum to the number of pixels in img.
//   - bool: false when img has more than maxColors distinct colors. No partial
//     palette is returned in that case.
//
// # Performance
//
// Counting stops as soon as the cap is exceeded, so images with many colors
// are rejected after a partial scan.
func CountColors(img image.Image, maxColors int, alpha bool) (Palette, bool) {
	if maxColors < 1 {
		return nil, false
	}

	bounds := img.Bounds()
	counts := make(map[uint32]int)
	order := make([]uint32, 0)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			key := packColor(NewColorSample(img.At(x, y), alpha))
			if _, seen := counts[key]; !seen {
				if len(order) == maxColors {
					return nil, false
				}
				order = append(order, key)
			}
			counts[key]++
		}
	}

	palette := make(Palette, 0, len(order))
	for _, key := range order {
		palette = append(palette, PaletteEntry{
			Count: counts[key],
			Color: unpackColor(key, alpha),
		})
	}
	return palette, true
}

// packColor maps a sample to a map key. Samples without alpha store 0 in the
// low byte.
func packColor(c ColorSample) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

func unpackColor(key uint32, alpha bool) ColorSample {
	c := ColorSample{R: uint8(key >> 24), G: uint8(key >> 16), B: uint8(key >> 8)}
	if alpha {
		c.A = uint8(key)
		c.Alpha = true
	}
	return c
}
