package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/histogram"
	"github.com/disintegration/imaging"
)

// ChannelPeaks holds the most populated level (0-255) of each channel.
type ChannelPeaks struct {
	R     int  `json:"r"`
	G     int  `json:"g"`
	B     int  `json:"b"`
	A     int  `json:"a"`
	Alpha bool `json:"alpha"`
}

// String prints the peaks as "R=255 G=0 B=0", with "A=..." appended for
// images that carry alpha.
func (p ChannelPeaks) String() string {
	s := fmt.Sprintf("R=%d G=%d B=%d", p.R, p.G, p.B)
	if p.Alpha {
		s += fmt.Sprintf(" A=%d", p.A)
	}
	return s
}

// ChannelSummary builds per-channel histograms of img and returns the peak
// level of each.
//
// The histograms count non-premultiplied values, the same values samples and
// palette entries report. Ties resolve to the lowest level.
func ChannelSummary(img image.Image, alpha bool) ChannelPeaks {
	h := histogram.NewRGBAHistogram(straightRGBA(img))

	peaks := ChannelPeaks{
		R: peakLevel(h.R.Bins),
		G: peakLevel(h.G.Bins),
		B: peakLevel(h.B.Bins),
	}
	if alpha {
		peaks.A = peakLevel(h.A.Bins)
		peaks.Alpha = true
	}
	return peaks
}

// straightRGBA copies img into non-premultiplied 8-bit pixels and presents
// them as an *image.RGBA. The histogram copies RGBA sources byte for byte, so
// its bins see the straight values instead of premultiplying them again.
func straightRGBA(img image.Image) *image.RGBA {
	n := imaging.Clone(img)
	return &image.RGBA{Pix: n.Pix, Stride: n.Stride, Rect: n.Rect}
}

func peakLevel(bins []int) int {
	level := 0
	for i, n := range bins {
		if n > bins[level] {
			level = i
		}
	}
	return level
}
