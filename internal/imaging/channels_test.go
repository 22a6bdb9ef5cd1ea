package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestChannelSummary(t *testing.T) {
	img := createInMemoryImage(3, 3, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(0, 0, color.NRGBA{0, 0, 200, 255})

	peaks := ChannelSummary(img, false)

	want := ChannelPeaks{R: 255, G: 0, B: 0}
	if peaks != want {
		t.Errorf("ChannelSummary: got %+v, want %+v", peaks, want)
	}
	if got := peaks.String(); got != "R=255 G=0 B=0" {
		t.Errorf("String: got %q", got)
	}
}

func TestChannelSummary_Alpha(t *testing.T) {
	img := createInMemoryImage(2, 2, color.NRGBA{0, 0, 0, 0})

	peaks := ChannelSummary(img, true)
	if !peaks.Alpha || peaks.A != 0 {
		t.Errorf("ChannelSummary: got %+v, want alpha peak 0", peaks)
	}
	if got := peaks.String(); got != "R=0 G=0 B=0 A=0" {
		t.Errorf("String: got %q", got)
	}
}

func TestChannelSummary_Translucent(t *testing.T) {
	img := createInMemoryImage(2, 2, color.NRGBA{255, 0, 0, 100})

	peaks := ChannelSummary(img, true)
	want := ChannelPeaks{R: 255, G: 0, B: 0, A: 100, Alpha: true}
	if peaks != want {
		t.Errorf("ChannelSummary: got %+v, want %+v", peaks, want)
	}

	sample, err := SampleColor(img, 0, 0, true)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if int(sample.R) != peaks.R || int(sample.A) != peaks.A {
		t.Errorf("peaks %s disagree with sample %s", peaks, sample)
	}
}

func TestChannelSummary_OffsetBounds(t *testing.T) {
	img := createInMemoryImage(4, 4, color.NRGBA{0, 0, 255, 255})
	img.SetNRGBA(2, 2, color.NRGBA{9, 9, 9, 255})
	img.SetNRGBA(2, 3, color.NRGBA{9, 9, 9, 255})
	img.SetNRGBA(3, 3, color.NRGBA{9, 9, 9, 255})

	sub := img.SubImage(image.Rect(2, 2, 4, 4))
	peaks := ChannelSummary(sub, false)
	if peaks.R != 9 || peaks.B != 9 {
		t.Errorf("ChannelSummary on sub-image: got %+v, want R=9 B=9", peaks)
	}
}

func TestPeakLevel_Ties(t *testing.T) {
	bins := make([]int, 256)
	bins[7] = 3
	bins[200] = 3

	if got := peakLevel(bins); got != 7 {
		t.Errorf("peakLevel: got %d, want 7", got)
	}
	if got := peakLevel(nil); got != 0 {
		t.Errorf("peakLevel(nil): got %d, want 0", got)
	}
}
