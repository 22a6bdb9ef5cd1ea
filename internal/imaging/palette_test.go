package imaging

import (
	"image"
	"image/color"
	"testing"
)

// createDistinctImage gives every pixel its own color.
func createDistinctImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x), uint8(y), 0, 255})
		}
	}
	return img
}

func TestCountColors_SolidImage(t *testing.T) {
	img := createInMemoryImage(1, 1, color.NRGBA{255, 0, 0, 255})

	palette, ok := CountColors(img, DefaultMaxColors, false)
	if !ok {
		t.Fatal("CountColors reported too many colors for a 1x1 image")
	}

	if got := palette.String(); got != "[(1, (255, 0, 0))]" {
		t.Errorf("palette: got %s, want [(1, (255, 0, 0))]", got)
	}
}

func TestCountColors_MostCommonOrder(t *testing.T) {
	img := createInMemoryImage(2, 2, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 1, color.NRGBA{0, 255, 0, 255})

	palette, ok := CountColors(img, DefaultMaxColors, false)
	if !ok {
		t.Fatal("CountColors reported too many colors")
	}
	if len(palette) != 2 {
		t.Fatalf("unique colors: got %d, want 2", len(palette))
	}

	top := palette.MostCommon(5)
	if got := top.String(); got != "[(3, (255, 0, 0)), (1, (0, 255, 0))]" {
		t.Errorf("MostCommon: got %s", got)
	}
}

func TestCountColors_SumEqualsPixels(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
	}{
		{"pattern", createPatternImage(17, 9)},
		{"distinct", createDistinctImage(20, 30)},
		{"solid", createInMemoryImage(13, 7, color.NRGBA{1, 2, 3, 255})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			palette, ok := CountColors(tt.img, DefaultMaxColors, false)
			if !ok {
				t.Fatal("CountColors reported too many colors")
			}

			b := tt.img.Bounds()
			if got, want := palette.Total(), b.Dx()*b.Dy(); got != want {
				t.Errorf("Total: got %d, want %d", got, want)
			}
		})
	}
}

func TestCountColors_Cap(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		height    int
		maxColors int
		wantOK    bool
	}{
		{"exactly at cap", 10, 10, 100, true},
		{"one over cap", 101, 1, 100, false},
		{"default cap exceeded", 40, 40, DefaultMaxColors, false},
		{"default cap", 25, 40, DefaultMaxColors, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			palette, ok := CountColors(createDistinctImage(tt.width, tt.height), tt.maxColors, false)
			if ok != tt.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tt.wantOK)
			}
			if !ok && palette != nil {
				t.Errorf("palette should be nil when the cap is exceeded, got %d entries", len(palette))
			}
			if ok && len(palette) != tt.width*tt.height {
				t.Errorf("unique colors: got %d, want %d", len(palette), tt.width*tt.height)
			}
		})
	}
}

func TestCountColors_InvalidCap(t *testing.T) {
	if _, ok := CountColors(createInMemoryImage(1, 1, color.Black), 0, false); ok {
		t.Error("CountColors should refuse a zero cap")
	}
}

func TestCountColors_Alpha(t *testing.T) {
	img := createInMemoryImage(2, 1, color.NRGBA{10, 20, 30, 255})
	img.SetNRGBA(1, 0, color.NRGBA{10, 20, 30, 100})

	withAlpha, _ := CountColors(img, DefaultMaxColors, true)
	if len(withAlpha) != 2 {
		t.Errorf("with alpha: got %d colors, want 2", len(withAlpha))
	}
	for _, e := range withAlpha {
		if e.Color.Len() != 4 {
			t.Errorf("entry %s should carry alpha", e)
		}
	}

	withoutAlpha, _ := CountColors(img, DefaultMaxColors, false)
	if len(withoutAlpha) != 1 {
		t.Errorf("without alpha: got %d colors, want 1", len(withoutAlpha))
	}
}

func TestPalette_SortedTieBreak(t *testing.T) {
	palette := Palette{
		{Count: 2, Color: ColorSample{R: 0, G: 0, B: 255}},
		{Count: 5, Color: ColorSample{R: 1}},
		{Count: 2, Color: ColorSample{R: 255}},
		{Count: 2, Color: ColorSample{R: 0, G: 255}},
	}

	sorted := palette.Sorted()
	want := "[(5, (1, 0, 0)), (2, (255, 0, 0)), (2, (0, 255, 0)), (2, (0, 0, 255))]"
	if got := sorted.String(); got != want {
		t.Errorf("Sorted: got %s, want %s", got, want)
	}

	// The receiver is left untouched.
	if palette[0].Count != 2 || palette[0].Color.B != 255 {
		t.Error("Sorted modified the original palette")
	}
}

func TestPalette_MostCommon(t *testing.T) {
	palette, _ := CountColors(createDistinctImage(4, 4), DefaultMaxColors, false)

	if got := len(palette.MostCommon(5)); got != 5 {
		t.Errorf("MostCommon(5): got %d entries", got)
	}
	if got := len(palette.MostCommon(100)); got != 16 {
		t.Errorf("MostCommon(100): got %d entries, want 16", got)
	}
	if got := len(palette.MostCommon(0)); got != 0 {
		t.Errorf("MostCommon(0): got %d entries, want 0", got)
	}
}

func TestPalette_Deterministic(t *testing.T) {
	img := createPatternImage(12, 12)

	first, _ := CountColors(img, DefaultMaxColors, false)
	second, _ := CountColors(img, DefaultMaxColors, false)

	if first.MostCommon(5).String() != second.MostCommon(5).String() {
		t.Error("MostCommon differs between runs on the same image")
	}
}

func TestPalette_EmptyString(t *testing.T) {
	if got := Palette(nil).String(); got != "[]" {
		t.Errorf("String: got %s, want []", got)
	}
}
