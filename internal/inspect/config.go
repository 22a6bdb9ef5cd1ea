package inspect

import (
	"errors"
	"fmt"

	"github.com/ironsheep/color-inspect/internal/imaging"
)

// DefaultTop is the number of most common colors reported by default.
const DefaultTop = 5

// Config describes one inspection.
type Config struct {
	// Path is the image file to inspect.
	Path string

	// X and Y select the sampled pixel. (0,0) is the top-left corner.
	X int
	Y int

	// MaxColors caps the number of distinct colors counted. Images with more
	// colors get no palette summary.
	MaxColors int

	// Top is the number of most common colors reported.
	Top int

	// Region limits the palette analysis to a rectangle. Nil means the whole
	// image. The sampled pixel is always addressed in full-image coordinates.
	Region *imaging.Region

	// ReportOverflow prints an explicit line when MaxColors is exceeded
	// instead of omitting the palette summary.
	ReportOverflow bool

	// Channels adds the per-channel peak levels to the report.
	Channels bool

	// Preview adds an ANSI color swatch of the sample after the hex line.
	Preview bool
}

// DefaultConfig returns a configuration that samples (0,0), caps the palette
// at imaging.DefaultMaxColors and reports the top DefaultTop colors.
// Path must still be set.
func DefaultConfig() Config {
	return Config{
		MaxColors: imaging.DefaultMaxColors,
		Top:       DefaultTop,
	}
}

// Validate checks the configuration before any file is opened.
func (c Config) Validate() error {
	if c.Path == "" {
		return errors.New("image path cannot be empty")
	}
	if c.X < 0 || c.Y < 0 {
		return fmt.Errorf("sample coordinates (%d,%d) must not be negative", c.X, c.Y)
	}
	if c.MaxColors < 1 {
		return fmt.Errorf("max colors must be at least 1, got %d", c.MaxColors)
	}
	if c.Top < 1 {
		return fmt.Errorf("top must be at least 1, got %d", c.Top)
	}
	if r := c.Region; r != nil && (r.X1 >= r.X2 || r.Y1 >= r.Y2) {
		return fmt.Errorf("invalid region %s: x1 must be < x2, y1 must be < y2", r)
	}
	return nil
}

// RenderOptions returns the rendering switches carried by the configuration.
func (c Config) RenderOptions() RenderOptions {
	return RenderOptions{
		ReportOverflow: c.ReportOverflow,
		Preview:        c.Preview,
	}
}
