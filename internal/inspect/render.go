package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/ironsheep/color-inspect/internal/imaging"
)

// ANSI escape codes for the preview swatch.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	swatchWidth  = 8
)

// RenderOptions controls the optional report lines.
type RenderOptions struct {
	// ReportOverflow prints "Number of unique colors: more than N" when the
	// palette cap was exceeded. Without it the palette lines are omitted.
	ReportOverflow bool

	// Preview prints an ANSI truecolor swatch of the sample.
	Preview bool
}

// Render writes the report as console lines:
//
//	Top-left color: (255, 0, 0)
//	Hex: #ff0000
//	Number of unique colors: 1
//	Most common colors: [(1, (255, 0, 0))]
//
// A sample taken anywhere other than (0,0) is labelled "Color at (x, y)".
func Render(w io.Writer, r *Report, opts RenderOptions) error {
	var b strings.Builder

	if r.X == 0 && r.Y == 0 {
		fmt.Fprintf(&b, "Top-left color: %s\n", r.Sample)
	} else {
		fmt.Fprintf(&b, "Color at (%d, %d): %s\n", r.X, r.Y, r.Sample)
	}
	fmt.Fprintf(&b, "Hex: %s\n", r.Hex)

	if opts.Preview {
		fmt.Fprintf(&b, "Preview: %s\n", swatch(r.Sample))
	}

	switch {
	case r.PaletteAvailable:
		fmt.Fprintf(&b, "Number of unique colors: %d\n", r.UniqueColors())
		fmt.Fprintf(&b, "Most common colors: %s\n", r.MostCommon)
	case opts.ReportOverflow:
		fmt.Fprintf(&b, "Number of unique colors: more than %d\n", r.MaxColors)
	}

	if r.Channels != nil {
		fmt.Fprintf(&b, "Channel peaks: %s\n", r.Channels)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderError writes the single failure line "Error: <message>". Line breaks
// in the message are folded into spaces so the output stays one line.
func RenderError(w io.Writer, err error) error {
	msg := strings.ReplaceAll(err.Error(), "\n", " ")
	_, werr := fmt.Fprintf(w, "Error: %s\n", msg)
	return werr
}

// Run inspects cfg.Path and writes either the report or the error line to w.
// Inspection failures are consumed here; only a failure to write to w is
// returned.
func Run(w io.Writer, cfg Config, opts ...Option) error {
	insp, err := New(cfg, opts...)
	if err != nil {
		return RenderError(w, err)
	}

	report, err := insp.Inspect()
	if err != nil {
		return RenderError(w, err)
	}

	return Render(w, report, cfg.RenderOptions())
}

// swatch returns a solid block in the sample's color.
func swatch(c imaging.ColorSample) string {
	return fmt.Sprintf("%s%d;%d;%dm%s%s", ansiBgPrefix, c.R, c.G, c.B,
		strings.Repeat(" ", swatchWidth), ansiReset)
}
