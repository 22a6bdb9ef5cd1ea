package cli

import (
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/ironsheep/color-inspect/internal/imaging"
	"github.com/ironsheep/color-inspect/internal/inspect"
)

// LogLevelEnv selects the stderr log level (trace, debug, info, warn, error, off).
const LogLevelEnv = "COLOR_INSPECT_LOG_LEVEL"

type inspectOptions struct {
	x              int
	y              int
	maxColors      int
	top            int
	region         string
	reportOverflow bool
	channels       bool
	preview        bool
	verbose        bool
}

func newInspectOptions() *inspectOptions {
	return &inspectOptions{}
}

func bindInspectFlags(fs *pflag.FlagSet, o *inspectOptions) {
	defaults := inspect.DefaultConfig()

	fs.IntVar(&o.x, "x", defaults.X, "x coordinate of the sampled pixel")
	fs.IntVar(&o.y, "y", defaults.Y, "y coordinate of the sampled pixel")
	fs.IntVarP(&o.maxColors, "max-colors", "m", defaults.MaxColors, "skip the palette summary above this many distinct colors")
	fs.IntVarP(&o.top, "top", "n", defaults.Top, "number of most common colors to show")
	fs.StringVarP(&o.region, "region", "r", "", "limit palette analysis to x1,y1,x2,y2")
	fs.BoolVar(&o.reportOverflow, "report-overflow", false, "say so when the image exceeds --max-colors")
	fs.BoolVar(&o.channels, "channels", false, "show the peak level of each channel")
	fs.BoolVar(&o.preview, "preview", false, "show a color swatch (terminal output only)")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging on stderr")
}

// config turns the flag values into an inspection configuration. A malformed
// region is reported as an inspection failure.
func (o *inspectOptions) config(path string, out io.Writer) (inspect.Config, error) {
	cfg := inspect.DefaultConfig()
	cfg.Path = path
	cfg.X = o.x
	cfg.Y = o.y
	cfg.MaxColors = o.maxColors
	cfg.Top = o.top
	cfg.ReportOverflow = o.reportOverflow
	cfg.Channels = o.channels
	cfg.Preview = o.preview && isTerminal(out)

	if o.region != "" {
		r, err := imaging.ParseRegion(o.region)
		if err != nil {
			return cfg, inspect.NewInspectionError(path, inspect.OpConfig, err)
		}
		cfg.Region = &r
	}
	return cfg, nil
}

// runInspect prints the report or the error line on stdout. Inspection
// failures do not fail the command.
func runInspect(cmd *cobra.Command, path string, o *inspectOptions) error {
	out := cmd.OutOrStdout()
	logger := newLogger(cmd.ErrOrStderr(), o.verbose)

	cfg, err := o.config(path, out)
	if err != nil {
		return inspect.RenderError(out, err)
	}

	logger.Debug("inspecting image", "path", cfg.Path, "max_colors", cfg.MaxColors, "top", cfg.Top)
	return inspect.Run(out, cfg, inspect.WithLogger(logger))
}

// newLogger builds the stderr logger. The environment variable wins over
// --verbose; without either, logging is off.
func newLogger(w io.Writer, verbose bool) hclog.Logger {
	level := hclog.Off
	if verbose {
		level = hclog.Debug
	}
	if env := strings.TrimSpace(os.Getenv(LogLevelEnv)); env != "" {
		if l := hclog.LevelFromString(env); l != hclog.NoLevel {
			level = l
		}
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "color-inspect",
		Output: w,
		Level:  level,
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
