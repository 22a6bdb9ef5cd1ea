package inspect

import (
	"image"

	"github.com/hashicorp/go-hclog"

	"github.com/ironsheep/color-inspect/internal/imaging"
)

// Report is the outcome of a successful inspection.
type Report struct {
	// Path is the inspected file.
	Path string `json:"path"`

	// Info describes the decoded image.
	Info imaging.ImageInfo `json:"info"`

	// X and Y are the sampled coordinate.
	X int `json:"x"`
	Y int `json:"y"`

	// Sample is the color at (X, Y) and Hex its "#rrggbb" encoding.
	Sample imaging.ColorSample `json:"sample"`
	Hex    string              `json:"hex"`

	// MaxColors is the cap the palette was counted against.
	MaxColors int `json:"max_colors"`

	// Palette holds every distinct color, or nil when the cap was exceeded.
	// PaletteAvailable distinguishes the two cases.
	Palette          imaging.Palette `json:"palette,omitempty"`
	PaletteAvailable bool            `json:"palette_available"`

	// MostCommon is the head of the sorted palette, at most Config.Top entries.
	MostCommon imaging.Palette `json:"most_common,omitempty"`

	// Channels is set when Config.Channels was requested.
	Channels *imaging.ChannelPeaks `json:"channels,omitempty"`
}

// UniqueColors returns the number of distinct colors, or 0 when the palette
// is not available.
func (r *Report) UniqueColors() int {
	return len(r.Palette)
}

// Inspector runs inspections for one configuration.
type Inspector struct {
	cfg    Config
	logger hclog.Logger
}

// Option configures an Inspector.
type Option func(*Inspector)

// WithLogger sets the logger used for debug output. The default discards
// everything.
func WithLogger(logger hclog.Logger) Option {
	return func(i *Inspector) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// New validates cfg and returns an Inspector for it. A configuration error is
// returned as an *InspectionError with Op OpConfig.
func New(cfg Config, opts ...Option) (*Inspector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, NewInspectionError(cfg.Path, OpConfig, err)
	}

	i := &Inspector{
		cfg:    cfg,
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

// Inspect loads the image and builds the report. Every failure is returned
// as an *InspectionError. Running Inspect twice on an unchanged file yields
// equal reports.
func (i *Inspector) Inspect() (*Report, error) {
	cfg := i.cfg
	log := i.logger.With("path", cfg.Path)

	img, err := imaging.Load(cfg.Path)
	if err != nil {
		return nil, NewInspectionError(cfg.Path, OpLoad, err)
	}

	info := img.Info()
	log.Debug("image decoded",
		"format", info.Format,
		"width", info.Width,
		"height", info.Height,
		"depth", info.ColorDepth,
		"alpha", info.HasAlpha)

	sample, err := imaging.SampleColor(img.Image, cfg.X, cfg.Y, info.HasAlpha)
	if err != nil {
		return nil, NewInspectionError(cfg.Path, OpSample, err)
	}

	hsl := sample.HSL()
	log.Debug("sampled color",
		"x", cfg.X,
		"y", cfg.Y,
		"color", sample.String(),
		"hue", hsl.H,
		"saturation", hsl.S,
		"lightness", hsl.L)

	target := img.Image
	if cfg.Region != nil {
		target, err = imaging.Crop(img.Image, *cfg.Region)
		if err != nil {
			return nil, NewInspectionError(cfg.Path, OpCrop, err)
		}
		log.Debug("palette limited to region", "region", cfg.Region.String())
	}

	report := &Report{
		Path:      cfg.Path,
		Info:      info,
		X:         cfg.X,
		Y:         cfg.Y,
		Sample:    sample,
		Hex:       sample.Hex(),
		MaxColors: cfg.MaxColors,
	}

	if palette, ok := imaging.CountColors(target, cfg.MaxColors, info.HasAlpha); ok {
		report.Palette = palette
		report.PaletteAvailable = true
		report.MostCommon = palette.MostCommon(cfg.Top)
		log.Debug("palette counted", "colors", len(palette), "pixels", palette.Total())
	} else {
		log.Debug("palette cap exceeded", "max_colors", cfg.MaxColors)
	}

	if cfg.Channels {
		report.Channels = channelPeaks(target, info.HasAlpha)
	}

	return report, nil
}

func channelPeaks(img image.Image, alpha bool) *imaging.ChannelPeaks {
	peaks := imaging.ChannelSummary(img, alpha)
	return &peaks
}
