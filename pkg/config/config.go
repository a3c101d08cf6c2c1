// Package config holds the explicit configuration for a single inspiration run.
//
// Every value that the pipeline would otherwise hardcode (service endpoints,
// file paths, font, image size, wrap width, colors) lives in [Config] and is
// passed into each component. [Default] reproduces the stock behavior; a TOML
// file loaded with [Load] overrides individual fields:
//
//	[image]
//	width = 600
//	height = 600
//
//	[render]
//	font = "gomono"
//	glow_color = "#0A3D62"
package config

import (
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/inspiration/pkg/buildinfo"
	"github.com/matzehuels/inspiration/pkg/errors"
)

// Defaults for a stock run.
const (
	DefaultQuoteURL    = "https://zenquotes.io/"
	DefaultQuoteMode   = "random"
	DefaultImageURL    = "https://picsum.photos"
	DefaultImageSize   = 400
	DefaultTempPath    = "image.png"
	DefaultOutputPath  = "inspiration.png"
	DefaultFont        = "cmtt10.ttf"
	DefaultFontSize    = 25.0
	DefaultWrapWidth   = 25
	DefaultGlowRadius  = 15.0
	DefaultGlowColor   = "#410F64"
	DefaultTextColor   = "#FFFFFF"
	DefaultAnchorX     = 5
	DefaultLineSpacing = 4.0
	DefaultHTTPTimeout = 30 * time.Second
)

// maxImageSize bounds the requested photo edge; the image service rejects
// anything larger.
const maxImageSize = 5000

// Config is the complete set of knobs for one run.
type Config struct {
	Quote  QuoteConfig  `toml:"quote"`
	Image  ImageConfig  `toml:"image"`
	Render RenderConfig `toml:"render"`
	HTTP   HTTPConfig   `toml:"http"`
}

// QuoteConfig configures the quote service.
type QuoteConfig struct {
	URL     string   `toml:"url"`
	Mode    string   `toml:"mode"`
	Options []string `toml:"options"`
}

// ImageConfig configures the photo service and the temporary download.
type ImageConfig struct {
	URL      string `toml:"url"`
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	TempPath string `toml:"temp_path"`
}

// RenderConfig configures the compositor.
type RenderConfig struct {
	OutputPath  string  `toml:"output_path"`
	Font        string  `toml:"font"`
	FontSize    float64 `toml:"font_size"`
	WrapWidth   int     `toml:"wrap_width"`
	GlowRadius  float64 `toml:"glow_radius"`
	GlowColor   string  `toml:"glow_color"`
	TextColor   string  `toml:"text_color"`
	AnchorX     int     `toml:"anchor_x"`
	LineSpacing float64 `toml:"line_spacing"`
}

// HTTPConfig configures the shared HTTP client.
// A zero Timeout disables the client-side deadline.
type HTTPConfig struct {
	Timeout   time.Duration `toml:"timeout"`
	UserAgent string        `toml:"user_agent"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Quote: QuoteConfig{
			URL:  DefaultQuoteURL,
			Mode: DefaultQuoteMode,
		},
		Image: ImageConfig{
			URL:      DefaultImageURL,
			Width:    DefaultImageSize,
			Height:   DefaultImageSize,
			TempPath: DefaultTempPath,
		},
		Render: RenderConfig{
			OutputPath:  DefaultOutputPath,
			Font:        DefaultFont,
			FontSize:    DefaultFontSize,
			WrapWidth:   DefaultWrapWidth,
			GlowRadius:  DefaultGlowRadius,
			GlowColor:   DefaultGlowColor,
			TextColor:   DefaultTextColor,
			AnchorX:     DefaultAnchorX,
			LineSpacing: DefaultLineSpacing,
		},
		HTTP: HTTPConfig{
			Timeout:   DefaultHTTPTimeout,
			UserAgent: buildinfo.UserAgent(),
		},
	}
}

// Load reads a TOML file over the defaults and validates the result.
// An empty path returns the validated defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	if _, err := os.Stat(path); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

// Validate checks every field and reports the first problem found.
func (c Config) Validate() error {
	if err := errors.ValidateURL(c.Quote.URL); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "quote.url")
	}
	if err := errors.ValidateMode(c.Quote.Mode); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "quote.mode")
	}
	if err := errors.ValidateURL(c.Image.URL); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "image.url")
	}
	if c.Image.Width <= 0 || c.Image.Height <= 0 || c.Image.Width > maxImageSize || c.Image.Height > maxImageSize {
		return errors.New(errors.ErrCodeInvalidConfig, "image size %dx%d out of range (1-%d)", c.Image.Width, c.Image.Height, maxImageSize)
	}
	if err := errors.ValidateFilePath(c.Image.TempPath); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "image.temp_path")
	}
	if err := errors.ValidateFilePath(c.Render.OutputPath); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "render.output_path")
	}
	if c.Render.OutputPath == c.Image.TempPath {
		return errors.New(errors.ErrCodeInvalidConfig, "render.output_path must differ from image.temp_path")
	}
	if c.Render.Font == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "render.font cannot be empty")
	}
	if c.Render.FontSize <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "render.font_size must be positive")
	}
	if c.Render.WrapWidth <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "render.wrap_width must be positive")
	}
	if c.Render.GlowRadius < 0 || c.Render.LineSpacing < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "render.glow_radius and render.line_spacing cannot be negative")
	}
	if _, err := ParseColor(c.Render.GlowColor); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "render.glow_color")
	}
	if _, err := ParseColor(c.Render.TextColor); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "render.text_color")
	}
	if c.HTTP.Timeout < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "http.timeout cannot be negative")
	}
	return nil
}

// Colors returns the parsed glow and text colors.
func (c RenderConfig) Colors() (glow, text color.NRGBA, err error) {
	if glow, err = ParseColor(c.GlowColor); err != nil {
		return glow, text, err
	}
	text, err = ParseColor(c.TextColor)
	return glow, text, err
}

// ParseColor parses a "#rgb" or "#rrggbb" hex string into an opaque color.
func ParseColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid color %q", s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
