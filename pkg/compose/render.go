package compose

import (
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/inspiration/pkg/errors"
)

// Default rendering parameters.
const (
	DefaultWrapWidth   = 25
	DefaultGlowRadius  = 15.0
	DefaultAnchorX     = 5
	DefaultLineSpacing = 4.0
)

var (
	// DefaultGlowColor is the deep purple drawn beneath the text.
	DefaultGlowColor = color.NRGBA{R: 65, G: 15, B: 100, A: 255}

	// DefaultTextColor is the text fill.
	DefaultTextColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// boxKernel is a 5x5 ring of ones; normalized, it averages the 16 border
// pixels around each point.
var boxKernel = [25]float64{
	1, 1, 1, 1, 1,
	1, 0, 0, 0, 1,
	1, 0, 0, 0, 1,
	1, 0, 0, 0, 1,
	1, 1, 1, 1, 1,
}

// Options controls text placement and colors.
type Options struct {
	WrapWidth   int         // Characters per wrapped line
	GlowRadius  float64     // Gaussian sigma applied to the glow layer
	GlowColor   color.NRGBA // Glow layer text color
	TextColor   color.NRGBA // Top layer text color
	AnchorX     int         // Left edge of the text block
	LineSpacing float64     // Extra pixels between lines
}

// DefaultOptions returns the stock rendering parameters.
func DefaultOptions() Options {
	return Options{
		WrapWidth:   DefaultWrapWidth,
		GlowRadius:  DefaultGlowRadius,
		GlowColor:   DefaultGlowColor,
		TextColor:   DefaultTextColor,
		AnchorX:     DefaultAnchorX,
		LineSpacing: DefaultLineSpacing,
	}
}

// Renderer draws text blocks onto photos with a fixed face and options.
// A Renderer is not safe for concurrent use because font faces are not.
type Renderer struct {
	face font.Face
	opts Options
}

// New creates a Renderer.
func New(face font.Face, opts Options) *Renderer {
	return &Renderer{face: face, opts: opts}
}

// Options returns the renderer's options.
func (r *Renderer) Options() Options { return r.opts }

// Anchor returns the top-left corner of the text block for an image of the
// given bounds, relative to the image origin.
func (r *Renderer) Anchor(bounds image.Rectangle) image.Point {
	return image.Pt(r.opts.AnchorX, bounds.Dy()/4)
}

// Render composites text onto a blurred copy of base. base is not modified.
// The result has base's size with its origin at (0, 0).
func (r *Renderer) Render(base image.Image, text string) *image.NRGBA {
	size := base.Bounds().Size()
	anchor := r.Anchor(base.Bounds())

	out := Blur(base)

	glow := imaging.New(size.X, size.Y, color.Transparent)
	if r.opts.GlowRadius > 0 {
		glow = imaging.Blur(glow, r.opts.GlowRadius)
	}
	out = imaging.Overlay(out, r.drawText(glow, text, r.opts.GlowColor, anchor), image.Point{}, 1.0)

	top := imaging.New(size.X, size.Y, color.Transparent)
	out = imaging.Overlay(out, r.drawText(top, text, r.opts.TextColor, anchor), image.Point{}, 1.0)

	return out
}

// Blur applies the fixed 5x5 box kernel to img.
func Blur(img image.Image) *image.NRGBA {
	return imaging.Convolve5x5(img, boxKernel, &imaging.ConvolveOptions{Normalize: true})
}

// drawText draws each line of text onto a copy of layer in color c, the
// first line's ascent starting at anchor.
func (r *Renderer) drawText(layer image.Image, text string, c color.Color, anchor image.Point) image.Image {
	dc := gg.NewContextForImage(layer)
	dc.SetFontFace(r.face)
	dc.SetColor(c)

	m := r.face.Metrics()
	ascent := float64(m.Ascent) / 64
	lineHeight := dc.FontHeight() + r.opts.LineSpacing

	for i, line := range strings.Split(text, "\n") {
		baseline := float64(anchor.Y) + ascent + float64(i)*lineHeight
		dc.DrawString(line, float64(anchor.X), baseline)
	}
	return dc.Image()
}

// Save writes img to path, overwriting any existing file. The encoder is
// chosen from the extension (.png, .jpg, .gif, .tif, .bmp).
func Save(img image.Image, path string) error {
	if err := errors.ValidateFilePath(path); err != nil {
		return err
	}
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "output %s", path)
	}
	if err := imaging.Save(img, path); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "save %s", path)
	}
	return nil
}
