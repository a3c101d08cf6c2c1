package pipeline

import (
	"context"
	"fmt"
	"image"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/image/font"

	"github.com/matzehuels/inspiration/pkg/compose"
	"github.com/matzehuels/inspiration/pkg/config"
	"github.com/matzehuels/inspiration/pkg/errors"
	"github.com/matzehuels/inspiration/pkg/integrations"
	"github.com/matzehuels/inspiration/pkg/integrations/picsum"
	"github.com/matzehuels/inspiration/pkg/integrations/zenquotes"
	"github.com/matzehuels/inspiration/pkg/observability"
)

// Runner wires the quote service, the photo service and the compositor
// together for one configuration.
//
// A Runner is not safe for concurrent use: the font face inside the
// renderer keeps per-glyph state, and concurrent runs would share the
// temporary and output paths.
type Runner struct {
	Config   config.Config
	Quotes   *zenquotes.Client
	Photos   *picsum.Client
	Renderer *compose.Renderer
	Logger   *log.Logger
}

// NewRunner validates cfg and builds service clients and a renderer from it.
// If logger is nil, output is discarded.
func NewRunner(cfg config.Config, face font.Face, logger *log.Logger) (*Runner, error) {
	if face == nil {
		return nil, errors.New(errors.ErrCodeFontNotFound, "no font face")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	glow, text, err := cfg.Render.Colors()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	hc := integrations.NewClient(cfg.HTTP.Timeout, map[string]string{
		"User-Agent": cfg.HTTP.UserAgent,
	})

	return &Runner{
		Config: cfg,
		Quotes: zenquotes.NewClient(hc, cfg.Quote.URL),
		Photos: picsum.NewClient(hc, cfg.Image.URL),
		Renderer: compose.New(face, compose.Options{
			WrapWidth:   cfg.Render.WrapWidth,
			GlowRadius:  cfg.Render.GlowRadius,
			GlowColor:   glow,
			TextColor:   text,
			AnchorX:     cfg.Render.AnchorX,
			LineSpacing: cfg.Render.LineSpacing,
		}),
		Logger: logger,
	}, nil
}

// Execute runs the complete quote → photo → compose pipeline.
//
// The temporary photo file is removed on every return path. Errors are
// prefixed with the failing stage and keep their code; they are logged at
// debug level only, reporting them is left to the caller.
func (r *Runner) Execute(ctx context.Context) (*Result, error) {
	result := &Result{
		RunID:      uuid.NewString(),
		OutputPath: r.Config.Render.OutputPath,
	}
	logger := r.Logger.With("run", result.RunID)

	// Stage 1: Quote
	d, err := stage(ctx, observability.StageQuote, func(ctx context.Context) error {
		q, err := r.FetchQuote(ctx)
		result.Quote = q
		return err
	})
	result.Stats.QuoteTime = d
	if err != nil {
		logger.Debug("fetch quote failed", "code", errors.GetCode(err), "err", err)
		return nil, fmt.Errorf("quote: %w", err)
	}
	logger.Debug("fetched quote",
		"author", result.Quote.Author,
		"duration", d)

	// Stage 2: Photo
	var base image.Image
	d, err = stage(ctx, observability.StagePhoto, func(ctx context.Context) error {
		img, size, err := r.FetchPhoto(ctx, logger)
		base = img
		result.Stats.PhotoBytes = size
		return err
	})
	result.Stats.PhotoTime = d
	if err != nil {
		logger.Debug("fetch photo failed", "code", errors.GetCode(err), "err", err)
		return nil, fmt.Errorf("photo: %w", err)
	}
	logger.Debug("fetched photo",
		"bounds", base.Bounds(),
		"bytes", result.Stats.PhotoBytes,
		"duration", d)

	// Stage 3: Compose
	d, err = stage(ctx, observability.StageCompose, func(context.Context) error {
		result.Text = compose.ComposeText(result.Quote.Text, result.Quote.Author, r.Renderer.Options().WrapWidth)
		out := r.Renderer.Render(base, result.Text)
		result.Bounds = out.Bounds()
		return compose.Save(out, result.OutputPath)
	})
	result.Stats.ComposeTime = d
	if err != nil {
		logger.Debug("compose failed", "code", errors.GetCode(err), "err", err)
		return nil, fmt.Errorf("compose: %w", err)
	}
	logger.Debug("saved image",
		"path", result.OutputPath,
		"duration", d)

	logger.Debug("run complete", "total", result.Stats.Total())
	return result, nil
}

// FetchQuote retrieves one quote with the configured mode and options.
func (r *Runner) FetchQuote(ctx context.Context) (zenquotes.Quote, error) {
	return r.Quotes.Fetch(ctx, r.Config.Quote.Mode, r.Config.Quote.Options...)
}

// FetchPhoto downloads a photo to the configured temporary path, decodes it,
// and deletes the file. It returns the decoded image and the download size.
func (r *Runner) FetchPhoto(ctx context.Context, logger *log.Logger) (image.Image, int64, error) {
	img := r.Config.Image
	dl, err := r.Photos.Download(ctx, img.Width, img.Height, img.TempPath)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		if err := dl.Remove(); err != nil {
			logger.Warn("remove temporary photo", "path", dl.Path, "err", err)
		}
	}()

	base, err := dl.Open()
	if err != nil {
		return nil, 0, err
	}
	if err := dl.Remove(); err != nil {
		return nil, 0, err
	}
	return base, dl.Size, nil
}

// stage runs fn as the named stage, reporting it through the pipeline hooks.
// A context cancelled before the stage starts skips it.
func stage(ctx context.Context, name string, fn func(context.Context) error) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	hooks := observability.Pipeline()
	hooks.OnStageStart(ctx, name)
	start := time.Now()
	err := fn(ctx)
	d := time.Since(start)
	hooks.OnStageComplete(ctx, name, d, err)
	return d, err
}
