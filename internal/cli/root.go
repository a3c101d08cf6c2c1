package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/inspiration/pkg/config"
	"github.com/matzehuels/inspiration/pkg/fonts"
	"github.com/matzehuels/inspiration/pkg/pipeline"
)

// runOptions holds the root command's flag values.
type runOptions struct {
	configPath string
	output     string
	font       string

	outputSet bool
	fontSet   bool
}

// loadConfig reads the configuration file and applies flag overrides.
func loadConfig(opts runOptions) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}
	if opts.outputSet {
		cfg.Render.OutputPath = opts.output
	}
	if opts.fontSet {
		cfg.Render.Font = opts.font
	}
	return cfg, cfg.Validate()
}

// runInspire produces one image. The font is loaded before any network
// traffic so a missing font fails immediately. Stdout carries only the
// success line; errors are returned for the caller to report.
func (c *CLI) runInspire(ctx context.Context, opts runOptions) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger.Debug("loaded config",
		"path", opts.configPath,
		"font", cfg.Render.Font,
		"output", cfg.Render.OutputPath)

	face, err := fonts.Load(cfg.Render.Font, cfg.Render.FontSize)
	if err != nil {
		return err
	}
	defer face.Close()

	runner, err := pipeline.NewRunner(cfg, face, logger)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, "Gathering inspiration...")
	spinner.Start()
	result, err := runner.Execute(ctx)
	if err != nil {
		spinner.Stop()
		return err
	}
	spinner.StopWithSuccess(fmt.Sprintf("Inspo saved as \"%s\"", result.OutputPath))
	prog.done("Composed image")

	logger.Debug("composed text", "text", result.Text)
	logger.Debug("image stats",
		"width", result.Bounds.Dx(),
		"height", result.Bounds.Dy(),
		"elapsed", result.Stats.Total().Round(time.Millisecond))
	return nil
}
