// Package pipeline provides the fetch-and-render pipeline behind the
// inspiration command.
//
// A run has three stages:
//
//  1. Quote: fetch one quote from the quote service
//  2. Photo: download one photo to a temporary file, decode it into memory,
//     and delete the file
//  3. Compose: wrap the quote, draw it onto the blurred photo with a glow,
//     and save the result
//
// Every stage fails fast; there are no retries and no partial results.
//
// # Usage
//
//	face, err := fonts.Load(cfg.Render.Font, cfg.Render.FontSize)
//	if err != nil {
//	    return err
//	}
//	runner, err := pipeline.NewRunner(cfg, face, logger)
//	if err != nil {
//	    return err
//	}
//	result, err := runner.Execute(ctx)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.OutputPath)
package pipeline

import (
	"image"
	"time"

	"github.com/matzehuels/inspiration/pkg/integrations/zenquotes"
)

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in log output.
	RunID string

	// Quote is the quote as returned by the service.
	Quote zenquotes.Quote

	// Text is the wrapped block drawn onto the photo.
	Text string

	// OutputPath is where the rendered image was written.
	OutputPath string

	// Bounds are the rendered image bounds.
	Bounds image.Rectangle

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PhotoBytes  int64
	QuoteTime   time.Duration
	PhotoTime   time.Duration
	ComposeTime time.Duration
}

// Total returns the summed stage durations.
func (s Stats) Total() time.Duration {
	return s.QuoteTime + s.PhotoTime + s.ComposeTime
}
