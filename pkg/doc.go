// Package pkg provides the libraries behind the inspiration command.
//
// # Overview
//
// Inspiration turns one random quote and one random photo into a single
// image: the photo is softened with a box blur and the quote is drawn on top
// in white over a purple glow. The pkg directory is organized as:
//
//  1. [integrations] - HTTP clients for the quote and photo services
//  2. [compose] - Text wrapping, blurring, layering and saving
//  3. [pipeline] - Orchestration (quote → photo → compose)
//  4. [config], [fonts], [errors], [observability], [buildinfo] - Support
//
// # Architecture
//
// The data flow of one run:
//
//	ZenQuotes                 Lorem Picsum
//	    ↓                          ↓
//	[integrations/zenquotes]  [integrations/picsum] (temp file, decoded, deleted)
//	    ↓                          ↓
//	    └──────→ [compose] ←───────┘
//	                 ↓
//	          inspiration.png
//
// # Quick Start
//
//	cfg := config.Default()
//	cfg.Render.Font = fonts.Builtin
//
//	face, _ := fonts.Load(cfg.Render.Font, cfg.Render.FontSize)
//	runner, _ := pipeline.NewRunner(cfg, face, nil)
//	result, _ := runner.Execute(context.Background())
//	fmt.Println(result.OutputPath)
//
// # Main Packages
//
// [integrations] - Shared HTTP client with default headers and coded status
// errors. [integrations/zenquotes] parses the quote array; [integrations/picsum]
// downloads a photo to a scoped temporary file.
//
// [compose] - [compose.Wrap] and [compose.ComposeText] build the text block;
// [compose.Renderer] blurs the photo and stacks the glow and text layers.
//
// [pipeline] - [pipeline.Runner] runs the three stages, removes the temporary
// photo on every path, and reports stage timings through [observability].
//
// [config] - Explicit run configuration with TOML loading and validation.
//
// [fonts] - Font lookup by path, by system font name, or the built-in Go Mono.
//
// [errors] - Coded errors shared by every package.
//
// # Testing
//
//	go test ./...
//
// [integrations]: https://pkg.go.dev/github.com/matzehuels/inspiration/pkg/integrations
// [integrations/zenquotes]: https://pkg.go.dev/github.com/matzehuels/inspiration/pkg/integrations/zenquotes
// [integrations/picsum]: https://pkg.go.dev/github.com/matzehuels/inspiration/pkg/integrations/picsum
// [compose]: https://pkg.go.dev/github.com/matzehuels/inspiration/pkg/compose
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/inspiration/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/inspiration/pkg/config
// [fonts]: https://pkg.go.dev/github.com/matzehuels/inspiration/pkg/fonts
// [errors]: https://pkg.go.dev/github.com/matzehuels/inspiration/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/inspiration/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/inspiration/pkg/buildinfo
package pkg
