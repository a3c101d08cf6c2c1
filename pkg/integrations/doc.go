// Package integrations provides HTTP clients for the services an inspiration
// run talks to.
//
// # Overview
//
// Each upstream service has its own subpackage:
//
//   - [zenquotes]: random quote and author (JSON)
//   - [picsum]: random photo of a fixed size (raw image bytes)
//
// # Client Pattern
//
// Service clients embed the shared [Client] and add their own URL building
// and response parsing:
//
//	client := zenquotes.NewClient(integrations.NewClient(30*time.Second, nil), zenquotes.DefaultBaseURL)
//	q, err := client.Fetch(ctx, "random")
//
// # Errors
//
// Every failure is a coded error from pkg/errors. Non-200 responses carry
// an [errors.StatusError] holding the status and body:
//
//   - 404 maps to NOT_FOUND
//   - 429 maps to RATE_LIMITED
//   - anything else, and transport failures, map to NETWORK_ERROR
//
// Use [StatusCode] and [ResponseBody] to report them. Calls are never
// retried.
//
// [zenquotes]: github.com/matzehuels/inspiration/pkg/integrations/zenquotes
// [picsum]: github.com/matzehuels/inspiration/pkg/integrations/picsum
package integrations
