package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"testing"
)

// openFailure mirrors what the config and fonts packages return for a
// missing file.
func openFailure() error {
	cause := &fs.PathError{Op: "open", Path: "inspiration.toml", Err: fs.ErrNotExist}
	return Wrap(ErrCodeFileNotFound, cause, "read config")
}

// upstreamFailure mirrors a quote-stage failure as the pipeline returns it.
func upstreamFailure(status int, body string) error {
	cause := &StatusError{StatusCode: status, Body: body}
	return fmt.Errorf("quote: %w", Wrap(ErrCodeRateLimited, cause, "GET %s", "https://zenquotes.io/api/random"))
}

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"no cause", New(ErrCodeInvalidConfig, "image width must be positive, got %d", -1), "INVALID_CONFIG: image width must be positive, got -1"},
		{"file not found", openFailure(), "FILE_NOT_FOUND: read config: open inspiration.toml: file does not exist"},
		{"status with body", upstreamFailure(http.StatusTooManyRequests, "slow down"), "quote: RATE_LIMITED: GET https://zenquotes.io/api/random: status 429: slow down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusError(t *testing.T) {
	tests := []struct {
		err  *StatusError
		want string
	}{
		{&StatusError{StatusCode: http.StatusServiceUnavailable, Body: "maintenance"}, "status 503: maintenance"},
		{&StatusError{StatusCode: http.StatusNotFound}, "status 404"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}

	var se *StatusError
	if !errors.As(upstreamFailure(http.StatusTooManyRequests, "slow down"), &se) {
		t.Fatal("StatusError not reachable through the stage prefix")
	}
	if se.StatusCode != http.StatusTooManyRequests || se.Body != "slow down" {
		t.Errorf("StatusError = %+v, want 429 with body", se)
	}
}

func TestNotExistChain(t *testing.T) {
	err := fmt.Errorf("photo: %w", openFailure())

	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("fs.ErrNotExist not reachable through the wrapped open failure")
	}
	var pe *fs.PathError
	if !errors.As(err, &pe) || pe.Path != "inspiration.toml" {
		t.Errorf("PathError = %v, want path inspiration.toml", pe)
	}
	if !Is(err, ErrCodeFileNotFound) {
		t.Error("Is(err, FILE_NOT_FOUND) = false through the stage prefix")
	}
	if Is(err, ErrCodeNotFound) {
		t.Error("Is(err, NOT_FOUND) = true, codes must match exactly")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"stage prefix", upstreamFailure(http.StatusTooManyRequests, ""), ErrCodeRateLimited},
		{"outermost code wins", Wrap(ErrCodeInvalidImage, New(ErrCodeInternal, "decode"), "photo"), ErrCodeInvalidImage},
		{"plain error", fmt.Errorf("compose: %w", fs.ErrPermission), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"coded error", New(ErrCodeFontNotFound, "font %q not found", "cmtt10.ttf"), `font "cmtt10.ttf" not found`},
		{"keeps stage prefix", upstreamFailure(http.StatusTooManyRequests, "slow down"), "quote: GET https://zenquotes.io/api/random: status 429: slow down"},
		{"keeps cause", openFailure(), "read config: open inspiration.toml: file does not exist"},
		{"nested codes", fmt.Errorf("photo: %w", Wrap(ErrCodeInvalidImage, New(ErrCodeInternal, "short read"), "decode")), "photo: decode: short read"},
		{"plain error", errors.New("context canceled"), "context canceled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
