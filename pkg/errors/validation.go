package errors

import (
	"net/url"
	"strings"
	"unicode"
)

// ValidateMode validates a quote service mode selector such as "random" or "today".
func ValidateMode(mode string) error {
	if strings.TrimSpace(mode) == "" {
		return New(ErrCodeInvalidInput, "mode cannot be empty")
	}
	if len(mode) > 64 {
		return New(ErrCodeInvalidInput, "mode too long (max 64 characters)")
	}
	for _, r := range mode {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "mode contains invalid characters: %q", mode)
		}
	}
	return nil
}

// ValidateFilePath validates a local file path used for the temporary
// download or the rendered output.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must not end in a path separator
func ValidateFilePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidConfig, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidConfig, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidConfig, "path must name a file, not a directory: %q", path)
	}

	return nil
}

// ValidateURL validates a service base URL.
// It ensures the URL parses, has a host, and uses http or https.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidInput, err, "invalid URL %q", rawURL)
	}
	if u.Host == "" {
		return New(ErrCodeInvalidInput, "URL has no host: %q", rawURL)
	}
	return nil
}
