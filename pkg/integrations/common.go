package integrations

import (
	stderrors "errors"
	"net/http"
	"net/url"
	"time"

	"github.com/matzehuels/inspiration/pkg/errors"
)

// NewHTTPClient creates an HTTP client with the given timeout.
// Redirects are followed with the standard library policy; the photo
// service answers every request with a redirect to the actual image.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// StatusCode returns the upstream HTTP status carried by err, or 0 when
// the failure never produced a response.
func StatusCode(err error) int {
	var se *errors.StatusError
	if stderrors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

// ResponseBody returns the upstream response body carried by err, if any.
func ResponseBody(err error) string {
	var se *errors.StatusError
	if stderrors.As(err, &se) {
		return se.Body
	}
	return ""
}

// WithQuery returns base with params merged into its query string.
// Existing parameters on base are kept; params override keys they share.
func WithQuery(base string, params url.Values) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid URL %q", base)
	}
	q := u.Query()
	for k, vs := range params {
		q[k] = vs
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// JoinPath returns base with elem appended as path segments.
func JoinPath(base string, elem ...string) (string, error) {
	s, err := url.JoinPath(base, elem...)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid URL %q", base)
	}
	return s, nil
}
