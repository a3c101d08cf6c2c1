package zenquotes

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/matzehuels/inspiration/pkg/errors"
	"github.com/matzehuels/inspiration/pkg/integrations"
)

// DefaultBaseURL is the public ZenQuotes endpoint.
const DefaultBaseURL = "https://zenquotes.io/"

// DefaultMode asks for a single random quote.
const DefaultMode = "random"

// Quote is one quote and its author.
type Quote struct {
	Text   string `json:"q"`
	Author string `json:"a"`
}

// IsZero reports whether q carries no quote text.
func (q Quote) IsZero() bool { return q.Text == "" }

// Client provides access to the ZenQuotes API.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a ZenQuotes client on top of the shared HTTP client.
// An empty baseURL selects [DefaultBaseURL].
func NewClient(hc *integrations.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{Client: hc, baseURL: baseURL}
}

// Fetch retrieves one quote using the given mode (e.g. "random", "today").
// An empty mode selects [DefaultMode].
//
// Each option of the form "key=value" is sent as an extra query parameter;
// a bare "key" is sent with an empty value. The api parameter is always
// taken from mode.
//
// Returns:
//   - the first quote of the response on success
//   - NOT_FOUND, RATE_LIMITED or NETWORK_ERROR for HTTP failures, with the
//     status and body available via [integrations.StatusCode] and
//     [integrations.ResponseBody]
//   - INVALID_RESPONSE when the body is not a non-empty quote array
//
// A nil error always comes with a non-zero Quote.
func (c *Client) Fetch(ctx context.Context, mode string, options ...string) (Quote, error) {
	if mode == "" {
		mode = DefaultMode
	}
	if err := errors.ValidateMode(mode); err != nil {
		return Quote{}, err
	}

	u, err := integrations.WithQuery(c.baseURL, queryParams(mode, options))
	if err != nil {
		return Quote{}, err
	}

	var raw json.RawMessage
	if err := c.Get(ctx, u, &raw); err != nil {
		return Quote{}, err
	}
	return Parse(raw)
}

func queryParams(mode string, options []string) url.Values {
	params := url.Values{}
	for _, opt := range options {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			continue
		}
		key, value, _ := strings.Cut(opt, "=")
		params.Add(key, value)
	}
	params.Set("api", mode)
	return params
}

// Parse extracts the first quote from a ZenQuotes JSON array.
func Parse(data []byte) (Quote, error) {
	var items []map[string]any
	if err := json.Unmarshal(data, &items); err != nil {
		return Quote{}, errors.Wrap(errors.ErrCodeInvalidResponse, err, "quote response is not a JSON array")
	}
	if len(items) == 0 {
		return Quote{}, errors.New(errors.ErrCodeInvalidResponse, "quote response is empty")
	}
	return FromFields(items[0])
}

// FromFields builds a Quote from a decoded quote object.
// The q field must be a non-empty string; a missing or non-string a field
// yields an empty author.
func FromFields(fields map[string]any) (Quote, error) {
	text, ok := fields["q"].(string)
	if !ok || text == "" {
		return Quote{}, errors.New(errors.ErrCodeInvalidResponse, "quote object has no %q field", "q")
	}
	author, _ := fields["a"].(string)
	return Quote{Text: text, Author: author}, nil
}
