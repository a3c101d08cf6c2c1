package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/matzehuels/inspiration/pkg/errors"
	"github.com/matzehuels/inspiration/pkg/observability"
)

func TestNewClient(t *testing.T) {
	headers := map[string]string{"User-Agent": "inspiration/test"}
	client := NewClient(time.Second, headers)

	if client == nil {
		t.Fatal("NewClient() returned nil")
	}
	if client.http == nil {
		t.Fatal("NewClient() http client is nil")
	}
	if client.http.Timeout != time.Second {
		t.Errorf("timeout = %v, want 1s", client.http.Timeout)
	}
	if client.headers["User-Agent"] != "inspiration/test" {
		t.Error("NewClient() headers not set correctly")
	}
}

func TestNewClientNilHeaders(t *testing.T) {
	client := NewClient(0, nil)
	if client.headers != nil {
		t.Error("NewClient() should allow nil headers")
	}
	if client.http.Timeout != 0 {
		t.Errorf("timeout = %v, want 0", client.http.Timeout)
	}
}

func TestClientGet(t *testing.T) {
	type response struct {
		Message string `json:"message"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		json.NewEncoder(w).Encode(response{Message: "hello"})
	}))
	defer server.Close()

	client := NewClient(time.Second, nil)

	var resp response
	if err := client.Get(context.Background(), server.URL, &resp); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if resp.Message != "hello" {
		t.Errorf("Get() message = %q, want %q", resp.Message, "hello")
	}
}

func TestClientGetWithHeadersOverridesDefaults(t *testing.T) {
	var receivedHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedHeader = r.Header.Get("X-Override")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	client := NewClient(time.Second, map[string]string{"X-Override": "default"})

	var resp map[string]string
	err := client.GetWithHeaders(context.Background(), server.URL, map[string]string{"X-Override": "overridden"}, &resp)
	if err != nil {
		t.Fatalf("GetWithHeaders() error: %v", err)
	}
	if receivedHeader != "overridden" {
		t.Errorf("header = %q, want %q", receivedHeader, "overridden")
	}
}

func TestClientGetInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>maintenance</html>")
	}))
	defer server.Close()

	var v any
	err := NewClient(time.Second, nil).Get(context.Background(), server.URL, &v)
	if !errors.Is(err, errors.ErrCodeInvalidResponse) {
		t.Errorf("Get() error = %v, want INVALID_RESPONSE", err)
	}
}

func TestClientGetBytes(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G', 0x00, 0x01}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer server.Close()

	data, err := NewClient(time.Second, nil).GetBytes(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("GetBytes() error: %v", err)
	}
	if string(data) != string(payload) {
		t.Errorf("GetBytes() = %v, want %v", data, payload)
	}
}

func TestClientStatusErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		code   errors.Code
	}{
		{"not found", http.StatusNotFound, errors.ErrCodeNotFound},
		{"rate limited", http.StatusTooManyRequests, errors.ErrCodeRateLimited},
		{"server error", http.StatusInternalServerError, errors.ErrCodeNetwork},
		{"forbidden", http.StatusForbidden, errors.ErrCodeNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "upstream says no", tt.status)
			}))
			defer server.Close()

			_, err := NewClient(time.Second, nil).GetBytes(context.Background(), server.URL)
			if !errors.Is(err, tt.code) {
				t.Fatalf("GetBytes() error = %v, want code %s", err, tt.code)
			}
			if got := StatusCode(err); got != tt.status {
				t.Errorf("StatusCode() = %d, want %d", got, tt.status)
			}
			if got := ResponseBody(err); got != "upstream says no\n" {
				t.Errorf("ResponseBody() = %q, want %q", got, "upstream says no\n")
			}
		})
	}
}

func TestClientNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	_, err := NewClient(time.Second, nil).GetBytes(context.Background(), addr)
	if !errors.Is(err, errors.ErrCodeNetwork) {
		t.Errorf("GetBytes() error = %v, want NETWORK_ERROR", err)
	}
	if StatusCode(err) != 0 {
		t.Errorf("StatusCode() = %d, want 0 for transport failure", StatusCode(err))
	}
}

func TestClientContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(time.Second, nil).GetBytes(ctx, server.URL)
	if err == nil {
		t.Fatal("GetBytes() should fail on a cancelled context")
	}
	if !errors.Is(err, errors.ErrCodeNetwork) {
		t.Errorf("GetBytes() error = %v, want NETWORK_ERROR", err)
	}
}

type recordingHTTPHooks struct {
	observability.NoopHTTPHooks
	requests  int
	responses []int
}

func (h *recordingHTTPHooks) OnRequest(context.Context, string, string, string) { h.requests++ }
func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, _, _ string, status int, _ time.Duration) {
	h.responses = append(h.responses, status)
}

func TestClientReportsHTTPHooks(t *testing.T) {
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, _ = NewClient(time.Second, nil).GetBytes(context.Background(), server.URL)

	if hooks.requests != 1 {
		t.Errorf("requests = %d, want 1", hooks.requests)
	}
	if len(hooks.responses) != 1 || hooks.responses[0] != http.StatusNotFound {
		t.Errorf("responses = %v, want [404]", hooks.responses)
	}
}

func TestWithQuery(t *testing.T) {
	got, err := WithQuery("https://zenquotes.io/?lang=en", url.Values{"api": {"random"}})
	if err != nil {
		t.Fatalf("WithQuery() error: %v", err)
	}
	if want := "https://zenquotes.io/?api=random&lang=en"; got != want {
		t.Errorf("WithQuery() = %q, want %q", got, want)
	}

	if _, err := WithQuery("://bad", nil); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("WithQuery() error = %v, want INVALID_INPUT", err)
	}
}

func TestJoinPath(t *testing.T) {
	got, err := JoinPath("https://picsum.photos", "400", "300")
	if err != nil {
		t.Fatalf("JoinPath() error: %v", err)
	}
	if want := "https://picsum.photos/400/300"; got != want {
		t.Errorf("JoinPath() = %q, want %q", got, want)
	}
}
