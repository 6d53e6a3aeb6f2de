package reply

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/zhubert/emailwriter/internal/errors"
)

const (
	// GeneratePath is appended to the configured base URL.
	GeneratePath = "/api/email/generate"

	// DefaultTimeout bounds a single call to the reply service.
	DefaultTimeout = 60 * time.Second

	// MaxReplyBytes is the largest reply body accepted.
	MaxReplyBytes = 1 << 20
)

// Generator produces a reply for a request. The Controller treats any error
// result as a masked failure.
type Generator interface {
	Generate(ctx context.Context, req Request) fn.Result[string]
}

// ClientConfig holds configuration for the HTTP reply service client.
type ClientConfig struct {
	// BaseURL is the service root, e.g. http://localhost:8080
	BaseURL string
	// Timeout for the whole request (default: DefaultTimeout)
	Timeout time.Duration
	// UserAgent is sent on every request when set.
	UserAgent string
}

// Client calls the reply service over HTTP.
//
// The service answers with the reply as a raw text body. Although older
// clients declared a {"reply": "..."} JSON shape, the body is never
// unwrapped: whatever a 2xx response carries becomes the draft verbatim.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a new reply service client.
func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewClientWithHTTP creates a client with a custom HTTP client (for testing).
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// Endpoint returns the full URL requests are posted to.
func (c *Client) Endpoint() string {
	return strings.TrimRight(c.baseURL, "/") + GeneratePath
}

// Generate posts the request and returns the reply text.
func (c *Client) Generate(ctx context.Context, req Request) fn.Result[string] {
	url := c.Endpoint()

	body, err := json.Marshal(req)
	if err != nil {
		return fn.Err[string](errors.E(errors.Op("reply.Generate"), errors.KindInvalid, "failed to encode request", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fn.Err[string](errors.TransportFailed(url, err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/plain, */*")
	if req.ID != "" {
		httpReq.Header.Set("X-Request-ID", req.ID)
	}
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return fn.Err[string](errors.RequestTimedOut(url, err))
		}
		return fn.Err[string](errors.TransportFailed(url, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fn.Err[string](errors.UnexpectedStatus(resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxReplyBytes+1))
	if err != nil {
		if isTimeout(err) {
			return fn.Err[string](errors.RequestTimedOut(url, err))
		}
		return fn.Err[string](errors.E(errors.Op("reply.Generate"), errors.KindResponse, "failed to read reply body", err))
	}
	if len(data) > MaxReplyBytes {
		return fn.Err[string](errors.MalformedResponse("reply body exceeds 1 MiB"))
	}
	if !utf8.Valid(data) {
		return fn.Err[string](errors.MalformedResponse("reply body is not valid UTF-8"))
	}
	text := string(data)
	if strings.TrimSpace(text) == "" {
		return fn.Err[string](errors.MalformedResponse("empty reply body"))
	}

	return fn.Ok(text)
}

func isTimeout(err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return stderrors.As(err, &netErr) && netErr.Timeout()
}
