// Package osdi is a small client for the Action Network OSDI API.
//
// Only the calls the importer needs are implemented: the person signup
// helper, a PUT on the returned person, and listing tags. Responses are
// HAL+JSON; the client follows self and next links rather than building
// resource URLs itself.
package osdi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// DefaultBaseURL is the Action Network API entry point.
const DefaultBaseURL = "https://actionnetwork.org/api/v2/"

const (
	tokenHeader     = "OSDI-API-Token"
	requestIDHeader = "X-Request-Id"
	halContentType  = "application/hal+json"
)

// maxTagPages bounds ListTags in case the API returns a link cycle.
const maxTagPages = 1000

// Client talks to one Action Network group, identified by its API token.
type Client struct {
	baseURL    *url.URL
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout. The HTTP client is copied
// first, so a shared client such as http.DefaultClient is left alone.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = d
		c.httpClient = &hc
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a client for baseURL. The base URL must be absolute; a
// trailing slash is added so relative paths resolve beneath it.
func New(baseURL, token string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("osdi: invalid base url %q", baseURL)
	}

	c := &Client{
		baseURL:    u,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Create sends a person through the signup helper, which creates the
// person or merges into an existing one with the same email.
func (c *Client) Create(ctx context.Context, signup *PersonSignup) (*Record, error) {
	u := c.baseURL.ResolveReference(&url.URL{Path: "people/"})
	return c.doRecord(ctx, http.MethodPost, u, signup)
}

// Upsert PUTs a patch to the record's self link and returns the updated
// record.
func (r *Record) Upsert(ctx context.Context, patch PersonPatch) (*Record, error) {
	if r.client == nil {
		return nil, ErrNoSelfLink
	}
	return r.client.Upsert(ctx, r, patch)
}

// Upsert PUTs a patch to rec's self link. Records built outside this
// client are accepted as long as they carry a self link.
func (c *Client) Upsert(ctx context.Context, rec *Record, patch PersonPatch) (*Record, error) {
	if rec == nil || rec.SelfHref == "" {
		return nil, ErrNoSelfLink
	}
	u, err := c.baseURL.Parse(rec.SelfHref)
	if err != nil {
		return nil, fmt.Errorf("osdi: invalid self link %q: %w", rec.SelfHref, err)
	}

	updated, err := c.doRecord(ctx, http.MethodPut, u, patch)
	if err != nil {
		return nil, err
	}
	if updated.SelfHref == "" {
		updated.SelfHref = rec.SelfHref
	}
	return updated, nil
}

// ListTags returns the names of every tag visible to the token, following
// pagination links. Action Network only lists tags the group has used.
func (c *Client) ListTags(ctx context.Context) ([]string, error) {
	next := c.baseURL.ResolveReference(&url.URL{Path: "tags"})
	seen := make(map[string]bool)
	var names []string

	for page := 0; next != nil && page < maxTagPages; page++ {
		if seen[next.String()] {
			break
		}
		seen[next.String()] = true

		body, err := c.do(ctx, http.MethodGet, next, nil)
		if err != nil {
			return nil, err
		}

		var p tagsPage
		if err := json.Unmarshal(body, &p); err != nil {
			return nil, fmt.Errorf("osdi: decode tags page: %w", err)
		}
		for _, t := range p.Embedded.Tags {
			names = append(names, t.Name)
		}

		next = nil
		if p.Links.Next != nil && p.Links.Next.Href != "" {
			if next, err = c.baseURL.Parse(p.Links.Next.Href); err != nil {
				return nil, fmt.Errorf("osdi: invalid next link %q: %w", p.Links.Next.Href, err)
			}
		}
	}

	return names, nil
}

func (c *Client) doRecord(ctx context.Context, method string, u *url.URL, reqBody any) (*Record, error) {
	body, err := c.do(ctx, method, u, reqBody)
	if err != nil {
		return nil, err
	}

	var res halResource
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("osdi: decode %s %s response: %w", method, u.Path, err)
	}

	rec := &Record{client: c, State: json.RawMessage(body)}
	if res.Links.Self != nil {
		rec.SelfHref = res.Links.Self.Href
	}
	return rec, nil
}

func (c *Client) do(ctx context.Context, method string, u *url.URL, reqBody any) ([]byte, error) {
	var body io.Reader
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("osdi: encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("osdi: build request: %w", err)
	}
	req.Header.Set("Accept", halContentType)
	if reqBody != nil {
		req.Header.Set("Content-Type", halContentType)
	}
	req.Header.Set(tokenHeader, c.token)
	reqID := uuid.NewString()
	req.Header.Set(requestIDHeader, reqID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("osdi: %s %s: %w", method, u.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("osdi: read %s %s response: %w", method, u.Path, err)
	}

	c.logger.Debug("osdi request",
		"method", method,
		"path", u.Path,
		"status", resp.StatusCode,
		"request_id", reqID,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			Method:     method,
			Path:       u.Path,
			StatusCode: resp.StatusCode,
			Body:       truncateBody(respBody),
		}
	}

	return respBody, nil
}

// truncateBody trims body to at most maxErrorBody bytes without splitting
// a UTF-8 sequence.
func truncateBody(body []byte) string {
	msg := strings.TrimSpace(string(body))
	if len(msg) <= maxErrorBody {
		return msg
	}
	cut := maxErrorBody
	for cut > 0 && !utf8.RuneStart(msg[cut]) {
		cut--
	}
	return msg[:cut]
}
