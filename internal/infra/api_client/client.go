package api_client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/NastyaGoryachaya/crypto-dashboard/internal/config"
	errs "github.com/NastyaGoryachaya/crypto-dashboard/internal/errors"
	"github.com/google/uuid"
)

const (
	defaultUserAgent = "crypto-dashboard/1.0 (+https://github.com/NastyaGoryachaya/crypto-dashboard)"
	maxErrorBody     = 1 << 20
)

var apiPrefix = []string{"api", "v1"}

// HTTPClient - то, что нужно клиенту от *http.Client
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client - клиент REST API котировок. Токен передаётся в каждый защищённый вызов явно,
// сам клиент состояния сессии не хранит.
type Client struct {
	baseURL    *url.URL
	userAgent  string
	httpClient HTTPClient
	requestID  func() string
}

type Option func(*Client)

func WithHTTPClient(h HTTPClient) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithRequestID подменяет генератор X-Request-ID
func WithRequestID(fn func() string) Option {
	return func(c *Client) {
		if fn != nil {
			c.requestID = fn
		}
	}
}

// NewClient - создаёт клиента для API котировок.
func NewClient(cfg config.APIConfig, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL: %q", cfg.BaseURL)
	}

	c := &Client{
		baseURL:    u,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		requestID:  uuid.NewString,
	}
	if c.userAgent == "" {
		c.userAgent = defaultUserAgent
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// request - параметры одного вызова
type request struct {
	method string
	path   []string
	query  url.Values
	token  string
	body   any
}

// do выполняет запрос и декодирует 2xx-ответ в out (если out != nil).
// Любой не-2xx превращается в *APIError.
func (c *Client) do(ctx context.Context, r request, out any) error {
	u, err := c.endpoint(r.path)
	if err != nil {
		return err
	}
	if len(r.query) > 0 {
		u.RawQuery = r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		buf, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u.String(), body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", c.requestID())
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// endpoint - URL вызова. Каждый сегмент экранируется целиком: "/" внутри символа
// не создаёт новый уровень пути, "." и ".." не принимаются.
func (c *Client) endpoint(segments []string) (*url.URL, error) {
	u := *c.baseURL
	path := strings.TrimSuffix(u.Path, "/")
	raw := strings.TrimSuffix(u.EscapedPath(), "/")
	for _, seg := range append(append([]string{}, apiPrefix...), segments...) {
		if seg == "" || seg == "." || seg == ".." {
			return nil, fmt.Errorf("%w: invalid path segment %q", errs.ErrValidation, seg)
		}
		path += "/" + seg
		raw += "/" + url.PathEscape(seg)
	}
	u.Path, u.RawPath = path, raw
	u.RawQuery, u.Fragment = "", ""
	return &u, nil
}

func normalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
