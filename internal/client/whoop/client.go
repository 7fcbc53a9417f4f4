package whoop

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/calery/whoopilot/internal/xhttp"
	"github.com/calery/whoopilot/internal/xslog"
	go_json "github.com/goccy/go-json"
	"golang.org/x/oauth2"
)

const defaultTimeout = 30 * time.Second

type Client struct {
	User     UserService
	Sleep    SleepService
	Recovery RecoveryService
	Workout  WorkoutService
	Cycle    CycleService

	baseURL     string
	httpClient  *http.Client
	tokenSource oauth2.TokenSource
	logger      *slog.Logger
}

func New(tokenSource oauth2.TokenSource, opts ...Option) *Client {
	const baseURL = "https://api.prod.whoop.com/developer"

	cfg := &clientConfig{
		baseURL:     baseURL,
		tokenSource: tokenSource,
		logger:      slog.Default(),
		timeout:     defaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	transport := &whoopTransport{
		base:        xhttp.NewTransport(),
		tokenSource: cfg.tokenSource,
	}

	c := &Client{
		baseURL:     cfg.baseURL,
		httpClient:  &http.Client{Transport: transport, Timeout: cfg.timeout},
		tokenSource: cfg.tokenSource,
		logger:      cfg.logger,
	}

	c.User = &userService{client: c}
	c.Sleep = &sleepService{client: c}
	c.Recovery = &recoveryService{client: c}
	c.Workout = &workoutService{client: c}
	c.Cycle = &cycleService{client: c}

	return c
}

type clientConfig struct {
	baseURL     string
	tokenSource oauth2.TokenSource
	logger      *slog.Logger
	timeout     time.Duration
}

type Option func(*clientConfig)

func WithBaseURL(baseURL string) Option {
	return func(cfg *clientConfig) { cfg.baseURL = baseURL }
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = logger }
}

func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = d }
}

func (c *Client) do(ctx context.Context, method string, path string, query url.Values, result any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("api request",
		xslog.Provider("whoop"),
		xslog.Endpoint(path),
		xslog.HTTPStatus(resp.StatusCode),
		xslog.Duration(time.Since(start)),
	)

	if resp.StatusCode >= 400 {
		return parseAPIError(resp, path)
	}

	if result != nil && resp.StatusCode != http.StatusNoContent {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading response: %w", err)
		}
		if err := go_json.NewDecoder(bytes.NewReader(body)).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w\nbody: %s", err, string(body))
		}
	}

	return nil
}

// tokenInvalidator is implemented by token sources that can drop their
// cached access token, forcing a refresh on the next request.
type tokenInvalidator interface {
	Invalidate()
}

// preflight issues a lightweight profile request before a data fetch. A 401
// means the cached access token has gone stale; the token source is
// invalidated so the real request goes out with a freshly refreshed token
// instead of failing the same way.
func (c *Client) preflight(ctx context.Context) {
	inv, ok := c.tokenSource.(tokenInvalidator)
	if !ok {
		return
	}

	const route = "/v1/user/profile/basic"
	if err := c.do(ctx, http.MethodGet, route, nil, nil); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			c.logger.Debug("access token rejected, forcing refresh")
			inv.Invalidate()
		}
	}
}

type whoopTransport struct {
	base        http.RoundTripper
	tokenSource oauth2.TokenSource
}

var _ http.RoundTripper = (*whoopTransport)(nil)

func (t *whoopTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.tokenSource.Token()
	if err != nil {
		return nil, fmt.Errorf("getting token: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}
	return resp, nil
}
