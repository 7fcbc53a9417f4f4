package copilot

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
)

const defaultTimeout = 30 * time.Second

// ErrMissingAPIKey is a configuration failure: the finance API cannot be
// reached without COPILOT_API_KEY.
var ErrMissingAPIKey = errors.New("copilot: COPILOT_API_KEY must be set")

type Client struct {
	Account     AccountService
	Transaction TransactionService
	Category    CategoryService
	Insight     InsightService

	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(apiKey string, opts ...Option) (*Client, error) {
	const baseURL = "https://api.copilot.money"

	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL: baseURL,
		logger:  slog.Default(),
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	transport := &copilotTransport{
		base:   xhttp.NewTransport(),
		apiKey: apiKey,
	}

	c := &Client{
		baseURL:    cfg.baseURL,
		httpClient: &http.Client{Transport: transport, Timeout: cfg.timeout},
		logger:     cfg.logger,
	}

	c.Account = &accountService{client: c}
	c.Transaction = &transactionService{client: c}
	c.Category = &categoryService{client: c}
	c.Insight = &insightService{client: c}

	return c, nil
}

type clientConfig struct {
	baseURL string
	logger  *slog.Logger
	timeout time.Duration
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
		xslog.Provider("copilot"),
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

type copilotTransport struct {
	base   http.RoundTripper
	apiKey string
}

var _ http.RoundTripper = (*copilotTransport)(nil)

func (t *copilotTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}
	return resp, nil
}
