package xhttp

import (
	"fmt"
	"net/http"

	"github.com/calery/whoopilot/internal/version"
)

type whoopilotTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*whoopilotTransport)(nil)

func (t *whoopilotTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", "whoopilot/"+version.Get())
	req.Header.Set(version.Header, version.Get())
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

// NewTransport returns an http.RoundTripper with standard whoopilot headers.
func NewTransport() http.RoundTripper {
	return &whoopilotTransport{base: http.DefaultTransport}
}
