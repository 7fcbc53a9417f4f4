package copilot

import (
	"context"
	"net/http"
)

type accountService struct {
	client *Client
}

func (s *accountService) List(ctx context.Context) ([]Account, error) {
	const route = "/v1/accounts"

	var resp struct {
		Accounts []Account `json:"accounts"`
	}
	if err := s.client.do(ctx, http.MethodGet, route, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Accounts, nil
}
