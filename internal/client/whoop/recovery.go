package whoop

import (
	"context"
	"net/http"
)

type recoveryService struct {
	client *Client
}

func (s *recoveryService) List(ctx context.Context, params *RangeParams) ([]Recovery, error) {
	const route = "/v1/cycle/recovery"

	s.client.preflight(ctx)

	var resp struct {
		Recovery []Recovery `json:"recovery"`
	}
	if err := s.client.do(ctx, http.MethodGet, route, params.values(), &resp); err != nil {
		return nil, err
	}
	return resp.Recovery, nil
}
