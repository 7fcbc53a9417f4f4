package whoop

import (
	"context"
	"net/http"
)

type sleepService struct {
	client *Client
}

func (s *sleepService) List(ctx context.Context, params *RangeParams) ([]Sleep, error) {
	const route = "/v1/cycle/sleep"

	s.client.preflight(ctx)

	var resp struct {
		Sleep []Sleep `json:"sleep"`
	}
	if err := s.client.do(ctx, http.MethodGet, route, params.values(), &resp); err != nil {
		return nil, err
	}
	return resp.Sleep, nil
}
