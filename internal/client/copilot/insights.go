package copilot

import (
	"context"
	"net/http"
)

type insightService struct {
	client *Client
}

func (s *insightService) Get(ctx context.Context, params *RangeParams) (Insights, error) {
	const route = "/v1/insights"

	var insights Insights
	if err := s.client.do(ctx, http.MethodGet, route, params.values(), &insights); err != nil {
		return nil, err
	}
	return insights, nil
}
