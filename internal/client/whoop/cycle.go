package whoop

import (
	"context"
	"net/http"
)

type cycleService struct {
	client *Client
}

func (s *cycleService) List(ctx context.Context, params *RangeParams) ([]Cycle, error) {
	const route = "/v1/cycle"

	s.client.preflight(ctx)

	var resp struct {
		Cycle []Cycle `json:"cycle"`
	}
	if err := s.client.do(ctx, http.MethodGet, route, params.values(), &resp); err != nil {
		return nil, err
	}
	return resp.Cycle, nil
}

func (s *cycleService) Metrics(ctx context.Context, params *RangeParams) (MetricsSummary, error) {
	const route = "/v1/cycle/metrics"

	s.client.preflight(ctx)

	var summary MetricsSummary
	if err := s.client.do(ctx, http.MethodGet, route, params.values(), &summary); err != nil {
		return nil, err
	}
	return summary, nil
}
