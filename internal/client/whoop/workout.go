package whoop

import (
	"context"
	"net/http"
)

type workoutService struct {
	client *Client
}

func (s *workoutService) List(ctx context.Context, params *RangeParams) ([]Workout, error) {
	const route = "/v1/cycle/workout"

	s.client.preflight(ctx)

	var resp struct {
		Workout []Workout `json:"workout"`
	}
	if err := s.client.do(ctx, http.MethodGet, route, params.values(), &resp); err != nil {
		return nil, err
	}
	return resp.Workout, nil
}
