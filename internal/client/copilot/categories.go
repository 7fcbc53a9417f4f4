package copilot

import (
	"context"
	"net/http"
)

type categoryService struct {
	client *Client
}

func (s *categoryService) List(ctx context.Context) ([]Category, error) {
	const route = "/v1/categories"

	var resp struct {
		Categories []Category `json:"categories"`
	}
	if err := s.client.do(ctx, http.MethodGet, route, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}
