package copilot

import (
	"context"
	"net/http"
)

type transactionService struct {
	client *Client
}

func (s *transactionService) List(ctx context.Context, params *TransactionParams) ([]Transaction, error) {
	const route = "/v1/transactions"

	var resp struct {
		Transactions []Transaction `json:"transactions"`
	}
	if err := s.client.do(ctx, http.MethodGet, route, params.values(), &resp); err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}
