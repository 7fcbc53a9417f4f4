package copilot

import (
	"context"
	"net/url"
	"strconv"

	"github.com/calery/whoopilot/internal/date"
)

type AccountService interface {
	List(ctx context.Context) ([]Account, error)
}

type TransactionService interface {
	List(ctx context.Context, params *TransactionParams) ([]Transaction, error)
}

type CategoryService interface {
	List(ctx context.Context) ([]Category, error)
}

type InsightService interface {
	Get(ctx context.Context, params *RangeParams) (Insights, error)
}

const DefaultTransactionLimit = 100

type TransactionParams struct {
	Start     date.Date
	End       date.Date
	AccountID string
	Limit     int
}

func (p *TransactionParams) values() url.Values {
	v := make(url.Values)

	limit := DefaultTransactionLimit
	if p != nil && p.Limit > 0 {
		limit = p.Limit
	}
	v.Set("limit", strconv.Itoa(limit))

	if p == nil {
		return v
	}
	if !p.Start.IsZero() {
		v.Set("start_date", p.Start.String())
	}
	if !p.End.IsZero() {
		v.Set("end_date", p.End.String())
	}
	if p.AccountID != "" {
		v.Set("account_id", p.AccountID)
	}

	return v
}

type RangeParams struct {
	Start date.Date
	End   date.Date
}

func (p *RangeParams) values() url.Values {
	if p == nil {
		return nil
	}

	v := make(url.Values)

	if !p.Start.IsZero() {
		v.Set("start_date", p.Start.String())
	}
	if !p.End.IsZero() {
		v.Set("end_date", p.End.String())
	}

	return v
}
