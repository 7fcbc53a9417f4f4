package copilot

import (
	"github.com/calery/whoopilot/internal/date"
	"github.com/shopspring/decimal"
)

type Account struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Type     string           `json:"type,omitempty"`
	Balance  *decimal.Decimal `json:"balance,omitempty"`
	Currency string           `json:"currency,omitempty"`
}

// Transaction amounts are signed: positive for spending, negative for
// refunds and income, matching the vendor's convention.
type Transaction struct {
	ID        string          `json:"id,omitempty"`
	Date      date.Date       `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	AccountID string          `json:"account_id,omitempty"`
	Category  string          `json:"category,omitempty"`
	Merchant  string          `json:"merchant,omitempty"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Insights is vendor-computed analytics, passed through untyped.
type Insights map[string]any
