package analysis

import (
	"github.com/calery/whoopilot/internal/client/copilot"
	"github.com/calery/whoopilot/internal/date"
	"github.com/shopspring/decimal"
)

// DailySpend groups transactions by calendar date (any time-of-day is
// already discarded by the Date type) and sums the signed amounts per day.
// Transactions without a parseable date are skipped.
func DailySpend(transactions []copilot.Transaction) map[date.Date]decimal.Decimal {
	daily := make(map[date.Date]decimal.Decimal, len(transactions))
	for _, tx := range transactions {
		if tx.Date.IsZero() {
			continue
		}
		daily[tx.Date] = daily[tx.Date].Add(tx.Amount)
	}
	return daily
}
