package analysis

import (
	"github.com/calery/whoopilot/internal/client/copilot"
	"github.com/calery/whoopilot/internal/client/whoop"
	"github.com/shopspring/decimal"
)

type RecoveryStats struct {
	AverageScore float64      `json:"average_score"`
	BestScore    float64      `json:"best_score"`
	WorstScore   float64      `json:"worst_score"`
	Distribution map[Band]int `json:"score_distribution"`
}

// RecoverySummary aggregates scored recovery records. Returns nil when no
// record carries a score.
func RecoverySummary(recoveries []whoop.Recovery) *RecoveryStats {
	var (
		sum   float64
		count int
		best  float64
		worst float64
	)
	distribution := map[Band]int{BandLow: 0, BandMedium: 0, BandHigh: 0}

	for _, rec := range recoveries {
		if rec.Score == nil {
			continue
		}
		score := *rec.Score
		if count == 0 || score > best {
			best = score
		}
		if count == 0 || score < worst {
			worst = score
		}
		sum += score
		count++
		distribution[BandOf(score)]++
	}

	if count == 0 {
		return nil
	}

	return &RecoveryStats{
		AverageScore: sum / float64(count),
		BestScore:    best,
		WorstScore:   worst,
		Distribution: distribution,
	}
}

type FinancialStats struct {
	TotalSpending      decimal.Decimal `json:"total_spending"`
	AverageTransaction decimal.Decimal `json:"average_transaction"`
	LargestTransaction decimal.Decimal `json:"largest_transaction"`
	TransactionCount   int             `json:"transaction_count"`
}

// FinancialSummary aggregates raw transaction amounts. Returns nil for an
// empty transaction list.
func FinancialSummary(transactions []copilot.Transaction) *FinancialStats {
	if len(transactions) == 0 {
		return nil
	}

	var total, largest decimal.Decimal
	for i, tx := range transactions {
		total = total.Add(tx.Amount)
		if i == 0 || tx.Amount.GreaterThan(largest) {
			largest = tx.Amount
		}
	}

	return &FinancialStats{
		TotalSpending:      total,
		AverageTransaction: total.Div(decimal.NewFromInt(int64(len(transactions)))),
		LargestTransaction: largest,
		TransactionCount:   len(transactions),
	}
}
