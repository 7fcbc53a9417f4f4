package analysis

import (
	"github.com/calery/whoopilot/internal/client/copilot"
	"github.com/calery/whoopilot/internal/client/whoop"
	"github.com/calery/whoopilot/internal/date"
	"github.com/shopspring/decimal"
)

// AnalyzeSpendingVsRecovery relates recovery scores to same-day spending:
// a Pearson coefficient over the date join plus per-band spending stats.
// Either series being empty yields the explicit no-data result.
func AnalyzeSpendingVsRecovery(recoveries []whoop.Recovery, transactions []copilot.Transaction) SpendingVsRecovery {
	if len(recoveries) == 0 || len(transactions) == 0 {
		return SpendingVsRecovery{NoData: true}
	}

	daily := DailySpend(transactions)
	scores := scoresByDate(recoveries)

	correlation, dataPoints := correlate(scores, daily)

	return SpendingVsRecovery{
		Correlation:    correlation,
		SpendingByBand: spendingByBand(scores, transactions),
		DataPoints:     dataPoints,
	}
}

// scoresByDate keeps only scored recovery records. A duplicate date keeps
// the later record, matching the fetch order of the vendor feed.
func scoresByDate(recoveries []whoop.Recovery) map[date.Date]float64 {
	scores := make(map[date.Date]float64, len(recoveries))
	for _, rec := range recoveries {
		if rec.Date.IsZero() || rec.Score == nil {
			continue
		}
		scores[rec.Date] = *rec.Score
	}
	return scores
}

func spendingByBand(scores map[date.Date]float64, transactions []copilot.Transaction) map[Band]BandStats {
	bandByDate := make(map[date.Date]Band, len(scores))
	for d, score := range scores {
		bandByDate[d] = BandOf(score)
	}

	totals := make(map[Band]decimal.Decimal)
	counts := make(map[Band]int)
	days := make(map[Band]map[date.Date]struct{})

	for _, tx := range transactions {
		band, ok := bandByDate[tx.Date]
		if !ok {
			continue
		}
		totals[band] = totals[band].Add(tx.Amount)
		counts[band]++
		if days[band] == nil {
			days[band] = make(map[date.Date]struct{})
		}
		days[band][tx.Date] = struct{}{}
	}

	stats := make(map[Band]BandStats, len(Bands()))
	for _, band := range Bands() {
		s := BandStats{
			TotalSpending:    totals[band],
			TransactionCount: counts[band],
			DayCount:         len(days[band]),
		}
		if s.DayCount > 0 {
			s.AvgDailySpending = s.TotalSpending.Div(decimal.NewFromInt(int64(s.DayCount)))
		}
		stats[band] = s
	}
	return stats
}
