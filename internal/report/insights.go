package report

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// QuickInsights derives short heuristic findings from a recent bundle.
// Thresholds are deliberately coarse; this is a nudge, not a model.
func QuickInsights(b *Bundle) []string {
	var insights []string

	if scored := recentScores(b, 3); len(scored) > 0 {
		var sum float64
		for _, s := range scored {
			sum += s
		}
		avg := sum / float64(len(scored))
		switch {
		case avg < 50:
			insights = append(insights, "Recent recovery scores are low - consider rest days")
		case avg > 80:
			insights = append(insights, "Great recovery! You're ready for intense workouts")
		}
	}

	switch {
	case len(b.Workouts) == 0:
		insights = append(insights, "No workouts recorded - time to get moving!")
	case len(b.Workouts) >= 5:
		insights = append(insights, "High workout frequency - monitor recovery carefully")
	}

	if n := len(b.Transactions); n > 0 {
		recent := b.Transactions
		if n > 10 {
			recent = recent[n-10:]
		}
		var total decimal.Decimal
		for _, tx := range recent {
			total = total.Add(tx.Amount)
		}
		avg := total.Div(decimal.NewFromInt(int64(len(recent))))
		switch {
		case avg.GreaterThan(decimal.NewFromInt(100)):
			insights = append(insights, fmt.Sprintf("High recent spending (avg $%s per transaction) - review budget", avg.StringFixed(2)))
		case avg.LessThan(decimal.NewFromInt(20)):
			insights = append(insights, "Low recent spending - good budget control")
		}
	}

	return insights
}

// recentScores returns up to n scores from the tail of the recovery feed.
func recentScores(b *Bundle, n int) []float64 {
	var scored []float64
	for _, rec := range b.Recoveries {
		if rec.Score != nil {
			scored = append(scored, *rec.Score)
		}
	}
	if len(scored) > n {
		scored = scored[len(scored)-n:]
	}
	return scored
}
