package analysis

import (
	"math"

	"github.com/calery/whoopilot/internal/date"
	"github.com/shopspring/decimal"
)

// correlate outer-joins the two date-indexed series and computes the
// Pearson coefficient over the complete pairs, the way a data frame merge
// followed by corr() with pairwise missing-data exclusion would. The
// returned count is the size of the joined set, complete pairs or not.
func correlate(scores map[date.Date]float64, spend map[date.Date]decimal.Decimal) (*float64, int) {
	joined := make(map[date.Date]struct{}, len(scores)+len(spend))
	for d := range scores {
		joined[d] = struct{}{}
	}
	for d := range spend {
		joined[d] = struct{}{}
	}

	var xs, ys []float64
	for d := range scores {
		amount, ok := spend[d]
		if !ok {
			continue
		}
		xs = append(xs, scores[d])
		ys = append(ys, amount.InexactFloat64())
	}

	return pearson(xs, ys), len(joined)
}

// pearson returns nil with fewer than two pairs or when either series has
// zero variance (the coefficient is undefined, not zero).
func pearson(xs, ys []float64) *float64 {
	n := len(xs)
	if n < 2 || n != len(ys) {
		return nil
	}

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	if varX == 0 || varY == 0 {
		return nil
	}

	r := cov / math.Sqrt(varX*varY)
	return &r
}
