// Package analysis joins fitness and finance records on calendar date and
// computes descriptive statistics over the result. All functions are pure:
// they operate on already-fetched records and never touch the network.
package analysis

import (
	"github.com/shopspring/decimal"
)

// Band partitions recovery scores into three ranges. Boundaries follow a
// left-open/right-closed convention, except 0 itself which lands in Low, so
// every score in [0,100] falls into exactly one band.
type Band string

const (
	BandLow    Band = "Low"    // (0,33], 0 included
	BandMedium Band = "Medium" // (33,66]
	BandHigh   Band = "High"   // (66,100]
)

func Bands() []Band {
	return []Band{BandLow, BandMedium, BandHigh}
}

func BandOf(score float64) Band {
	switch {
	case score <= 33:
		return BandLow
	case score <= 66:
		return BandMedium
	default:
		return BandHigh
	}
}

// BandStats summarizes spending on the days whose recovery score fell in
// one band.
type BandStats struct {
	TotalSpending    decimal.Decimal `json:"total_spending"`
	AvgDailySpending decimal.Decimal `json:"avg_daily_spending"`
	TransactionCount int             `json:"transaction_count"`
	DayCount         int             `json:"day_count"`
}

// SpendingVsRecovery relates daily recovery scores to same-day total
// spending. Correlation is nil when fewer than two complete pairs exist or
// either series has zero variance. NoData is set instead of failing when a
// required input series is empty.
type SpendingVsRecovery struct {
	NoData         bool               `json:"no_data,omitempty"`
	Correlation    *float64           `json:"correlation"`
	SpendingByBand map[Band]BandStats `json:"spending_by_recovery"`
	DataPoints     int                `json:"data_points"`
}

// PartitionStats describes one half of the workout-day split.
type PartitionStats struct {
	Days          int             `json:"count"`
	TotalSpending decimal.Decimal `json:"total_spending"`
	AvgSpending   decimal.Decimal `json:"avg_spending"`
}

// WorkoutImpact splits distinct transaction dates into workout days and
// non-workout days. SpendingDifference (workout avg minus non-workout avg)
// is only present when both partitions are non-empty.
type WorkoutImpact struct {
	NoData             bool             `json:"no_data,omitempty"`
	WorkoutDays        PartitionStats   `json:"workout_days"`
	NonWorkoutDays     PartitionStats   `json:"non_workout_days"`
	SpendingDifference *decimal.Decimal `json:"spending_difference,omitempty"`
}
