package analysis

import (
	"github.com/calery/whoopilot/internal/client/copilot"
	"github.com/calery/whoopilot/internal/client/whoop"
	"github.com/calery/whoopilot/internal/date"
	"github.com/shopspring/decimal"
)

// AnalyzeWorkoutImpact partitions all distinct transaction dates into
// workout days and non-workout days and compares per-day spending. The
// partitions are exhaustive and disjoint; an empty partition reports an
// average of exactly zero rather than dividing by zero.
func AnalyzeWorkoutImpact(workouts []whoop.Workout, transactions []copilot.Transaction) WorkoutImpact {
	if len(workouts) == 0 || len(transactions) == 0 {
		return WorkoutImpact{NoData: true}
	}

	workoutDates := make(map[date.Date]struct{}, len(workouts))
	for _, w := range workouts {
		if !w.Date.IsZero() {
			workoutDates[w.Date] = struct{}{}
		}
	}

	daily := DailySpend(transactions)

	var workoutDays, nonWorkoutDays PartitionStats
	for d, total := range daily {
		if _, ok := workoutDates[d]; ok {
			workoutDays.Days++
			workoutDays.TotalSpending = workoutDays.TotalSpending.Add(total)
		} else {
			nonWorkoutDays.Days++
			nonWorkoutDays.TotalSpending = nonWorkoutDays.TotalSpending.Add(total)
		}
	}

	if workoutDays.Days > 0 {
		workoutDays.AvgSpending = workoutDays.TotalSpending.Div(decimal.NewFromInt(int64(workoutDays.Days)))
	}
	if nonWorkoutDays.Days > 0 {
		nonWorkoutDays.AvgSpending = nonWorkoutDays.TotalSpending.Div(decimal.NewFromInt(int64(nonWorkoutDays.Days)))
	}

	impact := WorkoutImpact{
		WorkoutDays:    workoutDays,
		NonWorkoutDays: nonWorkoutDays,
	}

	if workoutDays.Days > 0 && nonWorkoutDays.Days > 0 {
		diff := workoutDays.AvgSpending.Sub(nonWorkoutDays.AvgSpending)
		impact.SpendingDifference = &diff
	}

	return impact
}
