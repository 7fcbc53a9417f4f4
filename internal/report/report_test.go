package report

import (
	"strings"
	"testing"

	"github.com/calery/whoopilot/internal/client/copilot"
	"github.com/calery/whoopilot/internal/client/whoop"
	"github.com/calery/whoopilot/internal/date"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func score(f float64) *float64 { return &f }

func fixtureBundle() *Bundle {
	return &Bundle{
		Sleep: []whoop.Sleep{
			{Date: date.Date("2024-01-01")},
			{Date: date.Date("2024-01-02")},
		},
		Recoveries: []whoop.Recovery{
			{Date: date.Date("2024-01-01"), Score: score(40)},
			{Date: date.Date("2024-01-02"), Score: score(80)},
		},
		Workouts: []whoop.Workout{
			{Date: date.Date("2024-01-01"), SportName: "running"},
		},
		Transactions: []copilot.Transaction{
			{Date: date.Date("2024-01-01"), Amount: decimal.RequireFromString("50")},
			{Date: date.Date("2024-01-02"), Amount: decimal.RequireFromString("10")},
		},
		Accounts: []copilot.Account{
			{ID: "a1", Name: "Checking"},
		},
	}
}

func TestAssemble(t *testing.T) {
	t.Parallel()

	start, end := date.Date("2024-01-01"), date.Date("2024-01-31")
	r := Assemble(fixtureBundle(), start, end)

	if r.ID == uuid.Nil {
		t.Error("report ID not assigned")
	}
	if r.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not stamped")
	}
	if r.DateRange.Start != start || r.DateRange.End != end {
		t.Errorf("DateRange = %+v", r.DateRange)
	}

	want := Summary{
		SleepSessions:  2,
		Workouts:       1,
		RecoveryScores: 2,
		Transactions:   2,
		Accounts:       1,
	}
	if r.Summary != want {
		t.Errorf("Summary = %+v, want %+v", r.Summary, want)
	}

	if r.RecoveryAnalysis == nil || r.RecoveryAnalysis.AverageScore != 60 {
		t.Errorf("RecoveryAnalysis = %+v, want average 60", r.RecoveryAnalysis)
	}
	if r.FinancialAnalysis == nil || !r.FinancialAnalysis.TotalSpending.Equal(decimal.RequireFromString("60")) {
		t.Errorf("FinancialAnalysis = %+v, want total 60", r.FinancialAnalysis)
	}
	if r.Correlations.SpendingVsRecovery.Correlation == nil {
		t.Error("expected a correlation from the fixture data")
	}
	if r.Correlations.WorkoutImpact.SpendingDifference == nil {
		t.Error("expected a spending difference from the fixture data")
	}
}

func TestAssembleEmptyBundle(t *testing.T) {
	t.Parallel()

	r := Assemble(&Bundle{}, date.Date("2024-01-01"), date.Date("2024-01-31"))

	if r.RecoveryAnalysis != nil || r.FinancialAnalysis != nil {
		t.Error("empty bundle should produce no per-vendor analysis")
	}
	if !r.Correlations.SpendingVsRecovery.NoData {
		t.Error("SpendingVsRecovery should report NoData for an empty bundle")
	}
	if !r.Correlations.WorkoutImpact.NoData {
		t.Error("WorkoutImpact should report NoData for an empty bundle")
	}
}

func TestQuickInsights(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		bundle *Bundle
		want   string
	}{
		{
			name: "low recovery",
			bundle: &Bundle{
				Recoveries: []whoop.Recovery{
					{Date: date.Date("2024-01-01"), Score: score(30)},
					{Date: date.Date("2024-01-02"), Score: score(45)},
				},
				Workouts: []whoop.Workout{{Date: date.Date("2024-01-01")}},
			},
			want: "recovery scores are low",
		},
		{
			name: "high recovery",
			bundle: &Bundle{
				Recoveries: []whoop.Recovery{
					{Date: date.Date("2024-01-01"), Score: score(90)},
				},
				Workouts: []whoop.Workout{{Date: date.Date("2024-01-01")}},
			},
			want: "Great recovery",
		},
		{
			name:   "no workouts",
			bundle: &Bundle{},
			want:   "No workouts recorded",
		},
		{
			name: "many workouts",
			bundle: &Bundle{
				Workouts: make([]whoop.Workout, 5),
			},
			want: "High workout frequency",
		},
		{
			name: "high spending",
			bundle: &Bundle{
				Workouts: []whoop.Workout{{Date: date.Date("2024-01-01")}},
				Transactions: []copilot.Transaction{
					{Date: date.Date("2024-01-01"), Amount: decimal.RequireFromString("250")},
				},
			},
			want: "High recent spending",
		},
		{
			name: "low spending",
			bundle: &Bundle{
				Workouts: []whoop.Workout{{Date: date.Date("2024-01-01")}},
				Transactions: []copilot.Transaction{
					{Date: date.Date("2024-01-01"), Amount: decimal.RequireFromString("5")},
				},
			},
			want: "Low recent spending",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			insights := QuickInsights(tt.bundle)
			for _, line := range insights {
				if strings.Contains(line, tt.want) {
					return
				}
			}
			t.Errorf("insights %q missing %q", insights, tt.want)
		})
	}
}

func TestQuickInsightsRecentWindow(t *testing.T) {
	t.Parallel()

	// only the last 10 transactions count toward the spending average, so
	// a big old transaction must not trigger the high-spending nudge
	transactions := []copilot.Transaction{
		{Date: date.Date("2024-01-01"), Amount: decimal.RequireFromString("10000")},
	}
	for i := 0; i < 10; i++ {
		transactions = append(transactions, copilot.Transaction{
			Date:   date.Date("2024-01-02"),
			Amount: decimal.RequireFromString("50"),
		})
	}

	insights := QuickInsights(&Bundle{
		Workouts:     []whoop.Workout{{Date: date.Date("2024-01-01")}},
		Transactions: transactions,
	})

	for _, line := range insights {
		if strings.Contains(line, "High recent spending") {
			t.Errorf("old transaction leaked into the recent window: %q", insights)
		}
	}
}
