// Package report composes fetched fitness and finance data into a single
// summary structure. Reports are built fresh per invocation and hold no
// shared mutable state.
package report

import (
	"time"

	"github.com/calery/whoopilot/internal/analysis"
	"github.com/calery/whoopilot/internal/date"
	"github.com/google/uuid"
)

type DateRange struct {
	Start date.Date `json:"start"`
	End   date.Date `json:"end"`
}

type Summary struct {
	SleepSessions  int `json:"sleep_sessions"`
	Workouts       int `json:"workouts"`
	RecoveryScores int `json:"recovery_scores"`
	Transactions   int `json:"transactions"`
	Accounts       int `json:"accounts"`
}

type Correlations struct {
	SpendingVsRecovery analysis.SpendingVsRecovery `json:"spending_vs_recovery"`
	WorkoutImpact      analysis.WorkoutImpact      `json:"workout_impact"`
}

type Report struct {
	ID                uuid.UUID                `json:"id"`
	GeneratedAt       time.Time                `json:"generated_at"`
	DateRange         DateRange                `json:"date_range"`
	Summary           Summary                  `json:"summary"`
	RecoveryAnalysis  *analysis.RecoveryStats  `json:"recovery_analysis,omitempty"`
	FinancialAnalysis *analysis.FinancialStats `json:"financial_analysis,omitempty"`
	Correlations      Correlations             `json:"correlations"`
}
