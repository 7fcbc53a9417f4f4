package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/calery/whoopilot/internal/analysis"
	"github.com/calery/whoopilot/internal/client/copilot"
	"github.com/calery/whoopilot/internal/client/whoop"
	"github.com/calery/whoopilot/internal/date"
	"github.com/calery/whoopilot/internal/xslog"
	"github.com/google/uuid"
)

type Service struct {
	whoop   *whoop.Client
	copilot *copilot.Client
	logger  *slog.Logger
}

func NewService(whoopClient *whoop.Client, copilotClient *copilot.Client, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		whoop:   whoopClient,
		copilot: copilotClient,
		logger:  logger,
	}
}

// Bundle is everything both vendors return for one date range.
type Bundle struct {
	Sleep        []whoop.Sleep
	Recoveries   []whoop.Recovery
	Workouts     []whoop.Workout
	Cycles       []whoop.Cycle
	Transactions []copilot.Transaction
	Accounts     []copilot.Account
	Insights     copilot.Insights
}

// FetchRange pulls the full bundle with sequential blocking calls; each
// request completes before the next is issued, and the first failure
// propagates.
func (s *Service) FetchRange(ctx context.Context, start, end date.Date) (*Bundle, error) {
	params := &whoop.RangeParams{Start: start, End: end}

	var b Bundle
	var err error

	if b.Sleep, err = s.whoop.Sleep.List(ctx, params); err != nil {
		return nil, fmt.Errorf("fetching sleep: %w", err)
	}
	if b.Recoveries, err = s.whoop.Recovery.List(ctx, params); err != nil {
		return nil, fmt.Errorf("fetching recoveries: %w", err)
	}
	if b.Workouts, err = s.whoop.Workout.List(ctx, params); err != nil {
		return nil, fmt.Errorf("fetching workouts: %w", err)
	}
	if b.Cycles, err = s.whoop.Cycle.List(ctx, params); err != nil {
		return nil, fmt.Errorf("fetching cycles: %w", err)
	}

	txParams := &copilot.TransactionParams{Start: start, End: end}
	if b.Transactions, err = s.copilot.Transaction.List(ctx, txParams); err != nil {
		return nil, fmt.Errorf("fetching transactions: %w", err)
	}
	if b.Accounts, err = s.copilot.Account.List(ctx); err != nil {
		return nil, fmt.Errorf("fetching accounts: %w", err)
	}
	if b.Insights, err = s.copilot.Insight.Get(ctx, &copilot.RangeParams{Start: start, End: end}); err != nil {
		return nil, fmt.Errorf("fetching insights: %w", err)
	}

	s.logger.Debug("fetched date range bundle",
		xslog.Start(start.Time()),
		xslog.End(end.Time()),
		xslog.Count(len(b.Transactions)),
	)

	return &b, nil
}

// Generate fetches the range and assembles the full report.
func (s *Service) Generate(ctx context.Context, start, end date.Date) (*Report, error) {
	bundle, err := s.FetchRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return Assemble(bundle, start, end), nil
}

// Assemble builds a report from an already-fetched bundle.
func Assemble(b *Bundle, start, end date.Date) *Report {
	return &Report{
		ID:          uuid.New(),
		GeneratedAt: time.Now(),
		DateRange:   DateRange{Start: start, End: end},
		Summary: Summary{
			SleepSessions:  len(b.Sleep),
			Workouts:       len(b.Workouts),
			RecoveryScores: len(b.Recoveries),
			Transactions:   len(b.Transactions),
			Accounts:       len(b.Accounts),
		},
		RecoveryAnalysis:  analysis.RecoverySummary(b.Recoveries),
		FinancialAnalysis: analysis.FinancialSummary(b.Transactions),
		Correlations: Correlations{
			SpendingVsRecovery: analysis.AnalyzeSpendingVsRecovery(b.Recoveries, b.Transactions),
			WorkoutImpact:      analysis.AnalyzeWorkoutImpact(b.Workouts, b.Transactions),
		},
	}
}
