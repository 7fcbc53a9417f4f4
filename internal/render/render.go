// Package render formats reports for the terminal.
package render

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/calery/whoopilot/internal/analysis"
	"github.com/calery/whoopilot/internal/report"
)

var (
	colorTeal           = lipgloss.Color("#00F19F")
	colorDim            = lipgloss.Color("#666666")
	colorHighRecovery   = lipgloss.Color("#16EC06")
	colorMediumRecovery = lipgloss.Color("#FFDE00")
	colorLowRecovery    = lipgloss.Color("#FF0026")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorTeal)
	labelStyle = lipgloss.NewStyle().Foreground(colorDim)
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 2)
)

func Panel(title string, rows [][2]string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	labelWidth := 0
	for _, row := range rows {
		if w := lipgloss.Width(row[0]); w > labelWidth {
			labelWidth = w
		}
	}

	for _, row := range rows {
		label := labelStyle.Render(row[0])
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(row[0])+2)
		b.WriteString(label + pad + row[1] + "\n")
	}

	return panelStyle.Render(strings.TrimRight(b.String(), "\n")) + "\n"
}

func Report(r *report.Report) string {
	var b strings.Builder

	b.WriteString(Panel(fmt.Sprintf("Health & Finance Analysis (%s to %s)", r.DateRange.Start, r.DateRange.End), [][2]string{
		{"Sleep Sessions", fmt.Sprintf("%d", r.Summary.SleepSessions)},
		{"Workouts", fmt.Sprintf("%d", r.Summary.Workouts)},
		{"Recovery Scores", fmt.Sprintf("%d", r.Summary.RecoveryScores)},
		{"Transactions", fmt.Sprintf("%d", r.Summary.Transactions)},
		{"Accounts", fmt.Sprintf("%d", r.Summary.Accounts)},
	}))

	if rec := r.RecoveryAnalysis; rec != nil {
		b.WriteString(Panel("Recovery Analysis", [][2]string{
			{"Average Score", fmt.Sprintf("%.1f%%", rec.AverageScore)},
			{"Best Score", fmt.Sprintf("%.1f%%", rec.BestScore)},
			{"Worst Score", fmt.Sprintf("%.1f%%", rec.WorstScore)},
			{"Low / Medium / High", fmt.Sprintf("%d / %d / %d",
				rec.Distribution[analysis.BandLow],
				rec.Distribution[analysis.BandMedium],
				rec.Distribution[analysis.BandHigh])},
		}))
	}

	if fin := r.FinancialAnalysis; fin != nil {
		b.WriteString(Panel("Financial Analysis", [][2]string{
			{"Total Spending", "$" + fin.TotalSpending.StringFixed(2)},
			{"Average Transaction", "$" + fin.AverageTransaction.StringFixed(2)},
			{"Largest Transaction", "$" + fin.LargestTransaction.StringFixed(2)},
			{"Transaction Count", fmt.Sprintf("%d", fin.TransactionCount)},
		}))
	}

	b.WriteString(correlations(&r.Correlations))

	return b.String()
}

func correlations(c *report.Correlations) string {
	var b strings.Builder

	svr := c.SpendingVsRecovery
	switch {
	case svr.NoData:
		b.WriteString("No data available for spending vs. recovery analysis\n")
	case svr.Correlation == nil:
		b.WriteString("Not enough overlapping days to correlate recovery and spending\n")
	default:
		strength := "Weak"
		if v := *svr.Correlation; v > 0.3 || v < -0.3 {
			strength = "Strong"
		}
		direction := "positive"
		if *svr.Correlation < 0 {
			direction = "negative"
		}
		b.WriteString(fmt.Sprintf("%s %s correlation between recovery and spending: %.3f\n",
			strength, direction, *svr.Correlation))
	}

	if !svr.NoData {
		rows := make([][2]string, 0, 3)
		for _, band := range analysis.Bands() {
			stats := svr.SpendingByBand[band]
			bandLabel := lipgloss.NewStyle().Foreground(BandColor(band)).Render(string(band))
			rows = append(rows, [2]string{
				bandLabel + " recovery days",
				fmt.Sprintf("$%s total over %d transactions", stats.TotalSpending.StringFixed(2), stats.TransactionCount),
			})
		}
		b.WriteString(Panel("Spending by Recovery Band", rows))
	}

	wi := c.WorkoutImpact
	if wi.NoData {
		b.WriteString("No data available for workout impact analysis\n")
		return b.String()
	}

	b.WriteString(Panel("Workout Impact", [][2]string{
		{"Workout days", fmt.Sprintf("%d days, avg $%s", wi.WorkoutDays.Days, wi.WorkoutDays.AvgSpending.StringFixed(2))},
		{"Non-workout days", fmt.Sprintf("%d days, avg $%s", wi.NonWorkoutDays.Days, wi.NonWorkoutDays.AvgSpending.StringFixed(2))},
	}))

	if wi.SpendingDifference != nil {
		diff := *wi.SpendingDifference
		direction := "more"
		if diff.IsNegative() {
			direction = "less"
		}
		b.WriteString(fmt.Sprintf("Workout days: %s spending ($%s difference)\n",
			direction, diff.Abs().StringFixed(2)))
	}

	return b.String()
}

// BandColor maps a recovery band to WHOOP's traffic-light palette.
func BandColor(band analysis.Band) color.Color {
	switch band {
	case analysis.BandHigh:
		return colorHighRecovery
	case analysis.BandMedium:
		return colorMediumRecovery
	default:
		return colorLowRecovery
	}
}
