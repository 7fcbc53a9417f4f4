package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calery/whoopilot/internal/report"
)

func insightsCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Quick heuristic insights from recent data",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			svc, err := newReportService()
			if err != nil {
				return err
			}

			start, end := lookback(days)
			bundle, err := svc.FetchRange(ctx, start, end)
			if err != nil {
				return err
			}

			insights := report.QuickInsights(bundle)
			if len(insights) == 0 {
				fmt.Println("No specific insights for this time period")
				return nil
			}
			for _, insight := range insights {
				fmt.Println("- " + insight)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "number of days to look back")
	return cmd
}
