package main

import (
	"fmt"
	"log/slog"
	"os"

	go_json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/calery/whoopilot/internal/render"
	"github.com/calery/whoopilot/internal/report"
)

func analyzeCmd() *cobra.Command {
	var (
		days   int
		output string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Correlate WHOOP fitness data with Copilot Money spending",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			svc, err := newReportService()
			if err != nil {
				return err
			}

			start, end := lookback(days)
			rep, err := svc.Generate(ctx, start, end)
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			fmt.Print(render.Report(rep))

			if output != "" {
				data, err := go_json.MarshalIndent(rep, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode report: %w", err)
				}
				if err := os.WriteFile(output, data, 0o644); err != nil {
					return fmt.Errorf("failed to write report: %w", err)
				}
				fmt.Printf("Detailed report saved to: %s\n", output)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "number of days to analyze")
	cmd.Flags().StringVar(&output, "output", "", "output file for the detailed report (JSON)")
	return cmd
}

func newReportService() (*report.Service, error) {
	cfg, err := readConfig()
	if err != nil {
		return nil, err
	}
	whoopClient, err := newWhoopClient(cfg)
	if err != nil {
		return nil, err
	}
	copilotClient, err := newCopilotClient(cfg)
	if err != nil {
		return nil, err
	}
	return report.NewService(whoopClient, copilotClient, slog.Default()), nil
}
