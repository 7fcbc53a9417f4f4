package main

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/calery/whoopilot/internal/client/copilot"
	"github.com/calery/whoopilot/internal/client/whoop"
	"github.com/calery/whoopilot/internal/date"
	"github.com/calery/whoopilot/internal/render"
)

func statusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show recent data from one vendor",
	}
	cmd.AddCommand(whoopStatusCmd())
	cmd.AddCommand(copilotStatusCmd())
	return cmd
}

func lookback(days int) (start, end date.Date) {
	end = date.Today()
	return end.AddDays(-days), end
}

func whoopStatusCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "whoop",
		Short: "Show WHOOP profile and recent data",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := readConfig()
			if err != nil {
				return err
			}
			client, err := newWhoopClient(cfg)
			if err != nil {
				return err
			}

			profile, err := client.User.GetProfile(ctx)
			if err != nil {
				return err
			}

			start, end := lookback(days)
			params := &whoop.RangeParams{Start: start, End: end}

			recoveries, err := client.Recovery.List(ctx, params)
			if err != nil {
				return err
			}
			workouts, err := client.Workout.List(ctx, params)
			if err != nil {
				return err
			}
			sleep, err := client.Sleep.List(ctx, params)
			if err != nil {
				return err
			}
			metrics, err := client.Cycle.Metrics(ctx, params)
			if err != nil {
				return err
			}

			rows := [][2]string{
				{"Profile", fmt.Sprintf("%s %s", profile.FirstName, profile.LastName)},
				{"Recovery Scores", strconv.Itoa(len(recoveries))},
				{"Workouts", strconv.Itoa(len(workouts))},
				{"Sleep Sessions", strconv.Itoa(len(sleep))},
				{"Tracked Metrics", strconv.Itoa(len(metrics))},
			}

			if avg, ok := recentRecoveryAvg(recoveries, 7); ok {
				rows = append(rows, [2]string{"Recent Avg Recovery", fmt.Sprintf("%.1f%%", avg)})
			}

			fmt.Print(render.Panel(fmt.Sprintf("WHOOP Summary (last %d days)", days), rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "number of days to look back")
	return cmd
}

func recentRecoveryAvg(recoveries []whoop.Recovery, n int) (float64, bool) {
	var scores []float64
	for _, rec := range recoveries {
		if rec.Score != nil {
			scores = append(scores, *rec.Score)
		}
	}
	if len(scores) == 0 {
		return 0, false
	}
	if len(scores) > n {
		scores = scores[len(scores)-n:]
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores)), true
}

func copilotStatusCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "copilot",
		Short: "Show Copilot Money accounts and recent transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := readConfig()
			if err != nil {
				return err
			}
			client, err := newCopilotClient(cfg)
			if err != nil {
				return err
			}

			accounts, err := client.Account.List(ctx)
			if err != nil {
				return err
			}
			categories, err := client.Category.List(ctx)
			if err != nil {
				return err
			}

			start, end := lookback(days)
			transactions, err := client.Transaction.List(ctx, &copilot.TransactionParams{Start: start, End: end})
			if err != nil {
				return err
			}

			rows := [][2]string{
				{"Accounts", strconv.Itoa(len(accounts))},
				{"Categories", strconv.Itoa(len(categories))},
				{"Recent Transactions", strconv.Itoa(len(transactions))},
			}

			if len(transactions) > 0 {
				var total decimal.Decimal
				for _, tx := range transactions {
					total = total.Add(tx.Amount)
				}
				avg := total.Div(decimal.NewFromInt(int64(len(transactions))))
				rows = append(rows,
					[2]string{"Total Spending", "$" + total.StringFixed(2)},
					[2]string{"Avg Transaction", "$" + avg.StringFixed(2)},
				)
			}

			fmt.Print(render.Panel(fmt.Sprintf("Copilot Money Summary (last %d days)", days), rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "number of days to look back")
	return cmd
}
