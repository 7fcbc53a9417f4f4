package main

import (
	"context"
	"log/slog"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/calery/whoopilot/internal/version"
	"github.com/calery/whoopilot/internal/xslog"
)

func main() {
	_ = godotenv.Load()

	logger := xslog.NewLoggerFromEnv(os.Stderr)
	slog.SetDefault(logger)
	logger.Debug("starting", xslog.Version())

	rootCmd := &cobra.Command{
		Use:     "whoopilot",
		Short:   "Correlate WHOOP fitness data with Copilot Money spending",
		Version: version.Get(),
	}

	rootCmd.AddCommand(authCmd())
	rootCmd.AddCommand(statusCmd())
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(insightsCmd())

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}
