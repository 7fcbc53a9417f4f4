package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/calery/whoopilot/internal/oauth"
)

func authCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Authenticate with WHOOP",
		Long:  "Opens a browser to authenticate with WHOOP and stores the token locally.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := readConfig()
			if err != nil {
				return err
			}

			store, err := newTokenStore()
			if err != nil {
				return err
			}

			oauthCfg := oauth.NewConfig(cfg.Whoop, cfg.RedirectPort)

			source := oauth.NewFileTokenSource(oauthCfg, store)
			if ok, err := source.HasToken(); err == nil && ok {
				fmt.Println("Existing token found; re-authenticating will replace it.")
			}

			flow, err := oauth.NewFlow(oauthCfg, store, cfg.RedirectPort, cfg.AuthTimeout, slog.Default())
			if err != nil {
				return err
			}

			rec, err := flow.Run(ctx)
			if err != nil {
				return fmt.Errorf("authentication failed: %w", err)
			}

			fmt.Printf("Authentication successful!\n")
			fmt.Printf("Token expires: %s\n", rec.ExpiresAt().Format(time.DateTime))

			return nil
		},
	}
}
