package main

import (
	"fmt"
	"log/slog"

	"github.com/calery/whoopilot/internal/client/copilot"
	"github.com/calery/whoopilot/internal/client/whoop"
	"github.com/calery/whoopilot/internal/config"
	"github.com/calery/whoopilot/internal/oauth"
	"github.com/calery/whoopilot/internal/paths"
	"github.com/calery/whoopilot/internal/tokenstore"
)

func readConfig() (config.Config, error) {
	cfg, err := config.Read()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return cfg, nil
}

func newTokenStore() (*tokenstore.Store, error) {
	if _, err := paths.EnsureDir(); err != nil {
		return nil, err
	}
	tokensPath, err := paths.Tokens()
	if err != nil {
		return nil, err
	}
	return tokenstore.New(tokensPath), nil
}

// newTokenManager wires the token source with an interactive flow fallback,
// so any command needing WHOOP data can authorize on first use.
func newTokenManager(cfg config.Config) (*oauth.Manager, error) {
	store, err := newTokenStore()
	if err != nil {
		return nil, err
	}

	oauthCfg := oauth.NewConfig(cfg.Whoop, cfg.RedirectPort)
	source := oauth.NewFileTokenSource(oauthCfg, store)

	return oauth.NewManager(source, func() (*oauth.Flow, error) {
		return oauth.NewFlow(oauthCfg, store, cfg.RedirectPort, cfg.AuthTimeout, slog.Default())
	}), nil
}

func newWhoopClient(cfg config.Config) (*whoop.Client, error) {
	manager, err := newTokenManager(cfg)
	if err != nil {
		return nil, err
	}
	return whoop.New(manager, whoop.WithBaseURL(cfg.Whoop.APIURL)), nil
}

func newCopilotClient(cfg config.Config) (*copilot.Client, error) {
	return copilot.New(cfg.Copilot.APIKey, copilot.WithBaseURL(cfg.Copilot.APIURL))
}
