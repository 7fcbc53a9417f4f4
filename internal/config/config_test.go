package config

import (
	"os"
	"testing"
	"time"
)

func TestReadDefaults(t *testing.T) {
	t.Setenv("WHOOP_CLIENT_ID", "client")
	t.Setenv("WHOOP_CLIENT_SECRET", "secret")

	cfg, err := Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if cfg.RedirectPort != 8080 {
		t.Errorf("RedirectPort = %d, want 8080", cfg.RedirectPort)
	}
	if cfg.AuthTimeout != 180*time.Second {
		t.Errorf("AuthTimeout = %v, want 180s", cfg.AuthTimeout)
	}
	if cfg.Whoop.APIURL != "https://api.prod.whoop.com/developer" {
		t.Errorf("Whoop.APIURL = %q", cfg.Whoop.APIURL)
	}
	if cfg.Copilot.APIURL != "https://api.copilot.money" {
		t.Errorf("Copilot.APIURL = %q", cfg.Copilot.APIURL)
	}
	if cfg.Copilot.APIKey != "" {
		t.Errorf("Copilot.APIKey = %q, want empty without env", cfg.Copilot.APIKey)
	}
}

func TestReadOverrides(t *testing.T) {
	t.Setenv("WHOOP_CLIENT_ID", "client")
	t.Setenv("WHOOP_CLIENT_SECRET", "secret")
	t.Setenv("WHOOP_SCOPES", "offline read:recovery")
	t.Setenv("COPILOT_API_KEY", "finance-key")
	t.Setenv("REDIRECT_PORT", "9999")
	t.Setenv("AUTH_TIMEOUT", "30s")

	cfg, err := Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if cfg.Whoop.Scopes != "offline read:recovery" {
		t.Errorf("Whoop.Scopes = %q", cfg.Whoop.Scopes)
	}
	if cfg.Copilot.APIKey != "finance-key" {
		t.Errorf("Copilot.APIKey = %q", cfg.Copilot.APIKey)
	}
	if cfg.RedirectPort != 9999 {
		t.Errorf("RedirectPort = %d", cfg.RedirectPort)
	}
	if cfg.AuthTimeout != 30*time.Second {
		t.Errorf("AuthTimeout = %v", cfg.AuthTimeout)
	}
}

func TestReadMissingWhoopCredentials(t *testing.T) {
	// t.Setenv registers the restore; the vars must be truly unset for the
	// required tag to trip
	for _, key := range []string{"WHOOP_CLIENT_ID", "WHOOP_CLIENT_SECRET"} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}

	if _, err := Read(); err == nil {
		t.Fatal("want error without WHOOP credentials")
	}
}
