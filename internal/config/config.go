package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Whoop   Whoop   `envPrefix:"WHOOP_"`
	Copilot Copilot `envPrefix:"COPILOT_"`

	RedirectPort int           `env:"REDIRECT_PORT" envDefault:"8080"`
	AuthTimeout  time.Duration `env:"AUTH_TIMEOUT" envDefault:"180s"`
}

type Whoop struct {
	ClientID     string `env:"CLIENT_ID,required"`
	ClientSecret string `env:"CLIENT_SECRET,required"`
	AuthURL      string `env:"AUTH_URL" envDefault:"https://api.prod.whoop.com/oauth/oauth2/auth"`
	TokenURL     string `env:"TOKEN_URL" envDefault:"https://api.prod.whoop.com/oauth/oauth2/token"` //nolint:gosec // not credentials, just endpoint URL
	APIURL       string `env:"API_URL" envDefault:"https://api.prod.whoop.com/developer"`
	Scopes       string `env:"SCOPES" envDefault:"offline read:recovery read:sleep read:cycles read:workout read:profile"`
}

// Copilot credentials are validated by the copilot client, not here,
// so WHOOP-only commands work without a finance API key.
type Copilot struct {
	APIKey string `env:"API_KEY"`
	APIURL string `env:"API_URL" envDefault:"https://api.copilot.money"`
}

func Read() (Config, error) {
	return env.ParseAs[Config]()
}
