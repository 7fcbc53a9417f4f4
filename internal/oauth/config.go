package oauth

import (
	"fmt"
	"strings"

	"github.com/calery/whoopilot/internal/config"
	"golang.org/x/oauth2"
)

const callbackPath = "/callback"

// NewConfig builds the oauth2 client config for WHOOP. The token endpoint
// expects client credentials via basic auth, hence AuthStyleInHeader.
func NewConfig(whoop config.Whoop, redirectPort int) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     whoop.ClientID,
		ClientSecret: whoop.ClientSecret,
		RedirectURL:  fmt.Sprintf("http://127.0.0.1:%d%s", redirectPort, callbackPath),
		Scopes:       strings.Fields(whoop.Scopes),
		Endpoint: oauth2.Endpoint{
			AuthURL:   whoop.AuthURL,
			TokenURL:  whoop.TokenURL,
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}
}
