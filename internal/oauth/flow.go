package oauth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"github.com/calery/whoopilot/internal/tokenstore"
	"github.com/calery/whoopilot/internal/xhttp"
	"github.com/calery/whoopilot/internal/xslog"
	"golang.org/x/oauth2"
)

const (
	shutdownTime   = 5 * time.Second
	DefaultTimeout = 180 * time.Second
)

type tokenResult struct {
	token *oauth2.Token
	err   error
}

// Flow performs a browser-mediated authorization-code exchange with PKCE.
// Each Flow carries its own state and verifier; a new Flow must be created
// per authorization attempt.
type Flow struct {
	config   *oauth2.Config
	store    *tokenstore.Store
	port     int
	timeout  time.Duration
	state    string
	verifier string
	logger   *slog.Logger
}

func NewFlow(config *oauth2.Config, store *tokenstore.Store, port int, timeout time.Duration, logger *slog.Logger) (*Flow, error) {
	state, err := GenerateState()
	if err != nil {
		return nil, fmt.Errorf("failed to generate state: %w", err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Flow{
		config:   config,
		store:    store,
		port:     port,
		timeout:  timeout,
		state:    state,
		verifier: oauth2.GenerateVerifier(),
		logger:   logger,
	}, nil
}

// Run opens the browser, waits for the redirect on the loopback listener,
// exchanges the code, and persists the resulting bundle under the whoop
// provider key. The wait is bounded by the flow timeout.
func (f *Flow) Run(ctx context.Context) (tokenstore.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	resultCh := make(chan tokenResult, 1)

	server, err := f.startCallbackServer(resultCh)
	if err != nil {
		return tokenstore.Record{}, fmt.Errorf("failed to start callback server: %w", err)
	}

	url := f.config.AuthCodeURL(f.state, oauth2.S256ChallengeOption(f.verifier))

	fmt.Printf("Opening browser for authorization...\n")
	fmt.Printf("If the browser doesn't open, visit:\n%s\n\n", url)

	if err := openBrowser(url); err != nil {
		f.logger.Warn("failed to open browser", xslog.Error(err))
	}

	select {
	case result := <-resultCh:
		shutdownServer(server)

		if result.err != nil {
			return tokenstore.Record{}, result.err
		}

		rec := recordFromToken(result.token, time.Now())
		if err := f.store.Put(tokenstore.ProviderWhoop, rec); err != nil {
			return tokenstore.Record{}, fmt.Errorf("failed to save token: %w", err)
		}
		return rec, nil

	case <-ctx.Done():
		shutdownServer(server)

		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return tokenstore.Record{}, &AuthError{Op: "authorize", Message: "authorization timed out"}
		}
		return tokenstore.Record{}, ctx.Err()
	}
}

// startCallbackServer listens on the configured loopback port. Only
// /callback is routed; anything else (favicon probes and the like) gets a
// 404 and can never touch the captured code. The buffered channel plus the
// non-blocking send below mean only the first callback outcome counts.
func (f *Flow) startCallbackServer(resultCh chan<- tokenResult) (*http.Server, error) {
	mux := http.NewServeMux()

	mux.HandleFunc(callbackPath, func(w http.ResponseWriter, r *http.Request) {
		token, err := f.handleCallback(w, r)
		select {
		case resultCh <- tokenResult{token: token, err: err}:
		default:
		}
	})

	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(f.port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	server := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			select {
			case resultCh <- tokenResult{err: fmt.Errorf("callback server error: %w", err)}:
			default:
			}
		}
	}()

	return server, nil
}

func (f *Flow) handleCallback(w http.ResponseWriter, r *http.Request) (*oauth2.Token, error) {
	if !ValidateState(f.state, r.URL.Query().Get("state")) {
		http.Error(w, "Invalid state parameter", http.StatusBadRequest)
		return nil, &AuthError{Op: "callback", Message: "state mismatch"}
	}

	if errParam := r.URL.Query().Get("error"); errParam != "" {
		errDesc := r.URL.Query().Get("error_description")
		http.Error(w, fmt.Sprintf("OAuth error: %s", errDesc), http.StatusBadRequest)
		return nil, &AuthError{Op: "callback", Message: fmt.Sprintf("authorization denied: %s - %s", errParam, errDesc)}
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "Missing authorization code", http.StatusBadRequest)
		return nil, &AuthError{Op: "callback", Message: "missing authorization code"}
	}

	token, err := f.config.Exchange(r.Context(), code, oauth2.VerifierOption(f.verifier))
	if err != nil {
		http.Error(w, "Failed to exchange authorization code", http.StatusInternalServerError)
		return nil, wrapTokenError("exchange", err)
	}

	writeSuccessHTML(w)
	return token, nil
}

func shutdownServer(server *http.Server) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTime)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
}

func writeSuccessHTML(w http.ResponseWriter) {
	xhttp.SetHeaderContentTypeTextHTML(w)
	_, _ = fmt.Fprint(w, `<!DOCTYPE html>
<html>
<head><title>Authorization Successful</title></head>
<body>
<h1>Authorization Successful</h1>
<p>You can close this window and return to the terminal.</p>
</body>
</html>`)
}

func openBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
