package oauth

import (
	"errors"
	"strconv"

	"golang.org/x/oauth2"
)

var (
	ErrNoToken      = errors.New("no token found - please authenticate first")
	ErrTokenExpired = errors.New("token expired and no refresh token available")
)

// AuthError is any failure of the authorization machinery: a rejected
// callback, a timed-out flow, or a token-endpoint HTTP failure (in which
// case StatusCode and Body carry the vendor's response).
type AuthError struct {
	Op         string // "authorize", "callback", "exchange", "refresh"
	Message    string
	StatusCode int
	Body       string
	Cause      error
}

func (e *AuthError) Error() string {
	msg := "oauth " + e.Op + ": " + e.Message
	if e.StatusCode != 0 {
		msg += " (status " + strconv.Itoa(e.StatusCode) + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *AuthError) Unwrap() error { return e.Cause }

// wrapTokenError converts a token-endpoint failure into an AuthError,
// preserving the HTTP status and response body when the oauth2 package
// exposes them.
func wrapTokenError(op string, err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		status := 0
		if retrieveErr.Response != nil {
			status = retrieveErr.Response.StatusCode
		}
		return &AuthError{
			Op:         op,
			Message:    "token endpoint rejected request",
			StatusCode: status,
			Body:       string(retrieveErr.Body),
			Cause:      err,
		}
	}
	return &AuthError{Op: op, Message: "token request failed", Cause: err}
}
