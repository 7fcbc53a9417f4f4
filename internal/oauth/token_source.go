package oauth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/calery/whoopilot/internal/tokenstore"
	"github.com/calery/whoopilot/internal/xhttp"
	"golang.org/x/oauth2"
)

// expiryMargin is subtracted from a token's lifetime before deciding it is
// still usable, so a token is never presented to the API moments before it
// lapses.
const expiryMargin = 60 * time.Second

const tokenRequestTimeout = 30 * time.Second

// FileTokenSource implements oauth2.TokenSource over the JSON token store.
// A valid cached token is returned without any network traffic; an expired
// record with a refresh token triggers exactly one refresh request and the
// store is overwritten with the new bundle.
type FileTokenSource struct {
	config   *oauth2.Config
	store    *tokenstore.Store
	provider string

	mu    sync.Mutex
	token *oauth2.Token
}

var _ oauth2.TokenSource = (*FileTokenSource)(nil)

func NewFileTokenSource(config *oauth2.Config, store *tokenstore.Store) *FileTokenSource {
	return &FileTokenSource{
		config:   config,
		store:    store,
		provider: tokenstore.ProviderWhoop,
	}
}

func (s *FileTokenSource) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	if s.token != nil && now.Before(s.token.Expiry.Add(-expiryMargin)) {
		return s.token, nil
	}

	rec, err := s.store.Get(s.provider)
	if err != nil {
		if errors.Is(err, tokenstore.ErrNotFound) {
			return nil, ErrNoToken
		}
		return nil, err
	}

	if rec.Valid(now, expiryMargin) {
		s.token = tokenFromRecord(rec)
		return s.token, nil
	}

	if rec.RefreshToken == "" {
		return nil, ErrTokenExpired
	}

	ctx, cancel := context.WithTimeout(context.Background(), tokenRequestTimeout)
	defer cancel()
	ctx = context.WithValue(ctx, oauth2.HTTPClient, xhttp.NewHTTPClient(xhttp.WithTimeout(tokenRequestTimeout)))

	newToken, err := s.config.TokenSource(ctx, tokenFromRecord(rec)).Token()
	if err != nil {
		return nil, wrapTokenError("refresh", err)
	}

	if err := s.store.Put(s.provider, recordFromToken(newToken, time.Now())); err != nil {
		return nil, err
	}

	s.token = newToken
	return newToken, nil
}

// Invalidate drops the in-memory token so the next Token call re-reads the
// store and refreshes if needed. Used after the API reports a 401.
func (s *FileTokenSource) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = nil
}

func (s *FileTokenSource) HasToken() (bool, error) {
	_, err := s.store.Get(s.provider)
	if err != nil {
		if errors.Is(err, tokenstore.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func tokenFromRecord(rec tokenstore.Record) *oauth2.Token {
	tokenType := rec.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}
	return &oauth2.Token{
		AccessToken:  rec.AccessToken,
		RefreshToken: rec.RefreshToken,
		TokenType:    tokenType,
		Expiry:       rec.ExpiresAt(),
	}
}

func recordFromToken(token *oauth2.Token, now time.Time) tokenstore.Record {
	expiresIn := int64(time.Until(token.Expiry).Seconds())
	if token.Expiry.IsZero() {
		expiresIn = 0
	}
	scope, _ := token.Extra("scope").(string)
	return tokenstore.Record{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		Scope:        scope,
		ExpiresIn:    expiresIn,
		IssuedAt:     now.Unix(),
	}
}
