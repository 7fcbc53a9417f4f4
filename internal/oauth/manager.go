package oauth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
)

// Manager returns a currently-valid access token: the cached one when still
// fresh, a refreshed one when possible, and otherwise the result of a full
// interactive authorization.
type Manager struct {
	source  *FileTokenSource
	newFlow func() (*Flow, error)
}

var _ oauth2.TokenSource = (*Manager)(nil)

func NewManager(source *FileTokenSource, newFlow func() (*Flow, error)) *Manager {
	return &Manager{source: source, newFlow: newFlow}
}

func (m *Manager) Token() (*oauth2.Token, error) {
	token, err := m.source.Token()
	if err == nil {
		return token, nil
	}
	if !errors.Is(err, ErrNoToken) && !errors.Is(err, ErrTokenExpired) {
		return nil, err
	}

	flow, err := m.newFlow()
	if err != nil {
		return nil, fmt.Errorf("failed to prepare authorization flow: %w", err)
	}
	if _, err := flow.Run(context.Background()); err != nil {
		return nil, err
	}

	m.source.Invalidate()
	return m.source.Token()
}

// Invalidate forwards to the underlying source.
func (m *Manager) Invalidate() { m.source.Invalidate() }
