// Package tokenstore persists OAuth token bundles in a single JSON file,
// keyed by provider name. The file is read on every authorized call and
// overwritten on every successful authorization or refresh.
package tokenstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	go_json "github.com/goccy/go-json"
)

const ProviderWhoop = "whoop"

// Record is one provider's cached token bundle. IssuedAt is stamped locally
// when the bundle is stored; the vendor only reports ExpiresIn.
type Record struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
	Scope        string `json:"scope,omitempty"`
	ExpiresIn    int64  `json:"expires_in"`
	IssuedAt     int64  `json:"issued_at"`
}

// ExpiresAt is IssuedAt + ExpiresIn. A record that was never stamped with
// an issued_at reports the zero time and is treated as already expired.
func (r Record) ExpiresAt() time.Time {
	if r.IssuedAt == 0 {
		return time.Time{}
	}
	return time.Unix(r.IssuedAt+r.ExpiresIn, 0)
}

// Valid reports whether the access token is still usable at now, leaving
// margin before the actual expiry.
func (r Record) Valid(now time.Time, margin time.Duration) bool {
	if r.AccessToken == "" || r.IssuedAt == 0 {
		return false
	}
	return now.Before(r.ExpiresAt().Add(-margin))
}

var ErrNotFound = errors.New("no token record for provider")

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Get(provider string) (Record, error) {
	records, err := s.read()
	if err != nil {
		return Record{}, err
	}
	rec, ok := records[provider]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// Put overwrites the provider's bundle, preserving every other provider's
// entry in the file.
func (s *Store) Put(provider string, rec Record) error {
	records, err := s.read()
	if err != nil {
		return err
	}
	records[provider] = rec
	return s.write(records)
}

func (s *Store) Delete(provider string) error {
	records, err := s.read()
	if err != nil {
		return err
	}
	delete(records, provider)
	return s.write(records)
}

// read returns the on-disk map, defaulting to an empty map when the file is
// missing or unreadable rather than failing the caller.
func (s *Store) read() (map[string]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]Record{}, nil
		}
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	var records map[string]Record
	if err := go_json.Unmarshal(data, &records); err != nil {
		return map[string]Record{}, nil
	}
	if records == nil {
		records = map[string]Record{}
	}
	return records, nil
}

func (s *Store) write(records map[string]Record) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	data, err := go_json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode tokens: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace token file: %w", err)
	}
	return nil
}
