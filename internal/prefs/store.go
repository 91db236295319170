// Package prefs persists the small set of client settings (selected language, access token).
package prefs

import (
	"context"
	"fmt"

	"github.com/and161185/kid-clinic/internal/errs"
)

// Known preference keys.
const (
	KeyLanguage    = "selectedLanguage"
	KeyAccessToken = "access_token"
)

// DefaultLanguage is used when no language has been stored.
const DefaultLanguage = "en"

// Store is a string key/value store. Absence is reported with ok=false, never as "".
type Store interface {
	// Get returns the stored value and whether it exists.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores value under key (last write wins). Empty values are rejected; use Delete.
	Set(ctx context.Context, key, value string) error
	// Delete removes key; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// CheckEntry validates a key/value pair before it is written by any backend.
func CheckEntry(key, value string) error {
	if key == "" {
		return fmt.Errorf("prefs: empty key: %w", errs.ErrInvalidInput)
	}
	if value == "" {
		return fmt.Errorf("prefs: empty value for %q: %w", key, errs.ErrInvalidInput)
	}
	return nil
}

// Language returns the stored language code or DefaultLanguage.
func Language(ctx context.Context, s Store) string {
	v, ok, err := s.Get(ctx, KeyLanguage)
	if err != nil || !ok {
		return DefaultLanguage
	}
	return v
}

// Token returns the stored bearer token, if any.
func Token(ctx context.Context, s Store) (string, bool) {
	v, ok, err := s.Get(ctx, KeyAccessToken)
	if err != nil || !ok {
		return "", false
	}
	return v, true
}
