package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Storage keys shared with the browser build.
const (
	KeyQuestions   = "askpro_questions"
	KeyCurrentUser = "askpro_current_user"
	KeyUsers       = "askpro_users"
)

// ErrMalformed marks a stored value that could not be decoded.
var ErrMalformed = errors.New("malformed stored value")

// Store describes a persistent byte-valued key-value store.
type Store interface {
	// Get returns the value under key, or (nil, nil) if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Removing an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns every key-value pair.
	List(ctx context.Context) (map[string][]byte, error)

	// Clear removes every key.
	Clear(ctx context.Context) error

	// Replace swaps the whole content for entries in one step: afterwards
	// exactly the keys of entries are present.
	Replace(ctx context.Context, entries map[string][]byte) error

	// Close releases resources held by the store.
	Close() error
}

// ReadJSON decodes the value under key into v. It reports found=false and a
// nil error when the key is absent; a value that does not decode yields an
// error wrapping ErrMalformed.
func ReadJSON(ctx context.Context, s Store, key string, v any) (bool, error) {
	data, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return true, fmt.Errorf("%w: %s: %v", ErrMalformed, key, err)
	}
	return true, nil
}

// WriteJSON encodes v and stores it under key.
func WriteJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.Set(ctx, key, data)
}

// Remove deletes key.
func Remove(ctx context.Context, s Store, key string) error {
	return s.Delete(ctx, key)
}
