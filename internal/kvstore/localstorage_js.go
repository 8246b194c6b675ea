//go:build js && wasm

package kvstore

import (
	"context"
	"errors"
	"fmt"
	"syscall/js"
)

// LocalStorage implements Store over the browser's window.localStorage.
// Values are stored as strings; the JSON written by WriteJSON is readable by
// page scripts under the same keys.
type LocalStorage struct {
	ls js.Value
}

var _ Store = (*LocalStorage)(nil)

// NewLocalStorage binds to window.localStorage.
func NewLocalStorage() (*LocalStorage, error) {
	ls := js.Global().Get("localStorage")
	if ls.IsUndefined() || ls.IsNull() {
		return nil, errors.New("localStorage is not available")
	}
	return &LocalStorage{ls: ls}, nil
}

// call converts a thrown JS exception (e.g. QuotaExceededError) into an error.
func (s *LocalStorage) call(method string, args ...any) (v js.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("localStorage.%s: %v", method, r)
		}
	}()
	return s.ls.Call(method, args...), nil
}

func (s *LocalStorage) Get(_ context.Context, key string) ([]byte, error) {
	v, err := s.call("getItem", key)
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	if v.IsNull() || v.IsUndefined() {
		return nil, nil
	}
	return []byte(v.String()), nil
}

func (s *LocalStorage) Set(_ context.Context, key string, value []byte) error {
	if _, err := s.call("setItem", key, string(value)); err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

func (s *LocalStorage) Delete(_ context.Context, key string) error {
	if _, err := s.call("removeItem", key); err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

func (s *LocalStorage) List(ctx context.Context) (map[string][]byte, error) {
	n := s.ls.Get("length").Int()
	out := make(map[string][]byte, n)
	for i := 0; i < n; i++ {
		k, err := s.call("key", i)
		if err != nil {
			return nil, fmt.Errorf("failed to list kv: %w", err)
		}
		if k.IsNull() {
			continue
		}
		v, err := s.Get(ctx, k.String())
		if err != nil {
			return nil, err
		}
		out[k.String()] = v
	}
	return out, nil
}

// Clear removes only the askpro_* keys; other scripts on the same origin
// may share localStorage.
func (s *LocalStorage) Clear(ctx context.Context) error {
	for _, k := range []string{KeyQuestions, KeyCurrentUser, KeyUsers} {
		if err := s.Delete(ctx, k); err != nil {
			return err
		}
	}
	return nil
}

// Replace is not atomic: localStorage has no transactions, and a failure
// part way leaves the keys written so far.
func (s *LocalStorage) Replace(ctx context.Context, entries map[string][]byte) error {
	if err := s.Clear(ctx); err != nil {
		return err
	}
	for k, v := range entries {
		if err := s.Set(ctx, k, v); err != nil {
			return err
		}
	}
	return nil
}

func (s *LocalStorage) Close() error { return nil }
