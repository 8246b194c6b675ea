// Package session persists the logged-in user under askpro_current_user.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/askpro/internal/kvstore"
	"github.com/dmitrijs2005/askpro/internal/logging"
	"github.com/dmitrijs2005/askpro/internal/models"
)

type Manager struct {
	store kvstore.Store
	log   logging.Logger
}

func NewManager(store kvstore.Store, log logging.Logger) *Manager {
	if log == nil {
		log = logging.NewNop()
	}
	return &Manager{store: store, log: log.With("component", "session")}
}

// Current returns the stored session, or nil when nobody is logged in. A
// stored value that does not decode, or a stored null, is treated as logged out.
func (m *Manager) Current(ctx context.Context) (*models.Session, error) {
	var s *models.Session
	found, err := kvstore.ReadJSON(ctx, m.store, kvstore.KeyCurrentUser, &s)
	if errors.Is(err, kvstore.ErrMalformed) {
		m.log.Warn(ctx, "stored session is malformed, ignoring", "error", err)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if !found || s == nil {
		return nil, nil
	}
	return s, nil
}

// Establish stores the session projection of u, replacing any previous one.
func (m *Manager) Establish(ctx context.Context, u models.User) (*models.Session, error) {
	s := models.SessionOf(u)
	if err := kvstore.WriteJSON(ctx, m.store, kvstore.KeyCurrentUser, s); err != nil {
		return nil, fmt.Errorf("write session: %w", err)
	}
	m.log.Info(ctx, "session established", "user_id", s.ID, "username", s.Username)
	return &s, nil
}

// Clear logs out. Clearing an absent session is a no-op.
func (m *Manager) Clear(ctx context.Context) error {
	if err := kvstore.Remove(ctx, m.store, kvstore.KeyCurrentUser); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	m.log.Debug(ctx, "session cleared")
	return nil
}
