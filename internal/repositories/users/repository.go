package users

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/askpro/internal/common"
	"github.com/dmitrijs2005/askpro/internal/ids"
	"github.com/dmitrijs2005/askpro/internal/kvstore"
	"github.com/dmitrijs2005/askpro/internal/logging"
	"github.com/dmitrijs2005/askpro/internal/models"
)

// Repository is the in-process account list.
type Repository struct {
	mu    sync.RWMutex
	users []models.User

	ids   *ids.Allocator
	log   logging.Logger
	store kvstore.Store // nil unless persistence is on
}

// Option customizes a Repository.
type Option func(*Repository)

// WithPersistence writes the account list through to store under
// kvstore.KeyUsers and reads it back on Initialize.
func WithPersistence(store kvstore.Store) Option {
	return func(r *Repository) { r.store = store }
}

// WithAllocator replaces the id/date allocator.
func WithAllocator(a *ids.Allocator) Option {
	return func(r *Repository) { r.ids = a }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(r *Repository) { r.log = l }
}

// New returns an empty repository; call Initialize before use.
func New(opts ...Option) *Repository {
	r := &Repository{ids: ids.New(), log: logging.NewNop()}
	for _, o := range opts {
		o(r)
	}
	r.log = r.log.With("component", "users")
	return r
}

// Initialize loads the seed accounts, or the persisted list when
// persistence is on and a well-formed list is stored.
func (r *Repository) Initialize(ctx context.Context) error {
	list := Seed()

	if r.store != nil {
		var stored []models.User
		found, err := kvstore.ReadJSON(ctx, r.store, kvstore.KeyUsers, &stored)
		switch {
		case errors.Is(err, kvstore.ErrMalformed):
			r.log.Warn(ctx, "stored users are malformed, reseeding", "error", err)
		case err != nil:
			return fmt.Errorf("load users: %w", err)
		case found && stored != nil:
			list = stored
		}
		if !found || stored == nil || err != nil {
			if err := kvstore.WriteJSON(ctx, r.store, kvstore.KeyUsers, list); err != nil {
				return fmt.Errorf("seed users: %w", err)
			}
		}
	}

	r.mu.Lock()
	r.users = list
	r.mu.Unlock()

	r.log.Debug(ctx, "users initialized", "count", len(list), "persistent", r.store != nil)
	return nil
}

// FindByCredential returns the account whose username or email equals
// identifier and whose password equals secret. Comparison is exact and
// case-sensitive; the first match wins.
func (r *Repository) FindByCredential(identifier, secret string) (*models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if (u.Username == identifier || u.Email == identifier) && u.Password == secret {
			c := u
			return &c, true
		}
	}
	return nil, false
}

// FindByHandle returns the account with the exact username.
func (r *Repository) FindByHandle(handle string) (*models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == handle {
			c := u
			return &c, true
		}
	}
	return nil, false
}

func (r *Repository) FindByID(id int64) (*models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			c := u
			return &c, true
		}
	}
	return nil, false
}

// ExistsByHandleOrEmail reports whether handle or email is already taken.
func (r *Repository) ExistsByHandleOrEmail(handle, email string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.existsLocked(handle, email)
}

func (r *Repository) existsLocked(handle, email string) bool {
	for _, u := range r.users {
		if u.Username == handle || u.Email == email {
			return true
		}
	}
	return false
}

// All returns a copy of the account list in id order of creation.
func (r *Repository) All() []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out
}

// Create appends a new account. It fails with common.ErrAlreadyExists when
// the username or email is taken; nothing is modified in that case.
func (r *Repository) Create(ctx context.Context, handle, email, secret, displayName string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.existsLocked(handle, email) {
		return nil, fmt.Errorf("username or email already exists: %w", common.ErrAlreadyExists)
	}

	u := models.User{
		ID:           r.ids.NextUserID(r.users),
		Username:     handle,
		Email:        email,
		Password:     secret,
		FullName:     displayName,
		Bio:          models.WelcomeBio,
		ProfileImage: models.DefaultAvatar,
		Joined:       r.ids.Today(),
	}

	next := append(r.users[:len(r.users):len(r.users)], u)
	if r.store != nil {
		if err := kvstore.WriteJSON(ctx, r.store, kvstore.KeyUsers, next); err != nil {
			return nil, fmt.Errorf("persist users: %w", err)
		}
	}
	r.users = next

	r.log.Info(ctx, "user created", "user_id", u.ID, "username", u.Username)
	c := u
	return &c, nil
}
