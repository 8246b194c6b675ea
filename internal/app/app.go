// Package app wires a kvstore.Store into the AskPro repositories and
// services. Both the CLI and the browser build go through New so they share
// one initialization path.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/askpro/internal/config"
	"github.com/dmitrijs2005/askpro/internal/ids"
	"github.com/dmitrijs2005/askpro/internal/kvstore"
	"github.com/dmitrijs2005/askpro/internal/logging"
	"github.com/dmitrijs2005/askpro/internal/repositories/questions"
	"github.com/dmitrijs2005/askpro/internal/repositories/users"
	"github.com/dmitrijs2005/askpro/internal/services"
	"github.com/dmitrijs2005/askpro/internal/session"
)

type App struct {
	Store     kvstore.Store
	Users     *users.Repository
	Questions *questions.Repository
	Sessions  *session.Manager
	Auth      services.AuthService
	Board     services.BoardService

	persistUsers bool
	log          logging.Logger
}

type Options struct {
	PersistUsers bool
	Allocator    *ids.Allocator
	Logger       logging.Logger
}

// New initializes the repositories over store and loads the question
// collection, seeding it on first run.
func New(ctx context.Context, store kvstore.Store, opts Options) (*App, error) {
	log := opts.Logger
	if log == nil {
		log = logging.NewNop()
	}
	alloc := opts.Allocator
	if alloc == nil {
		alloc = ids.New()
	}

	userOpts := []users.Option{users.WithAllocator(alloc), users.WithLogger(log)}
	if opts.PersistUsers {
		userOpts = append(userOpts, users.WithPersistence(store))
	}
	ur := users.New(userOpts...)
	if err := ur.Initialize(ctx); err != nil {
		return nil, err
	}

	qr := questions.New(store, questions.WithAllocator(alloc), questions.WithLogger(log))
	if _, err := qr.Load(ctx); err != nil {
		return nil, err
	}

	sm := session.NewManager(store, log)

	return &App{
		Store:     store,
		Users:     ur,
		Questions: qr,
		Sessions:  sm,
		Auth:      services.NewAuthService(ur, sm, log),
		Board:     services.NewBoardService(ur, qr, sm, log),

		persistUsers: opts.PersistUsers,
		log:          log,
	}, nil
}

// Open builds the store described by cfg and wires it with New.
func Open(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.NewNop()
	}
	store, err := kvstore.Open(ctx, cfg.StoreOptions())
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}

	a, err := New(ctx, store, Options{PersistUsers: cfg.PersistUsers, Logger: log})
	if err != nil {
		return nil, errors.Join(err, store.Close())
	}
	log.Info(ctx, "store opened", "backend", cfg.Backend, "persist_users", cfg.PersistUsers)
	return a, nil
}

// Reset replaces the stored content with the seed collections in one step,
// which also logs out, then reloads the repositories.
func (a *App) Reset(ctx context.Context) error {
	entries := map[string][]byte{}

	qs, err := json.Marshal(questions.Seed())
	if err != nil {
		return err
	}
	entries[kvstore.KeyQuestions] = qs

	if a.persistUsers {
		us, err := json.Marshal(users.Seed())
		if err != nil {
			return err
		}
		entries[kvstore.KeyUsers] = us
	}

	if err := a.Store.Replace(ctx, entries); err != nil {
		return err
	}

	a.Questions.Reset()
	if _, err := a.Questions.Load(ctx); err != nil {
		return err
	}
	if err := a.Users.Initialize(ctx); err != nil {
		return err
	}
	a.log.Info(ctx, "store reset to seed data")
	return nil
}

func (a *App) Close() error {
	return a.Store.Close()
}
