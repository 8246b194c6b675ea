// Package questions stores the AskPro question collection, with answers
// embedded, under the askpro_questions key.
//
// The collection is loaded once and cached; every mutation rewrites the
// whole stored collection (last writer wins).
package questions

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
	"github.com/dmitrijs2005/askpro/internal/query"
)

type Repository struct {
	mu     sync.Mutex
	cache  []models.Question
	loaded bool

	store kvstore.Store
	ids   *ids.Allocator
	log   logging.Logger
}

type Option func(*Repository)

func WithAllocator(a *ids.Allocator) Option {
	return func(r *Repository) { r.ids = a }
}

func WithLogger(l logging.Logger) Option {
	return func(r *Repository) { r.log = l }
}

func New(store kvstore.Store, opts ...Option) *Repository {
	r := &Repository{store: store, ids: ids.New(), log: logging.NewNop()}
	for _, o := range opts {
		o(r)
	}
	r.log = r.log.With("component", "questions")
	return r
}

// Load returns the question collection. The first call reads the store; an
// absent or undecodable value is replaced by the seed collection, which is
// persisted before returning.
func (r *Repository) Load(ctx context.Context) ([]models.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.loadLocked(ctx); err != nil {
		return nil, err
	}
	return models.CloneQuestions(r.cache), nil
}

func (r *Repository) loadLocked(ctx context.Context) error {
	if r.loaded {
		return nil
	}

	var stored []models.Question
	found, err := kvstore.ReadJSON(ctx, r.store, kvstore.KeyQuestions, &stored)
	switch {
	case errors.Is(err, kvstore.ErrMalformed):
		r.log.Warn(ctx, "stored questions are malformed, reseeding", "error", err)
	case err != nil:
		return fmt.Errorf("load questions: %w", err)
	case found && stored != nil:
		for i := range stored {
			if stored[i].Answers == nil {
				stored[i].Answers = []models.Answer{}
			}
		}
		r.cache = stored
		r.loaded = true
		r.log.Debug(ctx, "questions loaded", "count", len(stored))
		return nil
	}

	seed := Seed()
	if err := r.writeLocked(ctx, seed); err != nil {
		return fmt.Errorf("seed questions: %w", err)
	}
	r.cache = seed
	r.loaded = true
	r.log.Info(ctx, "questions seeded", "count", len(seed))
	return nil
}

func (r *Repository) writeLocked(ctx context.Context, qs []models.Question) error {
	return kvstore.WriteJSON(ctx, r.store, kvstore.KeyQuestions, qs)
}

// Persist replaces the stored collection with qs.
func (r *Repository) Persist(ctx context.Context, qs []models.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := models.CloneQuestions(qs)
	if err := r.writeLocked(ctx, next); err != nil {
		return fmt.Errorf("persist questions: %w", err)
	}
	r.cache = next
	r.loaded = true
	return nil
}

// Filter narrows qs by search text and category; see query.Filter.
func (r *Repository) Filter(qs []models.Question, search string, category models.Category) []models.Question {
	return query.Filter(qs, search, category)
}

// FindByID returns the question with the given id or common.ErrNotFound.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.loadLocked(ctx); err != nil {
		return nil, err
	}
	q, ok := query.FindQuestion(r.cache, id)
	if !ok {
		return nil, fmt.Errorf("question %d: %w", id, common.ErrNotFound)
	}
	return q, nil
}

// AddQuestion creates a question authored by author and puts it at the
// front of the collection.
func (r *Repository) AddQuestion(ctx context.Context, title, description string, category models.Category, author models.Session) (*models.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.loadLocked(ctx); err != nil {
		return nil, err
	}

	q := models.Question{
		ID:          r.ids.NextQuestionID(r.cache),
		Title:       title,
		Description: description,
		Category:    category,
		UserID:      author.ID,
		Username:    author.Username,
		Timestamp:   r.ids.Today(),
		Answers:     []models.Answer{},
	}

	next := make([]models.Question, 0, len(r.cache)+1)
	next = append(next, q)
	next = append(next, r.cache...)

	if err := r.writeLocked(ctx, next); err != nil {
		return nil, fmt.Errorf("persist questions: %w", err)
	}
	r.cache = next

	r.log.Info(ctx, "question added", "question_id", q.ID, "category", q.Category, "user_id", author.ID)
	c := q.Clone()
	return &c, nil
}

// AddAnswer appends an answer by author to the question questionID.
func (r *Repository) AddAnswer(ctx context.Context, questionID int64, text string, author models.Session) (*models.Answer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.loadLocked(ctx); err != nil {
		return nil, err
	}

	idx := r.indexLocked(questionID)
	if idx < 0 {
		return nil, fmt.Errorf("question %d: %w", questionID, common.ErrNotFound)
	}

	a := models.Answer{
		ID:        r.ids.NextAnswerID(),
		Text:      text,
		UserID:    author.ID,
		Username:  author.Username,
		Likes:     0,
		Timestamp: r.ids.Today(),
	}

	next := models.CloneQuestions(r.cache)
	next[idx].Answers = append(next[idx].Answers, a)

	if err := r.writeLocked(ctx, next); err != nil {
		return nil, fmt.Errorf("persist questions: %w", err)
	}
	r.cache = next

	r.log.Info(ctx, "answer added", "question_id", questionID, "answer_id", a.ID, "user_id", author.ID)
	return &a, nil
}

// IncrementLike adds exactly one like to the answer answerID of question
// questionID. When either is unknown nothing is written and the error wraps
// common.ErrNotFound.
func (r *Repository) IncrementLike(ctx context.Context, questionID, answerID int64) (*models.Answer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.loadLocked(ctx); err != nil {
		return nil, err
	}

	qi := r.indexLocked(questionID)
	if qi < 0 {
		return nil, fmt.Errorf("question %d: %w", questionID, common.ErrNotFound)
	}
	ai := query.FindAnswer(r.cache[qi], answerID)
	if ai < 0 {
		return nil, fmt.Errorf("answer %d: %w", answerID, common.ErrNotFound)
	}

	next := models.CloneQuestions(r.cache)
	next[qi].Answers[ai].Likes++

	if err := r.writeLocked(ctx, next); err != nil {
		return nil, fmt.Errorf("persist questions: %w", err)
	}
	r.cache = next

	a := next[qi].Answers[ai]
	r.log.Debug(ctx, "answer liked", "question_id", questionID, "answer_id", answerID, "likes", a.Likes)
	return &a, nil
}

// Reset drops the cache so the next call reloads from the store.
func (r *Repository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = nil
	r.loaded = false
}

func (r *Repository) indexLocked(id int64) int {
	for i, q := range r.cache {
		if q.ID == id {
			return i
		}
	}
	return -1
}
