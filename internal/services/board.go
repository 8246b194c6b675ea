package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/askpro/internal/common"
	"github.com/dmitrijs2005/askpro/internal/logging"
	"github.com/dmitrijs2005/askpro/internal/models"
	"github.com/dmitrijs2005/askpro/internal/query"
)

// BoardService defines the question board operations.
//
// Ask and Answer require a logged-in session and fail with
// common.ErrUnauthorized otherwise. Like does not: the board lets anyone
// like an answer.
type BoardService interface {
	List(ctx context.Context, search string, category models.Category) ([]models.Question, error)
	Question(ctx context.Context, id int64) (*models.Question, error)
	Ask(ctx context.Context, title, description string, category models.Category) (*models.Question, error)
	Answer(ctx context.Context, questionID int64, text string) (*models.Answer, error)
	Like(ctx context.Context, questionID, answerID int64) (*models.Answer, error)
	Profile(ctx context.Context, handle string) (*models.Profile, error)
}

type boardService struct {
	users     UserRepository
	questions QuestionRepository
	sessions  SessionStore
	log       logging.Logger
}

func NewBoardService(users UserRepository, questions QuestionRepository, sessions SessionStore, log logging.Logger) BoardService {
	if log == nil {
		log = logging.NewNop()
	}
	return &boardService{users: users, questions: questions, sessions: sessions, log: log.With("service", "board")}
}

// List returns the questions matching search and category. An empty
// category means every category.
func (b *boardService) List(ctx context.Context, search string, category models.Category) ([]models.Question, error) {
	qs, err := b.questions.Load(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" {
		category = models.CategoryAll
	}
	return b.questions.Filter(qs, search, category), nil
}

func (b *boardService) Question(ctx context.Context, id int64) (*models.Question, error) {
	return b.questions.FindByID(ctx, id)
}

func (b *boardService) requireSession(ctx context.Context, action string) (*models.Session, error) {
	s, err := b.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("please login to %s: %w", action, common.ErrUnauthorized)
	}
	return s, nil
}

func (b *boardService) Ask(ctx context.Context, title, description string, category models.Category) (*models.Question, error) {
	author, err := b.requireSession(ctx, "ask a question")
	if err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" || category == "" {
		return nil, fmt.Errorf("please fill in all fields: %w", common.ErrValidation)
	}
	if _, ok := models.ParseCategory(string(category)); !ok {
		return nil, fmt.Errorf("unknown category %q: %w", category, common.ErrValidation)
	}

	return b.questions.AddQuestion(ctx, title, description, category, *author)
}

func (b *boardService) Answer(ctx context.Context, questionID int64, text string) (*models.Answer, error) {
	author, err := b.requireSession(ctx, "post an answer")
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("please write an answer before submitting: %w", common.ErrValidation)
	}

	return b.questions.AddAnswer(ctx, questionID, text, *author)
}

func (b *boardService) Like(ctx context.Context, questionID, answerID int64) (*models.Answer, error) {
	return b.questions.IncrementLike(ctx, questionID, answerID)
}

// Profile aggregates the activity of the account with the given handle.
func (b *boardService) Profile(ctx context.Context, handle string) (*models.Profile, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return nil, fmt.Errorf("no user specified: %w", common.ErrValidation)
	}

	u, ok := b.users.FindByHandle(handle)
	if !ok {
		return nil, fmt.Errorf("user %q: %w", handle, common.ErrNotFound)
	}

	qs, err := b.questions.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &models.Profile{
		User:      models.SessionOf(*u),
		Joined:    u.Joined,
		Stats:     query.StatsForUser(qs, u.ID),
		Questions: query.QuestionsByUser(qs, u.ID),
		Answers:   query.AnswersByUser(qs, u.ID),
	}, nil
}
