package services

import (
	"context"

	"github.com/dmitrijs2005/askpro/internal/models"
)

// UserRepository is the account list used by the services.
type UserRepository interface {
	FindByCredential(identifier, secret string) (*models.User, bool)
	FindByHandle(handle string) (*models.User, bool)
	Create(ctx context.Context, handle, email, secret, displayName string) (*models.User, error)
}

// QuestionRepository is the question collection used by the services.
type QuestionRepository interface {
	Load(ctx context.Context) ([]models.Question, error)
	Filter(qs []models.Question, search string, category models.Category) []models.Question
	FindByID(ctx context.Context, id int64) (*models.Question, error)
	AddQuestion(ctx context.Context, title, description string, category models.Category, author models.Session) (*models.Question, error)
	AddAnswer(ctx context.Context, questionID int64, text string, author models.Session) (*models.Answer, error)
	IncrementLike(ctx context.Context, questionID, answerID int64) (*models.Answer, error)
}

// SessionStore keeps the logged-in user.
type SessionStore interface {
	Current(ctx context.Context) (*models.Session, error)
	Establish(ctx context.Context, u models.User) (*models.Session, error)
	Clear(ctx context.Context) error
}
