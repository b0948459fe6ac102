package services

import (
	"context"
	"errors"

	"trivia-api/internal/models"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Store is the persistence the trivia service needs. Lookups of a single
// record return ErrNotFound when it does not exist. List methods return
// records in ascending id order.
type Store interface {
	Ping(ctx context.Context) error

	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id uint) (*models.Category, error)

	CountQuestions(ctx context.Context) (int64, error)
	PageQuestions(ctx context.Context, offset, limit int) ([]models.Question, error)
	AllQuestions(ctx context.Context) ([]models.Question, error)
	QuestionsByCategory(ctx context.Context, categoryID uint) ([]models.Question, error)
	// SearchQuestions matches term as a case-insensitive substring of the
	// question text. Wildcard characters in term match literally.
	SearchQuestions(ctx context.Context, term string) ([]models.Question, error)
	GetQuestion(ctx context.Context, id uint) (*models.Question, error)
	CreateQuestion(ctx context.Context, q *models.Question) error
	DeleteQuestion(ctx context.Context, id uint) error
}
