package database

import (
	"context"
	"errors"
	"strings"

	"trivia-api/internal/models"
	"trivia-api/internal/services"

	"gorm.io/gorm"
)

// Store implements services.Store on top of GORM.
type Store struct {
	db *gorm.DB
}

var _ services.Store = (*Store)(nil)

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.WithContext(ctx).Order("id ASC").Find(&categories).Error
	return categories, err
}

func (s *Store) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	var cat models.Category
	if err := s.db.WithContext(ctx).First(&cat, id).Error; err != nil {
		return nil, translate(err)
	}
	return &cat, nil
}

func (s *Store) CountQuestions(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Question{}).Count(&n).Error
	return n, err
}

func (s *Store) PageQuestions(ctx context.Context, offset, limit int) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.WithContext(ctx).Order("id ASC").Offset(offset).Limit(limit).Find(&questions).Error
	return questions, err
}

func (s *Store) AllQuestions(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.WithContext(ctx).Order("id ASC").Find(&questions).Error
	return questions, err
}

func (s *Store) QuestionsByCategory(ctx context.Context, categoryID uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.WithContext(ctx).
		Where("category = ?", categoryID).
		Order("id ASC").
		Find(&questions).Error
	return questions, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchQuestions lowercases both sides in SQL rather than using ILIKE so
// the same query runs on postgres and sqlite. SQLite's LOWER folds ASCII
// only, so there non-ASCII letters match in their stored case.
func (s *Store) SearchQuestions(ctx context.Context, term string) ([]models.Question, error) {
	pattern := "%" + likeEscaper.Replace(term) + "%"

	var questions []models.Question
	err := s.db.WithContext(ctx).
		Where(`LOWER(question) LIKE LOWER(?) ESCAPE '\'`, pattern).
		Order("id ASC").
		Find(&questions).Error
	return questions, err
}

func (s *Store) GetQuestion(ctx context.Context, id uint) (*models.Question, error) {
	var q models.Question
	if err := s.db.WithContext(ctx).First(&q, id).Error; err != nil {
		return nil, translate(err)
	}
	return &q, nil
}

func (s *Store) CreateQuestion(ctx context.Context, q *models.Question) error {
	return s.db.WithContext(ctx).Create(q).Error
}

func (s *Store) DeleteQuestion(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Question{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return services.ErrNotFound
	}
	return nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return services.ErrNotFound
	}
	return err
}
