package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"trivia-api/internal/models"
)

const QuestionsPerPage = 10

type TriviaService struct {
	store Store
	rnd   RandSource
}

func NewTriviaService(store Store, rnd RandSource) *TriviaService {
	return &TriviaService{store: store, rnd: rnd}
}

func (s *TriviaService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// CategoryMap returns category type names keyed by the decimal id, the
// shape the web client indexes by.
func (s *TriviaService) CategoryMap(ctx context.Context) (map[string]string, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	m := make(map[string]string, len(categories))
	for _, c := range categories {
		m[strconv.FormatUint(uint64(c.ID), 10)] = c.Type
	}
	return m, nil
}

type QuestionPage struct {
	Questions  []models.Question
	Total      int64
	Categories map[string]string
}

// ListQuestions returns the 1-based page of questions. Pages below 1 are
// treated as the first page. An empty question set is ErrNotFound, a page
// past the end is not.
func (s *TriviaService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.store.CountQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("count questions: %w", err)
	}
	if total == 0 {
		return nil, fmt.Errorf("no questions: %w", ErrNotFound)
	}

	// Checked before computing the offset, which overflows for huge pages.
	questions := []models.Question{}
	if int64(page-1) < (total+QuestionsPerPage-1)/QuestionsPerPage {
		questions, err = s.page(ctx, page)
		if err != nil {
			return nil, err
		}
	}

	categories, err := s.CategoryMap(ctx)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{Questions: questions, Total: total, Categories: categories}, nil
}

func (s *TriviaService) page(ctx context.Context, page int) ([]models.Question, error) {
	questions, err := s.store.PageQuestions(ctx, (page-1)*QuestionsPerPage, QuestionsPerPage)
	if err != nil {
		return nil, fmt.Errorf("page questions: %w", err)
	}
	if questions == nil {
		questions = []models.Question{}
	}
	return questions, nil
}

// DeleteQuestion removes the question and returns the first page of what
// remains.
func (s *TriviaService) DeleteQuestion(ctx context.Context, id uint) ([]models.Question, error) {
	if _, err := s.store.GetQuestion(ctx, id); err != nil {
		return nil, fmt.Errorf("get question %d: %w", id, err)
	}
	if err := s.store.DeleteQuestion(ctx, id); err != nil {
		return nil, fmt.Errorf("delete question %d: %w", id, err)
	}
	return s.page(ctx, 1)
}

type QuestionInput struct {
	Question   string
	Answer     string
	CategoryID uint
	Difficulty int
}

// CreateQuestion validates the input and persists it. Missing fields and an
// unknown category are reported as ErrInvalidInput.
func (s *TriviaService) CreateQuestion(ctx context.Context, in QuestionInput) (*models.Question, error) {
	question := strings.TrimSpace(in.Question)
	answer := strings.TrimSpace(in.Answer)
	switch {
	case question == "":
		return nil, fmt.Errorf("question text is required: %w", ErrInvalidInput)
	case answer == "":
		return nil, fmt.Errorf("answer is required: %w", ErrInvalidInput)
	case in.CategoryID == 0:
		return nil, fmt.Errorf("category is required: %w", ErrInvalidInput)
	case in.Difficulty < 1:
		return nil, fmt.Errorf("difficulty must be positive: %w", ErrInvalidInput)
	}

	if _, err := s.store.GetCategory(ctx, in.CategoryID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("category %d does not exist: %w", in.CategoryID, ErrInvalidInput)
		}
		return nil, fmt.Errorf("get category %d: %w", in.CategoryID, err)
	}

	q := &models.Question{
		Question:   question,
		Answer:     answer,
		CategoryID: in.CategoryID,
		Difficulty: in.Difficulty,
	}
	if err := s.store.CreateQuestion(ctx, q); err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return q, nil
}

// SearchQuestions returns questions whose text contains term, ignoring
// case. A blank term is ErrInvalidInput; no matches is an empty result.
func (s *TriviaService) SearchQuestions(ctx context.Context, term string) ([]models.Question, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, fmt.Errorf("search term is required: %w", ErrInvalidInput)
	}
	questions, err := s.store.SearchQuestions(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	if questions == nil {
		questions = []models.Question{}
	}
	return questions, nil
}

func (s *TriviaService) QuestionsByCategory(ctx context.Context, categoryID uint) ([]models.Question, error) {
	if _, err := s.store.GetCategory(ctx, categoryID); err != nil {
		return nil, fmt.Errorf("get category %d: %w", categoryID, err)
	}
	questions, err := s.store.QuestionsByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("questions in category %d: %w", categoryID, err)
	}
	if questions == nil {
		questions = []models.Question{}
	}
	return questions, nil
}
