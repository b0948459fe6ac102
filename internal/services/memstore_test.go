package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"trivia-api/internal/models"
)

// memStore is an in-memory Store for service tests.
type memStore struct {
	mu         sync.Mutex
	categories map[uint]models.Category
	questions  map[uint]models.Question
	nextID     uint

	// failWith, when set, is returned by every method.
	failWith error
}

func newMemStore(categories ...string) *memStore {
	m := &memStore{
		categories: make(map[uint]models.Category),
		questions:  make(map[uint]models.Question),
	}
	for i, c := range categories {
		id := uint(i + 1)
		m.categories[id] = models.Category{ID: id, Type: c}
	}
	return m
}

func (m *memStore) add(q models.Question) models.Question {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	q.ID = m.nextID
	m.questions[q.ID] = q
	return q
}

func (m *memStore) sorted(keep func(models.Question) bool) []models.Question {
	var out []models.Question
	for _, q := range m.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *memStore) Ping(context.Context) error { return m.failWith }

func (m *memStore) ListCategories(context.Context) ([]models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	var out []models.Category
	for _, c := range m.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) GetCategory(_ context.Context, id uint) (*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	c, ok := m.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (m *memStore) CountQuestions(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return 0, m.failWith
	}
	return int64(len(m.questions)), nil
}

func (m *memStore) PageQuestions(_ context.Context, offset, limit int) ([]models.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	all := m.sorted(func(models.Question) bool { return true })
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *memStore) AllQuestions(context.Context) ([]models.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	return m.sorted(func(models.Question) bool { return true }), nil
}

func (m *memStore) QuestionsByCategory(_ context.Context, categoryID uint) ([]models.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	return m.sorted(func(q models.Question) bool { return q.CategoryID == categoryID }), nil
}

func (m *memStore) SearchQuestions(_ context.Context, term string) ([]models.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	term = strings.ToLower(term)
	return m.sorted(func(q models.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), term)
	}), nil
}

func (m *memStore) GetQuestion(_ context.Context, id uint) (*models.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	q, ok := m.questions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &q, nil
}

func (m *memStore) CreateQuestion(_ context.Context, q *models.Question) error {
	if m.failWith != nil {
		return m.failWith
	}
	*q = m.add(*q)
	return nil
}

func (m *memStore) DeleteQuestion(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	if _, ok := m.questions[id]; !ok {
		return ErrNotFound
	}
	delete(m.questions, id)
	return nil
}

var errStoreDown = errors.New("store down")

// fixedRand always picks the same index, clamped to n.
type fixedRand int

func (f fixedRand) Intn(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}
