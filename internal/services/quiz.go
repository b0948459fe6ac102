package services

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"trivia-api/internal/models"
)

// AllCategories selects the whole question set for a quiz.
const AllCategories uint = 0

// RandSource picks quiz questions. Intn must return a value in [0, n).
// *rand.Rand satisfies it but is not safe for concurrent use; see
// NewLockedRand.
type RandSource interface {
	Intn(n int) int
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewLockedRand returns a RandSource safe for concurrent requests. A zero
// seed seeds from the clock.
func NewLockedRand(seed int64) RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

// NextQuizQuestion picks a question from the category (or all categories)
// that is not in previous. It returns nil without error once every
// candidate has been asked.
func (s *TriviaService) NextQuizQuestion(ctx context.Context, categoryID uint, previous []uint) (*models.Question, error) {
	var (
		candidates []models.Question
		err        error
	)
	if categoryID == AllCategories {
		candidates, err = s.store.AllQuestions(ctx)
	} else {
		candidates, err = s.store.QuestionsByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("quiz candidates: %w", err)
	}

	asked := make(map[uint]struct{}, len(previous))
	for _, id := range previous {
		asked[id] = struct{}{}
	}

	remaining := make([]models.Question, 0, len(candidates))
	for _, q := range candidates {
		if _, ok := asked[q.ID]; !ok {
			remaining = append(remaining, q)
		}
	}
	if len(remaining) == 0 {
		return nil, nil
	}

	picked := remaining[s.rnd.Intn(len(remaining))]
	return &picked, nil
}
