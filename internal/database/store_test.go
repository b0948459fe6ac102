package database

import (
	"context"
	"fmt"
	"testing"

	"trivia-api/internal/config"
	"trivia-api/internal/models"
	"trivia-api/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}
	db, err := Connect(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))
	return db
}

func TestSeed(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	n, err := Seed(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, len(DefaultCategories), n)

	n, err = Seed(ctx, db)
	require.NoError(t, err)
	assert.Zero(t, n, "seeding twice must not duplicate categories")

	cats, err := NewStore(db).ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 6)
	assert.Equal(t, "Science", cats[0].Type)
	assert.Equal(t, "Sports", cats[5].Type)
}

func TestStoreQuestions(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	_, err := Seed(ctx, db)
	require.NoError(t, err)
	store := NewStore(db)

	input := []models.Question{
		{Question: "What is the heaviest organ in the human body?", Answer: "The Liver", CategoryID: 1, Difficulty: 4},
		{Question: "Which Dutch graphic artist initials M C was a creator of optical illusions?", Answer: "Escher", CategoryID: 2, Difficulty: 1},
		{Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", CategoryID: 2, Difficulty: 3},
		{Question: "What is 100% of nothing?", Answer: "Nothing", CategoryID: 1, Difficulty: 1},
	}
	for i := range input {
		require.NoError(t, store.CreateQuestion(ctx, &input[i]))
		assert.NotZero(t, input[i].ID)
	}

	n, err := store.CountQuestions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	page, err := store.PageQuestions(ctx, 2, 10)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, input[2].ID, page[0].ID)

	inArt, err := store.QuestionsByCategory(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, inArt, 2)

	got, err := store.GetQuestion(ctx, input[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "The Liver", got.Answer)

	require.NoError(t, store.DeleteQuestion(ctx, input[0].ID))
	_, err = store.GetQuestion(ctx, input[0].ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.ErrorIs(t, store.DeleteQuestion(ctx, input[0].ID), services.ErrNotFound)

	all, err := store.AllQuestions(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestStoreSearch(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	store := NewStore(db)

	for _, text := range []string{
		"What boxer's original name is Cassius Clay?",
		"What was the title of the 1990 fantasy directed by Tim Burton?",
		"Whose autobiography is ENTITLED 'I Know Why the Caged Bird Sings'?",
		"What is 100% of nothing?",
		"Which is the only team to play in every soccer World Cup?",
		"Who painted ÉTOILE?",
	} {
		require.NoError(t, store.CreateQuestion(ctx, &models.Question{Question: text, Answer: "x", CategoryID: 1, Difficulty: 1}))
	}

	got, err := store.SearchQuestions(ctx, "TiTlE")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = store.SearchQuestions(ctx, "%")
	require.NoError(t, err)
	require.Len(t, got, 1, "percent sign matches literally")
	assert.Contains(t, got[0].Question, "100%")

	got, err = store.SearchQuestions(ctx, "_")
	require.NoError(t, err)
	assert.Empty(t, got)

	// Non-ASCII terms are lowered by the database, not by Go, so both sides
	// fold the same way.
	for _, term := range []string{"ÉTOILE", "toile", "TOILE"} {
		got, err = store.SearchQuestions(ctx, term)
		require.NoError(t, err)
		require.Len(t, got, 1, term)
		assert.Contains(t, got[0].Question, "ÉTOILE", term)
	}
}

func TestStoreGetCategory(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	_, err := Seed(ctx, db)
	require.NoError(t, err)
	store := NewStore(db)

	cat, err := store.GetCategory(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Geography", cat.Type)

	_, err = store.GetCategory(ctx, 1000)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestStorePing(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, NewStore(db).Ping(context.Background()))
}
