package goals

import (
	"path/filepath"
	"testing"

	"github.com/goalverse/goalverse/internal/config"
	"github.com/goalverse/goalverse/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	cfg := &config.Config{
		DBPath: filepath.Join(t.TempDir(), "test.sqlite3"),
	}

	db, err := storage.NewDB(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewService(db)
}

func TestCreateAndGetGoal(t *testing.T) {
	service := newTestService(t)

	goal := &Goal{
		Title:       "Build a daily exercise habit",
		Description: "30 minutes each morning",
		Category:    "fitness",
	}

	require.NoError(t, service.Create(goal))
	assert.NotZero(t, goal.ID)

	fetched, err := service.Get(goal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Build a daily exercise habit", fetched.Title)
	assert.Equal(t, "fitness", fetched.Category)
	assert.False(t, fetched.Completed)
}

func TestCreateRejectsEmptyTitle(t *testing.T) {
	service := newTestService(t)

	err := service.Create(&Goal{Title: "   "})
	assert.Error(t, err)
}

func TestToggleComplete(t *testing.T) {
	service := newTestService(t)

	goal := &Goal{Title: "Memorize a new surah"}
	require.NoError(t, service.Create(goal))

	toggled, err := service.ToggleComplete(goal.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	toggled, err = service.ToggleComplete(goal.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)
}

func TestListActive(t *testing.T) {
	service := newTestService(t)

	first := &Goal{Title: "Read more"}
	second := &Goal{Title: "Sleep earlier"}
	require.NoError(t, service.Create(first))
	require.NoError(t, service.Create(second))

	_, err := service.ToggleComplete(first.ID)
	require.NoError(t, err)

	active, err := service.ListActive()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Sleep earlier", active[0].Title)
}

func TestDelete(t *testing.T) {
	service := newTestService(t)

	goal := &Goal{Title: "Short-lived goal"}
	require.NoError(t, service.Create(goal))

	require.NoError(t, service.Delete(goal.ID))

	_, err := service.Get(goal.ID)
	assert.Error(t, err)

	assert.Error(t, service.Delete(goal.ID))
}

func TestSearchText(t *testing.T) {
	goal := &Goal{Title: "Run", Description: "5k three times a week", Category: "fitness"}
	assert.Equal(t, "Run 5k three times a week fitness", goal.SearchText())

	bare := &Goal{Title: "Run"}
	assert.Equal(t, "Run", bare.SearchText())
}
