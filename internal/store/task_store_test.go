package store

import (
	"context"
	"testing"
	"time"

	"task-list-web/internal/models"
	"task-list-web/internal/testutil"

	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := time.Parse(models.DateLayout, s)
	require.NoError(t, err)
	return &d
}

func titles(tasks []models.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.Title)
	}
	return out
}

func newStore(t *testing.T) *TaskStore {
	return NewTaskStore(testutil.NewInMemoryDB(t))
}

func TestCreate_DefaultsToActive(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	task, err := s.Create(ctx, NewTask{Title: "Buy milk"})
	require.NoError(t, err)
	require.NotZero(t, task.ID)
	require.False(t, task.Completed)
	require.False(t, task.CreatedAt.IsZero())

	got, err := s.Get(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, "Buy milk", got.Title)
	require.False(t, got.Completed)
	require.Nil(t, got.Description)
	require.Nil(t, got.DueDate)
}

func TestCreate_KeepsDueDate(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	task, err := s.Create(ctx, NewTask{Title: "Taxes", DueDate: date(t, "2025-04-15")})
	require.NoError(t, err)

	got, err := s.Get(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DueDate)
	require.Equal(t, "2025-04-15", got.DueDate.Format(models.DateLayout))
}

func TestList_StatusFilter(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	a, _ := s.Create(ctx, NewTask{Title: "a"})
	_, _ = s.Create(ctx, NewTask{Title: "b"})
	c, _ := s.Create(ctx, NewTask{Title: "c"})
	_, err := s.ToggleCompleted(ctx, a.ID)
	require.NoError(t, err)
	_, err = s.ToggleCompleted(ctx, c.ID)
	require.NoError(t, err)

	all, err := s.List(ctx, models.StatusAll, models.SortTitle)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, titles(all))

	done, err := s.List(ctx, models.StatusCompleted, models.SortTitle)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "c"}, titles(done))
	for _, task := range done {
		require.True(t, task.Completed)
	}

	active, err := s.List(ctx, models.StatusActive, models.SortTitle)
	require.NoError(t, err)
	require.Equal(t, []string{"b"}, titles(active))
}

func TestList_SortByDueDate_NullsLast(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	_, _ = s.Create(ctx, NewTask{Title: "undated-1"})
	_, _ = s.Create(ctx, NewTask{Title: "late", DueDate: date(t, "2025-12-31")})
	_, _ = s.Create(ctx, NewTask{Title: "undated-2"})
	_, _ = s.Create(ctx, NewTask{Title: "early", DueDate: date(t, "2025-01-02")})
	_, _ = s.Create(ctx, NewTask{Title: "middle", DueDate: date(t, "2025-06-01")})

	tasks, err := s.List(ctx, models.StatusAll, models.SortDueDate)
	require.NoError(t, err)
	require.Equal(t, []string{"early", "middle", "late", "undated-1", "undated-2"}, titles(tasks))
}

func TestList_SortByTitleAndCreatedAt(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	_, _ = s.Create(ctx, NewTask{Title: "banana"})
	_, _ = s.Create(ctx, NewTask{Title: "apple"})
	_, _ = s.Create(ctx, NewTask{Title: "cherry"})

	byTitle, err := s.List(ctx, models.StatusAll, models.SortTitle)
	require.NoError(t, err)
	require.Equal(t, []string{"apple", "banana", "cherry"}, titles(byTitle))

	newestFirst, err := s.List(ctx, models.StatusAll, models.SortCreatedAt)
	require.NoError(t, err)
	require.Equal(t, []string{"cherry", "apple", "banana"}, titles(newestFirst))
}

func TestToggleCompleted_TwiceRestores(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	task, err := s.Create(ctx, NewTask{Title: "flip"})
	require.NoError(t, err)

	toggled, err := s.ToggleCompleted(ctx, task.ID)
	require.NoError(t, err)
	require.True(t, toggled.Completed)

	toggled, err = s.ToggleCompleted(ctx, task.ID)
	require.NoError(t, err)
	require.False(t, toggled.Completed)
}

func TestToggleCompleted_NotFound(t *testing.T) {
	s := newStore(t)

	_, err := s.ToggleCompleted(context.Background(), 42)
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestDelete(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	keep, _ := s.Create(ctx, NewTask{Title: "keep"})
	drop, _ := s.Create(ctx, NewTask{Title: "drop"})

	require.NoError(t, s.Delete(ctx, drop.ID))
	_, err := s.Get(ctx, drop.ID)
	require.ErrorIs(t, err, ErrTaskNotFound)

	require.ErrorIs(t, s.Delete(ctx, drop.ID), ErrTaskNotFound)

	tasks, err := s.List(ctx, models.StatusAll, models.SortCreatedAt)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, keep.ID, tasks[0].ID)
}

func TestClearCompleted(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	// Nothing to clear is not an error
	removed, err := s.ClearCompleted(ctx)
	require.NoError(t, err)
	require.Zero(t, removed)

	for _, title := range []string{"one", "two", "three", "four"} {
		task, err := s.Create(ctx, NewTask{Title: title})
		require.NoError(t, err)
		if title != "three" {
			_, err = s.ToggleCompleted(ctx, task.ID)
			require.NoError(t, err)
		}
	}

	removed, err = s.ClearCompleted(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, removed)

	tasks, err := s.List(ctx, models.StatusAll, models.SortCreatedAt)
	require.NoError(t, err)
	require.Equal(t, []string{"three"}, titles(tasks))
	require.False(t, tasks[0].Completed)
}

func TestCounts(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	counts, err := s.Counts(ctx)
	require.NoError(t, err)
	require.Equal(t, Counts{}, counts)

	a, _ := s.Create(ctx, NewTask{Title: "a"})
	_, _ = s.Create(ctx, NewTask{Title: "b"})
	_, _ = s.ToggleCompleted(ctx, a.ID)

	counts, err = s.Counts(ctx)
	require.NoError(t, err)
	require.Equal(t, Counts{Total: 2, Active: 1, Completed: 1}, counts)
}
