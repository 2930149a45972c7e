package store

import (
	"context"
	"errors"
	"time"

	"task-list-web/internal/models"

	"gorm.io/gorm"
)

// ErrTaskNotFound is returned when no task has the requested ID.
var ErrTaskNotFound = errors.New("task not found")

// NewTask carries validated input for Create.
type NewTask struct {
	Title       string
	Description *string
	DueDate     *time.Time
}

// Counts summarises the table for the list header.
type Counts struct {
	Total     int64
	Active    int64
	Completed int64
}

// TaskStore reads and writes tasks. Each method runs in its own transaction.
type TaskStore struct {
	db *gorm.DB
}

// NewTaskStore wraps an open database handle.
func NewTaskStore(db *gorm.DB) *TaskStore {
	return &TaskStore{db: db}
}

// transaction runs fn in a transaction that commits when fn returns nil and
// rolls back on error or panic.
func (s *TaskStore) transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return s.db.WithContext(ctx).Transaction(fn)
}

// List returns tasks matching the filter in the order given by sort.
func (s *TaskStore) List(ctx context.Context, filter models.StatusFilter, sort models.SortKey) ([]models.Task, error) {
	var tasks []models.Task
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		query := tx.Model(&models.Task{})

		switch filter {
		case models.StatusActive:
			query = query.Where("completed = ?", false)
		case models.StatusCompleted:
			query = query.Where("completed = ?", true)
		}

		switch sort {
		case models.SortDueDate:
			// NULL due dates sort after every dated task
			query = query.Order("due_date IS NULL").Order("due_date ASC").Order("id ASC")
		case models.SortTitle:
			query = query.Order("title ASC").Order("id ASC")
		default:
			query = query.Order("created_at DESC").Order("id DESC")
		}

		return query.Find(&tasks).Error
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create inserts a new, not yet completed task.
func (s *TaskStore) Create(ctx context.Context, in NewTask) (models.Task, error) {
	task := models.Task{
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
	}
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		return tx.Create(&task).Error
	})
	return task, err
}

// Get fetches a single task.
func (s *TaskStore) Get(ctx context.Context, id uint) (models.Task, error) {
	var task models.Task
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		return tx.First(&task, id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return task, ErrTaskNotFound
	}
	return task, err
}

// ToggleCompleted flips the completed flag and returns the updated task.
func (s *TaskStore) ToggleCompleted(ctx context.Context, id uint) (models.Task, error) {
	var task models.Task
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		// Single UPDATE so concurrent toggles cannot lose a flip
		result := tx.Model(&models.Task{}).
			Where("id = ?", id).
			Update("completed", gorm.Expr("NOT completed"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTaskNotFound
		}
		return tx.First(&task, id).Error
	})
	return task, err
}

// Delete removes one task.
func (s *TaskStore) Delete(ctx context.Context, id uint) error {
	return s.transaction(ctx, func(tx *gorm.DB) error {
		result := tx.Delete(&models.Task{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTaskNotFound
		}
		return nil
	})
}

// ClearCompleted removes every completed task and reports how many went.
func (s *TaskStore) ClearCompleted(ctx context.Context) (int64, error) {
	var removed int64
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		result := tx.Where("completed = ?", true).Delete(&models.Task{})
		removed = result.RowsAffected
		return result.Error
	})
	return removed, err
}

// Counts returns total, active and completed task counts.
func (s *TaskStore) Counts(ctx context.Context) (Counts, error) {
	var counts Counts
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		type row struct {
			Completed bool
			Count     int64
		}
		var rows []row
		if err := tx.Model(&models.Task{}).
			Select("completed, COUNT(*) AS count").
			Group("completed").
			Scan(&rows).Error; err != nil {
			return err
		}
		for _, r := range rows {
			if r.Completed {
				counts.Completed = r.Count
			} else {
				counts.Active = r.Count
			}
			counts.Total += r.Count
		}
		return nil
	})
	return counts, err
}
