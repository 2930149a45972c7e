package models

import (
	"time"
)

// TitleMaxLength bounds the title column (runes).
const TitleMaxLength = 120

// DateLayout is the only accepted due date format.
const DateLayout = "2006-01-02"

// StatusFilter restricts the listed tasks by completion state
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusActive    StatusFilter = "active"
	StatusCompleted StatusFilter = "completed"
)

// ParseStatusFilter maps a query value to a filter, defaulting to StatusAll.
func ParseStatusFilter(s string) StatusFilter {
	switch StatusFilter(s) {
	case StatusActive, StatusCompleted:
		return StatusFilter(s)
	default:
		return StatusAll
	}
}

// SortKey represents the ordering applied to listed tasks
type SortKey string

const (
	SortCreatedAt SortKey = "created_at"
	SortDueDate   SortKey = "due_date"
	SortTitle     SortKey = "title"
)

// ParseSortKey maps a query value to a sort key, defaulting to SortCreatedAt.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortDueDate, SortTitle:
		return SortKey(s)
	default:
		return SortCreatedAt
	}
}

// Task represents a to-do item
type Task struct {
	ID          uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string     `json:"title" gorm:"size:120;not null"`
	Description *string    `json:"description,omitempty" gorm:"type:text"`
	DueDate     *time.Time `json:"dueDate,omitempty" gorm:"column:due_date;type:date"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	Completed   bool       `json:"completed" gorm:"not null;default:false;index"`
}

// TableName specifies the table name for Task Model
func (Task) TableName() string {
	return "tasks"
}

// Overdue reports whether an active task's due date is before the given day.
func (t Task) Overdue(today time.Time) bool {
	if t.Completed || t.DueDate == nil {
		return false
	}
	y, m, d := today.Date()
	return t.DueDate.Before(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}
