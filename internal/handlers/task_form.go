package handlers

import (
	"strings"
	"time"
	"unicode/utf8"

	"task-list-web/internal/models"
	"task-list-web/internal/store"
)

const (
	msgTitleRequired = "Task title is required."
	msgTitleTooLong  = "Task title must be at most 120 characters."
	msgInvalidDate   = "Invalid date format."
)

// taskForm is the create form as posted by the list page
type taskForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	DueDate     string `form:"due_date"`
	Token       string `form:"form_token"`
}

// taskInput is the outcome of validating a taskForm.
type taskInput struct {
	task store.NewTask
	// rejected is set when nothing may be inserted
	rejected string
	// warnings are shown to the user but the insert still goes ahead
	warnings []string
}

func parseTaskForm(form taskForm) taskInput {
	var in taskInput

	title := strings.TrimSpace(form.Title)
	switch {
	case title == "":
		in.rejected = msgTitleRequired
		return in
	case utf8.RuneCountInString(title) > models.TitleMaxLength:
		in.rejected = msgTitleTooLong
		return in
	}
	in.task.Title = title

	if description := strings.TrimSpace(form.Description); description != "" {
		in.task.Description = &description
	}

	if raw := strings.TrimSpace(form.DueDate); raw != "" {
		// A bad date is reported but does not block the task
		if due, err := time.Parse(models.DateLayout, raw); err == nil {
			in.task.DueDate = &due
		} else {
			in.warnings = append(in.warnings, msgInvalidDate)
		}
	}

	return in
}
