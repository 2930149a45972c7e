package handlers

import (
	"errors"
	"net/http"
	"time"

	"task-list-web/internal/cache"
	"task-list-web/internal/flash"
	"task-list-web/internal/models"
	"task-list-web/internal/realtime"
	"task-list-web/internal/store"
	"task-list-web/internal/views"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// submissionTTL is how long a create form token stays claimed.
const submissionTTL = 10 * time.Minute

// TaskHandler serves the task list page and its form actions.
type TaskHandler struct {
	store       *store.TaskStore
	flash       *flash.Flasher
	hub         *realtime.Hub
	submissions *cache.TTLCache[string, struct{}]
	log         *zap.Logger
}

// NewTaskHandler wires a handler to its collaborators.
func NewTaskHandler(s *store.TaskStore, f *flash.Flasher, hub *realtime.Hub, log *zap.Logger) *TaskHandler {
	return &TaskHandler{
		store:       s,
		flash:       f,
		hub:         hub,
		submissions: cache.New[string, struct{}](submissionTTL),
		log:         log,
	}
}

// indexPage is the data rendered by the list template
type indexPage struct {
	Tasks     []models.Task
	Counts    store.Counts
	Status    models.StatusFilter
	Sort      models.SortKey
	Flashes   []flash.Message
	FormToken string
	Today     time.Time
}

// Index handles GET /
// Lists tasks filtered by ?status= and ordered by ?sort=
func (h *TaskHandler) Index(c *gin.Context) {
	status := models.ParseStatusFilter(c.Query("status"))
	sort := models.ParseSortKey(c.Query("sort"))
	ctx := c.Request.Context()

	tasks, err := h.store.List(ctx, status, sort)
	if err != nil {
		renderServerError(c, h.log, err, "Failed to fetch tasks")
		return
	}

	counts, err := h.store.Counts(ctx)
	if err != nil {
		renderServerError(c, h.log, err, "Failed to count tasks")
		return
	}

	c.HTML(http.StatusOK, views.IndexPage, indexPage{
		Tasks:     tasks,
		Counts:    counts,
		Status:    status,
		Sort:      sort,
		Flashes:   h.flash.Pop(c),
		FormToken: uuid.NewString(),
		Today:     time.Now().UTC(),
	})
}

// Create handles POST /
// Adds a task from the posted form
func (h *TaskHandler) Create(c *gin.Context) {
	var form taskForm
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		h.flash.Add(c, flash.Error, "Invalid form submission.")
		redirectToIndex(c)
		return
	}

	in := parseTaskForm(form)
	if in.rejected != "" {
		h.flash.Add(c, flash.Error, in.rejected)
		redirectToIndex(c)
		return
	}

	// A replayed form token means the browser resubmitted the same form
	if form.Token != "" {
		h.submissions.PurgeExpired()
		if !h.submissions.SetIfAbsent(form.Token, struct{}{}) {
			h.flash.Add(c, flash.Info, "Task already added.")
			redirectToIndex(c)
			return
		}
	}

	task, err := h.store.Create(c.Request.Context(), in.task)
	if err != nil {
		if form.Token != "" {
			h.submissions.Delete(form.Token)
		}
		renderServerError(c, h.log, err, "Failed to create task")
		return
	}

	for _, warning := range in.warnings {
		h.flash.Add(c, flash.Error, warning)
	}
	h.flash.Add(c, flash.Success, "Task added!")
	h.hub.Publish(realtime.Event{Type: realtime.TaskCreated, TaskID: task.ID})
	redirectToIndex(c)
}

// ToggleComplete handles POST /complete/:id
func (h *TaskHandler) ToggleComplete(c *gin.Context) {
	id, ok := parseTaskID(c)
	if !ok {
		renderNotFound(c, "Task not found.")
		return
	}

	task, err := h.store.ToggleCompleted(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			renderNotFound(c, "Task not found.")
		} else {
			renderServerError(c, h.log, err, "Failed to update task")
		}
		return
	}

	h.flash.Add(c, flash.Success, "Task status updated.")
	h.hub.Publish(realtime.Event{Type: realtime.TaskUpdated, TaskID: task.ID})
	redirectToIndex(c)
}

// Delete handles POST /delete/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseTaskID(c)
	if !ok {
		renderNotFound(c, "Task not found.")
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			renderNotFound(c, "Task not found.")
		} else {
			renderServerError(c, h.log, err, "Failed to delete task")
		}
		return
	}

	h.flash.Add(c, flash.Success, "Task deleted.")
	h.hub.Publish(realtime.Event{Type: realtime.TaskDeleted, TaskID: id})
	redirectToIndex(c)
}

// ClearCompleted handles POST /clear_completed
// Removes every completed task, including when there are none
func (h *TaskHandler) ClearCompleted(c *gin.Context) {
	removed, err := h.store.ClearCompleted(c.Request.Context())
	if err != nil {
		renderServerError(c, h.log, err, "Failed to clear completed tasks")
		return
	}

	h.log.Debug("cleared completed tasks", zap.Int64("removed", removed))
	h.flash.Add(c, flash.Success, "Completed tasks cleared.")
	if removed > 0 {
		h.hub.Publish(realtime.Event{Type: realtime.TasksCleared})
	}
	redirectToIndex(c)
}
