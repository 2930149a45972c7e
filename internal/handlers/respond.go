package handlers

import (
	"net/http"
	"strconv"

	"task-list-web/internal/middleware"
	"task-list-web/internal/views"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// redirectToIndex sends the browser back to the list after a mutation.
func redirectToIndex(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
}

// parseTaskID reads the :id path parameter. Anything that is not a positive
// integer cannot name a task.
func parseTaskID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// NotFound renders the not-found page. It also serves unknown routes.
func NotFound(c *gin.Context) {
	renderNotFound(c, "Page not found.")
}

func renderNotFound(c *gin.Context, message string) {
	c.HTML(http.StatusNotFound, views.NotFoundPage, gin.H{"Message": message})
}

func renderServerError(c *gin.Context, log *zap.Logger, err error, message string) {
	_ = c.Error(err)
	log.Error(message,
		zap.String("request_id", c.GetString(middleware.RequestIDKey)),
		zap.Error(err),
	)
	c.HTML(http.StatusInternalServerError, views.ErrorPage, gin.H{"Message": message})
}
