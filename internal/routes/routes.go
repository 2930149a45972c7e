package routes

import (
	"net/http"

	"task-list-web/internal/flash"
	"task-list-web/internal/handlers"
	"task-list-web/internal/middleware"
	"task-list-web/internal/realtime"
	"task-list-web/internal/store"
	"task-list-web/internal/views"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps are the collaborators shared by all handlers.
type Deps struct {
	Store   *store.TaskStore
	Flasher *flash.Flasher
	Hub     *realtime.Hub
	Logger  *zap.Logger
}

func SetupRoutes(deps Deps) (*gin.Engine, error) {
	ginRouter := gin.New()
	ginRouter.Use(middleware.RequestLogger(deps.Logger), middleware.Recovery(deps.Logger))

	tmpl, err := views.Load()
	if err != nil {
		return nil, err
	}
	ginRouter.SetHTMLTemplate(tmpl)

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Task list is running",
		})
	})

	tasks := handlers.NewTaskHandler(deps.Store, deps.Flasher, deps.Hub, deps.Logger)
	live := handlers.NewLiveHandler(deps.Hub, deps.Logger)

	// Task list page and form actions
	ginRouter.GET("/", tasks.Index)
	ginRouter.POST("/", tasks.Create)
	ginRouter.POST("/complete/:id", tasks.ToggleComplete)
	ginRouter.POST("/delete/:id", tasks.Delete)
	ginRouter.POST("/clear_completed", tasks.ClearCompleted)

	// Live refresh for other open tabs
	ginRouter.GET("/ws", live.Subscribe)

	ginRouter.NoRoute(handlers.NotFound)

	return ginRouter, nil
}
