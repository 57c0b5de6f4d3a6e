package api

import (
	"github.com/gin-gonic/gin"

	"tasktracker-backend/internal/task/controller"
	taskDelivery "tasktracker-backend/internal/task/delivery"
	taskUsecasePkg "tasktracker-backend/internal/task/usecase"
	"tasktracker-backend/pkg/config"
)

type Handler struct {
	taskUsecase taskUsecasePkg.TaskUsecase
	taskHandler *taskDelivery.TaskHandler
	config      *config.Config
}

func NewHandler(taskUc taskUsecasePkg.TaskUsecase, queryCtrl *controller.QueryController, cfg *config.Config) *Handler {
	return &Handler{
		taskUsecase: taskUc,
		taskHandler: taskDelivery.NewTaskHandler(taskUc, queryCtrl),
		config:      cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.taskHandler)

	return r.Run(addr)
}
