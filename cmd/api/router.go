package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	taskDelivery "tasktracker-backend/internal/task/delivery"
)

func SetupRoutes(r *gin.Engine, taskHandler *taskDelivery.TaskHandler) {
	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Task routes
		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.GetTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", taskHandler.GetTaskByID)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.PATCH("/:id/status", taskHandler.UpdateTaskStatus)
		}

		// Analytics routes
		analytics := api.Group("/analytics")
		{
			analytics.GET("/summary", taskHandler.GetSummary)
			analytics.GET("/trends", taskHandler.GetTrends)
		}

		// Calendar routes
		calendar := api.Group("/calendar")
		{
			calendar.GET("/month", taskHandler.GetMonthView)
			calendar.GET("/week", taskHandler.GetWeekView)
		}

		// Debounced live query routes backed by the query controller
		query := api.Group("/query")
		{
			query.PUT("/filter", taskHandler.SetQueryFilter)
			query.GET("/snapshot", taskHandler.GetQuerySnapshot)
		}
	}
}
