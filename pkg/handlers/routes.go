package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the calendar endpoints onto r. The API is consumed
// by a browser UI, so CORS is open.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.Use(cors.Default())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Training Calendar API (Go Version)",
			"version": "1.0.0",
		})
	})

	api := r.Group("/api")
	{
		api.GET("/calendar", h.GetCalendar)
		api.GET("/calendar/grid", h.GetGrid)
		api.POST("/calendar/generate", h.GenerateSchedule)
		api.POST("/calendar/events", h.CreateEvents)
		api.PATCH("/calendar/events/status", h.ChangeStatus)
		api.PUT("/calendar/events", h.UpdateEvent)
		api.POST("/calendar/save", h.SaveCalendar)
		api.GET("/calendar/export", h.ExportCalendar)
		api.GET("/calendar/print", h.PrintCalendar)
		api.GET("/disclaimer", h.GetDisclaimer)
		api.POST("/disclaimer/acknowledge", h.AcknowledgeDisclaimer)
	}
}
