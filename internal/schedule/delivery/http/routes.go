package http

import (
	"github.com/gin-gonic/gin"

	"care-schedule/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route is rate limited per client IP.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit())

	rg.POST("/conflicts/check", h.CheckConflicts)
	rg.GET("/conflicts", h.StoredConflicts)
	rg.POST("/intervals", h.Intervals)

	activities := rg.Group("/activities")
	{
		activities.POST("", h.CreateActivity)
		activities.GET("", h.ListActivities)
		activities.GET("/:id", h.DetailActivity)
		activities.PUT("/:id", h.UpdateActivity)
		activities.DELETE("/:id", h.DeleteActivity)
	}

	appointments := rg.Group("/appointments")
	{
		appointments.POST("", h.CreateAppointment)
		appointments.GET("", h.ListAppointments)
		appointments.GET("/:id", h.DetailAppointment)
		appointments.PUT("/:id/reschedule", h.RescheduleAppointment)
		appointments.DELETE("/:id", h.DeleteAppointment)
	}
}
