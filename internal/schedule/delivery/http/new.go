package http

import (
	"github.com/gin-gonic/gin"

	"care-schedule/internal/schedule"
	"care-schedule/pkg/log"
)

// Handler is the public interface for the schedule HTTP delivery layer.
type Handler interface {
	CheckConflicts(c *gin.Context)
	Intervals(c *gin.Context)
	StoredConflicts(c *gin.Context)

	CreateActivity(c *gin.Context)
	ListActivities(c *gin.Context)
	DetailActivity(c *gin.Context)
	UpdateActivity(c *gin.Context)
	DeleteActivity(c *gin.Context)

	CreateAppointment(c *gin.Context)
	ListAppointments(c *gin.Context)
	DetailAppointment(c *gin.Context)
	RescheduleAppointment(c *gin.Context)
	DeleteAppointment(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc schedule.UseCase
}

// New creates a new HTTP handler for the schedule domain.
func New(l log.Logger, uc schedule.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
