package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"care-schedule/internal/middleware"
	scheduleHTTP "care-schedule/internal/schedule/delivery/http"
	scheduleRepo "care-schedule/internal/schedule/repository/sqlite"
	scheduleUC "care-schedule/internal/schedule/usecase"
)

// setupScheduleDomain wires repository, use case and handler, then registers
// /api/v1/schedule.
func (srv HTTPServer) setupScheduleDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := scheduleRepo.New(srv.db, srv.l)
	uc := scheduleUC.New(repo, srv.l)
	h := scheduleHTTP.New(srv.l, uc)

	scheduleHTTP.RegisterRoutes(api.Group("/schedule"), h, mw)

	srv.l.Infof(ctx, "httpserver.setupScheduleDomain: schedule domain registered")
	return nil
}
