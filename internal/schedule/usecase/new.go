package usecase

import (
	"github.com/google/uuid"

	"care-schedule/internal/schedule/repository"
	"care-schedule/pkg/log"
)

// implUseCase is the private implementation of schedule.UseCase.
type implUseCase struct {
	repo  repository.Repository
	l     log.Logger
	newID func() string
}

// New creates a new schedule UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		l:     l,
		newID: uuid.NewString,
	}
}
