package http

import (
	"errors"
	"net/http"

	"care-schedule/internal/schedule"
	pkgErrors "care-schedule/pkg/errors"
)

var errMissingID = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Anything unrecognised is reported as an internal error.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrActivityNotFound),
		errors.Is(err, schedule.ErrAppointmentNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, schedule.ErrEmptyTitle),
		errors.Is(err, schedule.ErrEmptyDoctorName),
		errors.Is(err, schedule.ErrEmptyTime):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
