package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "care-schedule/pkg/errors"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"http error", pkgErrors.NewHTTPError(http.StatusNotFound, "activity not found"), http.StatusNotFound},
		{"wrapped http error", fmt.Errorf("lookup: %w", pkgErrors.ErrTooManyRequests), http.StatusTooManyRequests},
		{"plain error", errors.New("boom"), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pkgErrors.StatusCode(tt.err); got != tt.want {
				t.Errorf("StatusCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
