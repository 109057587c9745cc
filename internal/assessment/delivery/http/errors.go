package http

import (
	"errors"
	"net/http"

	"mental-health-support/internal/assessment"
	pkgErrors "mental-health-support/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assessment.ErrAnswerCount),
		errors.Is(err, assessment.ErrEmptyAnswer):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
