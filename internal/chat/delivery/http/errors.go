package http

import (
	"errors"
	"net/http"

	"mental-health-support/internal/chat"
	pkgErrors "mental-health-support/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Domain validation errors surface as 422; everything else is hidden behind
// a generic 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyMessages),
		errors.Is(err, chat.ErrInvalidMessage),
		errors.Is(err, chat.ErrEmptyText),
		errors.Is(err, chat.ErrEmptyDraft):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
