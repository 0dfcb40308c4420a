package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"

	"eventease/internal/delivery/http/helpers"
	"eventease/internal/domain"
)

// uuidRegex matches a canonical UUID string (8-4-4-4-12 hex).
var uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// pathID reads a path parameter and validates its UUID shape. On failure it
// writes a 400 response and returns false.
func pathID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	id := r.PathValue(name)
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "missing "+name)
		return "", false
	}
	if !uuidRegex.MatchString(id) {
		helpers.WriteJSONError(w, http.StatusBadRequest, "invalid "+name)
		return "", false
	}
	return id, true
}

// writeDomainError maps domain sentinels onto the response envelope:
// not-found family to 404, conflict and validation families to 400, anything
// else to a logged 500 without internal detail.
func writeDomainError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRSVPNotFound),
		errors.Is(err, domain.ErrTaskNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrRSVPExists),
		errors.Is(err, domain.ErrEventFull),
		errors.Is(err, domain.ErrRSVPOverlap),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrDuplicateEmail):
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "internal server error")
	}
}
