package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"eventease/internal/delivery/http/helpers"
	"eventease/internal/domain"
)

type RSVPController struct {
	Logger  *slog.Logger
	Service domain.RSVPService
}

func NewRSVPController(logger *slog.Logger, svc domain.RSVPService) *RSVPController {
	return &RSVPController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateRSVP godoc
// @Summary Create an RSVP for a user to an event
// @Description Creates an RSVP for the (event, user) pair. Fails when the pair already has an RSVP, the event is at capacity, or the user already attends an overlapping event. Omitted body fields default to ATTENDING / PARTICIPANT.
// @Tags rsvp
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param userID path string true "User ID (UUID)"
// @Param body body domain.RSVPInput false "RSVP fields"
// @Success 201 {object} helpers.APIResponse "data is a one-element RSVP list"
// @Failure 400 {object} helpers.APIResponse "duplicate pair, event full, overlap, or invalid enum"
// @Failure 404 {object} helpers.APIResponse "event or user not found"
// @Failure 500 {object} helpers.APIResponse
// @Router /api/events/{eventID}/rsvp/{userID} [post]
func (c *RSVPController) CreateRSVP(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}
	var input domain.RSVPInput
	if !helpers.DecodeOptionalAndValidate(w, r, &input) {
		return
	}

	rsvp, err := c.Service.CreateRSVP(r.Context(), eventID, userID, input)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, []*domain.RSVP{rsvp})
}

// GetAttendees godoc
// @Summary List RSVPs for an event
// @Description Returns all RSVPs for the event in insertion order, each with its user reference.
// @Tags rsvp
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data is an RSVP list"
// @Failure 404 {object} helpers.APIResponse "event not found"
// @Failure 500 {object} helpers.APIResponse
// @Router /api/events/{eventID}/attendees [get]
func (c *RSVPController) GetAttendees(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	rsvps, err := c.Service.GetAttendeesByEvent(r.Context(), eventID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, rsvps)
}

// CancelRSVP godoc
// @Summary Cancel a user's RSVP to an event
// @Description Hard-deletes the RSVP for the (event, user) pair. There is no undo.
// @Tags rsvp
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param userID path string true "User ID (UUID)"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "event, user, or RSVP not found"
// @Failure 500 {object} helpers.APIResponse
// @Router /api/events/{eventID}/rsvp/cancel/{userID} [delete]
func (c *RSVPController) CancelRSVP(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}
	if err := c.Service.CancelRSVP(r.Context(), eventID, userID); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONMessage(w, http.StatusOK, "RSVP successfully cancelled")
}

// UpdateRSVP godoc
// @Summary Partially update a user's RSVP
// @Description Applies only the fields present in the body (status and/or event_role); omitted fields retain their prior values.
// @Tags rsvp
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param userID path string true "User ID (UUID)"
// @Param body body domain.RSVPUpdate true "Fields to update"
// @Success 200 {object} helpers.APIResponse "data is a one-element RSVP list"
// @Failure 400 {object} helpers.APIResponse "invalid status or role"
// @Failure 404 {object} helpers.APIResponse "event, user, or RSVP not found"
// @Failure 500 {object} helpers.APIResponse
// @Router /api/events/{eventID}/rsvp/{userID} [patch]
func (c *RSVPController) UpdateRSVP(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}
	var upd domain.RSVPUpdate
	if !helpers.DecodeAndValidate(w, r, &upd) {
		return
	}
	rsvp, err := c.Service.UpdateRSVP(r.Context(), eventID, userID, upd)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, []*domain.RSVP{rsvp})
}

// CheckInUser godoc
// @Summary Check a user in to an event
// @Description Marks the user's RSVP checked in. Idempotent: repeating the call succeeds and keeps the original check-in time.
// @Tags rsvp
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param userID path string true "User ID (UUID)"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "event, user, or RSVP not found"
// @Failure 500 {object} helpers.APIResponse
// @Router /api/events/{eventID}/rsvp/checkin/{userID} [post]
func (c *RSVPController) CheckInUser(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}
	if err := c.Service.CheckInUser(r.Context(), eventID, userID); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONMessage(w, http.StatusOK, "User successfully checked in")
}

// ListRSVPsByUser godoc
// @Summary List a user's RSVPs
// @Description Returns the user's RSVPs with event references, ascending by event date.
// @Tags rsvp
// @Produce json
// @Param userID path string true "User ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data is an RSVP list"
// @Failure 404 {object} helpers.APIResponse "user not found"
// @Failure 500 {object} helpers.APIResponse
// @Router /api/events/rsvp/user/{userID} [get]
func (c *RSVPController) ListRSVPsByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}
	rsvps, err := c.Service.ListRSVPsByUser(r.Context(), userID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, rsvps)
}

// ListCheckedInRSVPsByUser godoc
// @Summary List a user's checked-in RSVPs
// @Description Returns the user's checked-in RSVPs with event references, ascending by event date.
// @Tags rsvp
// @Produce json
// @Param userID path string true "User ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data is an RSVP list"
// @Failure 404 {object} helpers.APIResponse "user not found"
// @Failure 500 {object} helpers.APIResponse
// @Router /api/events/rsvp/user/{userID}/checkedin [get]
func (c *RSVPController) ListCheckedInRSVPsByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}
	rsvps, err := c.Service.ListCheckedInRSVPsByUser(r.Context(), userID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, rsvps)
}

// OneClickRSVP godoc
// @Summary One-click RSVP
// @Description Creates a default ATTENDING / PARTICIPANT RSVP for the pair and answers in plain text.
// @Tags rsvp
// @Produce plain
// @Param userID path string true "User ID (UUID)"
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {string} string "Successfully accepted invitation to event: ..."
// @Failure 400 {string} string "reason the RSVP could not be created"
// @Failure 500 {string} string
// @Router /api/events/1c/{userID}/{eventID} [get]
func (c *RSVPController) OneClickRSVP(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	eventID := r.PathValue("eventID")
	if !uuidRegex.MatchString(userID) || !uuidRegex.MatchString(eventID) {
		http.Error(w, "Failed to create RSVP.", http.StatusBadRequest)
		return
	}

	rsvp, err := c.Service.OneClickRSVP(r.Context(), userID, eventID)
	if err != nil {
		// Plain-text boundary, but the specific reason still propagates.
		switch {
		case errors.Is(err, domain.ErrEventNotFound):
			http.Error(w, "Event does not exist.", http.StatusBadRequest)
		case errors.Is(err, domain.ErrUserNotFound):
			http.Error(w, "User does not exist.", http.StatusBadRequest)
		case errors.Is(err, domain.ErrRSVPExists),
			errors.Is(err, domain.ErrEventFull),
			errors.Is(err, domain.ErrRSVPOverlap):
			http.Error(w, "Failed to create RSVP: "+err.Error(), http.StatusBadRequest)
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			http.Error(w, "Failed to create RSVP.", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "Successfully accepted invitation to event: %s", rsvp.Event.Name)
}
