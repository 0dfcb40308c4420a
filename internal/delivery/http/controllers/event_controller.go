package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"eventease/internal/delivery/http/helpers"
	"eventease/internal/domain"
)

// dateLayout is the wire format for event dates.
const dateLayout = "2006-01-02"

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEventRequest is the request body for POST /api/events.
type CreateEventRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Capacity    int    `json:"capacity"`
	Budget      int    `json:"budget"`
	HostID      string `json:"host_id"`
}

// Validate implements helpers.Validator.
func (req *CreateEventRequest) Validate() []string {
	var errs []string
	if req.Name == "" {
		errs = append(errs, "name is required")
	}
	if req.HostID == "" {
		errs = append(errs, "host_id is required")
	} else if !uuidRegex.MatchString(req.HostID) {
		errs = append(errs, "host_id must be a UUID")
	}
	if req.Capacity <= 0 {
		errs = append(errs, "capacity must be positive")
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		errs = append(errs, "date must be YYYY-MM-DD")
	}
	if _, err := domain.ParseTimeOfDay(req.StartTime); err != nil {
		errs = append(errs, "start_time must be HH:MM")
	}
	if _, err := domain.ParseTimeOfDay(req.EndTime); err != nil {
		errs = append(errs, "end_time must be HH:MM")
	}
	return errs
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event with the given host. The host is fixed at creation and cannot be reassigned later.
// @Tags events
// @Accept json
// @Produce json
// @Param body body controllers.CreateEventRequest true "Event fields"
// @Success 201 {object} helpers.APIResponse "data is a one-element event list"
// @Failure 400 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "host not found"
// @Failure 500 {object} helpers.APIResponse
// @Router /api/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	date, _ := time.Parse(dateLayout, req.Date)
	event := &domain.Event{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Date:        date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Capacity:    req.Capacity,
		Budget:      req.Budget,
		HostID:      req.HostID,
	}
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, []*domain.Event{event})
}

// GetEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data is a one-element event list"
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	event, err := c.Service.GetEventByID(r.Context(), eventID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, []*domain.Event{event})
}

// ListEvents godoc
// @Summary List events in a date range
// @Description Returns events whose date falls within [from, to], ascending by date, paginated.
// @Tags events
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD, default today)"
// @Param to query string false "Range end (YYYY-MM-DD, default from+1y)"
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data is an event list, meta carries pagination"
// @Failure 400 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	from := time.Now().Truncate(24 * time.Hour)
	if s := r.URL.Query().Get("from"); s != "" {
		parsed, err := time.Parse(dateLayout, s)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, "from must be YYYY-MM-DD")
			return
		}
		from = parsed
	}
	to := from.AddDate(1, 0, 0)
	if s := r.URL.Query().Get("to"); s != "" {
		parsed, err := time.Parse(dateLayout, s)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, "to must be YYYY-MM-DD")
			return
		}
		to = parsed
	}
	p := helpers.ParsePagination(r)

	events, total, err := c.Service.ListEventsByDateRange(r.Context(), from, to, p)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONPage(w, http.StatusOK, events, helpers.NewPaginationMeta(p.Page, p.PageSize, total))
}

// UpdateEventRequest is the request body for PATCH /api/events/{eventID}.
// Host and participants are deliberately absent: neither can be changed here.
type UpdateEventRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Date        *string `json:"date"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Capacity    *int    `json:"capacity"`
	Budget      *int    `json:"budget"`
}

// Validate implements helpers.Validator.
func (req *UpdateEventRequest) Validate() []string {
	var errs []string
	if req.Date != nil {
		if _, err := time.Parse(dateLayout, *req.Date); err != nil {
			errs = append(errs, "date must be YYYY-MM-DD")
		}
	}
	if req.StartTime != nil {
		if _, err := domain.ParseTimeOfDay(*req.StartTime); err != nil {
			errs = append(errs, "start_time must be HH:MM")
		}
	}
	if req.EndTime != nil {
		if _, err := domain.ParseTimeOfDay(*req.EndTime); err != nil {
			errs = append(errs, "end_time must be HH:MM")
		}
	}
	if req.Capacity != nil && *req.Capacity <= 0 {
		errs = append(errs, "capacity must be positive")
	}
	return errs
}

// UpdateEvent godoc
// @Summary Partially update an event
// @Description Applies only the fields present in the body; the host is never reassigned.
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param body body controllers.UpdateEventRequest true "Fields to update"
// @Success 200 {object} helpers.APIResponse "data is a one-element event list"
// @Failure 400 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/events/{eventID} [patch]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	upd := domain.EventUpdate{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Capacity:    req.Capacity,
		Budget:      req.Budget,
	}
	if req.Date != nil {
		date, _ := time.Parse(dateLayout, *req.Date)
		upd.Date = &date
	}
	event, err := c.Service.UpdateEvent(r.Context(), eventID, upd)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, []*domain.Event{event})
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Removes the event together with its RSVPs and tasks.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), eventID); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONMessage(w, http.StatusOK, "Event successfully deleted")
}
