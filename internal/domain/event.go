package domain

import (
	"context"
	"time"
)

// Event represents a hosted event. The host is set at creation and is never
// reassigned by update operations; participants are derived from RSVPs.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Capacity    int       `json:"capacity"`
	Budget      int       `json:"budget"`
	HostID      string    `json:"host_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// timeOfDayLayouts are the accepted wire formats for start_time and end_time.
var timeOfDayLayouts = []string{"15:04:05", "15:04"}

// ParseTimeOfDay parses a clock time such as "18:30" or "18:30:00".
func ParseTimeOfDay(s string) (time.Time, error) {
	var err error
	for _, layout := range timeOfDayLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// SameDate reports whether the two events fall on the same calendar day.
func (e *Event) SameDate(o *Event) bool {
	return e.Date.Year() == o.Date.Year() && e.Date.YearDay() == o.Date.YearDay()
}

// Overlaps reports whether the two events' date and time windows intersect.
// Windows are half-open [start, end); malformed clock times never overlap.
func (e *Event) Overlaps(o *Event) bool {
	if !e.SameDate(o) {
		return false
	}
	aStart, err := ParseTimeOfDay(e.StartTime)
	if err != nil {
		return false
	}
	aEnd, err := ParseTimeOfDay(e.EndTime)
	if err != nil {
		return false
	}
	bStart, err := ParseTimeOfDay(o.StartTime)
	if err != nil {
		return false
	}
	bEnd, err := ParseTimeOfDay(o.EndTime)
	if err != nil {
		return false
	}
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// EventUpdate carries the optional fields of a partial event update.
// Nil fields retain their prior values. Host is deliberately absent.
type EventUpdate struct {
	Name        *string
	Description *string
	Location    *string
	Date        *time.Time
	StartTime   *string
	EndTime     *string
	Capacity    *int
	Budget      *int
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	// ListByDateRange returns events whose date falls within [from, to],
	// ordered by date then start time, plus the total count for pagination.
	ListByDateRange(ctx context.Context, from, to time.Time, p PaginationParams) ([]*Event, int, error)
	Update(ctx context.Context, id string, upd EventUpdate) (*Event, error)
	// Delete removes the event and its owned rows (tasks, RSVPs) inside a
	// serializable transaction.
	Delete(ctx context.Context, id string) error
}

// EventService defines the business logic for events.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEventByID(ctx context.Context, id string) (*Event, error)
	ListEventsByDateRange(ctx context.Context, from, to time.Time, p PaginationParams) ([]*Event, int, error)
	UpdateEvent(ctx context.Context, id string, upd EventUpdate) (*Event, error)
	DeleteEvent(ctx context.Context, id string) error
}
