package domain

import (
	"context"
	"time"
)

// RSVPStatus is a user's commitment status for an event.
type RSVPStatus string

// Valid RSVP statuses. Cancellation is modeled as removal of the RSVP, not a
// stored terminal status, but CANCELLED is still accepted on the wire.
const (
	RSVPStatusAttending RSVPStatus = "ATTENDING"
	RSVPStatusDeclined  RSVPStatus = "DECLINED"
	RSVPStatusCancelled RSVPStatus = "CANCELLED"
)

// ParseRSVPStatus validates a wire value against the status enumeration.
func ParseRSVPStatus(s string) (RSVPStatus, error) {
	switch RSVPStatus(s) {
	case RSVPStatusAttending, RSVPStatusDeclined, RSVPStatusCancelled:
		return RSVPStatus(s), nil
	}
	return "", ErrInvalidStatus
}

// EventRole is the role an RSVP'd user holds at the event.
type EventRole string

// Valid event roles.
const (
	EventRoleParticipant EventRole = "PARTICIPANT"
	EventRoleOrganizer   EventRole = "ORGANIZER"
)

// ParseEventRole validates a wire value against the role enumeration.
func ParseEventRole(s string) (EventRole, error) {
	switch EventRole(s) {
	case EventRoleParticipant, EventRoleOrganizer:
		return EventRole(s), nil
	}
	return "", ErrInvalidRole
}

// RSVP associates exactly one user with exactly one event. At most one RSVP
// exists per (event, user) pair at any time; the storage layer enforces this
// atomically on insert. Check-in is an orthogonal flag on top of status.
// swagger:model RSVP
type RSVP struct {
	ID          string     `json:"id"`
	EventID     string     `json:"event_id"`
	UserID      string     `json:"user_id"`
	Status      RSVPStatus `json:"status"`
	EventRole   EventRole  `json:"event_role"`
	CheckedIn   bool       `json:"checked_in"`
	CheckedInAt *time.Time `json:"checked_in_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Event and User are populated on reads that join the referenced rows.
	Event *Event `json:"event,omitempty"`
	User  *User  `json:"user,omitempty"`
}

// NewRSVP returns a new RSVP for the given pair. ID is set by the repository on create.
func NewRSVP(eventID, userID string, status RSVPStatus, role EventRole, createdAt, updatedAt time.Time) *RSVP {
	return &RSVP{
		EventID:   eventID,
		UserID:    userID,
		Status:    status,
		EventRole: role,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// RSVPInput carries the caller-supplied fields of a new RSVP.
type RSVPInput struct {
	Status    string `json:"status"`
	EventRole string `json:"event_role"`
}

// RSVPUpdate carries the optional fields of a partial RSVP update.
// Nil fields retain their prior values.
type RSVPUpdate struct {
	Status    *string `json:"status"`
	EventRole *string `json:"event_role"`
}

// RSVPRepository defines storage operations for RSVPs.
type RSVPRepository interface {
	// Create inserts the RSVP, enforcing the (event, user) uniqueness
	// constraint and the event capacity within one serializable transaction.
	// Returns ErrRSVPExists on a duplicate pair and ErrEventFull when the
	// event already holds capacity RSVPs.
	Create(ctx context.Context, rsvp *RSVP, capacity int) error
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*RSVP, error)
	// ListByEventID returns the event's RSVPs in insertion order with user
	// references populated.
	ListByEventID(ctx context.Context, eventID string) ([]*RSVP, error)
	// ListByUserID returns the user's RSVPs with event references populated,
	// ascending by event date then start time. checkedInOnly restricts the
	// result to checked-in RSVPs.
	ListByUserID(ctx context.Context, userID string, checkedInOnly bool) ([]*RSVP, error)
	// ListAttendingByUserID returns the user's ATTENDING RSVPs with event
	// references populated, for overlap checks.
	ListAttendingByUserID(ctx context.Context, userID string) ([]*RSVP, error)
	Update(ctx context.Context, eventID, userID string, status *RSVPStatus, role *EventRole) (*RSVP, error)
	// CheckIn marks the RSVP checked in. The first call stamps checkedInAt;
	// later calls leave the original timestamp in place.
	CheckIn(ctx context.Context, eventID, userID string, at time.Time) error
	// Delete removes the RSVP inside a serializable transaction.
	Delete(ctx context.Context, eventID, userID string) error
}

// RSVPService defines the RSVP lifecycle operations.
type RSVPService interface {
	CreateRSVP(ctx context.Context, eventID, userID string, input RSVPInput) (*RSVP, error)
	GetAttendeesByEvent(ctx context.Context, eventID string) ([]*RSVP, error)
	CancelRSVP(ctx context.Context, eventID, userID string) error
	UpdateRSVP(ctx context.Context, eventID, userID string, upd RSVPUpdate) (*RSVP, error)
	// CheckInUser marks the user's RSVP checked in. Idempotent: checking in
	// twice succeeds and leaves the RSVP checked in.
	CheckInUser(ctx context.Context, eventID, userID string) error
	ListRSVPsByUser(ctx context.Context, userID string) ([]*RSVP, error)
	ListCheckedInRSVPsByUser(ctx context.Context, userID string) ([]*RSVP, error)
	// OneClickRSVP creates a default ATTENDING/PARTICIPANT RSVP for the pair.
	OneClickRSVP(ctx context.Context, userID, eventID string) (*RSVP, error)
}
