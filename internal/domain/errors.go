package domain

import "errors"

// Not-found sentinels. Repositories return these when a lookup misses;
// controllers map them to 404.
var (
	ErrEventNotFound = errors.New("event not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrRSVPNotFound  = errors.New("rsvp not found")
	ErrTaskNotFound  = errors.New("task not found")
)

// Conflict sentinels. These are stable business outcomes and must never be
// retried; controllers map them to 400.
var (
	ErrRSVPExists  = errors.New("rsvp already exists")
	ErrEventFull   = errors.New("event is at capacity")
	ErrRSVPOverlap = errors.New("rsvp overlaps another attending rsvp")
)

// Validation sentinels.
var (
	ErrInvalidStatus  = errors.New("invalid status")
	ErrInvalidRole    = errors.New("invalid event role")
	ErrDuplicateEmail = errors.New("email already in use")
)
