package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventease/internal/domain"
)

type rsvpService struct {
	rsvpRepo       domain.RSVPRepository
	eventRepo      domain.EventRepository
	userRepo       domain.UserRepository
	contextTimeout time.Duration
}

// NewRSVPService creates an RSVPService with the given repositories.
func NewRSVPService(
	rsvpRepo domain.RSVPRepository,
	eventRepo domain.EventRepository,
	userRepo domain.UserRepository,
	timeout time.Duration,
) domain.RSVPService {
	return &rsvpService{
		rsvpRepo:       rsvpRepo,
		eventRepo:      eventRepo,
		userRepo:       userRepo,
		contextTimeout: timeout,
	}
}

// resolvePair fetches the event and the user, failing fast with the matching
// not-found sentinel. Every RSVP operation starts here.
func (s *rsvpService) resolvePair(ctx context.Context, eventID, userID string) (*domain.Event, *domain.User, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, nil, domain.ErrEventNotFound
		}
		return nil, nil, fmt.Errorf("get event: %w", err)
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, domain.ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("get user: %w", err)
	}
	return event, user, nil
}

func (s *rsvpService) CreateRSVP(ctx context.Context, eventID, userID string, input domain.RSVPInput) (*domain.RSVP, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, user, err := s.resolvePair(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}

	status := domain.RSVPStatusAttending
	if input.Status != "" {
		if status, err = domain.ParseRSVPStatus(input.Status); err != nil {
			return nil, err
		}
	}
	role := domain.EventRoleParticipant
	if input.EventRole != "" {
		if role, err = domain.ParseEventRole(input.EventRole); err != nil {
			return nil, err
		}
	}

	// An ATTENDING commitment must not collide with another ATTENDING
	// commitment whose date and time window intersects this event's.
	if status == domain.RSVPStatusAttending {
		attending, err := s.rsvpRepo.ListAttendingByUserID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("list attending rsvps: %w", err)
		}
		for _, existing := range attending {
			if existing.EventID == event.ID {
				// Duplicate pair is reported by the insert itself.
				continue
			}
			if existing.Event != nil && existing.Event.Overlaps(event) {
				return nil, domain.ErrRSVPOverlap
			}
		}
	}

	now := time.Now()
	rsvp := domain.NewRSVP(event.ID, user.ID, status, role, now, now)
	if err := s.rsvpRepo.Create(ctx, rsvp, event.Capacity); err != nil {
		if errors.Is(err, domain.ErrRSVPExists) || errors.Is(err, domain.ErrEventFull) {
			return nil, err
		}
		return nil, fmt.Errorf("create rsvp: %w", err)
	}
	rsvp.Event = event
	rsvp.User = user
	return rsvp, nil
}

func (s *rsvpService) GetAttendeesByEvent(ctx context.Context, eventID string) ([]*domain.RSVP, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	rsvps, err := s.rsvpRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list rsvps: %w", err)
	}
	if rsvps == nil {
		rsvps = []*domain.RSVP{}
	}
	return rsvps, nil
}

func (s *rsvpService) CancelRSVP(ctx context.Context, eventID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, _, err := s.resolvePair(ctx, eventID, userID); err != nil {
		return err
	}
	// Hard delete, no soft-delete or undo.
	if err := s.rsvpRepo.Delete(ctx, eventID, userID); err != nil {
		if errors.Is(err, domain.ErrRSVPNotFound) {
			return domain.ErrRSVPNotFound
		}
		return fmt.Errorf("delete rsvp: %w", err)
	}
	return nil
}

func (s *rsvpService) UpdateRSVP(ctx context.Context, eventID, userID string, upd domain.RSVPUpdate) (*domain.RSVP, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, user, err := s.resolvePair(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}

	var status *domain.RSVPStatus
	if upd.Status != nil {
		parsed, err := domain.ParseRSVPStatus(*upd.Status)
		if err != nil {
			return nil, err
		}
		status = &parsed
	}
	var role *domain.EventRole
	if upd.EventRole != nil {
		parsed, err := domain.ParseEventRole(*upd.EventRole)
		if err != nil {
			return nil, err
		}
		role = &parsed
	}

	rsvp, err := s.rsvpRepo.Update(ctx, eventID, userID, status, role)
	if err != nil {
		if errors.Is(err, domain.ErrRSVPNotFound) {
			return nil, domain.ErrRSVPNotFound
		}
		return nil, fmt.Errorf("update rsvp: %w", err)
	}
	rsvp.Event = event
	rsvp.User = user
	return rsvp, nil
}

func (s *rsvpService) CheckInUser(ctx context.Context, eventID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, _, err := s.resolvePair(ctx, eventID, userID); err != nil {
		return err
	}
	if err := s.rsvpRepo.CheckIn(ctx, eventID, userID, time.Now()); err != nil {
		if errors.Is(err, domain.ErrRSVPNotFound) {
			return domain.ErrRSVPNotFound
		}
		return fmt.Errorf("check in rsvp: %w", err)
	}
	return nil
}

func (s *rsvpService) ListRSVPsByUser(ctx context.Context, userID string) ([]*domain.RSVP, error) {
	return s.listByUser(ctx, userID, false)
}

func (s *rsvpService) ListCheckedInRSVPsByUser(ctx context.Context, userID string) ([]*domain.RSVP, error) {
	return s.listByUser(ctx, userID, true)
}

func (s *rsvpService) listByUser(ctx context.Context, userID string, checkedInOnly bool) ([]*domain.RSVP, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	rsvps, err := s.rsvpRepo.ListByUserID(ctx, userID, checkedInOnly)
	if err != nil {
		return nil, fmt.Errorf("list rsvps: %w", err)
	}
	if rsvps == nil {
		rsvps = []*domain.RSVP{}
	}
	return rsvps, nil
}

func (s *rsvpService) OneClickRSVP(ctx context.Context, userID, eventID string) (*domain.RSVP, error) {
	// Conflict detail propagates: the boundary decides how much to expose.
	return s.CreateRSVP(ctx, eventID, userID, domain.RSVPInput{
		Status:    string(domain.RSVPStatusAttending),
		EventRole: string(domain.EventRoleParticipant),
	})
}
