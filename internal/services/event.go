package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventease/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	userRepo       domain.UserRepository
	contextTimeout time.Duration
}

// NewEventService creates an EventService with the given repositories.
func NewEventService(eventRepo domain.EventRepository, userRepo domain.UserRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		userRepo:       userRepo,
		contextTimeout: timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if event.Name == "" {
		return fmt.Errorf("event name is required")
	}
	if event.HostID == "" {
		return fmt.Errorf("event host is required")
	}
	if event.Capacity <= 0 {
		return fmt.Errorf("event capacity must be positive")
	}
	start, err := domain.ParseTimeOfDay(event.StartTime)
	if err != nil {
		return fmt.Errorf("invalid start_time: %w", err)
	}
	end, err := domain.ParseTimeOfDay(event.EndTime)
	if err != nil {
		return fmt.Errorf("invalid end_time: %w", err)
	}
	if !start.Before(end) {
		return fmt.Errorf("end_time must be after start_time")
	}

	// The host must exist; it is set once here and never reassigned.
	if _, err := s.userRepo.GetByID(ctx, event.HostID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("get host: %w", err)
	}

	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()
	return s.eventRepo.Create(ctx, event)
}

func (s *eventService) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEventsByDateRange(ctx context.Context, from, to time.Time, p domain.PaginationParams) ([]*domain.Event, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, total, err := s.eventRepo.ListByDateRange(ctx, from, to, p)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, total, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, upd domain.EventUpdate) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if upd.StartTime != nil {
		if _, err := domain.ParseTimeOfDay(*upd.StartTime); err != nil {
			return nil, fmt.Errorf("invalid start_time: %w", err)
		}
	}
	if upd.EndTime != nil {
		if _, err := domain.ParseTimeOfDay(*upd.EndTime); err != nil {
			return nil, fmt.Errorf("invalid end_time: %w", err)
		}
	}
	if upd.Capacity != nil && *upd.Capacity <= 0 {
		return nil, fmt.Errorf("event capacity must be positive")
	}

	event, err := s.eventRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
