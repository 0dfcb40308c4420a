package services

import (
	"context"
	"slices"
	"strings"
	"time"

	"eventease/internal/domain"
)

type mockEventRepository struct {
	events  map[string]*domain.Event
	deleted []string
	err     error
}

func (m *mockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if m.err != nil {
		return m.err
	}
	event.ID = "ev-new"
	if m.events == nil {
		m.events = map[string]*domain.Event{}
	}
	m.events[event.ID] = event
	return nil
}

func (m *mockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	ev, ok := m.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return ev, nil
}

func (m *mockEventRepository) ListByDateRange(ctx context.Context, from, to time.Time, p domain.PaginationParams) ([]*domain.Event, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	events := make([]*domain.Event, 0, len(m.events))
	for _, ev := range m.events {
		events = append(events, ev)
	}
	return events, len(events), nil
}

func (m *mockEventRepository) Update(ctx context.Context, id string, upd domain.EventUpdate) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	ev, ok := m.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	if upd.Name != nil {
		ev.Name = *upd.Name
	}
	if upd.Capacity != nil {
		ev.Capacity = *upd.Capacity
	}
	return ev, nil
}

func (m *mockEventRepository) Delete(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(m.events, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type mockUserRepository struct {
	users map[string]*domain.User
	err   error
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	for _, u := range m.users {
		if u.Email == user.Email {
			return domain.ErrDuplicateEmail
		}
	}
	user.ID = "user-new"
	if m.users == nil {
		m.users = map[string]*domain.User{}
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepository) Update(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.FirstName != nil {
		u.FirstName = *upd.FirstName
	}
	return u, nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

// mockRSVPRepository keys RSVPs by "eventID:userID".
type mockRSVPRepository struct {
	rsvps     map[string]*domain.RSVP
	checkedIn map[string]time.Time
	err       error
}

func pairKey(eventID, userID string) string { return eventID + ":" + userID }

// sortByEventDate mirrors the repository ordering for user-scoped lists:
// ascending event date, then start time. RSVPs without an event reference
// sort last.
func sortByEventDate(rsvps []*domain.RSVP) {
	slices.SortFunc(rsvps, func(a, b *domain.RSVP) int {
		switch {
		case a.Event == nil && b.Event == nil:
			return 0
		case a.Event == nil:
			return 1
		case b.Event == nil:
			return -1
		}
		if c := a.Event.Date.Compare(b.Event.Date); c != 0 {
			return c
		}
		return strings.Compare(a.Event.StartTime, b.Event.StartTime)
	})
}

func (m *mockRSVPRepository) Create(ctx context.Context, rsvp *domain.RSVP, capacity int) error {
	if m.err != nil {
		return m.err
	}
	key := pairKey(rsvp.EventID, rsvp.UserID)
	if _, ok := m.rsvps[key]; ok {
		return domain.ErrRSVPExists
	}
	count := 0
	for _, r := range m.rsvps {
		if r.EventID == rsvp.EventID {
			count++
		}
	}
	if count >= capacity {
		return domain.ErrEventFull
	}
	rsvp.ID = "rsvp-new"
	if m.rsvps == nil {
		m.rsvps = map[string]*domain.RSVP{}
	}
	m.rsvps[key] = rsvp
	return nil
}

func (m *mockRSVPRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.RSVP, error) {
	if m.err != nil {
		return nil, m.err
	}
	r, ok := m.rsvps[pairKey(eventID, userID)]
	if !ok {
		return nil, domain.ErrRSVPNotFound
	}
	return r, nil
}

func (m *mockRSVPRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.RSVP, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []*domain.RSVP{}
	for _, r := range m.rsvps {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRSVPRepository) ListByUserID(ctx context.Context, userID string, checkedInOnly bool) ([]*domain.RSVP, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []*domain.RSVP{}
	for _, r := range m.rsvps {
		if r.UserID != userID {
			continue
		}
		if checkedInOnly && !r.CheckedIn {
			continue
		}
		out = append(out, r)
	}
	sortByEventDate(out)
	return out, nil
}

func (m *mockRSVPRepository) ListAttendingByUserID(ctx context.Context, userID string) ([]*domain.RSVP, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []*domain.RSVP{}
	for _, r := range m.rsvps {
		if r.UserID == userID && r.Status == domain.RSVPStatusAttending {
			out = append(out, r)
		}
	}
	sortByEventDate(out)
	return out, nil
}

func (m *mockRSVPRepository) Update(ctx context.Context, eventID, userID string, status *domain.RSVPStatus, role *domain.EventRole) (*domain.RSVP, error) {
	if m.err != nil {
		return nil, m.err
	}
	r, ok := m.rsvps[pairKey(eventID, userID)]
	if !ok {
		return nil, domain.ErrRSVPNotFound
	}
	if status != nil {
		r.Status = *status
	}
	if role != nil {
		r.EventRole = *role
	}
	return r, nil
}

func (m *mockRSVPRepository) CheckIn(ctx context.Context, eventID, userID string, at time.Time) error {
	if m.err != nil {
		return m.err
	}
	key := pairKey(eventID, userID)
	r, ok := m.rsvps[key]
	if !ok {
		return domain.ErrRSVPNotFound
	}
	if !r.CheckedIn {
		r.CheckedIn = true
		r.CheckedInAt = &at
		if m.checkedIn == nil {
			m.checkedIn = map[string]time.Time{}
		}
		m.checkedIn[key] = at
	}
	return nil
}

func (m *mockRSVPRepository) Delete(ctx context.Context, eventID, userID string) error {
	if m.err != nil {
		return m.err
	}
	key := pairKey(eventID, userID)
	if _, ok := m.rsvps[key]; !ok {
		return domain.ErrRSVPNotFound
	}
	delete(m.rsvps, key)
	return nil
}

type mockTaskRepository struct {
	tasks map[string]*domain.Task
	err   error
}

func (m *mockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if m.err != nil {
		return m.err
	}
	task.ID = "task-new"
	if m.tasks == nil {
		m.tasks = map[string]*domain.Task{}
	}
	m.tasks[task.ID] = task
	return nil
}

func (m *mockTaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	t, ok := m.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return t, nil
}

func (m *mockTaskRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []*domain.Task{}
	for _, t := range m.tasks {
		if t.EventID == eventID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockTaskRepository) Update(ctx context.Context, id string, status *domain.TaskStatus, upd domain.TaskUpdate) (*domain.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	t, ok := m.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	if status != nil {
		t.Status = *status
	}
	if upd.Name != nil {
		t.Name = *upd.Name
	}
	if upd.AssigneeID != nil {
		t.AssigneeID = *upd.AssigneeID
	}
	return t, nil
}

func (m *mockTaskRepository) Delete(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(m.tasks, id)
	return nil
}
