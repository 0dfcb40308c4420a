package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"eventease/internal/domain"
)

// maxTxAttempts bounds retries of serializable transactions that fail with a
// transient serialization error. Business conflicts are never retried.
const maxTxAttempts = 3

type rsvpRepository struct {
	DB *sql.DB
}

// NewRSVPRepository returns a domain.RSVPRepository implemented with Postgres.
func NewRSVPRepository(db *sql.DB) domain.RSVPRepository {
	return &rsvpRepository{DB: db}
}

// isSerializationFailure reports whether err is a Postgres serialization
// failure or deadlock, both of which are safe to retry.
func isSerializationFailure(err error) bool {
	var perr *pq.Error
	return errors.As(err, &perr) && (perr.Code == "40001" || perr.Code == "40P01")
}

func (r *rsvpRepository) Create(ctx context.Context, rsvp *domain.RSVP, capacity int) error {
	var err error
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err = r.createOnce(ctx, rsvp, capacity)
		if !isSerializationFailure(err) {
			return err
		}
	}
	return err
}

// createOnce counts the event's current RSVPs and inserts the new row within
// one serializable transaction, so concurrent creates cannot overshoot the
// capacity. The UNIQUE (event_id, user_id) constraint closes the
// check-then-insert race for duplicate pairs.
func (r *rsvpRepository) createOnce(ctx context.Context, rsvp *domain.RSVP, capacity int) error {
	tx, err := r.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM rsvps WHERE event_id = $1`, rsvp.EventID,
	).Scan(&count); err != nil {
		return err
	}
	if count >= capacity {
		return domain.ErrEventFull
	}

	query := `
		INSERT INTO rsvps (event_id, user_id, status, event_role, checked_in, created_at, updated_at)
		VALUES ($1, $2, $3, $4, FALSE, $5, $6)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, query,
		rsvp.EventID, rsvp.UserID, rsvp.Status, rsvp.EventRole, rsvp.CreatedAt, rsvp.UpdatedAt,
	).Scan(&rsvp.ID)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == "23505" {
			return domain.ErrRSVPExists
		}
		return err
	}
	return tx.Commit()
}

func (r *rsvpRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.RSVP, error) {
	query := `
		SELECT id, event_id, user_id, status, event_role, checked_in, checked_in_at, created_at, updated_at
		FROM rsvps
		WHERE event_id = $1 AND user_id = $2
	`
	rsvp := &domain.RSVP{}
	var checkedInAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, eventID, userID).Scan(
		&rsvp.ID, &rsvp.EventID, &rsvp.UserID, &rsvp.Status, &rsvp.EventRole,
		&rsvp.CheckedIn, &checkedInAt, &rsvp.CreatedAt, &rsvp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRSVPNotFound
		}
		return nil, err
	}
	if checkedInAt.Valid {
		rsvp.CheckedInAt = &checkedInAt.Time
	}
	return rsvp, nil
}

func (r *rsvpRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.RSVP, error) {
	query := `
		SELECT r.id, r.event_id, r.user_id, r.status, r.event_role, r.checked_in, r.checked_in_at,
		       r.created_at, r.updated_at,
		       u.id, u.first_name, u.last_name, u.email, u.created_at, u.updated_at
		FROM rsvps r
		JOIN users u ON u.id = r.user_id
		WHERE r.event_id = $1
		ORDER BY r.created_at, r.id
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rsvps := make([]*domain.RSVP, 0)
	for rows.Next() {
		rsvp := &domain.RSVP{User: &domain.User{}}
		var checkedInAt sql.NullTime
		if err := rows.Scan(
			&rsvp.ID, &rsvp.EventID, &rsvp.UserID, &rsvp.Status, &rsvp.EventRole,
			&rsvp.CheckedIn, &checkedInAt, &rsvp.CreatedAt, &rsvp.UpdatedAt,
			&rsvp.User.ID, &rsvp.User.FirstName, &rsvp.User.LastName, &rsvp.User.Email,
			&rsvp.User.CreatedAt, &rsvp.User.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if checkedInAt.Valid {
			rsvp.CheckedInAt = &checkedInAt.Time
		}
		rsvps = append(rsvps, rsvp)
	}
	return rsvps, rows.Err()
}

// rsvpWithEventColumns is the select list shared by the user-scoped queries.
const rsvpWithEventColumns = `
	SELECT r.id, r.event_id, r.user_id, r.status, r.event_role, r.checked_in, r.checked_in_at,
	       r.created_at, r.updated_at,
	       e.id, e.name, e.description, e.location, e.date, e.start_time, e.end_time,
	       e.capacity, e.budget, e.host_id, e.created_at, e.updated_at
	FROM rsvps r
	JOIN events e ON e.id = r.event_id
`

func (r *rsvpRepository) ListByUserID(ctx context.Context, userID string, checkedInOnly bool) ([]*domain.RSVP, error) {
	query := rsvpWithEventColumns + `
		WHERE r.user_id = $1
	`
	if checkedInOnly {
		query += ` AND r.checked_in`
	}
	query += ` ORDER BY e.date, e.start_time, r.id`
	return r.queryWithEvent(ctx, query, userID)
}

func (r *rsvpRepository) ListAttendingByUserID(ctx context.Context, userID string) ([]*domain.RSVP, error) {
	query := rsvpWithEventColumns + `
		WHERE r.user_id = $1 AND r.status = 'ATTENDING'
		ORDER BY e.date, e.start_time, r.id
	`
	return r.queryWithEvent(ctx, query, userID)
}

func (r *rsvpRepository) queryWithEvent(ctx context.Context, query string, args ...any) ([]*domain.RSVP, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rsvps := make([]*domain.RSVP, 0)
	for rows.Next() {
		rsvp := &domain.RSVP{Event: &domain.Event{}}
		var checkedInAt sql.NullTime
		var desc, loc sql.NullString
		if err := rows.Scan(
			&rsvp.ID, &rsvp.EventID, &rsvp.UserID, &rsvp.Status, &rsvp.EventRole,
			&rsvp.CheckedIn, &checkedInAt, &rsvp.CreatedAt, &rsvp.UpdatedAt,
			&rsvp.Event.ID, &rsvp.Event.Name, &desc, &loc, &rsvp.Event.Date,
			&rsvp.Event.StartTime, &rsvp.Event.EndTime, &rsvp.Event.Capacity,
			&rsvp.Event.Budget, &rsvp.Event.HostID, &rsvp.Event.CreatedAt, &rsvp.Event.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if checkedInAt.Valid {
			rsvp.CheckedInAt = &checkedInAt.Time
		}
		rsvp.Event.Description = desc.String
		rsvp.Event.Location = loc.String
		rsvps = append(rsvps, rsvp)
	}
	return rsvps, rows.Err()
}

func (r *rsvpRepository) Update(ctx context.Context, eventID, userID string, status *domain.RSVPStatus, role *domain.EventRole) (*domain.RSVP, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1
	if status != nil {
		setClauses = append(setClauses, fmt.Sprintf("status = $%d", n))
		args = append(args, *status)
		n++
	}
	if role != nil {
		setClauses = append(setClauses, fmt.Sprintf("event_role = $%d", n))
		args = append(args, *role)
		n++
	}
	if n == 1 {
		return r.GetByEventAndUser(ctx, eventID, userID)
	}
	args = append(args, eventID, userID)
	query := fmt.Sprintf(`
		UPDATE rsvps SET %s
		WHERE event_id = $%d AND user_id = $%d
		RETURNING id, event_id, user_id, status, event_role, checked_in, checked_in_at, created_at, updated_at
	`, strings.Join(setClauses, ", "), n, n+1)

	rsvp := &domain.RSVP{}
	var checkedInAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, args...).Scan(
		&rsvp.ID, &rsvp.EventID, &rsvp.UserID, &rsvp.Status, &rsvp.EventRole,
		&rsvp.CheckedIn, &checkedInAt, &rsvp.CreatedAt, &rsvp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRSVPNotFound
		}
		return nil, err
	}
	if checkedInAt.Valid {
		rsvp.CheckedInAt = &checkedInAt.Time
	}
	return rsvp, nil
}

func (r *rsvpRepository) CheckIn(ctx context.Context, eventID, userID string, at time.Time) error {
	// COALESCE keeps the first check-in timestamp on repeated calls.
	query := `
		UPDATE rsvps
		SET checked_in = TRUE, checked_in_at = COALESCE(checked_in_at, $3), updated_at = $3
		WHERE event_id = $1 AND user_id = $2
	`
	result, err := r.DB.ExecContext(ctx, query, eventID, userID, at)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrRSVPNotFound
	}
	return nil
}

func (r *rsvpRepository) Delete(ctx context.Context, eventID, userID string) error {
	var err error
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err = r.deleteOnce(ctx, eventID, userID)
		if !isSerializationFailure(err) {
			return err
		}
	}
	return err
}

// deleteOnce removes the RSVP in a serializable transaction so a concurrent
// create for the same pair cannot be lost or duplicated around the delete.
func (r *rsvpRepository) deleteOnce(ctx context.Context, eventID, userID string) error {
	tx, err := r.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`DELETE FROM rsvps WHERE event_id = $1 AND user_id = $2`, eventID, userID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrRSVPNotFound
	}
	return tx.Commit()
}
