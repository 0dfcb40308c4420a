package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"eventease/internal/domain"
)

type taskRepository struct {
	DB *sql.DB
}

// NewTaskRepository returns a domain.TaskRepository implemented with Postgres.
func NewTaskRepository(db *sql.DB) domain.TaskRepository {
	return &taskRepository{DB: db}
}

const taskColumns = `id, event_id, assignee_id, name, description, status, due_date, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (*domain.Task, error) {
	t := &domain.Task{}
	var assignee, desc sql.NullString
	var due sql.NullTime
	err := row.Scan(
		&t.ID, &t.EventID, &assignee, &t.Name, &desc, &t.Status, &due, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.AssigneeID = assignee.String
	t.Description = desc.String
	if due.Valid {
		t.DueDate = &due.Time
	}
	return t, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (r *taskRepository) Create(ctx context.Context, t *domain.Task) error {
	query := `
		INSERT INTO tasks (event_id, assignee_id, name, description, status, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	var due sql.NullTime
	if t.DueDate != nil {
		due = sql.NullTime{Time: *t.DueDate, Valid: true}
	}
	return r.DB.QueryRowContext(ctx, query,
		t.EventID, nullString(t.AssigneeID), t.Name, t.Description, t.Status, due,
		t.CreatedAt, t.UpdatedAt,
	).Scan(&t.ID)
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	t, err := scanTask(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *taskRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE event_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) Update(ctx context.Context, id string, status *domain.TaskStatus, upd domain.TaskUpdate) (*domain.Task, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1
	add := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, value)
		n++
	}
	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if status != nil {
		add("status", *status)
	}
	if upd.AssigneeID != nil {
		add("assignee_id", nullString(*upd.AssigneeID))
	}
	if upd.DueDate != nil {
		add("due_date", *upd.DueDate)
	}
	if n == 1 {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE tasks SET %s
		WHERE id = $%d
		RETURNING `+taskColumns+`
	`, strings.Join(setClauses, ", "), n)
	t, err := scanTask(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
