package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"eventease/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var userCols = []string{"id", "first_name", "last_name", "email", "created_at", "updated_at"}

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users \(first_name, last_name, email, created_at, updated_at\)`).
					WithArgs("Ada", "Lovelace", "ada@example.com", created, created).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-uuid-1"))
			},
			wantID: "user-uuid-1",
		},
		{
			name: "duplicate email",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: domain.ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewUserRepository(db)
			user := &domain.User{
				FirstName: "Ada",
				LastName:  "Lovelace",
				Email:     "ada@example.com",
				CreatedAt: created,
				UpdatedAt: created,
			}
			err = repo.Create(ctx, user)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, user.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		id      string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.User
		wantErr error
	}{
		{
			name: "success",
			id:   "user-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, first_name, last_name, email, created_at, updated_at`).
					WithArgs("user-1").
					WillReturnRows(sqlmock.NewRows(userCols).
						AddRow("user-1", "Ada", "Lovelace", "ada@example.com", created, created))
			},
			want: &domain.User{
				ID:        "user-1",
				FirstName: "Ada",
				LastName:  "Lovelace",
				Email:     "ada@example.com",
				CreatedAt: created,
				UpdatedAt: created,
			},
		},
		{
			name: "not found",
			id:   "user-missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, first_name, last_name, email, created_at, updated_at`).
					WithArgs("user-missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewUserRepository(db)
			got, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, got)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_Update(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	email := "ada.lovelace@example.com"

	tests := []struct {
		name    string
		upd     domain.UserUpdate
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "updates email",
			upd:  domain.UserUpdate{Email: &email},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE users SET updated_at = NOW\(\), email = \$1`).
					WithArgs("ada.lovelace@example.com", "user-1").
					WillReturnRows(sqlmock.NewRows(userCols).
						AddRow("user-1", "Ada", "Lovelace", "ada.lovelace@example.com", created, created))
			},
		},
		{
			name: "duplicate email",
			upd:  domain.UserUpdate{Email: &email},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE users SET`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: domain.ErrDuplicateEmail,
		},
		{
			name: "not found",
			upd:  domain.UserUpdate{Email: &email},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE users SET`).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewUserRepository(db)
			got, err := repo.Update(ctx, "user-1", tt.upd)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, got)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, "ada.lovelace@example.com", got.Email)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
					WithArgs("user-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
					WithArgs("user-1").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewUserRepository(db)
			err = repo.Delete(ctx, "user-1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
