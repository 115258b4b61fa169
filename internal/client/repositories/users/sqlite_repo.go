package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userkeeper/internal/client/models"
	"github.com/dmitrijs2005/userkeeper/internal/client/store"
	"github.com/dmitrijs2005/userkeeper/internal/dbx"
)

var ErrNilUser = errors.New("nil user")

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, username, password FROM users
		WHERE username = ? AND password = ?
		ORDER BY id LIMIT 1
	`, username, password)

	u, err := scanUser(row)
	if err != nil {
		return models.NotFound(), fmt.Errorf("%w: failed to authenticate user[%s]: %w", store.ErrStore, username, err)
	}
	return u, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	if user == nil {
		return models.NotFoundID, ErrNilUser
	}

	res, err := r.db.ExecContext(ctx, `INSERT INTO users (username, password) VALUES (?, ?)`, user.Username, user.Password)
	if err != nil {
		return models.NotFoundID, fmt.Errorf("%w: failed to create user[%s]: %w", store.ErrStore, user.Username, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.NotFoundID, fmt.Errorf("%w: failed to read id of user[%s]: %w", store.ErrStore, user.Username, err)
	}

	user.ID = id
	return id, nil
}

func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (models.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, username, password FROM users
		WHERE username = ?
		ORDER BY id LIMIT 1
	`, username)

	u, err := scanUser(row)
	if err != nil {
		return models.NotFound(), fmt.Errorf("%w: failed to get user[%s]: %w", store.ErrStore, username, err)
	}
	return u, nil
}

// ListSafe returns every row in store order with the password left empty.
func (r *SQLiteRepository) ListSafe(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, username FROM users`)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list users: %w", store.ErrStore, err)
	}
	defer rows.Close()

	result := make([]models.User, 0)
	for rows.Next() {
		var (
			id   int64
			name sql.NullString
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("%w: failed to scan user row: %w", store.ErrStore, err)
		}
		result = append(result, models.User{ID: id, Username: name.String})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate user rows: %w", store.ErrStore, err)
	}

	return result, nil
}

func (r *SQLiteRepository) UpdatePassword(ctx context.Context, username, newPassword string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET password = ? WHERE username = ?`, newPassword, username)
	if err != nil {
		return false, fmt.Errorf("%w: failed to update password of user[%s]: %w", store.ErrStore, username, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: failed to count updated rows of user[%s]: %w", store.ErrStore, username, err)
	}
	return n > 0, nil
}

func (r *SQLiteRepository) DeleteByUsername(ctx context.Context, username string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE username = ?`, username)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to delete user[%s]: %w", store.ErrStore, username, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: failed to count deleted rows of user[%s]: %w", store.ErrStore, username, err)
	}
	return n, nil
}

// scanUser maps a single-row lookup, turning sql.ErrNoRows into the
// not-found sentinel.
func scanUser(row *sql.Row) (models.User, error) {
	var (
		u        models.User
		name     sql.NullString
		password sql.NullString
	)
	err := row.Scan(&u.ID, &name, &password)
	if errors.Is(err, sql.ErrNoRows) {
		return models.NotFound(), nil
	}
	if err != nil {
		return models.NotFound(), err
	}
	u.Username = name.String
	u.Password = password.String
	return u, nil
}
