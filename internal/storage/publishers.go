package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/neutech/estates/internal/model"
)

// SaveUsers inserts publisher applications, skipping any ids that already
// exist. Insertion order is preserved for ListUsers via an autoincrement
// sequence column.
func (s *SQLiteStorage) SaveUsers(ctx context.Context, users []model.User) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	query := `
		INSERT OR IGNORE INTO users (
			id, name, email, phone, business_name, status, requested_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)`

	for i := range users {
		user := users[i]
		if err := validateUser(&user); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("user at index %d: %w", i, err)
		}

		status := user.Status
		if status == "" {
			status = model.StatusPending
		}

		if _, err := tx.ExecContext(ctx, query,
			user.ID,
			user.Name,
			user.Email,
			user.Phone,
			user.BusinessName,
			string(status),
			user.RequestedAt,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert user %s: %w", user.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit users: %w", err)
	}

	slog.Debug("saved users", "count", len(users))
	return nil
}

// ListUsers returns every publisher application in stable insertion order.
func (s *SQLiteStorage) ListUsers(ctx context.Context) ([]model.User, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, email, phone, business_name, status, requested_at
		FROM users
		ORDER BY seq`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var users []model.User
	for rows.Next() {
		var (
			user   model.User
			status string
		)
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Phone,
			&user.BusinessName,
			&status,
			&user.RequestedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		user.Status = model.UserStatus(status)
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// SetUserStatus overwrites the status of the matching user. Unknown ids
// are a silent no-op; re-applying the same status is allowed and simply
// overwrites it. No history is kept.
func (s *SQLiteStorage) SetUserStatus(ctx context.Context, id string, status model.UserStatus) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	if err := validateStatus(status); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE users SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update user status: %w", err)
	}

	if affected, raErr := result.RowsAffected(); raErr == nil {
		slog.Debug("set user status", "id", id, "status", status, "existed", affected > 0)
	}
	return nil
}
