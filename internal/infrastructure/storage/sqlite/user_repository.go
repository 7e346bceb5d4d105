package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"userpanel/internal/domain/user"

	"github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"
)

var sortColumns = map[string]string{
	"name":    "name",
	"email":   "email",
	"phone":   "phone",
	"address": "address",
	"status":  "status",
}

type UserRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewUserRepository(storage *Storage, log *slog.Logger) *UserRepository {
	return &UserRepository{
		db:  storage.DB(),
		log: log.With("component", "user_repository"),
	}
}

func (r *UserRepository) List(ctx context.Context, q user.ListQuery) ([]user.User, error) {
	query := `
		SELECT id, name, email, phone, address, status, created_at, updated_at
		FROM users`

	var args []any
	if q.Status != "" {
		query += ` WHERE status = ?`
		args = append(args, string(q.Status))
	}

	if col, ok := sortColumns[q.SortField]; ok {
		dir := "ASC"
		if q.Order == "desc" {
			dir = "DESC"
		}
		query += fmt.Sprintf(` ORDER BY %s COLLATE NOCASE %s, id`, col, dir)
	} else {
		query += ` ORDER BY updated_at DESC, id`
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("ошибка выборки пользователей: %w", err)
	}
	defer rows.Close()

	var out []user.User
	for rows.Next() {
		var u user.User
		var status string
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Address,
			&status, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("ошибка чтения строки: %w", err)
		}
		u.Status = user.Status(status)
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обхода строк: %w", err)
	}

	return out, nil
}

func (r *UserRepository) Get(ctx context.Context, id string) (*user.User, error) {
	const query = `
		SELECT id, name, email, phone, address, status, created_at, updated_at
		FROM users
		WHERE id = ?`

	var u user.User
	var status string
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Address,
			&status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		r.log.Error("failed to get user", "user_id", id, "error", err)
		return nil, fmt.Errorf("ошибка чтения пользователя: %w", err)
	}
	u.Status = user.Status(status)

	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	const query = `
		INSERT INTO users (id, name, email, phone, address, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.Name, u.Email, u.Phone, u.Address, string(u.Status), u.CreatedAt, u.UpdatedAt)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			return user.ErrDuplicateID
		}
		r.log.Error("failed to create user", "user_id", u.ID, "error", err)
		return fmt.Errorf("ошибка вставки пользователя: %w", err)
	}

	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	const query = `
		UPDATE users
		SET name = ?, email = ?, phone = ?, address = ?, status = ?, updated_at = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		u.Name, u.Email, u.Phone, u.Address, string(u.Status), u.UpdatedAt, u.ID)
	if err != nil {
		r.log.Error("failed to update user", "user_id", u.ID, "error", err)
		return fmt.Errorf("ошибка обновления пользователя: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return user.ErrNotFound
	}

	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		r.log.Error("failed to delete user", "user_id", id, "error", err)
		return fmt.Errorf("ошибка удаления пользователя: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return user.ErrNotFound
	}

	return nil
}
