package postgres

import (
	"context"
	"errors"
	"fmt"

	"userpanel/internal/domain/user"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

const pgUniqueViolation = "23505"

// sortColumns отображает публичные имена полей на колонки таблицы.
// Всё, чего здесь нет, отбрасывается еще на уровне сервиса.
var sortColumns = map[string]string{
	"name":    "name",
	"email":   "email",
	"phone":   "phone",
	"address": "address",
	"status":  "status",
}

type UserRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewUserRepository(storage *Storage, log *slog.Logger) *UserRepository {
	return &UserRepository{
		pool: storage.Pool(),
		log:  log.With("component", "user_repository"),
	}
}

func (r *UserRepository) List(ctx context.Context, q user.ListQuery) ([]user.User, error) {
	query := `
		SELECT id, name, email, phone, address, status, created_at, updated_at
		FROM users`

	var args []any
	if q.Status != "" {
		query += ` WHERE status = $1`
		args = append(args, string(q.Status))
	}

	if col, ok := sortColumns[q.SortField]; ok {
		dir := "ASC"
		if q.Order == "desc" {
			dir = "DESC"
		}
		// lower() дает регистронезависимый порядок, id стабилизирует его
		query += fmt.Sprintf(` ORDER BY lower(%s) %s, id`, col, dir)
	} else {
		query += ` ORDER BY updated_at DESC, id`
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func (r *UserRepository) Get(ctx context.Context, id string) (*user.User, error) {
	const query = `
		SELECT id, name, email, phone, address, status, created_at, updated_at
		FROM users
		WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		r.log.Error("failed to get user", "user_id", id, "error", err)
		return nil, fmt.Errorf("get user: %w", err)
	}

	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	const query = `
		INSERT INTO users (id, name, email, phone, address, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		u.ID, u.Name, u.Email, u.Phone, u.Address, string(u.Status), u.CreatedAt, u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return user.ErrDuplicateID
		}
		r.log.Error("failed to create user", "user_id", u.ID, "error", err)
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	const query = `
		UPDATE users
		SET name = $2, email = $3, phone = $4, address = $5, status = $6, updated_at = $7
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		u.ID, u.Name, u.Email, u.Phone, u.Address, string(u.Status), u.UpdatedAt)
	if err != nil {
		r.log.Error("failed to update user", "user_id", u.ID, "error", err)
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrNotFound
	}

	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		r.log.Error("failed to delete user", "user_id", id, "error", err)
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrNotFound
	}

	return nil
}

func scanUsers(rows pgx.Rows) ([]user.User, error) {
	var out []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return out, nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	var status string
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Address,
		&status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.Status = user.Status(status)
	return &u, nil
}
