package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

// Service defines the business logic of the user collection
type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
}

type Servicer interface {
	List(ctx context.Context, q ListQuery) ([]User, error)
	Get(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id string) error
}

// NewService creates a new user service
func NewService(repo Repository, validator Validator, log *slog.Logger) Servicer {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With("component", "user_service"),
	}
}

// List returns users filtered and ordered per the query. Free-text
// search is intentionally not supported here; clients that need it
// fetch the full set and filter locally.
func (s *Service) List(ctx context.Context, q ListQuery) ([]User, error) {
	if q.SortField != "" && !IsSortableField(q.SortField) {
		return nil, fmt.Errorf("%w: unknown sort field %q", ErrInvalidInput, q.SortField)
	}
	if q.Status != "" && !q.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, q.Status)
	}
	if q.Order == "" {
		q.Order = "asc"
	} else if o := strings.ToLower(q.Order); o == "asc" || o == "desc" {
		q.Order = o
	} else {
		return nil, fmt.Errorf("%w: unknown order %q", ErrInvalidInput, q.Order)
	}

	users, err := s.repo.List(ctx, q)
	if err != nil {
		s.log.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Get returns a single user by id.
func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	if !ValidID.MatchString(id) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// Create stores a new record. The id arrives pre-generated from the
// client; the server only verifies the format and uniqueness.
func (s *Service) Create(ctx context.Context, u *User) error {
	if err := s.validator.ValidateCreate(u); err != nil {
		return err
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = u.CreatedAt
	}
	if err := s.repo.Create(ctx, u); err != nil {
		s.log.Error("failed to create user", "user_id", u.ID, "error", err)
		return fmt.Errorf("create user: %w", err)
	}
	s.log.Info("user created", "user_id", u.ID)
	return nil
}

// Update overwrites the stored record. Last write wins; createdAt is
// preserved from the stored row, never taken from the request.
func (s *Service) Update(ctx context.Context, u *User) error {
	if err := s.validator.ValidateUpdate(u); err != nil {
		return err
	}
	stored, err := s.repo.Get(ctx, u.ID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	u.CreatedAt = stored.CreatedAt
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = time.Now()
	}
	if err := s.repo.Update(ctx, u); err != nil {
		s.log.Error("failed to update user", "user_id", u.ID, "error", err)
		return fmt.Errorf("update user: %w", err)
	}
	s.log.Info("user updated", "user_id", u.ID)
	return nil
}

// Delete removes the record.
func (s *Service) Delete(ctx context.Context, id string) error {
	if !ValidID.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete user", "user_id", id, "error", err)
		return fmt.Errorf("delete user: %w", err)
	}
	s.log.Info("user deleted", "user_id", id)
	return nil
}
