package sqlite

import (
	"context"
	"testing"
	"time"

	"userpanel/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func newTestRepo(t *testing.T) *UserRepository {
	t.Helper()

	storage, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { storage.Close() })

	return NewUserRepository(storage, slog.Default())
}

func seedUser(t *testing.T, repo *UserRepository, id, name string, status user.Status, updated time.Time) {
	t.Helper()

	err := repo.Create(context.Background(), &user.User{
		ID:        id,
		Name:      name,
		Email:     name + "@example.com",
		Phone:     "+7 900 000-00-00",
		Address:   "Арбат 1, Москва",
		Status:    status,
		CreatedAt: updated.Add(-time.Hour),
		UpdatedAt: updated,
	})
	require.NoError(t, err)
}

func TestUserRepository_CRUD(t *testing.T) {
	// Arrange
	repo := newTestRepo(t)
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	seedUser(t, repo, "665aff00abababababababab", "Ivan", user.StatusActive, now)

	// Act
	got, err := repo.Get(ctx, "665aff00abababababababab")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Ivan", got.Name)
	assert.Equal(t, user.StatusActive, got.Status)

	// Act: update
	got.Name = "Ivan Petrov"
	got.UpdatedAt = now.Add(time.Minute)
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.Get(ctx, got.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ivan Petrov", updated.Name)

	// Act: delete
	require.NoError(t, repo.Delete(ctx, got.ID))
	_, err = repo.Get(ctx, got.ID)
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestUserRepository_Create_duplicateID(t *testing.T) {
	repo := newTestRepo(t)
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	seedUser(t, repo, "665aff00abababababababab", "Ivan", user.StatusActive, now)

	err := repo.Create(context.Background(), &user.User{
		ID:        "665aff00abababababababab",
		Name:      "Second",
		Email:     "second@example.com",
		Phone:     "+7 900 000-00-01",
		Address:   "Арбат 2, Москва",
		Status:    user.StatusInactive,
		CreatedAt: now,
		UpdatedAt: now,
	})

	assert.ErrorIs(t, err, user.ErrDuplicateID)
}

func TestUserRepository_List(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	seedUser(t, repo, "665aff00aaaaaaaaaaaaaaaa", "bob", user.StatusActive, base.Add(2*time.Minute))
	seedUser(t, repo, "665aff00bbbbbbbbbbbbbbbb", "Alice", user.StatusInactive, base.Add(time.Minute))
	seedUser(t, repo, "665aff00cccccccccccccccc", "Carol", user.StatusActive, base)

	tests := []struct {
		name     string
		query    user.ListQuery
		expected []string
	}{
		{
			name:     "default order is recency",
			query:    user.ListQuery{},
			expected: []string{"bob", "Alice", "Carol"},
		},
		{
			name:     "sort by name is case-insensitive",
			query:    user.ListQuery{SortField: "name", Order: "asc"},
			expected: []string{"Alice", "bob", "Carol"},
		},
		{
			name:     "sort descending",
			query:    user.ListQuery{SortField: "name", Order: "desc"},
			expected: []string{"Carol", "bob", "Alice"},
		},
		{
			name:     "status filter",
			query:    user.ListQuery{Status: user.StatusActive},
			expected: []string{"bob", "Carol"},
		},
		{
			name:     "status filter with sort",
			query:    user.ListQuery{SortField: "name", Order: "asc", Status: user.StatusActive},
			expected: []string{"bob", "Carol"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			got, err := repo.List(ctx, tt.query)

			// Assert
			require.NoError(t, err)
			names := make([]string, 0, len(got))
			for _, u := range got {
				names = append(names, u.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestUserRepository_Update_missingRow(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.Update(context.Background(), &user.User{
		ID:     "665aff00abababababababab",
		Name:   "Ghost",
		Status: user.StatusActive,
	})

	assert.ErrorIs(t, err, user.ErrNotFound)
}
