package panel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userpanel/internal/domain/user"
)

func TestSortByField_CaseInsensitive(t *testing.T) {
	users := []user.User{
		{Name: "Bob"},
		{Name: "alice"},
	}

	got := SortByField(users, "name")

	require.Len(t, got, 2)
	assert.Equal(t, "alice", got[0].Name)
	assert.Equal(t, "Bob", got[1].Name)
}

func TestSortByField_StableOnTies(t *testing.T) {
	users := []user.User{
		{Name: "Ann", Email: "third@example.com", Status: user.StatusActive},
		{Name: "ann", Email: "first@example.com", Status: user.StatusActive},
		{Name: "ANN", Email: "second@example.com", Status: user.StatusActive},
	}

	got := SortByField(users, "name")

	// Equal keys keep their input order.
	assert.Equal(t, "third@example.com", got[0].Email)
	assert.Equal(t, "first@example.com", got[1].Email)
	assert.Equal(t, "second@example.com", got[2].Email)
}

func TestSortByField_DoesNotMutateInput(t *testing.T) {
	users := []user.User{{Name: "b"}, {Name: "a"}}

	_ = SortByField(users, "name")

	assert.Equal(t, "b", users[0].Name)
}

func TestSortByRecency(t *testing.T) {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	users := []user.User{
		{Name: "old", UpdatedAt: base},
		{Name: "newest", UpdatedAt: base.Add(2 * time.Hour)},
		{Name: "missing timestamp"},
		{Name: "newer", UpdatedAt: base.Add(time.Hour)},
	}

	got := SortByRecency(users)

	names := []string{got[0].Name, got[1].Name, got[2].Name, got[3].Name}
	assert.Equal(t, []string{"newest", "newer", "old", "missing timestamp"}, names,
		"missing timestamps sort as earliest")
}
