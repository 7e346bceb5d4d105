package panel

import (
	"sort"
	"strings"

	"userpanel/internal/domain/user"
)

// SortByField orders the records by the string value of the given
// field, case-insensitively. The sort is stable: records with equal
// keys keep their fetched order. The input slice is not modified.
func SortByField(users []user.User, field string) []user.User {
	out := make([]user.User, len(users))
	copy(out, users)

	sort.SliceStable(out, func(i, j int) bool {
		a := strings.ToLower(out[i].Field(field))
		b := strings.ToLower(out[j].Field(field))
		return a < b
	})
	return out
}

// SortByRecency orders the records by updatedAt descending — the
// implicit "recent activity" default view. Zero timestamps sort as
// earliest. The input slice is not modified.
func SortByRecency(users []user.User) []user.User {
	out := make([]user.User, len(users))
	copy(out, users)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}
