package panel

import (
	"strings"

	"userpanel/internal/domain/user"
)

// FilterBySearchTerm keeps the records where the lowercased term is a
// substring of at least one searchable field. The store cannot combine
// free-text search with sort/filter server-side, so this always runs
// on the full fetched set.
func FilterBySearchTerm(users []user.User, term string) []user.User {
	if term == "" {
		return users
	}
	needle := strings.ToLower(term)

	matched := make([]user.User, 0, len(users))
	for _, u := range users {
		for _, field := range user.SortableFields {
			if strings.Contains(strings.ToLower(u.Field(field)), needle) {
				matched = append(matched, u)
				break
			}
		}
	}
	return matched
}

// FilterByStatus keeps the records with the given status. An empty
// status means no filtering.
func FilterByStatus(users []user.User, status user.Status) []user.User {
	if status == "" {
		return users
	}
	matched := make([]user.User, 0, len(users))
	for _, u := range users {
		if u.Status == status {
			matched = append(matched, u)
		}
	}
	return matched
}
