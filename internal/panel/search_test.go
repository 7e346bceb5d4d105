package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"userpanel/internal/domain/user"
)

func searchFixture() []user.User {
	return []user.User{
		{ID: "665aff00abababababababa0", Name: "Alice Johnson", Email: "alice@example.com", Phone: "555-0101", Address: "12 Main St", Status: user.StatusActive},
		{ID: "665aff00abababababababa1", Name: "Bob Smith", Email: "bob@example.com", Phone: "555-0102", Address: "34 Oak Ave", Status: user.StatusInactive},
		{ID: "665aff00abababababababa2", Name: "Carol King", Email: "carol.king@mainmail.io", Phone: "555-0103", Address: "56 Pine Rd", Status: user.StatusActive},
	}
}

func TestFilterBySearchTerm(t *testing.T) {
	users := searchFixture()

	tests := []struct {
		name      string
		term      string
		wantNames []string
	}{
		{name: "matches name case-insensitively", term: "ALICE", wantNames: []string{"Alice Johnson"}},
		{name: "matches email", term: "bob@", wantNames: []string{"Bob Smith"}},
		{name: "matches phone", term: "0103", wantNames: []string{"Carol King"}},
		{name: "matches address and email", term: "main", wantNames: []string{"Alice Johnson", "Carol King"}},
		{name: "matches status", term: "inactive", wantNames: []string{"Bob Smith"}},
		{name: "substring of status matches both", term: "active", wantNames: []string{"Alice Johnson", "Bob Smith", "Carol King"}},
		{name: "no match", term: "zebra", wantNames: []string{}},
		{name: "empty term keeps everything", term: "", wantNames: []string{"Alice Johnson", "Bob Smith", "Carol King"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterBySearchTerm(users, tt.term)

			names := make([]string, 0, len(got))
			for _, u := range got {
				names = append(names, u.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestFilterBySearchTerm_EmptyFields(t *testing.T) {
	// Records with absent fields must never panic and never match.
	users := []user.User{{ID: "665aff00abababababababa9", Name: "Dana"}}

	got := FilterBySearchTerm(users, "example.com")

	assert.Empty(t, got)
}

func TestFilterByStatus(t *testing.T) {
	users := searchFixture()

	active := FilterByStatus(users, user.StatusActive)
	assert.Len(t, active, 2)

	inactive := FilterByStatus(users, user.StatusInactive)
	assert.Len(t, inactive, 1)
	assert.Equal(t, "Bob Smith", inactive[0].Name)

	all := FilterByStatus(users, "")
	assert.Len(t, all, 3)
}
