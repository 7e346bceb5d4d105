package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userpanel/internal/domain/user"
)

func TestApply_SearchClearsSortKeepsFilter(t *testing.T) {
	s := QueryState{SortField: "name", StatusFilter: user.StatusActive, CurrentPage: 3, TotalPages: 5}

	next, err := Apply(s, SearchIntent{Term: "alice"})

	require.NoError(t, err)
	assert.Equal(t, "alice", next.SearchTerm)
	assert.Equal(t, "", next.SortField)
	assert.Equal(t, user.StatusActive, next.StatusFilter)
	assert.Equal(t, 1, next.CurrentPage)
}

func TestApply_EmptySearchKeepsSort(t *testing.T) {
	// Submitting an empty term clears the search and restores the
	// remote path with the existing sort/filter.
	s := QueryState{SearchTerm: "alice", SortField: "email", StatusFilter: user.StatusActive, CurrentPage: 2}

	next, err := Apply(s, SearchIntent{Term: ""})

	require.NoError(t, err)
	assert.Equal(t, "", next.SearchTerm)
	assert.Equal(t, "email", next.SortField)
	assert.Equal(t, user.StatusActive, next.StatusFilter)
	assert.Equal(t, 1, next.CurrentPage)
}

func TestApply_SortClearsSearchKeepsFilter(t *testing.T) {
	s := QueryState{SearchTerm: "alice", StatusFilter: user.StatusInactive, CurrentPage: 2}

	next, err := Apply(s, SortIntent{Field: "name"})

	require.NoError(t, err)
	assert.Equal(t, "name", next.SortField)
	assert.Equal(t, "", next.SearchTerm)
	assert.Equal(t, user.StatusInactive, next.StatusFilter)
	assert.Equal(t, 1, next.CurrentPage)
}

func TestApply_SortUnknownField(t *testing.T) {
	s := NewQueryState()

	next, err := Apply(s, SortIntent{Field: "createdAt"})

	assert.ErrorIs(t, err, user.ErrInvalidInput)
	assert.Equal(t, s, next)
}

func TestApply_FilterTogglesOff(t *testing.T) {
	s := NewQueryState()

	once, err := Apply(s, FilterIntent{Status: user.StatusActive})
	require.NoError(t, err)
	assert.Equal(t, user.StatusActive, once.StatusFilter)

	twice, err := Apply(once, FilterIntent{Status: user.StatusActive})
	require.NoError(t, err)
	assert.Equal(t, user.Status(""), twice.StatusFilter, "double click clears the filter")
}

func TestApply_FilterKeepsSort(t *testing.T) {
	s := QueryState{SortField: "email", CurrentPage: 4, TotalPages: 9}

	next, err := Apply(s, FilterIntent{Status: user.StatusInactive})

	require.NoError(t, err)
	assert.Equal(t, "email", next.SortField)
	assert.Equal(t, user.StatusInactive, next.StatusFilter)
	assert.Equal(t, 1, next.CurrentPage)
}

func TestApply_FilterSwitchesValue(t *testing.T) {
	s := QueryState{StatusFilter: user.StatusActive, CurrentPage: 1}

	next, err := Apply(s, FilterIntent{Status: user.StatusInactive})

	require.NoError(t, err)
	assert.Equal(t, user.StatusInactive, next.StatusFilter)
}

func TestApply_FilterInvalidStatus(t *testing.T) {
	s := NewQueryState()

	_, err := Apply(s, FilterIntent{Status: "Pending"})

	assert.ErrorIs(t, err, user.ErrInvalidInput)
}

func TestApply_PageBounds(t *testing.T) {
	tests := []struct {
		name       string
		totalPages int
		page       int
		wantErr    bool
	}{
		{name: "first page", totalPages: 3, page: 1},
		{name: "last page", totalPages: 3, page: 3},
		{name: "below range", totalPages: 3, page: 0, wantErr: true},
		{name: "negative page", totalPages: 3, page: -2, wantErr: true},
		{name: "above range", totalPages: 3, page: 4, wantErr: true},
		{name: "page 1 of empty set", totalPages: 0, page: 1},
		{name: "page 2 of empty set", totalPages: 0, page: 2, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := QueryState{CurrentPage: 1, TotalPages: tt.totalPages}

			next, err := Apply(s, PageIntent{Page: tt.page})

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPageOutOfRange)
				assert.Equal(t, s, next, "rejected navigation must not move the page")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.page, next.CurrentPage)
			}
		})
	}
}

func TestApply_Reset(t *testing.T) {
	s := QueryState{SearchTerm: "x", SortField: "name", StatusFilter: user.StatusActive, CurrentPage: 7, TotalPages: 9}

	next, err := Apply(s, ResetIntent{})

	require.NoError(t, err)
	assert.Equal(t, NewQueryState(), next)
}

func TestQueryState_PageControls(t *testing.T) {
	s := QueryState{CurrentPage: 1, TotalPages: 2}
	assert.False(t, s.HasPrev(), "Previous is disabled on page 1")
	assert.True(t, s.HasNext())

	s.CurrentPage = 2
	assert.True(t, s.HasPrev())
	assert.False(t, s.HasNext(), "Next is disabled on the last page")
}
