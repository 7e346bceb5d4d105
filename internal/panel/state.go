// Package panel implements the query-composition core of the user
// management panel: one immutable query state, a single intent reducer
// enforcing the search/sort/filter precedence rules, and the fetch
// pipeline that keeps pagination consistent after every mutation.
package panel

import (
	"errors"
	"fmt"

	"userpanel/internal/domain/user"
)

// ItemsPerPage is fixed; the panel never asks the store to paginate.
const ItemsPerPage = 10

var (
	ErrPageOutOfRange = errors.New("page out of range")
	ErrUnknownIntent  = errors.New("unknown intent")
)

// QueryState governs what is fetched and shown. It is a value: the
// reducer returns a new state and never mutates the old one.
type QueryState struct {
	SearchTerm   string
	SortField    string
	StatusFilter user.Status
	CurrentPage  int
	TotalPages   int
}

// NewQueryState returns the default view state: no search, no sort,
// no filter, first page. The default ordering (most recently updated
// first) is applied by the pipeline, not encoded here.
func NewQueryState() QueryState {
	return QueryState{CurrentPage: 1}
}

// Searching reports whether the local search path is active.
func (s QueryState) Searching() bool {
	return s.SearchTerm != ""
}

// HasPrev reports whether a previous page exists. The presentation
// layer disables the control instead of clamping.
func (s QueryState) HasPrev() bool {
	return s.CurrentPage > 1
}

// HasNext reports whether a next page exists.
func (s QueryState) HasNext() bool {
	return s.CurrentPage < s.TotalPages
}

// Intent is a user intention dispatched by the presentation layer.
type Intent interface {
	isIntent()
}

// SearchIntent — отправка поисковой формы
type SearchIntent struct{ Term string }

// SortIntent — выбор поля сортировки
type SortIntent struct{ Field string }

// FilterIntent — клик по фильтру статуса
type FilterIntent struct{ Status user.Status }

// PageIntent — переход на страницу
type PageIntent struct{ Page int }

// ResetIntent clears search, sort and filter and returns to page 1.
type ResetIntent struct{}

// RefreshIntent re-runs the pipeline with the state unchanged.
type RefreshIntent struct{}

func (SearchIntent) isIntent()  {}
func (SortIntent) isIntent()    {}
func (FilterIntent) isIntent()  {}
func (PageIntent) isIntent()    {}
func (ResetIntent) isIntent()   {}
func (RefreshIntent) isIntent() {}

// Apply is the single reducer for all query-state transitions. The
// precedence rules live here and nowhere else:
//
//	search submit -> clears sort, keeps filter
//	sort select   -> clears search, keeps filter
//	filter click  -> keeps sort, search stays cleared; same value toggles off
//	any of those  -> back to page 1
//
// Page navigation outside [1, TotalPages] is rejected, not clamped.
func Apply(s QueryState, intent Intent) (QueryState, error) {
	switch in := intent.(type) {
	case SearchIntent:
		s.SearchTerm = in.Term
		if in.Term != "" {
			// Search and explicit sort are mutually exclusive; the
			// search path falls back to recency ordering.
			s.SortField = ""
		}
		s.CurrentPage = 1
		return s, nil

	case SortIntent:
		if !user.IsSortableField(in.Field) {
			return s, fmt.Errorf("%w: cannot sort by %q", user.ErrInvalidInput, in.Field)
		}
		s.SortField = in.Field
		s.SearchTerm = ""
		s.CurrentPage = 1
		return s, nil

	case FilterIntent:
		if !in.Status.Valid() {
			return s, fmt.Errorf("%w: unknown status %q", user.ErrInvalidInput, in.Status)
		}
		if s.StatusFilter == in.Status {
			// Clicking the active filter again clears it.
			s.StatusFilter = ""
		} else {
			s.StatusFilter = in.Status
		}
		s.SearchTerm = ""
		s.CurrentPage = 1
		return s, nil

	case PageIntent:
		last := s.TotalPages
		if last < 1 {
			last = 1
		}
		if in.Page < 1 || in.Page > last {
			return s, fmt.Errorf("%w: %d of %d", ErrPageOutOfRange, in.Page, s.TotalPages)
		}
		s.CurrentPage = in.Page
		return s, nil

	case ResetIntent:
		return NewQueryState(), nil

	case RefreshIntent:
		return s, nil

	default:
		return s, fmt.Errorf("%w: %T", ErrUnknownIntent, intent)
	}
}
