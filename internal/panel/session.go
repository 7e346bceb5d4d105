package panel

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"userpanel/internal/domain/user"
)

// ErrStaleResponse marks a fetch whose response arrived after a newer
// query was already issued. The result is discarded, never installed.
var ErrStaleResponse = errors.New("stale response discarded")

// Store is the remote collection the panel operates on.
type Store interface {
	List(ctx context.Context, q user.ListQuery) ([]user.User, error)
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id string) error
}

// Row is the value object handed to the presentation layer for one
// visible table row.
type Row struct {
	Position  int    `json:"position"`
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// View is the rendered result of one pipeline run: the full ordered
// result set plus the slice visible on the current page.
type View struct {
	State   QueryState
	Results []user.User
	Page    []user.User
}

// Empty reports a logical empty result — zero matches is not an
// error, it renders as an explicit empty-state row.
func (v View) Empty() bool {
	return len(v.Results) == 0
}

// Rows converts the visible page into presentation value objects.
// Positions continue across pages, matching the table's "No." column.
func (v View) Rows() []Row {
	rows := make([]Row, 0, len(v.Page))
	offset := (v.State.CurrentPage - 1) * ItemsPerPage
	for i, u := range v.Page {
		rows = append(rows, Row{
			Position:  offset + i + 1,
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Phone:     u.Phone,
			Address:   u.Address,
			Status:    string(u.Status),
			CreatedAt: u.CreatedAt.Local().Format(user.DisplayTimeFormat),
			UpdatedAt: u.UpdatedAt.Local().Format(user.DisplayTimeFormat),
		})
	}
	return rows
}

// Session owns the authoritative query state and runs the fetch
// pipeline. Handlers run to completion, but responses may still
// resolve out of order when intents overlap; every pipeline run is
// stamped with a monotonically increasing token and only the latest
// issued run may install its result.
type Session struct {
	store     Store
	gen       *user.IDGenerator
	validator user.Validator
	log       *slog.Logger
	now       func() time.Time

	mu    sync.Mutex
	state QueryState
	view  View
	token uint64 // последний выданный токен запроса
}

// NewSession creates a panel session over the given store.
func NewSession(store Store, log *slog.Logger) *Session {
	return &Session{
		store:     store,
		gen:       user.NewIDGenerator(),
		validator: user.NewFormValidator(),
		log:       log.With("component", "panel_session"),
		now:       time.Now,
		state:     NewQueryState(),
	}
}

// State returns a copy of the current query state.
func (s *Session) State() QueryState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// View returns the last installed view.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Dispatch applies one user intent and re-runs the pipeline:
// reduce -> fetch -> post-process -> paginate -> install. On any
// error the previous state and view stay untouched.
func (s *Session) Dispatch(ctx context.Context, intent Intent) (View, error) {
	s.mu.Lock()
	next, err := Apply(s.state, intent)
	if err != nil {
		prev := s.view
		s.mu.Unlock()
		return prev, err
	}
	s.token++
	token := s.token
	s.mu.Unlock()

	view, err := s.runPipeline(ctx, next)
	if err != nil {
		return s.View(), err
	}

	return s.install(token, view)
}

// runPipeline fetches and post-processes the result set for a query
// state, returning the view to install. Pagination is always local.
func (s *Session) runPipeline(ctx context.Context, state QueryState) (View, error) {
	var results []user.User

	if state.Searching() {
		// Search path: the store cannot combine free-text search with
		// sort/filter in one request, so fetch everything and do the
		// rest here. Ordering falls back to recency.
		all, err := s.store.List(ctx, user.ListQuery{})
		if err != nil {
			return View{}, fmt.Errorf("fetch for search: %w", err)
		}
		results = FilterBySearchTerm(all, state.SearchTerm)
		results = FilterByStatus(results, state.StatusFilter)
		results = SortByRecency(results)
	} else {
		q := user.ListQuery{Status: state.StatusFilter}
		if state.SortField != "" {
			q.SortField = state.SortField
			q.Order = "asc"
		}
		fetched, err := s.store.List(ctx, q)
		if err != nil {
			return View{}, fmt.Errorf("fetch users: %w", err)
		}
		results = fetched
		if state.SortField != "" {
			// Store collation varies: json-server orders byte-wise, so
			// uppercase would sort before lowercase. Re-sort here to
			// keep the case-insensitive order the table promises.
			results = SortByField(results, state.SortField)
		} else {
			results = SortByRecency(results)
		}
	}

	state.TotalPages = TotalPages(len(results))
	state.CurrentPage = backOff(state.CurrentPage, state.TotalPages)

	return View{
		State:   state,
		Results: results,
		Page:    PageSlice(results, state.CurrentPage),
	}, nil
}

// install commits a pipeline result unless a newer run was issued in
// the meantime.
func (s *Session) install(token uint64, view View) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.token {
		s.log.Debug("discarding stale response", "token", token, "latest", s.token)
		return s.view, ErrStaleResponse
	}
	s.state = view.State
	s.view = view
	return view, nil
}

// CreateUser assigns an identifier, stamps both timestamps and sends
// the record to the store. On success the panel returns to page 1 and
// the pipeline re-runs with the current sort/filter; on failure
// nothing changes, so the caller can keep the form open for retry.
// The stamped record is returned as sent: the refreshed view may not
// have it first (or at all, under an active filter).
func (s *Session) CreateUser(ctx context.Context, draft user.User) (user.User, View, error) {
	id, err := s.gen.NewID()
	if err != nil {
		return user.User{}, s.View(), err
	}
	draft.ID = id
	now := s.now()
	draft.CreatedAt = now
	draft.UpdatedAt = now

	if err := s.validator.ValidateCreate(&draft); err != nil {
		return user.User{}, s.View(), err
	}

	if err := s.store.Create(ctx, &draft); err != nil {
		s.log.Error("create failed", "user_id", draft.ID, "error", err)
		return user.User{}, s.View(), fmt.Errorf("create user: %w", err)
	}

	s.mu.Lock()
	s.state.CurrentPage = 1
	s.mu.Unlock()
	view, err := s.Dispatch(ctx, RefreshIntent{})
	return draft, view, err
}

// UpdateUser refreshes updatedAt and resends the full record. The
// stored createdAt is authoritative; the store ignores the one sent
// here. The user's page position is kept.
func (s *Session) UpdateUser(ctx context.Context, u user.User) (View, error) {
	u.UpdatedAt = s.now()

	if err := s.validator.ValidateUpdate(&u); err != nil {
		return s.View(), err
	}

	if err := s.store.Update(ctx, &u); err != nil {
		s.log.Error("update failed", "user_id", u.ID, "error", err)
		return s.View(), fmt.Errorf("update user: %w", err)
	}

	return s.Dispatch(ctx, RefreshIntent{})
}

// DeleteUser removes the record and re-runs the pipeline. When the
// delete empties the current page the back-off rule steps back one
// page instead of showing an empty one. Interactive confirmation is
// the presentation layer's responsibility; by the time this is called
// the delete is decided.
func (s *Session) DeleteUser(ctx context.Context, id string) (View, error) {
	if !user.ValidID.MatchString(id) {
		return s.View(), fmt.Errorf("%w: %q", user.ErrInvalidID, id)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		s.log.Error("delete failed", "user_id", id, "error", err)
		return s.View(), fmt.Errorf("delete user: %w", err)
	}

	return s.Dispatch(ctx, RefreshIntent{})
}
