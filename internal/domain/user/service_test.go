package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, q ListQuery) ([]User, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]User), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id string) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestService(repo Repository) Servicer {
	return NewService(repo, NewFormValidator(), slog.Default())
}

func TestService_List(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	users := []User{
		{ID: "665aff00abababababababab", Name: "Alice", Status: StatusActive},
		{ID: "665aff01abababababababab", Name: "Bob", Status: StatusInactive},
	}
	mockRepo.On("List", mock.Anything, ListQuery{SortField: "name", Order: "asc"}).
		Return(users, nil)

	got, err := service.List(context.Background(), ListQuery{SortField: "name"})

	require.NoError(t, err)
	assert.Equal(t, users, got)
	mockRepo.AssertExpectations(t)
}

func TestService_List_InvalidQuery(t *testing.T) {
	tests := []struct {
		name string
		q    ListQuery
	}{
		{name: "unknown sort field", q: ListQuery{SortField: "password"}},
		{name: "unknown status", q: ListQuery{Status: "Pending"}},
		{name: "unknown order", q: ListQuery{SortField: "name", Order: "sideways"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := newTestService(mockRepo)

			_, err := service.List(context.Background(), tt.q)

			assert.ErrorIs(t, err, ErrInvalidInput)
			mockRepo.AssertNotCalled(t, "List")
		})
	}
}

func TestService_Create(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	u := validDraft()
	mockRepo.On("Create", mock.Anything, u).Return(nil)

	err := service.Create(context.Background(), u)

	require.NoError(t, err)
	assert.False(t, u.CreatedAt.IsZero())
	assert.Equal(t, u.CreatedAt, u.UpdatedAt)
	mockRepo.AssertExpectations(t)
}

func TestService_Create_InvalidDraft(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	u := validDraft()
	u.Email = ""

	err := service.Create(context.Background(), u)

	assert.ErrorIs(t, err, ErrInvalidInput)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Update_PreservesCreatedAt(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	created := time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)
	stored := validDraft()
	stored.CreatedAt = created

	edited := validDraft()
	edited.Name = "Alice Cooper"
	edited.CreatedAt = time.Now() // client must not be able to move it

	mockRepo.On("Get", mock.Anything, edited.ID).Return(stored, nil)
	mockRepo.On("Update", mock.Anything, edited).Return(nil)

	err := service.Update(context.Background(), edited)

	require.NoError(t, err)
	assert.Equal(t, created, edited.CreatedAt)
	assert.True(t, edited.UpdatedAt.After(created))
	mockRepo.AssertExpectations(t)
}

func TestService_Update_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	edited := validDraft()
	mockRepo.On("Get", mock.Anything, edited.ID).Return(nil, ErrNotFound)

	err := service.Update(context.Background(), edited)

	assert.ErrorIs(t, err, ErrNotFound)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestService_Delete(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	id := "665aff00abababababababab"
	mockRepo.On("Delete", mock.Anything, id).Return(nil)

	err := service.Delete(context.Background(), id)

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_Delete_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	id := "665aff00abababababababab"
	mockRepo.On("Delete", mock.Anything, id).Return(errors.New("connection refused"))

	err := service.Delete(context.Background(), id)

	assert.Error(t, err)
}

func TestService_Delete_InvalidID(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	err := service.Delete(context.Background(), "42")

	assert.ErrorIs(t, err, ErrInvalidID)
	mockRepo.AssertNotCalled(t, "Delete")
}
