package user

import "context"

// ListQuery mirrors the query parameters of the collection's list
// endpoint. Zero values mean "not set".
type ListQuery struct {
	SortField string
	Order     string // "asc" or "desc"; defaults to asc when SortField is set
	Status    Status
}

// Repository defines the persistence operations the collection server
// needs. Implemented by postgres and sqlite storages.
type Repository interface {
	List(ctx context.Context, q ListQuery) ([]User, error)
	Get(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id string) error
}
