package user

import "time"

// Status — статус пользователя в панели
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// User is the canonical record shape shared by the client and the
// collection server. The store owns the records; the panel holds only
// transient copies fetched per query.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DisplayTimeFormat is how timestamps are rendered to the user.
const DisplayTimeFormat = "2006-01-02 15:04:05"

// Field returns the string value of a searchable/sortable field.
// Unknown fields resolve to the empty string, never panic.
func (u *User) Field(name string) string {
	switch name {
	case "name":
		return u.Name
	case "email":
		return u.Email
	case "phone":
		return u.Phone
	case "address":
		return u.Address
	case "status":
		return string(u.Status)
	default:
		return ""
	}
}

// SortableFields lists the fields the panel can sort and search by.
var SortableFields = []string{"name", "email", "phone", "address", "status"}

// IsSortableField reports whether the panel may sort by the given field.
func IsSortableField(name string) bool {
	for _, f := range SortableFields {
		if f == name {
			return true
		}
	}
	return false
}
