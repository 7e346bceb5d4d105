package panel

import "userpanel/internal/domain/user"

// FormState is the add/edit dialog draft. It exists only while the
// form is open and is cleared on close, cancel or successful submit.
// On a failed submit the draft is kept so the user can retry.
type FormState struct {
	Draft     user.User
	IsEditing bool
	Open      bool
}

// OpenForCreate resets the draft and opens the form in create mode.
func (f *FormState) OpenForCreate() {
	*f = FormState{Open: true}
}

// OpenForEdit loads an existing record into the draft.
func (f *FormState) OpenForEdit(u user.User) {
	*f = FormState{Draft: u, IsEditing: true, Open: true}
}

// Close discards the draft.
func (f *FormState) Close() {
	*f = FormState{}
}
