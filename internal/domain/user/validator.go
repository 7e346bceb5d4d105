package user

import "fmt"

// Validator - интерфейс для валидации пользовательских данных
type Validator interface {
	ValidateCreate(u *User) error
	ValidateUpdate(u *User) error
}

// FormValidator checks the required/empty constraints of the add/edit
// form. Anything beyond required checks (email shape, phone format) is
// deliberately out of scope.
type FormValidator struct{}

// NewFormValidator создает новый валидатор
func NewFormValidator() *FormValidator {
	return &FormValidator{}
}

// ValidateCreate validates a draft before it is sent to the store.
func (v *FormValidator) ValidateCreate(u *User) error {
	if err := v.requiredFields(u); err != nil {
		return err
	}
	if !ValidID.MatchString(u.ID) {
		return fmt.Errorf("%w: %q", ErrInvalidID, u.ID)
	}
	return nil
}

// ValidateUpdate validates an edited record before it is resent.
func (v *FormValidator) ValidateUpdate(u *User) error {
	if !ValidID.MatchString(u.ID) {
		return fmt.Errorf("%w: %q", ErrInvalidID, u.ID)
	}
	return v.requiredFields(u)
}

func (v *FormValidator) requiredFields(u *User) error {
	if u.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if u.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if u.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if u.Address == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if !u.Status.Valid() {
		return fmt.Errorf("%w: status must be %s or %s", ErrInvalidInput, StatusActive, StatusInactive)
	}
	return nil
}
