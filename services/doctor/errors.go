package doctor

import (
	"errors"
	"fmt"
)

var (
	ErrProfileNotFound  = errors.New("doctor profile not found")
	ErrDoctorNotFound   = errors.New("doctor not found")
	ErrNotDoctorAccount = errors.New("only doctor accounts can manage a doctor profile")
)

// ProfileError rejects an invalid profile field.
type ProfileError struct {
	Field  string
	Reason string
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
