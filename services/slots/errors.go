package slots

import (
	"errors"
	"fmt"
)

// Rule names the schedule invariant a ValidationError violates.
type Rule string

const (
	RuleEmptyBatch  Rule = "empty_batch"
	RuleInvalidDay  Rule = "invalid_day"
	RuleInvalidTime Rule = "invalid_time_format"
	RuleTimeOrder   Rule = "start_not_before_end"
	RuleMinDuration Rule = "duration_too_short"
	RuleOverlap     Rule = "overlap"
)

// ValidationError rejects a slot definition. Index is the zero-based position
// in the submitted batch, or -1 when the error is not about a batch entry.
type ValidationError struct {
	Rule    Rule
	Index   int
	Message string
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("slot %d: %s", e.Index+1, e.Message)
	}
	return e.Message
}

func invalid(rule Rule, index int, format string, args ...any) *ValidationError {
	return &ValidationError{Rule: rule, Index: index, Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a missing doctor profile or slot.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// UnavailableError means the doctor exists but cannot be booked right now.
type UnavailableError struct {
	DoctorID string
	Reason   string
}

func (e *UnavailableError) Error() string {
	return "doctor is not available for appointments"
}

// AuthorizationError rejects an actor whose role may not perform the operation.
type AuthorizationError struct {
	Role string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("role %q is not allowed to manage slots", e.Role)
}

// StorageError wraps an unexpected persistence failure. Its message is never
// shown to clients.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

var ErrLockNotAcquired = errors.New("doctor schedule is being modified, please retry")
