package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain matches every DomainError via errors.Is.
	ErrDomain = errors.New("domain error")

	// ErrNumericalDegeneracy is returned when d1/d2 cannot be evaluated, typically as T approaches zero.
	// Callers either reject such inputs or price at intrinsic value.
	ErrNumericalDegeneracy = errors.New("numerical degeneracy")
)

// DomainError reports an input that violates a documented precondition.
type DomainError struct {
	Field  string
	Value  float64
	Reason string
}

// NewDomainError builds a DomainError for field.
func NewDomainError(field string, value float64, reason string) *DomainError {
	return &DomainError{Field: field, Value: value, Reason: reason}
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("invalid %s (%g): %s", e.Field, e.Value, e.Reason)
}

func (e *DomainError) Is(target error) bool { return target == ErrDomain }
