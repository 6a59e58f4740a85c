package product

import (
	"errors"
	"fmt"
)

var (
	ErrDataIntegrity = errors.New("data integrity violation")
	ErrInvalidSort   = errors.New("invalid sort")
)

// IntegrityError describes a reference that does not resolve.
// It matches ErrDataIntegrity with errors.Is.
type IntegrityError struct {
	Entity   string
	EntityID int
	Ref      string
	RefID    int
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s: %s %d references missing %s %d",
		ErrDataIntegrity, e.Entity, e.EntityID, e.Ref, e.RefID)
}

func (e *IntegrityError) Unwrap() error {
	return ErrDataIntegrity
}
