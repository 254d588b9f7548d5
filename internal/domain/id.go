package domain

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidID means the identifier is syntactically malformed for the
// configured store. Callers must not touch the store after seeing it.
var ErrInvalidID = errors.New("invalid todo id")

// IDValidator checks identifier syntax only. The concrete format belongs to
// the store that assigns ids, so it is injected, not hard-coded.
type IDValidator interface {
	Validate(raw string) error
}

// UUIDValidator matches the Postgres store, which assigns UUID ids.
type UUIDValidator struct{}

func (UUIDValidator) Validate(raw string) error {
	if _, err := uuid.Parse(raw); err != nil {
		return ErrInvalidID
	}
	return nil
}
