package domain

import "time"

// Field limits enforced before anything reaches the store.
const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 500
)

// Domain entity: бизнес-объект (истина).
// Не зависит от Gin, Postgres, Redis.
// Description == nil means "no description"; it is never stored as "".
type Todo struct {
	ID          string
	Title       string
	Description *string
	Completed   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TodoPatch is the sparse set of fields a partial update wants to change.
// Nil pointer = do not touch. DescriptionSet distinguishes "clear the
// description" (set, nil value) from "leave it alone" (not set).
type TodoPatch struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Completed      *bool
}

// Empty reports whether the patch touches no fields at all.
func (p TodoPatch) Empty() bool {
	return p.Title == nil && !p.DescriptionSet && p.Completed == nil
}
