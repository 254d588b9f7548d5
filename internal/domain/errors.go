package domain

// ValidationError reports which field of the input broke which rule.
// Field is empty for request-level rules ("at least one field required").
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Rule
	}
	return e.Field + " " + e.Rule
}

// NewValidationError builds a *ValidationError as an error value.
func NewValidationError(field, rule string) error {
	return &ValidationError{Field: field, Rule: rule}
}
