package israkit

import "fmt"

// Error kinds categorize errors by their type.
const (
	// KindValidation represents a field write rejected by its domain
	// predicate.
	KindValidation = "validation"

	// KindEntityType represents an add call that did not receive the
	// entity record type the collection requires.
	KindEntityType = "entity_type"
)

// ModelError is a structured error wrapping an underlying error with the
// operation that failed and the category of failure. It supports error
// unwrapping, so errors.Is() and errors.As() reach the wrapped
// ValidationError or sentinel.
type ModelError struct {
	// Op is the operation that failed (e.g., "Editor.AddRisk").
	Op string

	// Kind categorizes the error (KindValidation, KindEntityType).
	Kind string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ModelError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("israkit: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("israkit: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *ModelError) Unwrap() error {
	return e.Err
}

// Is matches a target *ModelError by Kind, and by Op when the target sets
// one. Any other target is matched against the wrapped error chain.
func (e *ModelError) Is(target error) bool {
	t, ok := target.(*ModelError)
	if !ok {
		return false
	}
	if t.Kind != "" && e.Kind != t.Kind {
		return false
	}
	if t.Op != "" && e.Op != t.Op {
		return false
	}
	return t.Kind != "" || t.Op != ""
}
