package sfoglia

import (
	"errors"
	"fmt"
)

// InvariantError indicates that reconciliation produced a state no card
// view can render, e.g. the external owner popped the only route. These
// errors are programming errors in the external owner, not transient
// conditions; callers should fail loudly rather than render nothing.
type InvariantError struct {
	Op     string // Derivation step that failed (e.g. "reconcile", "mount")
	Detail string // Human-readable description of the violated invariant
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("sfoglia: %s: %s", e.Op, e.Detail)
}

// IsInvariant checks if an error is an invariant violation.
func IsInvariant(err error) bool {
	var invErr *InvariantError
	return errors.As(err, &invErr)
}
