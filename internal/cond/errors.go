package cond

import (
	"errors"
	"fmt"

	"github.com/vellum-lang/vellum/internal/relation"
)

// ErrInapplicable reports that no comparison could be formed because both
// operand types stayed fully dynamic. It is not a user-facing failure: the
// caller is free to try a different reading of the source text.
var ErrInapplicable = errors.New("comparison not applicable")

// UnresolvableError means no comparator exists for the operand types.
// Surfaced at construction time.
type UnresolvableError struct {
	First  string
	Second string
	Third  string // empty for the two-operand form
}

func (e *UnresolvableError) Error() string {
	if e.Third != "" {
		return fmt.Sprintf("can't compare %s with %s and %s", e.First, e.Second, e.Third)
	}
	return fmt.Sprintf("can't compare %s with %s", e.First, e.Second)
}

// OrderingError means a comparator exists but only supports equality while
// an ordering relation (or the range form) was requested. Surfaced at
// construction time.
type OrderingError struct {
	First    string
	Second   string
	Third    string // set only for the range form
	Relation relation.Relation
}

func (e *OrderingError) Error() string {
	if e.Third != "" {
		return fmt.Sprintf("can't test %s for being 'between' %s and %s", e.First, e.Second, e.Third)
	}
	return fmt.Sprintf("can't test %s for being '%s' %s", e.First, e.Relation, e.Second)
}

// IsUnresolvable reports whether err is an UnresolvableError, unwrapping
// as needed.
func IsUnresolvable(err error) bool {
	var ue *UnresolvableError
	return errors.As(err, &ue)
}

// IsOrderingError reports whether err is an OrderingError, unwrapping as
// needed.
func IsOrderingError(err error) bool {
	var oe *OrderingError
	return errors.As(err, &oe)
}
