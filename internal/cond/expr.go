package cond

import (
	"iter"
	"slices"
	"strings"

	"github.com/vellum-lang/vellum/internal/value"
)

// Event is the runtime occurrence an expression draws its values from. The
// comparison core never inspects it; it is handed to operand expressions
// verbatim.
type Event any

// Expression is an operand slot: an expression that yields zero or more
// concrete values per event.
type Expression interface {
	// ReturnType is the declared static type, value.Any when the type is
	// unknown until evaluation.
	ReturnType() *value.Type

	// Values yields the concrete values for evt. The sequence is finite
	// and may be ranged over more than once per call site.
	Values(evt Event) iter.Seq[value.Value]

	// Conjunctive reports whether multiple values combine as "and" (a
	// predicate must hold for every value) rather than "or" (for at
	// least one).
	Conjunctive() bool

	// ConvertedTo returns an equivalent expression narrowed to t, or
	// false when the conversion is not possible.
	ConvertedTo(t *value.Type) (Expression, bool)

	// String renders the expression for error messages.
	String() string
}

// Literal is a fixed list of values with an and/or grouping.
type Literal struct {
	typ  *value.Type
	vals []value.Value
	and  bool
}

// NewLiteral builds a literal list. The declared type is the common
// supertype of the values; an empty list is fully dynamic.
func NewLiteral(and bool, vals ...value.Value) *Literal {
	return &Literal{typ: commonType(vals), vals: vals, and: and}
}

// Lit wraps a single value.
func Lit(v value.Value) *Literal {
	return NewLiteral(true, v)
}

func commonType(vals []value.Value) *value.Type {
	if len(vals) == 0 {
		return value.Any
	}
	t := vals[0].Type()
	for _, v := range vals[1:] {
		t = value.CommonSupertype(t, v.Type())
	}
	return t
}

func (l *Literal) ReturnType() *value.Type { return l.typ }

func (l *Literal) Values(Event) iter.Seq[value.Value] {
	return slices.Values(l.vals)
}

func (l *Literal) Conjunctive() bool { return l.and }

// ConvertedTo narrows the literal: all values must already be of type t.
// Narrowing to Any recomputes the declared type from the values, which is
// how an unparsed dynamic literal settles on a concrete type.
func (l *Literal) ConvertedTo(t *value.Type) (Expression, bool) {
	for _, v := range l.vals {
		if !v.Type().Is(t) {
			return nil, false
		}
	}
	return &Literal{typ: commonType(l.vals), vals: l.vals, and: l.and}, true
}

func (l *Literal) String() string {
	if len(l.vals) == 1 {
		return l.vals[0].String()
	}
	sep := " or "
	if l.and {
		sep = " and "
	}
	parts := make([]string, len(l.vals))
	for i, v := range l.vals {
		parts[i] = v.String()
	}
	return strings.Join(parts, sep)
}

// quantify applies pred to every value e yields for evt, combining the
// results per e's grouping, with short-circuit: scanning stops as soon as
// the grouping's outcome is settled. An operand that yields no values
// satisfies nothing.
func quantify(evt Event, e Expression, pred func(value.Value) bool) bool {
	and := e.Conjunctive()
	any := false
	for v := range e.Values(evt) {
		any = true
		if pred(v) {
			if !and {
				return true
			}
		} else if and {
			return false
		}
	}
	return any && and
}
