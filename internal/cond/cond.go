package cond

import (
	"fmt"

	"github.com/vellum-lang/vellum/internal/compare"
	"github.com/vellum-lang/vellum/internal/diag"
	"github.com/vellum-lang/vellum/internal/relation"
	"github.com/vellum-lang/vellum/internal/value"
)

// Compare tests a relation between the values of two operand expressions,
// or a between range with three. Immutable once constructed; safe for
// concurrent Check calls.
type Compare struct {
	first   Expression
	second  Expression
	third   Expression // nil unless range form
	rel     relation.Relation
	binding binding
}

// binding is the resolved comparator slot: bound once construction found a
// comparator, deferred when both static types stayed fully dynamic.
type binding interface {
	comparatorBinding()
}

type bound struct {
	cmp compare.Comparator
}

func (bound) comparatorBinding() {}

type deferred struct{}

func (deferred) comparatorBinding() {}

// New resolves a two-operand comparison at construction time. The sink
// receives any diagnostics that end up surfaced; nil drops them.
func New(first, second Expression, rel relation.Relation, sink diag.Sink) (*Compare, error) {
	return newCompare(first, second, nil, rel, sink)
}

// NewBetween resolves the three-operand range form: first between lo and
// hi. rel must be Equal ("is between") or NotEqual ("is not between").
func NewBetween(first, lo, hi Expression, rel relation.Relation, sink diag.Sink) (*Compare, error) {
	if !rel.IsEqualOrInverse() {
		return nil, fmt.Errorf("between form requires an equality-class relation, got %q", rel)
	}
	return newCompare(first, lo, hi, rel, sink)
}

func newCompare(first, second, third Expression, rel relation.Relation, sink diag.Sink) (*Compare, error) {
	c := &Compare{first: first, second: second, third: third, rel: rel}

	b, err := c.resolve(sink)
	if err != nil {
		return nil, err
	}

	// Ordering relations and the range form need a comparator that can
	// actually order. A deferred binding is exempt: capability is only
	// knowable per runtime pair.
	if bnd, ok := b.(bound); ok && !bnd.cmp.SupportsOrdering() {
		if third != nil {
			return nil, &OrderingError{
				First:  describe(c.first),
				Second: describe(c.second),
				Third:  describe(c.third),
			}
		}
		if !rel.IsEqualOrInverse() {
			return nil, &OrderingError{
				First:    describe(c.first),
				Second:   describe(c.second),
				Relation: rel,
			}
		}
	}

	c.binding = b
	return c, nil
}

// resolve runs the construction-time resolution protocol.
func (c *Compare) resolve(sink diag.Sink) (binding, error) {
	scope := diag.Open(sink)
	defer scope.Close()

	firstDynamic := c.first.ReturnType() == value.Any
	secondDynamic := c.second.ReturnType() == value.Any

	// Speculative narrowing of fully-dynamic operands. Failures stay in
	// the scope; they surface only if the whole resolution fails.
	narrowed := true
	narrow := func(e Expression) Expression {
		if e.ReturnType() != value.Any {
			return e
		}
		n, ok := e.ConvertedTo(value.Any)
		if !ok {
			scope.Errorf("%s is not understood as a value", e)
			narrowed = false
			return e
		}
		return n
	}
	c.first = narrow(c.first)
	if narrowed {
		c.second = narrow(c.second)
	}
	if narrowed && c.third != nil {
		c.third = narrow(c.third)
	}

	if !narrowed {
		if c.third == nil && firstDynamic && secondDynamic {
			// Both sides were fully dynamic to begin with: not an
			// error, just not a comparison. Another reading of the
			// source may still apply.
			scope.Discard()
			return nil, ErrInapplicable
		}
		scope.Replay()
		return nil, c.unresolvable()
	}
	scope.ReplayInfo()

	f := c.first.ReturnType()
	s := c.second.ReturnType()
	if c.third != nil {
		s = value.CommonSupertype(s, c.third.ReturnType())
	}
	if f == value.Any || s == value.Any {
		// Type information is genuinely unavailable until values
		// exist; dispatch per runtime pair at evaluation time.
		return deferred{}, nil
	}

	cmp, ok := compare.Lookup(f, s)
	if !ok {
		return nil, c.unresolvable()
	}
	return bound{cmp: cmp}, nil
}

func (c *Compare) unresolvable() *UnresolvableError {
	e := &UnresolvableError{First: describe(c.first), Second: describe(c.second)}
	if c.third != nil {
		e.Third = describe(c.third)
	}
	return e
}

// describe renders an operand for error messages: its type name with an
// article when the type is known, its own rendering otherwise.
func describe(e Expression) string {
	if e.ReturnType() == value.Any {
		return e.String()
	}
	return e.ReturnType().WithArticle()
}

// Deferred reports whether dispatch was deferred to evaluation time.
func (c *Compare) Deferred() bool {
	_, ok := c.binding.(deferred)
	return ok
}

// Relation returns the relation the condition tests.
func (c *Compare) Relation() relation.Relation { return c.rel }

// Check reports whether the relation holds for evt.
//
// With # standing for the relation, the grouping identities are:
//
//	a and b # x  ===  a # x && b # x
//	a or b # x   ===  a # x || b # x
//	a # x and y  ===  a # x && a # y
//	a # x or y   ===  a # x || a # y
//
// and they nest: "a and b # x or y" requires each of a, b to relate to at
// least one of x, y. The range form folds its two bound checks into one
// verdict, flipped when exclusion ("is not between") was asked for.
func (c *Compare) Check(evt Event) bool {
	return quantify(evt, c.first, func(v1 value.Value) bool {
		return quantify(evt, c.second, func(v2 value.Value) bool {
			if c.third == nil {
				return c.rel.IsSatisfiedBy(c.verdict(v1, v2))
			}
			return quantify(evt, c.third, func(v3 value.Value) bool {
				inRange := relation.GreaterOrEqual.IsSatisfiedBy(c.verdict(v1, v2)) &&
					relation.SmallerOrEqual.IsSatisfiedBy(c.verdict(v1, v3))
				return (c.rel == relation.NotEqual) != inRange
			})
		})
	})
}

// verdict compares one concrete value pair through the resolved binding.
// The deferred path resolves by runtime types on every call; verdicts are
// never cached across events.
func (c *Compare) verdict(a, b value.Value) relation.Verdict {
	switch bnd := c.binding.(type) {
	case bound:
		return bnd.cmp.Compare(a, b)
	case deferred:
		return compare.Generic(a, b)
	}
	return relation.VerdictIncomparable
}

// String renders the condition the way it reads.
func (c *Compare) String() string {
	if c.third == nil {
		return fmt.Sprintf("%s is %s %s", c.first, c.rel, c.second)
	}
	not := ""
	if c.rel == relation.NotEqual {
		not = " not"
	}
	return fmt.Sprintf("%s is%s between %s and %s", c.first, not, c.second, c.third)
}
