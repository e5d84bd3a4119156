// Package compare implements the process-wide comparator registry.
//
// Comparators are registered once at startup, keyed by an ordered pair of
// type tags. Lookup resolves the most specific registered pair for the
// requested types, consulting supertypes and finally the mirrored pair
// behind an order-swapping adapter. The table is append-only; steady-state
// lookups never observe a mutation.
package compare

import (
	"fmt"
	"sync"

	"github.com/vellum-lang/vellum/internal/relation"
	"github.com/vellum-lang/vellum/internal/value"
)

// Comparator produces a three-way verdict between two concrete values.
type Comparator interface {
	Compare(a, b value.Value) relation.Verdict

	// SupportsOrdering reports whether Lower/Greater verdicts are
	// meaningful. Equality-only comparators return false; they can still
	// serve the equality-class relations.
	SupportsOrdering() bool
}

// Func adapts a plain function into a Comparator.
type Func struct {
	F       func(a, b value.Value) relation.Verdict
	Ordered bool
}

func (f Func) Compare(a, b value.Value) relation.Verdict { return f.F(a, b) }
func (f Func) SupportsOrdering() bool                    { return f.Ordered }

// swapped mirrors a comparator registered for the opposite operand order.
type swapped struct {
	c Comparator
}

func (s swapped) Compare(a, b value.Value) relation.Verdict {
	return s.c.Compare(b, a).Mirrored()
}

func (s swapped) SupportsOrdering() bool { return s.c.SupportsOrdering() }

type pair struct {
	a, b *value.Type
}

var (
	mu       sync.RWMutex
	registry = map[pair]Comparator{}
)

// Register adds a comparator for the exact ordered type pair (a, b).
// Registration is a startup-time concern; registering the same exact pair
// twice panics.
func Register(a, b *value.Type, c Comparator) {
	mu.Lock()
	defer mu.Unlock()
	p := pair{a, b}
	if _, dup := registry[p]; dup {
		panic(fmt.Sprintf("compare: duplicate comparator for (%s, %s)", a, b))
	}
	registry[p] = c
}

// Lookup resolves a comparator for the ordered type pair (a, b).
//
// Resolution order: the exact pair first, then the nearest registered
// supertype pair (walking a's ancestors outermost, b's innermost), then the
// same search over the mirrored pair (b, a) wrapped in a swapping adapter.
// The search is a pure function of the registry, so identical inputs always
// resolve to the same comparator.
func Lookup(a, b *value.Type) (Comparator, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if c, ok := lookupSuper(a, b); ok {
		return c, true
	}
	if c, ok := lookupSuper(b, a); ok {
		return swapped{c: c}, true
	}
	return nil, false
}

func lookupSuper(a, b *value.Type) (Comparator, bool) {
	for x := a; x != nil; x = x.Parent() {
		for y := b; y != nil; y = y.Parent() {
			if c, ok := registry[pair{x, y}]; ok {
				return c, true
			}
		}
	}
	return nil, false
}

// Generic compares two runtime values by their runtime types. This is the
// last-resort path for operands whose static type stayed fully dynamic: the
// lookup runs per value pair, because the runtime types may differ from one
// evaluation to the next.
func Generic(a, b value.Value) relation.Verdict {
	c, ok := Lookup(a.Type(), b.Type())
	if !ok {
		return relation.VerdictIncomparable
	}
	return c.Compare(a, b)
}
