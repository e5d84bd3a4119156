package compare

import (
	"cmp"
	"strings"

	"github.com/vellum-lang/vellum/internal/relation"
	"github.com/vellum-lang/vellum/internal/value"
)

func init() {
	Register(value.NumberType, value.NumberType, Func{F: compareNumbers, Ordered: true})
	Register(value.TextType, value.TextType, Func{F: compareTexts, Ordered: true})
	Register(value.BoolType, value.BoolType, Func{F: compareBools})
	Register(value.InstantType, value.InstantType, Func{F: compareInstants, Ordered: true})
	Register(value.SpanType, value.SpanType, Func{F: compareSpans, Ordered: true})
}

func compareNumbers(a, b value.Value) relation.Verdict {
	x, okA := a.(value.Number)
	y, okB := b.(value.Number)
	if !okA || !okB {
		return relation.VerdictIncomparable
	}
	return relation.FromCmp(x.Decimal().Cmp(y.Decimal()))
}

// Text compares case-insensitively. Values are already NFC-normalized on
// construction, so only the case fold happens here.
func compareTexts(a, b value.Value) relation.Verdict {
	x, okA := a.(value.Text)
	y, okB := b.(value.Text)
	if !okA || !okB {
		return relation.VerdictIncomparable
	}
	return relation.FromCmp(strings.Compare(strings.ToLower(string(x)), strings.ToLower(string(y))))
}

// Booleans have no useful ordering; unequal booleans are reported as
// incomparable, which satisfies NotEqual and nothing else.
func compareBools(a, b value.Value) relation.Verdict {
	x, okA := a.(value.Bool)
	y, okB := b.(value.Bool)
	if !okA || !okB {
		return relation.VerdictIncomparable
	}
	if x == y {
		return relation.VerdictEqual
	}
	return relation.VerdictIncomparable
}

func compareInstants(a, b value.Value) relation.Verdict {
	x, okA := a.(value.Instant)
	y, okB := b.(value.Instant)
	if !okA || !okB {
		return relation.VerdictIncomparable
	}
	return relation.FromCmp(x.Time().Compare(y.Time()))
}

func compareSpans(a, b value.Value) relation.Verdict {
	x, okA := a.(value.Span)
	y, okB := b.(value.Span)
	if !okA || !okB {
		return relation.VerdictIncomparable
	}
	return relation.FromCmp(cmp.Compare(x.Duration(), y.Duration()))
}

// ForSymbols builds the comparator for a declared enumerated type: rank
// order when the type is ordered, name equality otherwise. Symbols of
// different declared types never compare equal.
func ForSymbols(ordered bool) Comparator {
	return Func{
		Ordered: ordered,
		F: func(a, b value.Value) relation.Verdict {
			x, okA := a.(value.Symbol)
			y, okB := b.(value.Symbol)
			if !okA || !okB || x.Type() != y.Type() {
				return relation.VerdictIncomparable
			}
			if ordered {
				return relation.FromCmp(cmp.Compare(x.Rank(), y.Rank()))
			}
			if x.Name() == y.Name() {
				return relation.VerdictEqual
			}
			return relation.VerdictIncomparable
		},
	}
}
