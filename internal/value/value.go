// Package value defines the runtime values the comparison core dispatches
// on, together with their type tags.
//
// Value is a sealed interface: only the types in this package implement it.
// Numbers are exact decimals, never floats, so comparison verdicts stay
// deterministic. Text is normalized to NFC on construction so that equal
// strings compare equal regardless of their Unicode encoding form.
package value

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

// Value is a concrete runtime value produced by an operand expression.
type Value interface {
	Type() *Type
	String() string
	value() // sealed
}

// Number is an exact decimal number.
type Number struct {
	d decimal.Decimal
}

// NewNumber wraps a decimal.
func NewNumber(d decimal.Decimal) Number {
	return Number{d: d}
}

// NumberFromInt creates a Number from an integer.
func NumberFromInt(n int64) Number {
	return Number{d: decimal.NewFromInt(n)}
}

// NumberFromString parses a decimal literal.
func NumberFromString(s string) (Number, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Number{}, fmt.Errorf("parse number %q: %w", s, err)
	}
	return Number{d: d}, nil
}

// Decimal returns the underlying decimal.
func (n Number) Decimal() decimal.Decimal { return n.d }

func (Number) Type() *Type     { return NumberType }
func (n Number) String() string { return n.d.String() }
func (Number) value()          {}

// Text is an NFC-normalized string.
type Text string

// NewText normalizes s to NFC.
func NewText(s string) Text {
	return Text(norm.NFC.String(s))
}

func (Text) Type() *Type      { return TextType }
func (t Text) String() string { return string(t) }
func (Text) value()           {}

// Bool is a boolean value.
type Bool bool

func NewBool(b bool) Bool { return Bool(b) }

func (Bool) Type() *Type { return BoolType }
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (Bool) value() {}

// Instant is a point in time.
type Instant struct {
	t time.Time
}

func NewInstant(t time.Time) Instant { return Instant{t: t} }

// Time returns the underlying time.
func (i Instant) Time() time.Time { return i.t }

func (Instant) Type() *Type      { return InstantType }
func (i Instant) String() string { return i.t.Format(time.RFC3339) }
func (Instant) value()           {}

// Span is a length of time.
type Span time.Duration

func NewSpan(d time.Duration) Span { return Span(d) }

// Duration returns the underlying duration.
func (s Span) Duration() time.Duration { return time.Duration(s) }

func (Span) Type() *Type      { return SpanType }
func (s Span) String() string { return time.Duration(s).String() }
func (Span) value()           {}

// Symbol is a member of a declared enumerated type, e.g. "red" of a
// declared "color" type. Ordered types give each member a rank in
// declaration order; unordered types only support equality.
type Symbol struct {
	typ  *Type
	name string
	rank int // declaration position; -1 when the type is unordered
}

func (s Symbol) Type() *Type    { return s.typ }
func (s Symbol) Name() string   { return s.name }
func (s Symbol) Rank() int      { return s.rank }
func (s Symbol) String() string { return s.name }
func (Symbol) value()           {}

var symbolsByName = map[string]Symbol{}

// DeclareSymbolType declares an enumerated type with the given members.
// Member names become globally resolvable symbols; a member name that
// collides with an existing symbol is an error. Like all type declaration
// this happens once at startup.
func DeclareSymbolType(name string, parent *Type, members []string, ordered bool) (*Type, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("declare type %q: no members", name)
	}
	if _, dup := typesByName[name]; dup {
		return nil, fmt.Errorf("declare type %q: type already declared", name)
	}
	for _, m := range members {
		if _, dup := symbolsByName[m]; dup {
			return nil, fmt.Errorf("declare type %q: member %q already declared", name, m)
		}
	}
	t := NewType(name, parent)
	for i, m := range members {
		rank := i
		if !ordered {
			rank = -1
		}
		symbolsByName[m] = Symbol{typ: t, name: m, rank: rank}
	}
	return t, nil
}

// LookupSymbol resolves a declared symbol by member name.
func LookupSymbol(name string) (Symbol, bool) {
	s, ok := symbolsByName[name]
	return s, ok
}
