// Package relation defines the closed set of comparison relations the
// Vellum comparison condition tests for, and the three-way verdicts that
// comparators produce.
//
// The six relations split into an equality class (Equal, NotEqual) and two
// inverse pairs of ordering relations. Every operation here is total: each
// relation has an inverse and a satisfaction rule over verdicts, and
// nothing can fail.
package relation

// Verdict is the outcome of comparing two concrete values.
//
// VerdictIncomparable means the comparator could not relate the values.
// It satisfies NotEqual and nothing else, so an impossible comparison
// makes a condition false rather than raising an error at evaluation time.
type Verdict int

const (
	VerdictIncomparable Verdict = iota
	VerdictLower
	VerdictEqual
	VerdictGreater
)

// FromCmp maps a standard three-way integer comparison (negative, zero,
// positive) to a Verdict.
func FromCmp(c int) Verdict {
	switch {
	case c < 0:
		return VerdictLower
	case c > 0:
		return VerdictGreater
	default:
		return VerdictEqual
	}
}

// Mirrored returns the verdict for the same comparison with the operands
// swapped: Lower and Greater flip, Equal and Incomparable stay.
func (v Verdict) Mirrored() Verdict {
	switch v {
	case VerdictLower:
		return VerdictGreater
	case VerdictGreater:
		return VerdictLower
	default:
		return v
	}
}

// String returns the verdict name for logging.
func (v Verdict) String() string {
	switch v {
	case VerdictLower:
		return "lower"
	case VerdictEqual:
		return "equal"
	case VerdictGreater:
		return "greater"
	default:
		return "incomparable"
	}
}

// Relation is the comparison a condition was asked to test.
type Relation int

const (
	Equal Relation = iota
	NotEqual
	Greater
	GreaterOrEqual
	Smaller
	SmallerOrEqual
)

// IsSatisfiedBy reports whether verdict v satisfies the relation.
//
// NotEqual is satisfied by every verdict except VerdictEqual, including
// VerdictIncomparable. The four ordering relations are never satisfied by
// VerdictIncomparable.
func (r Relation) IsSatisfiedBy(v Verdict) bool {
	switch r {
	case Equal:
		return v == VerdictEqual
	case NotEqual:
		return v != VerdictEqual
	case Greater:
		return v == VerdictGreater
	case GreaterOrEqual:
		return v == VerdictGreater || v == VerdictEqual
	case Smaller:
		return v == VerdictLower
	case SmallerOrEqual:
		return v == VerdictLower || v == VerdictEqual
	}
	return false
}

// Inverse returns the logical negation of the relation:
// Equal <-> NotEqual, Greater <-> SmallerOrEqual, Smaller <-> GreaterOrEqual.
func (r Relation) Inverse() Relation {
	switch r {
	case Equal:
		return NotEqual
	case NotEqual:
		return Equal
	case Greater:
		return SmallerOrEqual
	case GreaterOrEqual:
		return Smaller
	case Smaller:
		return GreaterOrEqual
	case SmallerOrEqual:
		return Greater
	}
	return r
}

// IsEqualOrInverse reports whether the relation belongs to the equality
// class. Equality-class relations can be tested by comparators that do not
// support ordering.
func (r Relation) IsEqualOrInverse() bool {
	return r == Equal || r == NotEqual
}

// String renders the relation the way it reads in a condition, e.g.
// "greater than". Used in error messages and the check store.
func (r Relation) String() string {
	switch r {
	case Equal:
		return "equal to"
	case NotEqual:
		return "not equal to"
	case Greater:
		return "greater than"
	case GreaterOrEqual:
		return "greater than or equal to"
	case Smaller:
		return "smaller than"
	case SmallerOrEqual:
		return "smaller than or equal to"
	}
	return "unknown"
}
