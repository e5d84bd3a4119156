package relation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromCmp(t *testing.T) {
	assert.Equal(t, VerdictLower, FromCmp(-1))
	assert.Equal(t, VerdictLower, FromCmp(-42))
	assert.Equal(t, VerdictEqual, FromCmp(0))
	assert.Equal(t, VerdictGreater, FromCmp(1))
	assert.Equal(t, VerdictGreater, FromCmp(7))
}

func TestIsSatisfiedBy(t *testing.T) {
	testCases := []struct {
		name    string
		rel     Relation
		verdict Verdict
		want    bool
	}{
		{"equal by equal", Equal, VerdictEqual, true},
		{"equal by lower", Equal, VerdictLower, false},
		{"equal by incomparable", Equal, VerdictIncomparable, false},
		{"not equal by lower", NotEqual, VerdictLower, true},
		{"not equal by greater", NotEqual, VerdictGreater, true},
		{"not equal by equal", NotEqual, VerdictEqual, false},
		{"not equal by incomparable", NotEqual, VerdictIncomparable, true},
		{"greater by greater", Greater, VerdictGreater, true},
		{"greater by equal", Greater, VerdictEqual, false},
		{"greater or equal by greater", GreaterOrEqual, VerdictGreater, true},
		{"greater or equal by equal", GreaterOrEqual, VerdictEqual, true},
		{"greater or equal by lower", GreaterOrEqual, VerdictLower, false},
		{"greater or equal by incomparable", GreaterOrEqual, VerdictIncomparable, false},
		{"smaller by lower", Smaller, VerdictLower, true},
		{"smaller by greater", Smaller, VerdictGreater, false},
		{"smaller or equal by lower", SmallerOrEqual, VerdictLower, true},
		{"smaller or equal by equal", SmallerOrEqual, VerdictEqual, true},
		{"smaller or equal by greater", SmallerOrEqual, VerdictGreater, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.rel.IsSatisfiedBy(tc.verdict))
		})
	}
}

func TestInverse(t *testing.T) {
	assert.Equal(t, NotEqual, Equal.Inverse())
	assert.Equal(t, Equal, NotEqual.Inverse())
	assert.Equal(t, SmallerOrEqual, Greater.Inverse())
	assert.Equal(t, Smaller, GreaterOrEqual.Inverse())
	assert.Equal(t, GreaterOrEqual, Smaller.Inverse())
	assert.Equal(t, Greater, SmallerOrEqual.Inverse())
}

// The inverse of a relation must be satisfied by exactly the verdicts the
// relation is not, for every comparable verdict.
func TestInverseComplementsSatisfaction(t *testing.T) {
	relations := []Relation{Equal, NotEqual, Greater, GreaterOrEqual, Smaller, SmallerOrEqual}
	verdicts := []Verdict{VerdictLower, VerdictEqual, VerdictGreater}

	for _, r := range relations {
		for _, v := range verdicts {
			assert.NotEqual(t, r.IsSatisfiedBy(v), r.Inverse().IsSatisfiedBy(v),
				"relation %v and its inverse both answered the same for %v", r, v)
		}
	}
}

// GREATER(a,b) must behave exactly like SMALLER(b,a): mirroring the verdict
// and mirroring the relation agree.
func TestMirroredVerdict(t *testing.T) {
	assert.Equal(t, VerdictGreater, VerdictLower.Mirrored())
	assert.Equal(t, VerdictLower, VerdictGreater.Mirrored())
	assert.Equal(t, VerdictEqual, VerdictEqual.Mirrored())
	assert.Equal(t, VerdictIncomparable, VerdictIncomparable.Mirrored())

	verdicts := []Verdict{VerdictLower, VerdictEqual, VerdictGreater, VerdictIncomparable}
	for _, v := range verdicts {
		assert.Equal(t, Greater.IsSatisfiedBy(v), Smaller.IsSatisfiedBy(v.Mirrored()))
		assert.Equal(t, GreaterOrEqual.IsSatisfiedBy(v), SmallerOrEqual.IsSatisfiedBy(v.Mirrored()))
	}
}

func TestIsEqualOrInverse(t *testing.T) {
	assert.True(t, Equal.IsEqualOrInverse())
	assert.True(t, NotEqual.IsEqualOrInverse())
	assert.False(t, Greater.IsEqualOrInverse())
	assert.False(t, GreaterOrEqual.IsEqualOrInverse())
	assert.False(t, Smaller.IsEqualOrInverse())
	assert.False(t, SmallerOrEqual.IsEqualOrInverse())
}

func TestRelationString(t *testing.T) {
	assert.Equal(t, "equal to", Equal.String())
	assert.Equal(t, "greater than or equal to", GreaterOrEqual.String())
	assert.Equal(t, "smaller than", Smaller.String())
}
