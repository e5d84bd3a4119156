package parse

import (
	"sort"

	"github.com/vellum-lang/vellum/internal/relation"
)

// opSpec is one operator phrasing: the words between the two operands and
// the relation they select.
type opSpec struct {
	phrase  string
	rel     relation.Relation
	between bool
}

// patternTable lists every operator phrasing, longest first so that
// "is greater than or equal to" wins over "is greater than".
var patternTable = buildPatterns()

// copulas pairs each tense's copula with its negations. The future tense
// additionally gets the "turning into" phrasings, which exist only for the
// equality-class relations; ordering through "will be" is still available.
var copulas = []struct {
	affirm string
	neg    []string
}{
	{"is", []string{"is not", "isn't"}},
	{"are", []string{"are not", "aren't"}},
	{"was", []string{"was not", "wasn't"}},
	{"were", []string{"were not", "weren't"}},
	{"will be", []string{"will not be", "won't be"}},
}

func buildPatterns() []opSpec {
	var specs []opSpec
	add := func(rel relation.Relation, between bool, phrases ...string) {
		for _, p := range phrases {
			specs = append(specs, opSpec{phrase: p, rel: rel, between: between})
		}
	}

	for _, c := range copulas {
		affirm := func(rel relation.Relation, tails ...string) {
			for _, tail := range tails {
				add(rel, false, c.affirm+" "+tail)
			}
		}
		negate := func(rel relation.Relation, tails ...string) {
			for _, n := range c.neg {
				for _, tail := range tails {
					add(rel, false, n+" "+tail)
				}
			}
		}

		affirm(relation.Greater, "greater than", "more than", "higher than", "bigger than", "larger than", "above")
		affirm(relation.GreaterOrEqual, "greater than or equal to", "more than or equal to", "at least")
		negate(relation.GreaterOrEqual, "less than", "smaller than", "below")
		affirm(relation.Smaller, "less than", "smaller than", "below")
		affirm(relation.SmallerOrEqual, "less than or equal to", "smaller than or equal to", "at most")
		negate(relation.SmallerOrEqual, "greater than", "more than", "above")
		affirm(relation.Equal, "equal to", "the same as")
		negate(relation.NotEqual, "equal to", "the same as")

		// Bare copula: "x is y", "x is not y".
		add(relation.Equal, false, c.affirm)
		for _, n := range c.neg {
			add(relation.NotEqual, false, n)
		}

		add(relation.Equal, true, c.affirm+" between")
		for _, n := range c.neg {
			add(relation.NotEqual, true, n+" between")
		}
	}

	// Future-tense "turning into" forms map onto the equality class only;
	// the grammar exposes no ordering through them.
	for _, verb := range []string{"turning", "changing"} {
		for _, prep := range []string{"into", "to"} {
			add(relation.Equal, false, "is "+verb+" "+prep, "are "+verb+" "+prep)
			add(relation.NotEqual, false,
				"is not "+verb+" "+prep, "isn't "+verb+" "+prep,
				"are not "+verb+" "+prep, "aren't "+verb+" "+prep)
		}
	}

	// Symbolic operators.
	add(relation.Greater, false, ">")
	add(relation.GreaterOrEqual, false, ">=")
	add(relation.Smaller, false, "<")
	add(relation.SmallerOrEqual, false, "<=")
	add(relation.Equal, false, "=")
	add(relation.NotEqual, false, "!=")

	// Longest phrase first; ties keep table order.
	sort.SliceStable(specs, func(i, j int) bool {
		return len(specs[i].phrase) > len(specs[j].phrase)
	})
	return specs
}
