// Package parse turns the textual comparison forms of the Vellum DSL into
// resolved conditions.
//
// Only the comparison grammar lives here: an operand, an operator phrasing
// ("is greater than", "was not", "will be between ... and ...", ">="), and
// one or two more operands. Operands are literal lists joined by commas,
// "and", or "or"; list grouping carries through to the condition's
// quantification. The full sentence grammar of the language is out of
// scope.
package parse

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vellum-lang/vellum/internal/cond"
	"github.com/vellum-lang/vellum/internal/diag"
	"github.com/vellum-lang/vellum/internal/value"
)

// ErrNoMatch reports that the line is not a comparison at all.
var ErrNoMatch = errors.New("not a comparison")

// Parse resolves one comparison line into a condition. Diagnostics that
// surface during resolution go to sink; nil drops them.
func Parse(line string, sink diag.Sink) (*cond.Compare, error) {
	src := strings.TrimSpace(line)
	if src == "" {
		return nil, ErrNoMatch
	}
	lower := strings.ToLower(src)

	for _, spec := range patternTable {
		needle := " " + spec.phrase + " "
		idx := strings.Index(lower, needle)
		if idx < 0 {
			continue
		}
		leftText := strings.TrimSpace(src[:idx])
		rightText := strings.TrimSpace(src[idx+len(needle):])
		if leftText == "" || rightText == "" {
			continue
		}

		first, err := parseOperand(leftText)
		if err != nil {
			return nil, err
		}

		if spec.between {
			loText, hiText, ok := splitBounds(rightText)
			if !ok {
				continue
			}
			lo, err := parseOperand(loText)
			if err != nil {
				return nil, err
			}
			hi, err := parseOperand(hiText)
			if err != nil {
				return nil, err
			}
			return cond.NewBetween(first, lo, hi, spec.rel, sink)
		}

		second, err := parseOperand(rightText)
		if err != nil {
			return nil, err
		}
		return cond.New(first, second, spec.rel, sink)
	}
	return nil, ErrNoMatch
}

// splitBounds splits the right side of a between form on its first "and".
func splitBounds(s string) (lo, hi string, ok bool) {
	idx := strings.Index(strings.ToLower(s), " and ")
	if idx < 0 {
		return "", "", false
	}
	lo = strings.TrimSpace(s[:idx])
	hi = strings.TrimSpace(s[idx+len(" and "):])
	return lo, hi, lo != "" && hi != ""
}

// parseOperand parses a literal list, e.g. `1, 2 and 3` or `"a" or "b"`.
func parseOperand(s string) (*cond.Literal, error) {
	items, and, err := splitList(s)
	if err != nil {
		return nil, err
	}
	vals := make([]value.Value, 0, len(items))
	for _, item := range items {
		v, err := parseItem(item)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("empty operand %q", s)
	}
	return cond.NewLiteral(and, vals...), nil
}

// splitList separates list items and determines the grouping. A list joined
// by "or" is disjunctive, anything else conjunctive; mixing both in one
// list is rejected.
func splitList(s string) (items []string, and bool, err error) {
	sawAnd, sawOr := false, false
	rest := s
	for {
		lower := strings.ToLower(rest)
		idx, skip := -1, 0
		isAnd, isOr := false, false
		if i := strings.Index(rest, ","); i >= 0 {
			idx, skip = i, 1
		}
		if i := strings.Index(lower, " and "); i >= 0 && (idx < 0 || i < idx) {
			idx, skip, isAnd, isOr = i, len(" and "), true, false
		}
		if i := strings.Index(lower, " or "); i >= 0 && (idx < 0 || i < idx) {
			idx, skip, isAnd, isOr = i, len(" or "), false, true
		}
		if idx < 0 {
			if item := strings.TrimSpace(rest); item != "" {
				items = append(items, item)
			}
			break
		}
		if item := strings.TrimSpace(rest[:idx]); item != "" {
			items = append(items, item)
		}
		rest = rest[idx+skip:]
		sawAnd = sawAnd || isAnd
		sawOr = sawOr || isOr
	}
	if sawAnd && sawOr {
		return nil, false, fmt.Errorf("list %q mixes \"and\" and \"or\"", s)
	}
	return items, !sawOr, nil
}

var spanUnits = map[string]time.Duration{
	"second": time.Second, "seconds": time.Second,
	"minute": time.Minute, "minutes": time.Minute,
	"hour": time.Hour, "hours": time.Hour,
	"day": 24 * time.Hour, "days": 24 * time.Hour,
}

// parseItem parses one literal: quoted text, a boolean, a number, a
// timespan like "5 seconds", or a declared symbol.
func parseItem(s string) (value.Value, error) {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return value.NewText(s[1 : len(s)-1]), nil
	}
	switch strings.ToLower(s) {
	case "true":
		return value.NewBool(true), nil
	case "false":
		return value.NewBool(false), nil
	}
	if n, err := value.NumberFromString(s); err == nil {
		return n, nil
	}
	if fields := strings.Fields(s); len(fields) == 2 {
		if unit, ok := spanUnits[strings.ToLower(fields[1])]; ok {
			if n, err := value.NumberFromString(fields[0]); err == nil {
				return value.NewSpan(time.Duration(n.Decimal().IntPart()) * unit), nil
			}
		}
	}
	if sym, ok := value.LookupSymbol(strings.ToLower(s)); ok {
		return sym, nil
	}
	return nil, fmt.Errorf("can't understand %q", s)
}
