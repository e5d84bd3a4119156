// Package harness runs comparison scenarios for conformance testing.
//
// A scenario is a YAML file listing comparison lines with expected
// outcomes. The harness parses and evaluates each line through the full
// stack (pattern table, resolution protocol, quantified evaluation) and
// produces a deterministic trace snapshot suitable for golden-file
// comparison.
package harness

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vellum-lang/vellum/internal/parse"
)

// CaseResult is the outcome of one check case.
type CaseResult struct {
	Condition string `json:"condition"`
	Want      bool   `json:"want"`
	Got       bool   `json:"got"`
	Error     string `json:"error,omitempty"`
	Passed    bool   `json:"passed"`
}

// Result is the outcome of a whole scenario run.
type Result struct {
	Scenario string       `json:"scenario"`
	Passed   int          `json:"passed"`
	Failed   int          `json:"failed"`
	Cases    []CaseResult `json:"cases"`
}

// Ok reports whether every case passed.
func (r *Result) Ok() bool { return r.Failed == 0 }

// Harness evaluates scenarios.
type Harness struct {
	logger *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger overrides the harness logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) { h.logger = l }
}

// NewHarness creates a harness. Logs are discarded unless WithLogger is
// given; scenario output belongs in the snapshot, not the log.
func NewHarness(opts ...Option) *Harness {
	h := &Harness{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RunScenario evaluates every check case in order.
func (h *Harness) RunScenario(sc *Scenario) *Result {
	result := &Result{Scenario: sc.Name}
	for _, cc := range sc.Checks {
		cr := h.runCase(cc)
		if cr.Passed {
			result.Passed++
		} else {
			result.Failed++
		}
		result.Cases = append(result.Cases, cr)
	}
	return result
}

// RunFile loads one scenario file, declares its types, and runs it.
func (h *Harness) RunFile(path string) (*Result, error) {
	sc, err := LoadScenario(path)
	if err != nil {
		return nil, err
	}
	if err := DeclareTypes(sc.Types); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}
	return h.RunScenario(sc), nil
}

func (h *Harness) runCase(cc CheckCase) CaseResult {
	cr := CaseResult{Condition: cc.Condition, Want: cc.Want}

	c, err := parse.Parse(cc.Condition, nil)
	if err != nil {
		cr.Error = err.Error()
		if errors.Is(err, parse.ErrNoMatch) {
			cr.Error = "not a comparison"
		}
		cr.Passed = cc.WantError != "" && strings.Contains(cr.Error, cc.WantError)
		h.logger.Debug("case failed to resolve", "condition", cc.Condition, "error", cr.Error)
		return cr
	}
	if cc.WantError != "" {
		cr.Passed = false
		return cr
	}

	cr.Got = c.Check(nil)
	cr.Passed = cr.Got == cc.Want
	h.logger.Debug("case evaluated", "condition", cc.Condition, "got", cr.Got)
	return cr
}
