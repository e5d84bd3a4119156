package harness

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// TraceSnapshot is the canonical serialized form of a scenario run, used
// for golden-file comparison. Field order is fixed by the struct; the
// bytes are stable across runs.
type TraceSnapshot struct {
	ScenarioName string       `json:"scenario_name"`
	Passed       int          `json:"passed"`
	Failed       int          `json:"failed"`
	Cases        []CaseResult `json:"cases"`
}

// Snapshot converts a run result into its snapshot form.
func Snapshot(r *Result) *TraceSnapshot {
	return &TraceSnapshot{
		ScenarioName: r.Scenario,
		Passed:       r.Passed,
		Failed:       r.Failed,
		Cases:        r.Cases,
	}
}

// Bytes renders the snapshot as indented JSON with a trailing newline.
func (s *TraceSnapshot) Bytes() ([]byte, error) {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return append(b, '\n'), nil
}

// AssertGolden compares a run result against testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func AssertGolden(t *testing.T, name string, r *Result) error {
	t.Helper()

	b, err := Snapshot(r).Bytes()
	if err != nil {
		return err
	}
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, b)
	return nil
}
