package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vellum-lang/vellum/internal/compare"
	"github.com/vellum-lang/vellum/internal/value"
)

// Scenario defines a conformance scenario: a named list of comparison
// lines with their expected outcomes.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Types declares the symbol types the checks depend on.
	Types []TypeDecl `yaml:"types,omitempty"`

	// Checks lists the comparisons to evaluate, in order.
	Checks []CheckCase `yaml:"checks"`
}

// TypeDecl declares one symbol type: its members and whether member order
// is significant for comparison.
type TypeDecl struct {
	Name    string   `yaml:"name"`
	Parent  string   `yaml:"parent,omitempty"`
	Members []string `yaml:"members"`
	Ordered bool     `yaml:"ordered,omitempty"`
}

// CheckCase is one comparison line and its expected outcome.
type CheckCase struct {
	// Condition is the comparison source text, e.g. "5 is greater than 3".
	Condition string `yaml:"condition"`

	// Want is the expected verdict.
	Want bool `yaml:"want"`

	// WantError, when set, expects construction to fail with a message
	// containing this text instead of evaluating.
	WantError string `yaml:"want_error,omitempty"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if sc.Name == "" {
		return nil, fmt.Errorf("scenario %s: missing name", path)
	}
	if len(sc.Checks) == 0 {
		return nil, fmt.Errorf("scenario %s: no checks", path)
	}
	for i, d := range sc.Types {
		if d.Name == "" {
			return nil, fmt.Errorf("scenario %s: type %d: missing name", path, i)
		}
	}
	for i, c := range sc.Checks {
		if c.Condition == "" {
			return nil, fmt.Errorf("scenario %s: check %d: missing condition", path, i)
		}
	}
	return &sc, nil
}

// DeclareTypes registers symbol type declarations and a comparator for
// each. Registration is process-wide; declaring a name twice fails.
func DeclareTypes(decls []TypeDecl) error {
	for _, d := range decls {
		parent := value.Any
		if d.Parent != "" {
			p, ok := value.LookupType(d.Parent)
			if !ok {
				return fmt.Errorf("type %s: unknown parent %q", d.Name, d.Parent)
			}
			parent = p
		}
		typ, err := value.DeclareSymbolType(d.Name, parent, d.Members, d.Ordered)
		if err != nil {
			return fmt.Errorf("type %s: %w", d.Name, err)
		}
		compare.Register(typ, typ, compare.ForSymbols(d.Ordered))
	}
	return nil
}
