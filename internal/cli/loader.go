package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"

	"github.com/vellum-lang/vellum/internal/harness"
)

// typeDecl is the CUE shape of one symbol type declaration under "types".
type typeDecl struct {
	Parent  string   `json:"parent"`
	Members []string `json:"members"`
	Ordered bool     `json:"ordered"`
}

// LoadTypes loads symbol type declarations from the CUE files in dir and
// registers each declared type with a comparator. A declaration looks like:
//
//	types: rank: {
//		members: ["pawn", "knight", "queen"]
//		ordered: true
//	}
//
// Ordered types compare by member position; unordered ones support
// equality only. Returns the declared type names in declaration order.
func LoadTypes(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("types directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	ctx := cuecontext.New()
	instances := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, fmt.Errorf("no CUE instances in %s", dir)
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, fmt.Errorf("loading CUE files: %w", inst.Err)
	}
	root := ctx.BuildInstance(inst)
	if err := root.Err(); err != nil {
		return nil, fmt.Errorf("building CUE value: %w", err)
	}

	typesVal := root.LookupPath(cue.ParsePath("types"))
	if !typesVal.Exists() {
		return nil, fmt.Errorf("no \"types\" declarations in %s", dir)
	}
	iter, err := typesVal.Fields()
	if err != nil {
		return nil, fmt.Errorf("iterating types: %w", err)
	}

	var names []string
	for iter.Next() {
		name := iter.Label()
		var decl typeDecl
		if err := iter.Value().Decode(&decl); err != nil {
			return nil, fmt.Errorf("type %s: %w", name, err)
		}
		err = harness.DeclareTypes([]harness.TypeDecl{{
			Name:    name,
			Parent:  decl.Parent,
			Members: decl.Members,
			Ordered: decl.Ordered,
		}})
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no \"types\" declarations in %s", dir)
	}
	return names, nil
}

// FindCUEFiles lists the .cue files directly inside dir, sorted by name.
func FindCUEFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if filepath.Ext(e.Name()) == ".cue" {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}
