package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vellum-lang/vellum/internal/parse"
	"github.com/vellum-lang/vellum/internal/value"
)

func writeCUE(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "types.cue"), []byte(body), 0o644))
	return dir
}

func TestLoadTypesOrdered(t *testing.T) {
	dir := writeCUE(t, `
types: metal: {
	members: ["iron", "silver", "gold"]
	ordered: true
}
`)
	names, err := LoadTypes(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"metal"}, names)

	typ, ok := value.LookupType("metal")
	require.True(t, ok)
	assert.Equal(t, value.Any, typ.Parent())

	gold, ok := value.LookupSymbol("gold")
	require.True(t, ok)
	assert.Equal(t, typ, gold.Type())

	c, err := parse.Parse("gold is greater than iron", nil)
	require.NoError(t, err)
	assert.True(t, c.Check(nil))
}

func TestLoadTypesUnordered(t *testing.T) {
	dir := writeCUE(t, `
types: flavour: members: ["sweet", "sour"]
`)
	_, err := LoadTypes(dir)
	require.NoError(t, err)

	c, err := parse.Parse("sweet is not sour", nil)
	require.NoError(t, err)
	assert.True(t, c.Check(nil))

	_, err = parse.Parse("sweet is greater than sour", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can't test")
}

func TestLoadTypesParent(t *testing.T) {
	dir := writeCUE(t, `
types: {
	vessel: members: ["cup", "bowl"]
	goblet: {
		parent: "vessel"
		members: ["chalice"]
	}
}
`)
	names, err := LoadTypes(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"vessel", "goblet"}, names)

	goblet, ok := value.LookupType("goblet")
	require.True(t, ok)
	vessel, ok := value.LookupType("vessel")
	require.True(t, ok)
	assert.True(t, goblet.Is(vessel))
}

func TestLoadTypesErrors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, err := LoadTypes(filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
	})

	t.Run("not a directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file.cue")
		require.NoError(t, os.WriteFile(path, []byte("types: {}"), 0o644))
		_, err := LoadTypes(path)
		require.ErrorContains(t, err, "not a directory")
	})

	t.Run("no declarations", func(t *testing.T) {
		dir := writeCUE(t, `other: 1`)
		_, err := LoadTypes(dir)
		require.ErrorContains(t, err, `no "types" declarations`)
	})

	t.Run("unknown parent", func(t *testing.T) {
		dir := writeCUE(t, `
types: orphan1: {
	parent: "no-such-type"
	members: ["x"]
}
`)
		_, err := LoadTypes(dir)
		require.ErrorContains(t, err, "unknown parent")
	})

	t.Run("no members", func(t *testing.T) {
		dir := writeCUE(t, `
types: hollow1: members: []
`)
		_, err := LoadTypes(dir)
		require.Error(t, err)
	})
}

func TestFindCUEFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.cue"), []byte("x: 1"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.cue"), []byte("y: 2"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("n"), 0o644))

	files, err := FindCUEFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.cue", "b.cue"}, files)
}
