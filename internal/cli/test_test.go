package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passingScenario = `name: passing
checks:
  - condition: 5 is greater than 3
    want: true
  - condition: hello world
    want_error: not a comparison
`

const failingScenario = `name: failing
checks:
  - condition: 3 is greater than 5
    want: true
`

func writeScenarios(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func TestTestCommand(t *testing.T) {
	t.Run("all passing", func(t *testing.T) {
		dir := writeScenarios(t, map[string]string{"passing.yaml": passingScenario})
		out, err := executeCommand("test", dir)
		require.NoError(t, err)
		assert.Contains(t, out, "PASS passing")
		assert.Contains(t, out, "1 passed, 0 failed, 1 total")
	})

	t.Run("failure exits nonzero", func(t *testing.T) {
		dir := writeScenarios(t, map[string]string{
			"passing.yaml": passingScenario,
			"failing.yaml": failingScenario,
		})
		out, err := executeCommand("test", dir)
		require.Error(t, err)
		assert.Equal(t, ExitFailure, GetExitCode(err))
		assert.Contains(t, out, "PASS passing")
		assert.Contains(t, out, "FAIL failing")
		assert.Contains(t, out, "3 is greater than 5: want true, got false")
		assert.Contains(t, out, "1 passed, 1 failed, 2 total")
	})

	t.Run("filter", func(t *testing.T) {
		dir := writeScenarios(t, map[string]string{
			"passing.yaml": passingScenario,
			"failing.yaml": failingScenario,
		})
		out, err := executeCommand("test", dir, "--filter", "pass*")
		require.NoError(t, err)
		assert.Contains(t, out, "PASS passing")
		assert.NotContains(t, out, "failing")
	})

	t.Run("unreadable scenario", func(t *testing.T) {
		dir := writeScenarios(t, map[string]string{"broken.yaml": "name: [oops"})
		out, err := executeCommand("test", dir)
		require.Error(t, err)
		assert.Equal(t, ExitFailure, GetExitCode(err))
		assert.Contains(t, out, "FAIL broken")
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := executeCommand("test", filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
		assert.Equal(t, ExitCommandError, GetExitCode(err))
	})

	t.Run("empty directory", func(t *testing.T) {
		out, err := executeCommand("test", t.TempDir())
		require.NoError(t, err)
		assert.Contains(t, out, "No scenarios found.")
	})

	t.Run("json output", func(t *testing.T) {
		dir := writeScenarios(t, map[string]string{"passing.yaml": passingScenario})
		out, err := executeCommand("test", "--format", "json", dir)
		require.NoError(t, err)

		var resp CLIResponse
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		assert.Equal(t, "ok", resp.Status)

		data, merr := json.Marshal(resp.Data)
		require.NoError(t, merr)
		var result TestResult
		require.NoError(t, json.Unmarshal(data, &result))
		require.Len(t, result.Scenarios, 1)
		assert.True(t, result.Scenarios[0].Pass)
		assert.Equal(t, 1, result.Passed)
	})
}

func TestTestCommandWithTypes(t *testing.T) {
	typesDir := writeCUE(t, `
types: gear: {
	members: ["low", "high"]
	ordered: true
}
`)
	scenariosDir := writeScenarios(t, map[string]string{
		"gears.yaml": `name: gears
checks:
  - condition: high is greater than low
    want: true
`,
	})

	out, err := executeCommand("test", "--types", typesDir, scenariosDir)
	require.NoError(t, err)
	assert.Contains(t, out, "PASS gears")
}
