package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vellum-lang/vellum/internal/store"
)

func TestTraceCommand(t *testing.T) {
	t.Run("requires db flag", func(t *testing.T) {
		_, err := executeCommand("trace")
		require.Error(t, err)
	})

	t.Run("empty database", func(t *testing.T) {
		db := filepath.Join(t.TempDir(), "vellum.db")
		st, err := store.Open(db)
		require.NoError(t, err)
		require.NoError(t, st.Close())

		out, err := executeCommand("trace", "--db", db)
		require.NoError(t, err)
		assert.Contains(t, out, "No checks recorded.")
	})

	t.Run("empty run filter", func(t *testing.T) {
		db := filepath.Join(t.TempDir(), "vellum.db")
		st, err := store.Open(db)
		require.NoError(t, err)
		require.NoError(t, st.Close())

		out, err := executeCommand("trace", "--db", db, "--run", "missing-run")
		require.NoError(t, err)
		assert.Contains(t, out, "No checks recorded for run: missing-run")
	})

	t.Run("verbose shows run and relation", func(t *testing.T) {
		db := filepath.Join(t.TempDir(), "vellum.db")
		st, err := store.Open(db)
		require.NoError(t, err)
		_, err = st.RecordCheck(context.Background(), "run-a", "5 is 5", "equal to", true)
		require.NoError(t, err)
		require.NoError(t, st.Close())

		out, err := executeCommand("trace", "--db", db, "--verbose")
		require.NoError(t, err)
		assert.Contains(t, out, "run=run-a")
		assert.Contains(t, out, `relation="equal to"`)
	})
}
