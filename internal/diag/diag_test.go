package diag

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink captures replayed entries for assertions.
type recordingSink struct {
	entries []Entry
}

func (s *recordingSink) Emit(e Entry) {
	s.entries = append(s.entries, e)
}

func TestScopeRetainsUntilReplay(t *testing.T) {
	sink := &recordingSink{}
	scope := Open(sink)

	scope.Errorf("cannot narrow %s", "x")
	scope.Infof("tried %d conversions", 2)

	// Nothing reaches the sink while the scope is open.
	assert.Empty(t, sink.entries)
	assert.True(t, scope.HasErrors())
	assert.Equal(t, []string{"cannot narrow x"}, scope.Errors())

	scope.Replay()
	require.Len(t, sink.entries, 2)
	assert.Equal(t, slog.LevelError, sink.entries[0].Level)
	assert.Equal(t, "cannot narrow x", sink.entries[0].Message)
	assert.Equal(t, slog.LevelInfo, sink.entries[1].Level)
}

func TestScopeDiscard(t *testing.T) {
	sink := &recordingSink{}
	scope := Open(sink)

	scope.Errorf("suppressed")
	scope.Discard()

	assert.Empty(t, sink.entries)

	// Replay after discard is a no-op.
	scope.Replay()
	assert.Empty(t, sink.entries)
}

func TestScopeReplayInfoDropsErrors(t *testing.T) {
	sink := &recordingSink{}
	scope := Open(sink)

	scope.Errorf("speculative failure")
	scope.Infof("kept")

	scope.ReplayInfo()
	require.Len(t, sink.entries, 1)
	assert.Equal(t, "kept", sink.entries[0].Message)
}

func TestScopeCloseIsIdempotentDiscard(t *testing.T) {
	sink := &recordingSink{}
	scope := Open(sink)
	scope.Errorf("never seen")

	scope.Close()
	scope.Close()
	scope.Replay()

	assert.Empty(t, sink.entries)
}

func TestScopeCloseAfterReplayKeepsReplay(t *testing.T) {
	sink := &recordingSink{}
	scope := Open(sink)
	scope.Errorf("seen once")

	scope.Replay()
	scope.Close()

	assert.Len(t, sink.entries, 1)
}

func TestOpenNilSink(t *testing.T) {
	scope := Open(nil)
	scope.Errorf("dropped")
	assert.NotPanics(t, func() { scope.Replay() })
}
