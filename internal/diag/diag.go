// Package diag provides retained, suppressible diagnostic scopes.
//
// Construction-time resolution speculatively narrows operand types, and
// whatever errors that attempt produces must stay invisible unless the
// whole resolution fails. A Scope collects diagnostics while it is open;
// the caller then decides whether the batch is replayed to a sink or
// discarded. Nothing retained by an open scope reaches a user on its own.
package diag

import (
	"context"
	"fmt"
	"log/slog"
)

// Entry is one retained diagnostic.
type Entry struct {
	Level   slog.Level
	Message string
}

// Sink receives the diagnostics a scope replays.
type Sink interface {
	Emit(e Entry)
}

// LogSink forwards replayed diagnostics to a slog logger.
type LogSink struct {
	Logger *slog.Logger
}

func (s LogSink) Emit(e Entry) {
	s.Logger.Log(context.Background(), e.Level, e.Message)
}

// NopSink drops everything. Used when the caller has nowhere to surface
// diagnostics.
type NopSink struct{}

func (NopSink) Emit(Entry) {}

// Scope is an open error-collection context.
type Scope struct {
	sink    Sink
	entries []Entry
	errors  int
	closed  bool
}

// Open starts a scope draining into sink on replay. A nil sink behaves
// like NopSink.
func Open(sink Sink) *Scope {
	if sink == nil {
		sink = NopSink{}
	}
	return &Scope{sink: sink}
}

// Errorf retains an error-level diagnostic.
func (s *Scope) Errorf(format string, args ...any) {
	s.entries = append(s.entries, Entry{Level: slog.LevelError, Message: fmt.Sprintf(format, args...)})
	s.errors++
}

// Infof retains an info-level diagnostic.
func (s *Scope) Infof(format string, args ...any) {
	s.entries = append(s.entries, Entry{Level: slog.LevelInfo, Message: fmt.Sprintf(format, args...)})
}

// HasErrors reports whether any error-level entry was retained.
func (s *Scope) HasErrors() bool { return s.errors > 0 }

// Errors returns the retained error messages in order.
func (s *Scope) Errors() []string {
	var msgs []string
	for _, e := range s.entries {
		if e.Level >= slog.LevelError {
			msgs = append(msgs, e.Message)
		}
	}
	return msgs
}

// Replay forwards every retained entry to the sink, errors included, and
// closes the scope.
func (s *Scope) Replay() {
	if s.closed {
		return
	}
	for _, e := range s.entries {
		s.sink.Emit(e)
	}
	s.close()
}

// ReplayInfo forwards only the entries below error level and drops the
// rest. Used when a speculative attempt succeeded and its errors are moot.
func (s *Scope) ReplayInfo() {
	if s.closed {
		return
	}
	for _, e := range s.entries {
		if e.Level < slog.LevelError {
			s.sink.Emit(e)
		}
	}
	s.close()
}

// Discard drops the whole batch and closes the scope.
func (s *Scope) Discard() {
	if s.closed {
		return
	}
	s.close()
}

// Close discards the batch unless the scope was already replayed or
// discarded. Safe to defer next to an explicit Replay or Discard.
func (s *Scope) Close() {
	s.Discard()
}

func (s *Scope) close() {
	s.entries = nil
	s.closed = true
}
