// Package combatlog carries the append-only battle log out of the engine.
// The engine writes entries to a Sink and never waits on whoever reads them.
package combatlog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Kind classifies a log entry.
type Kind string

// Entry kinds
const (
	KindTurn     Kind = "turn"
	KindSkill    Kind = "skill"
	KindMiss     Kind = "miss"
	KindDamage   Kind = "damage"
	KindHeal     Kind = "heal"
	KindStatus   Kind = "status"
	KindResist   Kind = "resist"
	KindNotice   Kind = "notice"
	KindDefeat   Kind = "defeat"
	KindEscape   Kind = "escape"
	KindResult   Kind = "result"
	KindRefresh  Kind = "refresh"
	KindInternal Kind = "internal"
)

// Entry is one line of the battle log.
type Entry struct {
	Round   int    `json:"round"`
	Kind    Kind   `json:"kind"`
	Actor   string `json:"actor,omitempty"`
	Target  string `json:"target,omitempty"`
	Message string `json:"message"`
}

func (e Entry) String() string {
	return e.Message
}

// Sink receives log entries. Implementations must not block.
type Sink interface {
	Write(e Entry)
}

// Writer stamps entries with the current round before handing them to a Sink.
type Writer struct {
	sink  Sink
	round int
}

// NewWriter wraps sink. A nil sink discards everything.
func NewWriter(sink Sink) *Writer {
	if sink == nil {
		sink = Discard
	}
	return &Writer{sink: sink}
}

// SetRound sets the round stamped on subsequent entries.
func (w *Writer) SetRound(round int) {
	w.round = round
}

// Round returns the current round.
func (w *Writer) Round() int {
	return w.round
}

// Log writes an entry with a formatted message.
func (w *Writer) Log(kind Kind, actor, target, format string, args ...any) {
	if w == nil {
		return
	}
	w.sink.Write(Entry{
		Round:   w.round,
		Kind:    kind,
		Actor:   actor,
		Target:  target,
		Message: fmt.Sprintf(format, args...),
	})
}

// Notice writes a free-form notice.
func (w *Writer) Notice(format string, args ...any) {
	w.Log(KindNotice, "", "", format, args...)
}

// Refresh pings readers that displayed state changed.
func (w *Writer) Refresh() {
	w.Log(KindRefresh, "", "", "")
}

type discard struct{}

func (discard) Write(Entry) {}

// Discard drops every entry.
var Discard Sink = discard{}

// Recorder keeps every entry in memory. It is safe for concurrent use so a
// reader can poll while a battle runs.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Write implements Sink
func (r *Recorder) Write(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

// Entries returns a copy of the recorded entries.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Messages returns the recorded messages, skipping refresh pings.
func (r *Recorder) Messages() []string {
	entries := r.Entries()
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Kind == KindRefresh {
			continue
		}
		out = append(out, e.Message)
	}
	return out
}

// SlogSink forwards entries to a structured logger at a fixed level.
type SlogSink struct {
	logger *slog.Logger
	level  slog.Level
	attrs  []any
}

// NewSlogSink creates a sink logging through logger. A nil logger uses the
// default logger.
func NewSlogSink(logger *slog.Logger, level slog.Level, attrs ...any) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{logger: logger, level: level, attrs: attrs}
}

// Write implements Sink
func (s *SlogSink) Write(e Entry) {
	if e.Kind == KindRefresh {
		return
	}
	args := append([]any{
		"round", e.Round,
		"kind", e.Kind,
	}, s.attrs...)
	if e.Actor != "" {
		args = append(args, "actor", e.Actor)
	}
	if e.Target != "" {
		args = append(args, "target", e.Target)
	}
	s.logger.Log(context.Background(), s.level, e.Message, args...)
}

type multi []Sink

func (m multi) Write(e Entry) {
	for _, s := range m {
		s.Write(e)
	}
}

// Multi fans entries out to every non-nil sink.
func Multi(sinks ...Sink) Sink {
	var out multi
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

// Func adapts a function to a Sink.
type Func func(Entry)

// Write implements Sink
func (f Func) Write(e Entry) { f(e) }
