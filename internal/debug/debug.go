// Package debug traces render passes as a stream of events.
//
// Tracing is off unless enabled with SetEnabled or SMPHR_DEBUG=1. A nil
// *Session is valid and every method on it is a no-op, so callers never need
// to check whether tracing is on.
package debug

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"sync/atomic"
	"time"
)

var enabled atomic.Bool

// SetEnabled turns tracing on or off for the whole process.
func SetEnabled(on bool) {
	enabled.Store(on)
}

// Enabled reports whether tracing is on.
func Enabled() bool {
	return enabled.Load()
}

// InitFromEnv enables tracing when SMPHR_DEBUG=1.
func InitFromEnv() {
	if os.Getenv("SMPHR_DEBUG") == "1" {
		SetEnabled(true)
	}
}

// Session groups the events of one render pass under a single ID.
// A session must not be shared by concurrent render passes.
type Session struct {
	sessionID string
	sink      Sink
	startTime time.Time
}

// NewSession starts a session writing to sink.
// It returns nil when tracing is disabled or sink is nil.
func NewSession(sink Sink) *Session {
	if !Enabled() || sink == nil {
		return nil
	}

	s := &Session{
		sessionID: generateSessionID(),
		sink:      sink,
		startTime: time.Now(),
	}
	s.Emit("session", "Start", map[string]interface{}{
		"version": "1.0",
	})
	return s
}

// SessionID returns the session identifier, or "" for a nil session.
func (s *Session) SessionID() string {
	if s == nil {
		return ""
	}
	return s.sessionID
}

// Emit sends one event to the sink.
func (s *Session) Emit(phase, event string, data interface{}) {
	if s == nil {
		return
	}

	evt := Event{
		Timestamp: time.Now().Format(time.RFC3339Nano),
		SessionID: s.sessionID,
		Phase:     phase,
		Event:     event,
		Data:      data,
	}

	//nolint:errcheck // a broken trace must not break rendering
	s.sink.Write(evt)
}

// Close emits the session end event and closes the sink.
func (s *Session) Close() error {
	if s == nil {
		return nil
	}

	s.Emit("session", "End", map[string]int64{
		"elapsed_ms": time.Since(s.startTime).Milliseconds(),
	})
	return s.sink.Close()
}

func generateSessionID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		n := time.Now().UnixNano()
		b = []byte{byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)}
	}
	return hex.EncodeToString(b)
}
