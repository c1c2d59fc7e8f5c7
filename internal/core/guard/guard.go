// Package guard throttles insertions with an explicit, copyable state record.
package guard

import "time"

// State records the last successful insertion and the document it happened
// in. The zero value allows the first trigger immediately.
type State struct {
	LastInsert time.Time
	Document   string
}

// Allow reports whether an insertion may happen now, returning the updated
// state. Switching documents resets the cooldown so a new document never
// inherits a throttle from the previous one. A minDelay <= 0 disables
// throttling entirely.
func (s State) Allow(doc string, now time.Time, minDelay time.Duration) (State, bool) {
	if doc != s.Document {
		s.Document = doc
		s.LastInsert = time.Time{}
	}
	if minDelay <= 0 {
		return s, true
	}
	if s.LastInsert.IsZero() {
		return s, true
	}
	return s, now.Sub(s.LastInsert) >= minDelay
}

// Mark records a successful insertion at now.
func (s State) Mark(now time.Time) State {
	s.LastInsert = now
	return s
}
