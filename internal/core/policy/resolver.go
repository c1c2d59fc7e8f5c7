package policy

import (
	"time"
	"unicode/utf8"
)

// Skip is the sentinel returned when no timestamp should be inserted. Every
// valid insertion offset is >= 0.
const Skip = -1

// referenceTime formats to the layout string itself under any Go layout,
// which makes the rendered width of a stamp computable without a wall clock.
var referenceTime = time.Date(2006, time.January, 2, 15, 4, 5, 0, time.FixedZone("MST", -7*3600))

// Evaluator resolves the insertion offset for the line immediately preceding
// a line break. It is stateless; one value can serve any number of triggers.
type Evaluator struct {
	layout     string
	stampLists bool
	width      int
}

// NewEvaluator builds an Evaluator for a stamp layout. stampLists controls
// whether list bullet lines receive timestamps at all.
func NewEvaluator(layout string, stampLists bool) *Evaluator {
	return &Evaluator{
		layout:     layout,
		stampLists: stampLists,
		width:      StampWidth(layout),
	}
}

// StampWidth returns the rune count a timestamp occupies when rendered with
// the given layout.
func StampWidth(layout string) int {
	return utf8.RuneCountInString(referenceTime.Format(layout))
}

// Resolve computes the rune offset at which a timestamp belongs on prevLine,
// or Skip. The checks short-circuit in order: task lines never get stamps,
// bullet lines only when enabled, fence boundaries never, and a line that
// already carries a stamp at the candidate offset is left alone so repeated
// triggers on the same line stay idempotent.
func (e *Evaluator) Resolve(prevLine string) int {
	candidate := 0

	switch c := Classify(prevLine); c.Kind {
	case ListTask:
		return Skip
	case ListBullet:
		if !e.stampLists {
			return Skip
		}
		candidate = c.Offset
	case CodeFence:
		return Skip
	}

	if e.alreadyStamped(prevLine, candidate) {
		return Skip
	}
	return candidate
}

// alreadyStamped reports whether the line carries a valid stamp at offset.
// A strict round-trip parse of exactly StampWidth runes decides; any parse
// failure (including a layout too odd to round-trip) counts as "no stamp",
// degrading toward insertion rather than silence.
func (e *Evaluator) alreadyStamped(line string, offset int) bool {
	if e.width == 0 {
		return false
	}
	runes := []rune(line)
	if offset+e.width > len(runes) {
		return false
	}
	_, err := time.Parse(e.layout, string(runes[offset:offset+e.width]))
	return err == nil
}
