package watch

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yhmin/linestamp/internal/config"
	"github.com/yhmin/linestamp/internal/core/engine"
	"github.com/yhmin/linestamp/internal/editor"
)

// Tracker maps file growth onto line-break triggers. A file gaining a
// completed line means someone pressed Enter at the end of the previous
// one; the tracker replays that trigger through the engine and writes the
// stamped text back in place.
type Tracker struct {
	eng    *engine.Engine
	counts map[string]int
}

func NewTracker(cfg config.Settings) *Tracker {
	return &Tracker{
		eng:    engine.New(cfg),
		counts: make(map[string]int),
	}
}

// Prime records the current completed-line count of path without stamping,
// so pre-existing content never triggers insertions at startup.
func (t *Tracker) Prime(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	t.counts[path] = strings.Count(string(data), "\n")
}

// HandleWrite processes one write event. It reports whether a stamp was
// inserted. Unreadable files and shrinking files just update bookkeeping.
func (t *Tracker) HandleWrite(path string, now time.Time) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	text := string(data)

	completed := strings.Count(text, "\n")
	prev, seen := t.counts[path]
	t.counts[path] = completed
	if !seen || completed <= prev || completed == 0 {
		return false, nil
	}

	buf := editor.BufferFrom(path, text)
	inserted, err := t.eng.OnLineBreak(buf, completed, now)
	if err != nil || !inserted {
		return false, err
	}

	out := strings.Join(bufLines(buf), "\n")
	if strings.HasSuffix(text, "\n") {
		// BufferFrom trimmed the final terminator; restore it along with
		// any terminators the stamp itself introduced.
		out += "\n"
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	// Count our own write so the follow-up fsnotify event is a no-op.
	t.counts[path] = strings.Count(out, "\n")
	return true, nil
}

func bufLines(b *editor.Buffer) []string {
	lines := make([]string, b.LineCount())
	for i := range lines {
		lines[i], _ = b.Line(i)
	}
	return lines
}
