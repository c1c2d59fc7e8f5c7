// Package engine runs the single-call insertion pipeline on each line-break
// trigger: rate guard, offset resolution, formatting, document insert.
package engine

import (
	"time"

	"github.com/yhmin/linestamp/internal/config"
	"github.com/yhmin/linestamp/internal/core/guard"
	"github.com/yhmin/linestamp/internal/core/policy"
	"github.com/yhmin/linestamp/internal/core/stamp"
)

// Document is the host-side accessor the engine writes through. Line and
// Insert address runes, not bytes.
type Document interface {
	// Name identifies the document for the rate guard.
	Name() string
	// LineCount returns the number of lines currently in the document.
	LineCount() int
	// Line returns the text of line i, without its terminator.
	Line(i int) (string, bool)
	// Insert places text at rune column col of line i.
	Insert(i, col int, text string) error
}

// Engine evaluates one line-break trigger at a time. It owns the only
// mutable state in the pipeline, the rate-guard record, and is driven
// serially by its host.
type Engine struct {
	eval     *policy.Evaluator
	fmt      *stamp.Formatter
	guard    guard.State
	minDelay time.Duration
}

// New wires an engine from a settings snapshot. Zone problems degrade to
// the local zone rather than failing, per the formatter's fallback.
func New(cfg config.Settings) *Engine {
	return &Engine{
		eval:     policy.NewEvaluator(cfg.Layout, cfg.StampLists),
		fmt:      stamp.NewFallbackFormatter(cfg),
		minDelay: time.Duration(cfg.MinDelaySeconds) * time.Second,
	}
}

// OnLineBreak handles a line-break trigger whose cursor ended up at the
// start of line cursorLine. It stamps the preceding line when the policy
// allows and reports whether an insertion happened. A nil document or an
// out-of-range line is a silent no-op.
func (e *Engine) OnLineBreak(doc Document, cursorLine int, now time.Time) (bool, error) {
	if doc == nil || cursorLine < 1 {
		return false, nil
	}
	prev, ok := doc.Line(cursorLine - 1)
	if !ok {
		return false, nil
	}

	next, allowed := e.guard.Allow(doc.Name(), now, e.minDelay)
	e.guard = next
	if !allowed {
		return false, nil
	}

	offset := e.eval.Resolve(prev)
	if offset == policy.Skip {
		return false, nil
	}

	if err := doc.Insert(cursorLine-1, offset, e.fmt.Render(now)); err != nil {
		return false, err
	}
	e.guard = e.guard.Mark(now)
	return true, nil
}
