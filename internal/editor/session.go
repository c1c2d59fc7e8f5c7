package editor

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/yhmin/linestamp/internal/config"
	"github.com/yhmin/linestamp/internal/core/engine"
	"github.com/yhmin/linestamp/internal/util"
)

// Session is the interactive capture host: it echoes typed text, commits a
// line on Enter release, runs the insertion engine against the committed
// line, and saves the buffer on exit.
type Session struct {
	buf    *Buffer
	eng    *engine.Engine
	cfg    config.Settings
	out    io.Writer
	status *StatusBar

	current   []rune
	committed bool
}

// NewSession loads (or creates) the document at path.
func NewSession(path string, cfg config.Settings) (*Session, error) {
	buf, err := LoadBuffer(path)
	if err != nil {
		return nil, err
	}
	return &Session{
		buf:    buf,
		eng:    engine.New(cfg),
		cfg:    cfg,
		out:    os.Stdout,
		status: NewStatusBar(os.Stdout),
	}, nil
}

// Run drives the keyboard loop until Ctrl+C, Ctrl+D or Esc, then saves.
func (s *Session) Run() error {
	kb, err := NewKeyboardReader()
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	defer kb.Close()

	s.renderStatus()
	for ev := range kb.Events() {
		switch ev.Kind {
		case KeyRune:
			s.current = append(s.current, ev.Rune)
			fmt.Fprintf(s.out, "%c", ev.Rune)
		case KeyBackspace:
			if len(s.current) > 0 {
				s.current = s.current[:len(s.current)-1]
				fmt.Fprint(s.out, "\b \b")
			}
		case KeyEnter:
			s.commitLine()
		case KeyInterrupt, KeyEOF, KeyEscape:
			s.status.Clear()
			fmt.Fprint(s.out, "\r\n")
			return s.buf.Save()
		}
	}
	return s.buf.Save()
}

// commitLine appends the typed line, fires the line-break trigger, and
// redraws the line when the engine inserted a stamp into it.
func (s *Session) commitLine() {
	line := string(s.current)
	s.current = s.current[:0]
	fmt.Fprint(s.out, "\r\n")

	idx := s.appendLine(line)
	inserted, err := s.eng.OnLineBreak(s.buf, idx+1, time.Now())
	if err != nil {
		util.LogWarnf("insertion failed on %s:%d: %v", s.buf.Name(), idx, err)
	}
	if inserted {
		s.redrawFrom(idx)
	}
	s.renderStatus()
}

// appendLine adds the committed line and returns its index. The first
// commit into a fresh single-empty-line buffer replaces that line instead
// of leaving a blank above it.
func (s *Session) appendLine(line string) int {
	if !s.committed && s.buf.LineCount() == 1 {
		if first, _ := s.buf.Line(0); first == "" {
			s.committed = true
			s.buf.SetLine(0, line)
			return 0
		}
	}
	s.committed = true
	s.buf.Append(line)
	return s.buf.LineCount() - 1
}

// redrawFrom reprints buffer lines from idx to the end of the buffer; a
// stamp with a newline suffix splits the committed line, so everything
// from idx down may have moved.
func (s *Session) redrawFrom(idx int) {
	// The cursor already sits on the line after the committed one.
	fmt.Fprint(s.out, "\033[1A\r")
	for i := idx; i < s.buf.LineCount(); i++ {
		text, _ := s.buf.Line(i)
		fmt.Fprintf(s.out, "%s%s\r\n", ClearLine, text)
	}
}

func (s *Session) renderStatus() {
	zone := s.cfg.Timezone
	if s.cfg.UseUTCOffset && s.cfg.UTCOffsetMinutes != 0 {
		zone = fmt.Sprintf("UTC%+d min", s.cfg.UTCOffsetMinutes)
	}
	parts := []string{
		s.buf.Name(),
		"zone " + zone,
		fmt.Sprintf("delay %ds", s.cfg.MinDelaySeconds),
	}
	if !s.cfg.StampLists {
		parts = append(parts, "lists off")
	}
	s.status.Render(" linestamp  " + strings.Join(parts, "  |  "))
}
