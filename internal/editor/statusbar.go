package editor

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Terminal control sequences
const (
	ClearLine     = "\033[2K"
	SaveCursor    = "\033[s"
	RestoreCursor = "\033[u"
	Inverse       = "\033[7m"
	Reset         = "\033[0m"
)

// StatusBar pins a single summary line to the bottom row of the terminal.
type StatusBar struct {
	out io.Writer
}

func NewStatusBar(out io.Writer) *StatusBar {
	return &StatusBar{out: out}
}

// Render draws text on the terminal's bottom row, truncated to the current
// width, and puts the cursor back where it was. A non-terminal stdout is a
// no-op.
func (sb *StatusBar) Render(text string) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || height < 2 {
		return
	}

	line := runewidth.Truncate(text, width, "…")
	pad := width - runewidth.StringWidth(line)
	if pad < 0 {
		pad = 0
	}

	fmt.Fprintf(sb.out, "%s\033[%d;1H%s%s%s%s%s%s",
		SaveCursor, height, ClearLine, Inverse, line,
		spaces(pad), Reset, RestoreCursor)
}

// Clear erases the bottom row.
func (sb *StatusBar) Clear() {
	_, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || height < 2 {
		return
	}
	fmt.Fprintf(sb.out, "%s\033[%d;1H%s%s", SaveCursor, height, ClearLine, RestoreCursor)
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
