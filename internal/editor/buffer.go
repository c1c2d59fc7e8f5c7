// Package editor hosts the interactive capture session and the in-memory
// document buffer shared with the pipe and watch hosts.
package editor

import (
	"fmt"
	"os"
	"strings"
)

// Buffer is a rune-addressed line buffer implementing engine.Document.
type Buffer struct {
	name  string
	lines []string
}

// NewBuffer returns an empty buffer with a single empty line, matching what
// an editor shows for a new document.
func NewBuffer(name string) *Buffer {
	return &Buffer{name: name, lines: []string{""}}
}

// LoadBuffer reads path into a buffer. A missing file yields an empty
// buffer so `edit` can create documents.
func LoadBuffer(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewBuffer(path), nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return BufferFrom(path, string(data)), nil
}

// BufferFrom builds a buffer from raw text, splitting on newlines.
func BufferFrom(name, text string) *Buffer {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	return &Buffer{name: name, lines: lines}
}

func (b *Buffer) Name() string   { return b.name }
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns line i without its terminator.
func (b *Buffer) Line(i int) (string, bool) {
	if i < 0 || i >= len(b.lines) {
		return "", false
	}
	return b.lines[i], true
}

// Append adds a new line at the end of the buffer.
func (b *Buffer) Append(line string) {
	b.lines = append(b.lines, line)
}

// SetLine replaces line i.
func (b *Buffer) SetLine(i int, text string) {
	if i >= 0 && i < len(b.lines) {
		b.lines[i] = text
	}
}

// Insert places text at rune column col of line i. Text containing a
// newline splits the line, mirroring what a real editor insert does.
func (b *Buffer) Insert(i, col int, text string) error {
	if i < 0 || i >= len(b.lines) {
		return fmt.Errorf("line %d out of range", i)
	}
	runes := []rune(b.lines[i])
	if col < 0 || col > len(runes) {
		return fmt.Errorf("column %d out of range on line %d", col, i)
	}

	joined := string(runes[:col]) + text + string(runes[col:])
	parts := strings.Split(joined, "\n")
	b.lines[i] = parts[0]
	if len(parts) > 1 {
		tail := append(parts[1:], b.lines[i+1:]...)
		b.lines = append(b.lines[:i+1], tail...)
	}
	return nil
}

// Text reassembles the buffer with a trailing newline.
func (b *Buffer) Text() string {
	return strings.Join(b.lines, "\n") + "\n"
}

// Save writes the buffer back to its named file.
func (b *Buffer) Save() error {
	if err := os.WriteFile(b.name, []byte(b.Text()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", b.name, err)
	}
	return nil
}
