package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferFrom(t *testing.T) {
	b := BufferFrom("notes.md", "one\ntwo\nthree\n")
	assert.Equal(t, 3, b.LineCount())

	line, ok := b.Line(1)
	assert.True(t, ok)
	assert.Equal(t, "two", line)

	_, ok = b.Line(3)
	assert.False(t, ok)
	_, ok = b.Line(-1)
	assert.False(t, ok)
}

func TestBufferInsert(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		col       int
		text      string
		wantLines []string
	}{
		{
			name:      "at column zero",
			line:      "hello",
			col:       0,
			text:      "12:00 ",
			wantLines: []string{"12:00 hello"},
		},
		{
			name:      "mid line",
			line:      "- item",
			col:       2,
			text:      "12:00 ",
			wantLines: []string{"- 12:00 item"},
		},
		{
			name:      "at end of line",
			line:      "abc",
			col:       3,
			text:      "!",
			wantLines: []string{"abc!"},
		},
		{
			name:      "newline in text splits the line",
			line:      "hello",
			col:       0,
			text:      "12:00\n",
			wantLines: []string{"12:00", "hello"},
		},
		{
			name:      "split after bullet keeps marker on first line",
			line:      "- item",
			col:       2,
			text:      "12:00\n",
			wantLines: []string{"- 12:00", "item"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := BufferFrom("t", tt.line)
			require.NoError(t, b.Insert(0, tt.col, tt.text))

			got := make([]string, b.LineCount())
			for i := range got {
				got[i], _ = b.Line(i)
			}
			assert.Equal(t, tt.wantLines, got)
		})
	}
}

func TestBufferInsertPreservesFollowingLines(t *testing.T) {
	b := BufferFrom("t", "a\nb\nc")
	require.NoError(t, b.Insert(1, 0, "X\n"))

	assert.Equal(t, 4, b.LineCount())
	got := make([]string, 0, 4)
	for i := 0; i < b.LineCount(); i++ {
		line, _ := b.Line(i)
		got = append(got, line)
	}
	assert.Equal(t, []string{"a", "X", "b", "c"}, got)
}

func TestBufferInsertRuneColumns(t *testing.T) {
	b := BufferFrom("t", "héllo")
	require.NoError(t, b.Insert(0, 2, "|"))
	line, _ := b.Line(0)
	assert.Equal(t, "hé|llo", line)
}

func TestBufferInsertOutOfRange(t *testing.T) {
	b := BufferFrom("t", "abc")
	assert.Error(t, b.Insert(1, 0, "x"))
	assert.Error(t, b.Insert(0, 9, "x"))
	assert.Error(t, b.Insert(0, -1, "x"))
}

func TestLoadAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")

	// Missing file loads as a fresh single-line buffer.
	b, err := LoadBuffer(path)
	require.NoError(t, err)
	assert.Equal(t, 1, b.LineCount())

	b.SetLine(0, "first")
	b.Append("second")
	require.NoError(t, b.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))

	again, err := LoadBuffer(path)
	require.NoError(t, err)
	assert.Equal(t, 2, again.LineCount())
}
