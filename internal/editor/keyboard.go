package editor

import (
	"os"

	"golang.org/x/sys/unix"
)

// KeyKind classifies a decoded key event.
type KeyKind int

const (
	KeyRune KeyKind = iota
	KeyEnter
	KeyBackspace
	KeyEscape
	KeyInterrupt
	KeyEOF
)

// KeyEvent is one decoded keystroke. Rune is set only for KeyRune.
type KeyEvent struct {
	Rune rune
	Kind KeyKind
}

// KeyboardReader reads keystrokes from stdin in raw mode and delivers them
// on a channel. Events are emitted on key release as seen by the terminal
// driver, which is the edge the insertion trigger is defined on.
type KeyboardReader struct {
	oldState *unix.Termios
	input    chan KeyEvent
	stop     chan struct{}
}

// NewKeyboardReader switches the terminal to raw mode and starts the read
// loop. Close restores the terminal.
func NewKeyboardReader() (*KeyboardReader, error) {
	kr := &KeyboardReader{
		input: make(chan KeyEvent, 16),
		stop:  make(chan struct{}),
	}

	if err := kr.enableRawMode(); err != nil {
		return nil, err
	}
	go kr.readInput()

	return kr, nil
}

func (kr *KeyboardReader) readInput() {
	buf := make([]byte, 4)

	for {
		select {
		case <-kr.stop:
			return
		default:
			n, err := os.Stdin.Read(buf)
			if err != nil || n == 0 {
				continue
			}

			ev, ok := kr.decode(buf[:n])
			if !ok {
				continue
			}
			select {
			case kr.input <- ev:
			case <-kr.stop:
				return
			}
		}
	}
}

// decode maps raw bytes to key events. Escape sequences beyond a bare ESC
// (arrow keys and friends) are dropped; the capture session has no use for
// cursor movement.
func (kr *KeyboardReader) decode(buf []byte) (KeyEvent, bool) {
	switch buf[0] {
	case '\r', '\n':
		return KeyEvent{Kind: KeyEnter}, true
	case 0x7f, 0x08:
		return KeyEvent{Kind: KeyBackspace}, true
	case 0x03:
		return KeyEvent{Kind: KeyInterrupt}, true
	case 0x04:
		return KeyEvent{Kind: KeyEOF}, true
	case 0x1b:
		if len(buf) == 1 {
			return KeyEvent{Kind: KeyEscape}, true
		}
		return KeyEvent{}, false
	}
	if buf[0] < 0x20 {
		return KeyEvent{}, false
	}
	return KeyEvent{Rune: []rune(string(buf))[0], Kind: KeyRune}, true
}

// Events returns the keystroke channel.
func (kr *KeyboardReader) Events() <-chan KeyEvent {
	return kr.input
}

// Close stops the reader and restores the terminal state.
func (kr *KeyboardReader) Close() error {
	close(kr.stop)
	return kr.disableRawMode()
}
