package terminal

import (
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"
	"unicode/utf8"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// PollTimeout is how long ReadKey waits for input before reporting KeyNone.
const PollTimeout = 500 * time.Millisecond

// Terminal manages raw mode, alternate screen buffer, and terminal dimensions.
type Terminal struct {
	oldState *term.State
	width    int
	height   int
	sigwinch chan os.Signal
}

func NewTerminal() (*Terminal, error) {
	t := &Terminal{}

	// Switch to raw mode.
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return nil, err
	}
	t.oldState = oldState

	// Enter alternate screen buffer.
	os.Stdout.WriteString("\x1b[?1049h")

	// Hide cursor during setup.
	os.Stdout.WriteString("\x1b[?25l")

	// Query size.
	t.width, t.height, err = term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		t.Restore()
		return nil, err
	}

	// Listen for resize signals.
	t.sigwinch = make(chan os.Signal, 1)
	signal.Notify(t.sigwinch, syscall.SIGWINCH)

	return t, nil
}

// Resize re-queries terminal dimensions. Returns true if the size changed.
func (t *Terminal) Resize() bool {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return false
	}
	changed := w != t.width || h != t.height
	t.width = w
	t.height = h
	return changed
}

// Width returns the current terminal width.
func (t *Terminal) Width() int { return t.width }

// Height returns the current terminal height.
func (t *Terminal) Height() int { return t.height }

// SigwinchChan returns the channel that receives SIGWINCH signals.
func (t *Terminal) SigwinchChan() <-chan os.Signal {
	return t.sigwinch
}

// Write sends a frame to the terminal.
func (t *Terminal) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

// Restore clears the screen and returns the terminal to its original state.
func (t *Terminal) Restore() {
	os.Stdout.WriteString("\x1b[2J\x1b[H")
	// Show cursor.
	os.Stdout.WriteString("\x1b[?25h")
	// Leave alternate screen buffer.
	os.Stdout.WriteString("\x1b[?1049l")
	if t.oldState != nil {
		term.Restore(int(os.Stdin.Fd()), t.oldState)
	}
	if t.sigwinch != nil {
		signal.Stop(t.sigwinch)
	}
}

// ReadKey waits up to PollTimeout for input and decodes one key. A timeout
// or an interrupted wait yields a KeyNone key and no error.
func (t *Terminal) ReadKey() (Key, error) {
	fds := []unix.PollFd{{Fd: int32(os.Stdin.Fd()), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, int(PollTimeout/time.Millisecond))
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			return Key{Type: KeyNone}, nil
		}
		return Key{}, err
	}
	if n == 0 {
		return Key{Type: KeyNone}, nil
	}

	buf := make([]byte, 32)
	n, err = os.Stdin.Read(buf)
	if err != nil {
		return Key{}, err
	}
	return parseKey(buf[:n]), nil
}

// Key types.
const (
	KeyRune      = iota // Normal printable character (with Mod for Ctrl/Alt)
	KeyEscape           // Escape key (standalone)
	KeyEnter            // Enter/Return
	KeyBackspace        // Backspace/Delete-backward
	KeyTab              // Tab
	KeyUp               // Arrow up
	KeyDown             // Arrow down
	KeyLeft             // Arrow left
	KeyRight            // Arrow right
	KeyHome             // Home
	KeyEnd              // End
	KeyDelete           // Delete/Forward-delete
	KeyPgUp             // Page Up
	KeyPgDn             // Page Down
	KeyNone             // No input before the poll timeout
	KeyUnknown          // Unrecognised sequence
)

// Modifier bits, in xterm's encoding order.
const (
	ModShift = 1 << iota
	ModAlt
	ModCtrl
)

type Key struct {
	Type int
	Rune rune
	Mod  int
}

// Ctrl returns the key produced by Ctrl plus a lowercase letter.
func Ctrl(letter rune) Key {
	return Key{Type: KeyRune, Rune: letter, Mod: ModCtrl}
}

func parseKey(buf []byte) Key {
	if len(buf) == 0 {
		return Key{Type: KeyUnknown}
	}

	// Single byte.
	if len(buf) == 1 {
		b := buf[0]
		switch {
		case b == 27:
			return Key{Type: KeyEscape}
		case b == 13:
			return Key{Type: KeyEnter}
		case b == 9:
			return Key{Type: KeyTab}
		case b == 127 || b == 8:
			return Key{Type: KeyBackspace}
		case b >= 1 && b <= 26:
			return Ctrl(rune('a' + b - 1))
		case b >= 32 && b < 127:
			return Key{Type: KeyRune, Rune: rune(b)}
		default:
			return Key{Type: KeyUnknown}
		}
	}

	if buf[0] == 27 {
		// SS3 sequences: ESC O <final>.
		if len(buf) == 3 && buf[1] == 'O' {
			if typ, ok := finalKey(buf[2]); ok {
				return Key{Type: typ}
			}
			return Key{Type: KeyUnknown}
		}
		// CSI sequences: ESC [ <params> <final>.
		if len(buf) >= 3 && buf[1] == '[' {
			return parseCSI(buf[2:])
		}
		// Alt + printable.
		if len(buf) == 2 && buf[1] >= 32 && buf[1] < 127 {
			return Key{Type: KeyRune, Rune: rune(buf[1]), Mod: ModAlt}
		}
	}

	// Multi-byte UTF-8 character.
	r := decodeUTF8(buf)
	if r >= 32 {
		return Key{Type: KeyRune, Rune: r}
	}

	return Key{Type: KeyUnknown}
}

// parseCSI decodes the part of a CSI sequence after "ESC [": an optional
// number, an optional ";modifier" and a final byte.
func parseCSI(seq []byte) Key {
	params := []int{0}
	i := 0
	for ; i < len(seq); i++ {
		c := seq[i]
		if c >= '0' && c <= '9' {
			params[len(params)-1] = params[len(params)-1]*10 + int(c-'0')
		} else if c == ';' {
			params = append(params, 0)
		} else {
			break
		}
	}
	if i != len(seq)-1 {
		return Key{Type: KeyUnknown}
	}
	mod := 0
	if len(params) > 1 && params[1] > 1 {
		mod = params[1] - 1
	}

	if seq[i] == '~' {
		var typ int
		switch params[0] {
		case 1, 7:
			typ = KeyHome
		case 3:
			typ = KeyDelete
		case 4, 8:
			typ = KeyEnd
		case 5:
			typ = KeyPgUp
		case 6:
			typ = KeyPgDn
		default:
			return Key{Type: KeyUnknown}
		}
		return Key{Type: typ, Mod: mod}
	}

	if typ, ok := finalKey(seq[i]); ok {
		return Key{Type: typ, Mod: mod}
	}
	return Key{Type: KeyUnknown}
}

func finalKey(b byte) (int, bool) {
	switch b {
	case 'A':
		return KeyUp, true
	case 'B':
		return KeyDown, true
	case 'C':
		return KeyRight, true
	case 'D':
		return KeyLeft, true
	case 'H':
		return KeyHome, true
	case 'F':
		return KeyEnd, true
	}
	return 0, false
}

func decodeUTF8(buf []byte) rune {
	if len(buf) == 0 {
		return 0
	}
	r, _ := utf8.DecodeRune(buf)
	return r
}
