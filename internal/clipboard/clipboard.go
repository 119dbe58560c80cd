// Package clipboard keeps the editor's copy history and mirrors it to the
// system clipboard.
package clipboard

import (
	"io"
	"log"
	"sync"

	system "github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// Sink receives every entry added to the history.
type Sink interface {
	Write(text string) error
}

// History is a shared append-only stack of copied text.
type History struct {
	mu      sync.Mutex
	entries []string
	sinks   []Sink
}

func NewHistory(sinks ...Sink) *History {
	return &History{sinks: sinks}
}

// Top returns the most recent entry.
func (h *History) Top() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) == 0 {
		return "", false
	}
	return h.entries[len(h.entries)-1], true
}

// Add pushes text and forwards it to the sinks. Empty text is ignored.
func (h *History) Add(text string) {
	if text == "" {
		return
	}
	h.mu.Lock()
	h.entries = append(h.entries, text)
	sinks := h.sinks
	h.mu.Unlock()

	for _, s := range sinks {
		if err := s.Write(text); err != nil {
			log.Printf("clipboard: %v", err)
		}
	}
}

// Seed pushes text without forwarding it to the sinks.
func (h *History) Seed(text string) {
	if text == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, text)
}

func (h *History) IsEmpty() bool {
	return h.size() == 0
}

func (h *History) size() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// SystemSink writes to the desktop clipboard through xclip, xsel, wl-copy,
// pbcopy or clip.exe.
type SystemSink struct{}

func (SystemSink) Write(text string) error {
	return system.WriteAll(text)
}

// OSC52Sink asks the terminal to set its clipboard with an OSC 52 escape.
// It works over SSH where no desktop clipboard tool is reachable.
type OSC52Sink struct {
	W    io.Writer
	Tmux bool
}

func (s OSC52Sink) Write(text string) error {
	seq := osc52.New(text)
	if s.Tmux {
		seq = seq.Tmux()
	}
	_, err := seq.WriteTo(s.W)
	return err
}

// DefaultSink picks the desktop clipboard when a helper tool is available
// and falls back to OSC 52 on w.
func DefaultSink(w io.Writer, inTmux bool) Sink {
	if !system.Unsupported {
		return SystemSink{}
	}
	return OSC52Sink{W: w, Tmux: inTmux}
}

// ReadSystem returns the desktop clipboard contents, if any.
func ReadSystem() (string, bool) {
	if system.Unsupported {
		return "", false
	}
	text, err := system.ReadAll()
	if err != nil || text == "" {
		return "", false
	}
	return text, true
}
