package editor

import (
	"fmt"
	"path/filepath"
	"time"
)

// MessageTimeout is how long a status message stays on screen.
const MessageTimeout = 5 * time.Second

// HelpMessage is shown when the editor starts.
const HelpMessage = "HELP: Ctrl-S = Save | Ctrl-Q = Quit | Ctrl-F = Find | Ctrl-C = Copy | Ctrl-V = Paste"

// StatusBar generates status bar text and holds the transient message.
type StatusBar struct {
	StatusMessage string
	setAt         time.Time
	now           func() time.Time

	ShowFileInfo   bool
	ShowSyntaxInfo bool
}

func NewStatusBar(now func() time.Time) *StatusBar {
	if now == nil {
		now = time.Now
	}
	return &StatusBar{now: now, ShowFileInfo: true, ShowSyntaxInfo: true}
}

// FormatLeft returns the left-aligned portion of the status bar.
func (s *StatusBar) FormatLeft(filename string, dirty bool) string {
	if !s.ShowFileInfo {
		return ""
	}
	name := "[No Name]"
	if filename != "" {
		name = filepath.Base(filename)
	}
	if dirty {
		return name + " (modified)"
	}
	return name
}

// FormatRight returns the right-aligned portion: file type and 1-based
// line:col.
func (s *StatusBar) FormatRight(fileType string, cy, cx int) string {
	pos := fmt.Sprintf("%d:%d", cy+1, cx+1)
	if !s.ShowSyntaxInfo {
		return pos
	}
	return fileType + " | " + pos
}

// SetMessage sets a temporary status message.
func (s *StatusBar) SetMessage(format string, args ...any) {
	s.StatusMessage = fmt.Sprintf(format, args...)
	s.setAt = s.now()
}

// ClearMessage clears the temporary status message.
func (s *StatusBar) ClearMessage() {
	s.StatusMessage = ""
}

// Message returns the current message, or "" once it has expired.
func (s *StatusBar) Message() string {
	if s.StatusMessage == "" || s.now().Sub(s.setAt) >= MessageTimeout {
		return ""
	}
	return s.StatusMessage
}
