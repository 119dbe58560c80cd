package editor

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/JackWReid/ninja/internal/syntax"
)

var (
	// ErrNoFileName is returned by Save when no path is bound.
	ErrNoFileName = errors.New("no file name specified")
	// ErrInvalidUTF8 accompanies a successful load that replaced bad bytes.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 replaced with U+FFFD")
	// ErrPromptCancelled is returned when a prompt is dismissed with Escape.
	ErrPromptCancelled = errors.New("prompt cancelled")
)

// Rows is the ordered list of lines making up the buffer.
type Rows struct {
	rows     []*Row
	Filename string
	FileType string
	lang     *syntax.Language
}

func NewRows(filename string) *Rows {
	return &Rows{Filename: filename}
}

// Len returns the number of rows.
func (b *Rows) Len() int { return len(b.rows) }

// Row returns row i.
func (b *Rows) Row(i int) *Row { return b.rows[i] }

// Language returns the language rows are lexed with, or nil for plain text.
func (b *Rows) Language() *syntax.Language { return b.lang }

// SetLanguage changes the lexer and re-lexes every row.
func (b *Rows) SetLanguage(lang *syntax.Language, fileType string) {
	b.lang = lang
	b.FileType = fileType
	b.UpdateAll()
}

// Load replaces the rows with the file at path. A missing file leaves an
// empty buffer bound to path. ErrInvalidUTF8 is returned alongside a
// successful lossy load.
func (b *Rows) Load(path string) error {
	b.Filename = path
	b.rows = nil
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	return b.SetText(data)
}

// SetText replaces the rows with data split on '\n'. Empty data gives no
// rows at all.
func (b *Rows) SetText(data []byte) error {
	var err error
	if !utf8.Valid(data) {
		data = bytes.ToValidUTF8(data, []byte("\uFFFD"))
		err = ErrInvalidUTF8
	}
	b.rows = nil
	if len(data) > 0 {
		for _, line := range strings.Split(string(data), "\n") {
			b.rows = append(b.rows, newRow(line))
		}
	}
	b.UpdateAll()
	return err
}

// Text joins the rows with '\n', without a trailing newline.
func (b *Rows) Text() string {
	lines := make([]string, len(b.rows))
	for i, r := range b.rows {
		lines[i] = r.Content
	}
	return strings.Join(lines, "\n")
}

// Save writes Text to the bound file and truncates it to exactly that
// length. It returns the number of bytes written.
func (b *Rows) Save() (int, error) {
	if b.Filename == "" {
		return 0, ErrNoFileName
	}
	text := b.Text()
	f, err := os.OpenFile(b.Filename, os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", b.Filename, err)
	}
	if err := f.Truncate(int64(len(text))); err != nil {
		f.Close()
		return 0, fmt.Errorf("truncate %s: %w", b.Filename, err)
	}
	n, err := f.WriteString(text)
	if err != nil {
		f.Close()
		return n, fmt.Errorf("write %s: %w", b.Filename, err)
	}
	if err := f.Close(); err != nil {
		return n, fmt.Errorf("close %s: %w", b.Filename, err)
	}
	return n, nil
}

// InsertRow inserts a new row holding content before index at.
func (b *Rows) InsertRow(at int, content string) {
	b.rows = append(b.rows, nil)
	copy(b.rows[at+1:], b.rows[at:])
	b.rows[at] = newRow(content)
	b.updateAround(at)
}

// JoinWithPrevious appends row at to row at-1 and removes it.
func (b *Rows) JoinWithPrevious(at int) {
	prev := b.rows[at-1]
	prev.SetContent(prev.Content + b.rows[at].Content)
	b.rows = append(b.rows[:at], b.rows[at+1:]...)
	b.updateAround(at - 1)
}

// RemoveRows deletes rows [from, to).
func (b *Rows) RemoveRows(from, to int) {
	if from >= to {
		return
	}
	b.rows = append(b.rows[:from], b.rows[to:]...)
	if from > 0 {
		b.updateAround(from - 1)
	} else if len(b.rows) > 0 {
		b.updateAround(0)
	}
}

// UpdateSyntax re-lexes row at and cascades down while the open-comment
// state keeps changing.
func (b *Rows) UpdateSyntax(at int) {
	for ; at < len(b.rows); at++ {
		if !b.lex(at) {
			return
		}
	}
}

// UpdateAll re-lexes every row top to bottom.
func (b *Rows) UpdateAll() {
	for i := range b.rows {
		b.lex(i)
	}
}

// updateAround re-lexes row at and unconditionally the row after it, which
// may now follow a different predecessor.
func (b *Rows) updateAround(at int) {
	b.lex(at)
	b.UpdateSyntax(at + 1)
}

// lex classifies row at and reports whether its open-comment state changed.
func (b *Rows) lex(at int) bool {
	row := b.rows[at]
	prevOpen := at > 0 && b.rows[at-1].OpenComment
	hl, open := syntax.HighlightLine(b.lang, row.Render, prevOpen)
	row.HL = hl
	changed := row.OpenComment != open
	row.OpenComment = open
	return changed
}

func (b *Rows) snapshot() []*Row {
	out := make([]*Row, len(b.rows))
	for i, r := range b.rows {
		out[i] = r.clone()
	}
	return out
}

func (b *Rows) restore(rows []*Row) {
	b.rows = rows
	b.UpdateAll()
}
