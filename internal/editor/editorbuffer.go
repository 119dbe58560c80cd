package editor

import (
	"strings"
	"unicode/utf8"
)

// EditorBuffer holds all per-buffer state: text, cursor and scroll, undo
// history, selection and the incremental search overlay.
type EditorBuffer struct {
	rows   *Rows
	vp     *Viewport
	undo   *UndoStack
	search *Search
	sel    Selection
	dirty  uint64
}

// NewEditorBuffer creates an empty buffer bound to filename for a terminal
// of the given size.
func NewEditorBuffer(filename string, width, height int) *EditorBuffer {
	return &EditorBuffer{
		rows:   NewRows(filename),
		vp:     NewViewport(width, height),
		undo:   NewUndoStack(),
		search: &Search{},
	}
}

// Filename returns the bound path, or "".
func (eb *EditorBuffer) Filename() string {
	return eb.rows.Filename
}

// IsDirty reports whether there are unsaved changes.
func (eb *EditorBuffer) IsDirty() bool {
	return eb.dirty > 0
}

// Cursor returns the logical cursor position.
func (eb *EditorBuffer) Cursor() Pos {
	return Pos{eb.vp.CY, eb.vp.CX}
}

func (eb *EditorBuffer) pushUndo() {
	eb.undo.Push(undoEntry{
		rows:   eb.rows.snapshot(),
		cursor: eb.vp.cursor(),
		dirty:  eb.dirty,
	})
}

// Undo restores the state before the most recent edit burst. It returns
// false when the history is empty.
func (eb *EditorBuffer) Undo() bool {
	eb.undo.flushCoalesce()
	e, ok := eb.undo.Pop()
	if !ok {
		return false
	}
	eb.rows.restore(e.rows)
	eb.vp.setCursor(e.cursor)
	eb.dirty = e.dirty
	eb.sel.Clear()
	return true
}

// Move moves the cursor and closes any insertion burst.
func (eb *EditorBuffer) Move(dir Direction) {
	eb.undo.flushCoalesce()
	eb.vp.MoveCursor(dir, eb.rows)
}

// beginInsert snapshots once at the start of an insertion burst.
func (eb *EditorBuffer) beginInsert() {
	if !eb.undo.Coalescing() {
		eb.pushUndo()
		eb.undo.StartCoalescing()
	}
}

// InsertChar types ch at the cursor.
func (eb *EditorBuffer) InsertChar(ch rune) {
	eb.beginInsert()
	eb.insertChar(ch)
}

func (eb *EditorBuffer) insertChar(ch rune) {
	if eb.vp.CY == eb.rows.Len() {
		eb.rows.InsertRow(eb.rows.Len(), "")
		eb.dirty++
	}
	eb.rows.Row(eb.vp.CY).InsertChar(eb.vp.CX, ch)
	eb.rows.UpdateSyntax(eb.vp.CY)
	eb.vp.CX++
	eb.dirty++
}

// InsertNewline splits the line at the cursor. With autoIndent the new line
// starts with as many spaces as the line it came from.
func (eb *EditorBuffer) InsertNewline(autoIndent bool) {
	eb.beginInsert()
	eb.insertNewline(autoIndent)
}

func (eb *EditorBuffer) insertNewline(autoIndent bool) {
	cy, cx := eb.vp.CY, eb.vp.CX
	indent := 0
	if cx == 0 {
		if autoIndent && cy > 0 {
			indent = leadingSpaces(eb.rows.Row(cy - 1).Content)
		}
		eb.rows.InsertRow(cy, strings.Repeat(" ", indent))
	} else {
		row := eb.rows.Row(cy)
		if autoIndent {
			indent = leadingSpaces(row.Content)
		}
		tail := row.Substring(cx, row.CharCount())
		row.SetContent(row.Substring(0, cx))
		eb.rows.lex(cy)
		eb.rows.InsertRow(cy+1, strings.Repeat(" ", indent)+tail)
	}
	eb.vp.CY = cy + 1
	eb.vp.CX = indent
	eb.vp.clampX(eb.rows)
	eb.dirty++
}

func leadingSpaces(s string) int {
	return len(s) - len(strings.TrimLeft(s, " "))
}

// DeleteChar deletes the character before the cursor, joining with the
// previous line at column 0. It always takes its own undo snapshot.
func (eb *EditorBuffer) DeleteChar() {
	eb.pushUndo()
	eb.undo.flushCoalesce()

	cy, cx := eb.vp.CY, eb.vp.CX
	if cy == eb.rows.Len() || (cx == 0 && cy == 0) {
		return
	}
	if cx > 0 {
		eb.rows.Row(cy).DeleteChar(cx - 1)
		eb.rows.UpdateSyntax(cy)
		eb.vp.CX--
	} else {
		eb.vp.CX = eb.rows.Row(cy - 1).CharCount()
		eb.rows.JoinWithPrevious(cy)
		eb.vp.CY--
	}
	eb.dirty++
}

// DeleteForward deletes the character under the cursor.
func (eb *EditorBuffer) DeleteForward() {
	eb.Move(DirRight)
	eb.DeleteChar()
}

// SelectedText serializes the selection, joining rows with '\n'.
func (eb *EditorBuffer) SelectedText() (string, bool) {
	start, end, ok := eb.sel.clampedBounds(eb.rows)
	if !ok {
		return "", false
	}
	if start.Row == end.Row {
		return eb.rows.Row(start.Row).Substring(start.Col, end.Col), true
	}
	first := eb.rows.Row(start.Row)
	parts := []string{first.Substring(start.Col, first.CharCount())}
	for i := start.Row + 1; i < end.Row; i++ {
		parts = append(parts, eb.rows.Row(i).Content)
	}
	parts = append(parts, eb.rows.Row(end.Row).Substring(0, end.Col))
	return strings.Join(parts, "\n"), true
}

// Cut removes the selection and returns its text, leaving the cursor at
// the start of the removed range.
func (eb *EditorBuffer) Cut() (string, bool) {
	text, ok := eb.SelectedText()
	if !ok {
		return "", false
	}
	start, end, _ := eb.sel.clampedBounds(eb.rows)
	eb.pushUndo()
	eb.undo.flushCoalesce()

	first := eb.rows.Row(start.Row)
	if start.Row == end.Row {
		first.SetContent(first.Substring(0, start.Col) + first.Substring(end.Col, first.CharCount()))
		eb.rows.UpdateSyntax(start.Row)
	} else {
		last := eb.rows.Row(end.Row)
		first.SetContent(first.Substring(0, start.Col) + last.Substring(end.Col, last.CharCount()))
		eb.rows.RemoveRows(start.Row+1, end.Row+1)
	}

	eb.sel.Clear()
	eb.vp.CY, eb.vp.CX = start.Row, start.Col
	eb.dirty++
	return text, true
}

// Paste replays text at the cursor under a single undo snapshot and returns
// the number of characters inserted. Newlines split lines the same way a
// typed newline does.
func (eb *EditorBuffer) Paste(text string, autoIndent bool) int {
	eb.pushUndo()
	for _, ch := range text {
		if ch == '\n' {
			eb.insertNewline(autoIndent)
		} else {
			eb.insertChar(ch)
		}
	}
	eb.undo.flushCoalesce()
	return utf8.RuneCountInString(text)
}
