package editor

import (
	"fmt"
	"strings"

	"github.com/JackWReid/ninja/internal/syntax"
)

// Frame is everything the renderer needs for one redraw.
type Frame struct {
	Buf         *EditorBuffer
	Gutter      int
	Welcome     string
	StatusLeft  string
	StatusRight string
	Message     string
}

// Renderer builds a frame buffer and writes it to the terminal in one go.
type Renderer struct {
	buf strings.Builder
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderFrame draws the full screen: text rows, status bar, message bar and
// cursor placement.
func (r *Renderer) RenderFrame(f Frame) string {
	r.buf.Reset()
	vp := f.Buf.vp

	// Hide cursor during drawing.
	r.buf.WriteString("\x1b[?25l")
	r.buf.WriteString("\x1b[H")

	r.drawRows(f)
	r.drawStatusBar(vp, f.StatusLeft, f.StatusRight)
	r.drawMessageBar(vp, f.Message)

	// Position the cursor.
	screenRow := vp.CY - vp.RowOffset + 1
	screenCol := vp.RX - vp.ColOffset + f.Gutter + 1
	fmt.Fprintf(&r.buf, "\x1b[%d;%dH", screenRow, screenCol)

	// Show cursor.
	r.buf.WriteString("\x1b[?25h")

	return r.buf.String()
}

func (r *Renderer) drawRows(f Frame) {
	eb := f.Buf
	vp := eb.vp
	width := vp.ContentWidth(f.Gutter)
	blankGutter := strings.Repeat(" ", f.Gutter)

	for i := 0; i < vp.ScreenRows; i++ {
		fileRow := i + vp.RowOffset
		if fileRow >= eb.rows.Len() {
			r.buf.WriteString(blankGutter)
			if eb.rows.Len() == 0 && i == vp.ScreenRows/3 && f.Welcome != "" {
				r.drawWelcome(f.Welcome, width)
			}
		} else {
			if f.Gutter > 0 {
				fmt.Fprintf(&r.buf, "%*d ", f.Gutter-1, fileRow+1)
			}
			r.drawRow(eb, fileRow, width)
		}
		r.buf.WriteString("\x1b[K\r\n")
	}
}

func (r *Renderer) drawWelcome(msg string, width int) {
	runes := []rune(msg)
	if len(runes) > width {
		runes = runes[:width]
	}
	padding := (width - len(runes)) / 2
	if padding > 0 {
		padding--
	}
	r.buf.WriteString(strings.Repeat(" ", padding))
	r.buf.WriteString(string(runes))
}

// drawRow writes the visible slice of a row's render with colour escapes
// emitted only where the colour changes.
func (r *Renderer) drawRow(eb *EditorBuffer, fileRow, width int) {
	row := eb.rows.Row(fileRow)
	chars := []rune(row.Render)
	start := min(eb.vp.ColOffset, len(chars))
	end := min(start+width, len(chars))
	selFrom, selTo := selectionSpan(&eb.sel, eb.rows, fileRow)

	current := syntax.ColorDefault
	for i := start; i < end; i++ {
		hl := syntax.HLNormal
		if i < len(row.HL) {
			hl = row.HL[i]
		}
		if i >= selFrom && i < selTo {
			hl = syntax.HLSelection
		}
		if c := hl.Foreground(); c != current {
			fmt.Fprintf(&r.buf, "\x1b[%dm", c.SGR())
			current = c
		}
		r.buf.WriteRune(chars[i])
	}
	r.buf.WriteString("\x1b[39m")
}

// selectionSpan returns the render-index range [from, to) selected on
// fileRow, or an empty range.
func selectionSpan(sel *Selection, rows *Rows, fileRow int) (int, int) {
	if !sel.HasSelection() || fileRow >= rows.Len() {
		return 0, 0
	}
	start, end := sel.Bounds()
	if fileRow < start.Row || fileRow > end.Row {
		return 0, 0
	}
	row := rows.Row(fileRow)
	from, to := 0, len([]rune(row.Render))
	if fileRow == start.Row {
		from = row.RenderIndex(start.Col)
	}
	if fileRow == end.Row {
		to = row.RenderIndex(end.Col)
	}
	return from, to
}

func (r *Renderer) drawStatusBar(vp *Viewport, left, right string) {
	// Reverse video for status bar.
	r.buf.WriteString("\x1b[7m")

	leftRunes := []rune(left)
	rightRunes := []rune(right)
	totalWidth := vp.ScreenCols

	if len(leftRunes) > totalWidth {
		leftRunes = leftRunes[:totalWidth]
	}
	r.buf.WriteString(string(leftRunes))

	gap := totalWidth - len(leftRunes)
	if gap >= len(rightRunes) {
		r.buf.WriteString(strings.Repeat(" ", gap-len(rightRunes)))
		r.buf.WriteString(string(rightRunes))
	} else {
		r.buf.WriteString(strings.Repeat(" ", gap))
	}

	// Reset attributes.
	r.buf.WriteString("\x1b[m\r\n")
}

func (r *Renderer) drawMessageBar(vp *Viewport, msg string) {
	r.buf.WriteString("\x1b[K")
	runes := []rune(msg)
	if len(runes) > vp.ScreenCols {
		runes = runes[:vp.ScreenCols]
	}
	r.buf.WriteString(string(runes))
}
