package editor

// Direction is a cursor movement.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	DirHome
	DirEnd
)

// reservedRows are taken by the status and message bars.
const reservedRows = 2

// Viewport tracks the cursor and the visible window over the rows.
// CX is a character index into the cursor row; RX is its render column.
type Viewport struct {
	CX, CY     int
	RX         int
	RowOffset  int
	ColOffset  int
	ScreenRows int
	ScreenCols int
}

func NewViewport(width, height int) *Viewport {
	v := &Viewport{}
	v.Resize(width, height)
	return v
}

// Resize updates the usable area from the terminal dimensions.
func (v *Viewport) Resize(width, height int) {
	v.ScreenCols = max(width, 1)
	v.ScreenRows = max(height-reservedRows, 1)
}

// ContentWidth is the number of columns left for text after the gutter.
func (v *Viewport) ContentWidth(gutter int) int {
	return max(v.ScreenCols-gutter, 1)
}

// MoveCursor moves one step in dir and clamps CX to the new row.
func (v *Viewport) MoveCursor(dir Direction, rows *Rows) {
	n := rows.Len()
	switch dir {
	case DirUp:
		if v.CY > 0 {
			v.CY--
		}
	case DirDown:
		if v.CY < n {
			v.CY++
		}
	case DirLeft:
		if v.CX > 0 {
			v.CX--
		} else if v.CY > 0 {
			v.CY--
			v.CX = rows.Row(v.CY).CharCount()
		}
	case DirRight:
		if v.CY < n {
			count := rows.Row(v.CY).CharCount()
			if v.CX < count {
				v.CX++
			} else if v.CX == count {
				v.CY++
				v.CX = 0
			}
		}
	case DirHome:
		v.CX = 0
	case DirEnd:
		if v.CY < n {
			v.CX = rows.Row(v.CY).CharCount()
		}
	}
	v.clampX(rows)
}

func (v *Viewport) clampX(rows *Rows) {
	limit := 0
	if v.CY < rows.Len() {
		limit = rows.Row(v.CY).CharCount()
	}
	if v.CX > limit {
		v.CX = limit
	}
}

// PageUp jumps to the top visible row, then moves up a screenful.
func (v *Viewport) PageUp(rows *Rows) {
	v.CY = v.RowOffset
	for i := 0; i < v.ScreenRows; i++ {
		v.MoveCursor(DirUp, rows)
	}
	v.clampX(rows)
}

// PageDown jumps to the bottom visible row, then moves down a screenful.
// Both steps clamp against the row count.
func (v *Viewport) PageDown(rows *Rows) {
	v.CY = min(v.RowOffset+v.ScreenRows-1, rows.Len())
	for i := 0; i < v.ScreenRows; i++ {
		v.MoveCursor(DirDown, rows)
	}
	v.clampX(rows)
}

// Scroll recomputes RX and adjusts the offsets so the cursor is visible.
func (v *Viewport) Scroll(rows *Rows, gutter int) {
	v.RX = 0
	if v.CY < rows.Len() {
		v.RX = rows.Row(v.CY).RenderX(v.CX)
	}

	if v.CY < v.RowOffset {
		v.RowOffset = v.CY
	}
	if v.CY >= v.RowOffset+v.ScreenRows {
		v.RowOffset = v.CY - v.ScreenRows + 1
	}

	width := v.ContentWidth(gutter)
	if v.RX < v.ColOffset {
		v.ColOffset = v.RX
	}
	if v.RX >= v.ColOffset+width {
		v.ColOffset = v.RX - width + 1
	}
}

// cursor returns the position fields without the screen dimensions.
func (v *Viewport) cursor() Viewport {
	return Viewport{CX: v.CX, CY: v.CY, RX: v.RX, RowOffset: v.RowOffset, ColOffset: v.ColOffset}
}

// setCursor restores the fields saved by cursor.
func (v *Viewport) setCursor(c Viewport) {
	v.CX, v.CY, v.RX = c.CX, c.CY, c.RX
	v.RowOffset, v.ColOffset = c.RowOffset, c.ColOffset
}
