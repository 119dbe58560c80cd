package editor

// Pos is a content position: row index and character index.
type Pos struct {
	Row, Col int
}

// Before reports whether p sorts before q.
func (p Pos) Before(q Pos) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// Selection is the range between an anchor and a moving head.
type Selection struct {
	Anchor Pos
	Head   Pos
	active bool
}

// Start anchors a selection at p.
func (s *Selection) Start(p Pos) {
	s.Anchor, s.Head = p, p
	s.active = true
}

// Extend moves the head to p.
func (s *Selection) Extend(p Pos) {
	s.Head = p
}

func (s *Selection) Clear() {
	*s = Selection{}
}

// Active reports whether a selection has been started.
func (s *Selection) Active() bool {
	return s.active
}

// HasSelection reports whether the selection covers at least one position.
func (s *Selection) HasSelection() bool {
	return s.active && s.Anchor != s.Head
}

// Bounds returns the selection normalized so start comes first.
func (s *Selection) Bounds() (start, end Pos) {
	if s.Head.Before(s.Anchor) {
		return s.Head, s.Anchor
	}
	return s.Anchor, s.Head
}

// clampedBounds returns the bounds restricted to existing rows. ok is false
// when nothing real is selected.
func (s *Selection) clampedBounds(rows *Rows) (start, end Pos, ok bool) {
	if !s.HasSelection() || rows.Len() == 0 {
		return Pos{}, Pos{}, false
	}
	start, end = s.Bounds()
	last := rows.Len() - 1
	if start.Row > last {
		return Pos{}, Pos{}, false
	}
	if end.Row > last {
		end = Pos{last, rows.Row(last).CharCount()}
	}
	start.Col = min(start.Col, rows.Row(start.Row).CharCount())
	end.Col = min(end.Col, rows.Row(end.Row).CharCount())
	return start, end, start != end
}
