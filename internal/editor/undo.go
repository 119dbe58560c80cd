package editor

// maxUndo bounds the history; the oldest snapshot is dropped on overflow.
const maxUndo = 100

// undoEntry is the buffer state captured just before an edit burst.
type undoEntry struct {
	rows   []*Row
	cursor Viewport
	dirty  uint64
}

// UndoStack keeps whole-buffer snapshots. Consecutive character and newline
// insertions coalesce into one entry until something breaks the burst.
type UndoStack struct {
	entries  []undoEntry
	coalesce bool
}

func NewUndoStack() *UndoStack {
	return &UndoStack{}
}

// Push records a snapshot.
func (u *UndoStack) Push(e undoEntry) {
	u.entries = append(u.entries, e)
	if len(u.entries) > maxUndo {
		u.entries = append(u.entries[:0], u.entries[len(u.entries)-maxUndo:]...)
	}
}

// Pop removes and returns the newest snapshot.
func (u *UndoStack) Pop() (undoEntry, bool) {
	if len(u.entries) == 0 {
		return undoEntry{}, false
	}
	e := u.entries[len(u.entries)-1]
	u.entries = u.entries[:len(u.entries)-1]
	return e, true
}

// Len returns the number of snapshots.
func (u *UndoStack) Len() int {
	return len(u.entries)
}

// Coalescing reports whether an insertion burst is open.
func (u *UndoStack) Coalescing() bool {
	return u.coalesce
}

// StartCoalescing opens an insertion burst.
func (u *UndoStack) StartCoalescing() {
	u.coalesce = true
}

// flushCoalesce closes the current burst so the next insertion snapshots.
func (u *UndoStack) flushCoalesce() {
	u.coalesce = false
}
