package history

// MaxDepth is the maximum number of snapshots retained per stack.
// Oldest entries are evicted first once the limit is reached.
const MaxDepth = 50

// Cursor is a selection range within the input text. Start == End for a
// plain caret position.
type Cursor struct {
	Start int
	End   int
}

// Snapshot is an immutable (text, cursor) pair recorded for undo/redo.
type Snapshot struct {
	Text   string
	Cursor Cursor
}

// Manager maintains bounded undo and redo stacks of edit snapshots.
// It is not safe for concurrent use; each answer session owns exactly one.
type Manager struct {
	undo     []Snapshot
	redo     []Snapshot
	maxDepth int
}

// New creates a Manager with the default depth bound.
func New() *Manager {
	return NewWithDepth(MaxDepth)
}

// NewWithDepth creates a Manager bounded to the given depth.
// Depths below 1 are treated as 1.
func NewWithDepth(depth int) *Manager {
	if depth < 1 {
		depth = 1
	}
	return &Manager{maxDepth: depth}
}

// Push records a snapshot of the state being replaced by a new edit.
// Pushing the same text as the most recent snapshot is a no-op, so rapid
// re-renders of unchanged input don't flood the stack. A genuine new edit
// invalidates the redo branch.
func (m *Manager) Push(snap Snapshot) {
	if n := len(m.undo); n > 0 && m.undo[n-1].Text == snap.Text {
		return
	}

	m.undo = append(m.undo, snap)
	if len(m.undo) > m.maxDepth {
		m.undo = m.undo[len(m.undo)-m.maxDepth:]
	}

	m.redo = m.redo[:0]
}

// Undo pops the most recent snapshot, pushing the current (pre-undo) state
// onto the redo stack. Returns nil when there is nothing to undo; state is
// left unchanged in that case.
func (m *Manager) Undo(currentText string, currentCursor Cursor) *Snapshot {
	if len(m.undo) == 0 {
		return nil
	}

	snap := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]

	m.redo = append(m.redo, Snapshot{Text: currentText, Cursor: currentCursor})
	if len(m.redo) > m.maxDepth {
		m.redo = m.redo[len(m.redo)-m.maxDepth:]
	}

	return &snap
}

// Redo mirrors Undo with the stacks swapped. Returns nil when there is
// nothing to redo.
func (m *Manager) Redo(currentText string, currentCursor Cursor) *Snapshot {
	if len(m.redo) == 0 {
		return nil
	}

	snap := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]

	m.undo = append(m.undo, Snapshot{Text: currentText, Cursor: currentCursor})
	if len(m.undo) > m.maxDepth {
		m.undo = m.undo[len(m.undo)-m.maxDepth:]
	}

	return &snap
}

// CanUndo reports whether an undo snapshot is available.
func (m *Manager) CanUndo() bool {
	return len(m.undo) > 0
}

// CanRedo reports whether a redo snapshot is available.
func (m *Manager) CanRedo() bool {
	return len(m.redo) > 0
}

// Clear discards all recorded snapshots.
func (m *Manager) Clear() {
	m.undo = m.undo[:0]
	m.redo = m.redo[:0]
}
