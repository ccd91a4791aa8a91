package scoring

// UndoController wraps the engine operations with a single level of
// undo. Every successful mutation retains a deep copy of the pre-call
// match, overwriting whatever snapshot was held before, even if it was
// never consumed. Undo restores that snapshot and disarms itself until
// the next mutation.
type UndoController struct {
	snapshot *Match
}

// NewUndoController returns a controller with no retained snapshot.
func NewUndoController() *UndoController {
	return &UndoController{}
}

// RecordBall applies a delivery through the engine, retaining the
// pre-call state on success.
func (u *UndoController) RecordBall(m *Match, ev BallEvent) (*Match, error) {
	next, err := RecordBall(m, ev)
	if err != nil {
		return nil, err
	}
	u.snapshot = m.Clone()
	return next, nil
}

// SelectBatsman assigns a batting slot through the engine, retaining
// the pre-call state on success.
func (u *UndoController) SelectBatsman(m *Match, playerID string, slot BatsmanSlot) (*Match, error) {
	next, err := SelectBatsman(m, playerID, slot)
	if err != nil {
		return nil, err
	}
	u.snapshot = m.Clone()
	return next, nil
}

// SelectBowler assigns the bowler through the engine, retaining the
// pre-call state on success.
func (u *UndoController) SelectBowler(m *Match, playerID string) (*Match, error) {
	next, err := SelectBowler(m, playerID)
	if err != nil {
		return nil, err
	}
	u.snapshot = m.Clone()
	return next, nil
}

// CanUndo reports whether a snapshot is retained.
func (u *UndoController) CanUndo() bool {
	return u.snapshot != nil
}

// Undo returns the retained snapshot and discards it. A second
// consecutive call reports ErrNothingToUndo.
func (u *UndoController) Undo() (*Match, error) {
	if u.snapshot == nil {
		return nil, ErrNothingToUndo
	}
	m := u.snapshot
	u.snapshot = nil
	return m, nil
}
