package scoring

import "errors"

var (
	// ErrSelectionRequired means a delivery was recorded while a
	// batting slot or the bowler slot was vacant.
	ErrSelectionRequired = errors.New("striker, non-striker and bowler must be selected")

	// ErrMatchCompleted means a mutating operation was attempted on a
	// finished match.
	ErrMatchCompleted = errors.New("match already completed")

	// ErrInvalidEvent wraps all ball-event validation failures:
	// negative runs, unknown extra or dismissal types, bad penalties.
	ErrInvalidEvent = errors.New("invalid ball event")

	// ErrInvalidSelection wraps player-assignment validation failures.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrNothingToUndo is the benign condition reported when no prior
	// snapshot is retained.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrInvalidSetup wraps match-construction validation failures.
	ErrInvalidSetup = errors.New("invalid match setup")
)
