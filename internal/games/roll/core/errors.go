package core

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned for coordinates outside the grid.
	ErrOutOfBounds = errors.New("roll: coordinate out of bounds")
	// ErrOccupied is returned when a move targets a non-empty cell.
	ErrOccupied = errors.New("roll: destination cell occupied")
	// ErrNoTile is returned when a move starts from an empty cell.
	ErrNoTile = errors.New("roll: no tile at source cell")
	// ErrInvalidStage is matched by every StageError.
	ErrInvalidStage = errors.New("roll: invalid stage")
	// ErrUnknownTile is returned for input addressed to a tile the board does not track.
	ErrUnknownTile = errors.New("roll: unknown tile")
	// ErrInvalidConfig is returned for non-positive gesture thresholds.
	ErrInvalidConfig = errors.New("roll: invalid gesture config")
	// ErrNoStage is returned by operations that need a loaded stage.
	ErrNoStage = errors.New("roll: no stage loaded")
)

// Stage error codes.
const (
	CodeBadSize       = "BAD_SIZE"
	CodeOutOfBounds   = "OUT_OF_BOUNDS"
	CodeDuplicateCell = "DUPLICATE_CELL"
	CodeDuplicateID   = "DUPLICATE_ID"
	CodeBadGoal       = "BAD_GOAL"
)

// StageError contains details about a rejected stage.
type StageError struct {
	Code    string
	Message string
}

func (e StageError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is reports whether target is ErrInvalidStage.
func (e StageError) Is(target error) bool {
	return target == ErrInvalidStage
}

func stageErrorf(code, format string, args ...any) StageError {
	return StageError{Code: code, Message: fmt.Sprintf(format, args...)}
}
