// Package analyze defines the sentinel errors for maze structure checks.
package analyze

import "errors"

// Sentinel errors returned by the checks that can fail.
var (
	// ErrNilMaze indicates that a nil *core.Maze was passed in.
	ErrNilMaze = errors.New("analyze: maze is nil")

	// ErrDisconnected indicates that the maze splits into several corridor
	// systems, so a diameter across all cells does not exist.
	ErrDisconnected = errors.New("analyze: maze is not fully connected")
)
