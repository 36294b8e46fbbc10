// Package builder defines the stage name constants shared by Build and its
// error wrappers, so failures always name the step that rejected them.
package builder

//-----------------------------------------------------------------------------
// Build Stage Name Constants
//   used to prefix errors with the failing stage for context.
//-----------------------------------------------------------------------------

const (
	// StageConstruct is the maze allocation step, core.NewMaze.
	StageConstruct = "construct"
	// StageGenerate is the carving step, generate.Algorithm.Run.
	StageGenerate = "generate"
	// StageOpenings is the boundary gap step, one core.Maze.AddOpening per
	// blueprint entry.
	StageOpenings = "openings"
	// StageBraid is the optional deadend removal step, braid.Braid.
	StageBraid = "braid"
	// StageSolve is the optional solving step, astar.SolveAndStore.
	StageSolve = "solve"
	// StageDistances is the optional distance table step, distmap.Compute.
	StageDistances = "distances"
)
