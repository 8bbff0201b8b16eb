package model

import "github.com/limaJavier/sudokusat/pkg/sat"

type Solver interface {
	// Solve returns a solved grid, or nil if the puzzle's clues are
	// contradictory (the SAT instance is unsatisfiable; this and a nil error
	// are valid outputs). The puzzle grid is never mutated.
	Solve(puzzle Grid) (Grid, error)

	// Verify checks that solved obeys every Sudoku rule and preserves the
	// puzzle's clues.
	Verify(puzzle, solved Grid) bool
}

func NewSolver(solver sat.SATSolver) Solver {
	return newSatSudokuSolver(solver)
}
