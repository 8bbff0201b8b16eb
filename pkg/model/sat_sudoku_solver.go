package model

import (
	"fmt"

	"github.com/limaJavier/sudokusat/pkg/sat"
)

type satSudokuSolver struct {
	//** Dependencies
	indexer Indexer
	solver  sat.SATSolver
}

func newSatSudokuSolver(solver sat.SATSolver) *satSudokuSolver {
	return &satSudokuSolver{
		indexer: NewIndexer(),
		solver:  solver,
	}
}

func (sudoku *satSudokuSolver) Solve(puzzle Grid) (Grid, error) {
	if err := puzzle.Validate(); err != nil {
		return nil, fmt.Errorf("invalid puzzle: %w", err)
	}

	//** Build SAT instance
	structural := structuralClauses()
	clues := clueConstraints(sudoku.indexer, puzzle)

	clauses := make([][]int64, 0, len(structural)+len(clues))
	clauses = append(clauses, structural...)
	clauses = append(clauses, clues...)

	satInstance := sat.SAT{
		Variables: Variables,
		Clauses:   clauses,
	}

	//** Solve SAT instance
	solution, err := sudoku.solver.Solve(satInstance)
	if err != nil {
		return nil, err
	} else if solution == nil { // Return nil if the SAT instance is not satisfiable
		return nil, nil
	}

	//** Decode assignment
	return decodeGrid(sudoku.indexer, solution)
}

func (sudoku *satSudokuSolver) Verify(puzzle, solved Grid) bool {
	return verify(puzzle, solved)
}
