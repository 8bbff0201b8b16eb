package model

import (
	"fmt"

	"github.com/limaJavier/sudokusat/pkg/sat"
)

// decodeGrid maps a satisfying assignment back to a solved grid. Exactly one
// of the 9 candidate variables of a cell must be true: zero or several true
// candidates reveal a defect in the clause generation or in the solver
// adapter, never a property of the puzzle, so decoding fails with the cell
// and the variables found instead of silently picking one.
func decodeGrid(indexer Indexer, solution sat.SATSolution) (Grid, error) {
	assignment := make(map[uint64]bool, len(solution))
	for _, literal := range solution {
		if literal > 0 {
			assignment[uint64(literal)] = true
		}
	}

	grid := NewGrid()
	for row := range uint64(GridSize) {
		for column := range uint64(GridSize) {
			trueVariables := make([]uint64, 0, 1)
			for digit := range uint64(GridSize) {
				if index := indexer.Index(row, column, digit); assignment[index] {
					trueVariables = append(trueVariables, index)
				}
			}

			if len(trueVariables) != 1 {
				return nil, fmt.Errorf("cell (%v, %v) must have exactly one true variable, found %v: %v", row, column, len(trueVariables), trueVariables)
			}

			_, _, digit := indexer.Attributes(trueVariables[0])
			grid[row][column] = uint8(digit) + 1
		}
	}
	return grid, nil
}
