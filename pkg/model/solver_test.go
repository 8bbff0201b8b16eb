package model

import (
	"testing"

	"github.com/limaJavier/sudokusat/pkg/sat"
	"github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
)

const (
	examplePuzzle = `
		5 3 0 0 7 0 0 0 0
		6 0 0 1 9 5 0 0 0
		0 9 8 0 0 0 0 6 0
		8 0 0 0 6 0 0 0 3
		4 0 0 8 0 3 0 0 1
		7 0 0 0 2 0 0 0 6
		0 6 0 0 0 0 2 8 0
		0 0 0 4 1 9 0 0 5
		0 0 0 0 8 0 0 7 9`

	exampleSolution = `
		5 3 4 6 7 8 9 1 2
		6 7 2 1 9 5 3 4 8
		1 9 8 3 4 2 5 6 7
		8 5 9 7 6 1 4 2 3
		4 2 6 8 5 3 7 9 1
		7 1 3 9 2 4 8 5 6
		9 6 1 5 3 7 2 8 4
		2 8 7 4 1 9 6 3 5
		3 4 5 2 8 6 1 7 9`
)

func TestGophersatBasedSolver(t *testing.T) {
	runSolverScenarios(t, sat.NewGophersatSolver())
}

func TestGiniBasedSolver(t *testing.T) {
	runSolverScenarios(t, sat.NewGiniSolver())
}

func runSolverScenarios(t *testing.T, satSolver sat.SATSolver) {
	solver := NewSolver(satSolver)

	t.Run("Unique-solution puzzle", func(t *testing.T) {
		g := gomega.NewWithT(t)

		//** Arrange
		puzzle := mustGrid(t, examplePuzzle)
		expected := mustGrid(t, exampleSolution)

		//** Act
		solved, err := solver.Solve(puzzle)

		//** Assert
		g.Expect(err).ToNot(gomega.HaveOccurred())
		g.Expect(solved).To(gomega.Equal(expected))
		g.Expect(solver.Verify(puzzle, solved)).To(gomega.BeTrue())
	})

	t.Run("Empty grid", func(t *testing.T) {
		//** Arrange
		puzzle := NewGrid()

		//** Act
		solved, err := solver.Solve(puzzle)

		//** Assert
		assert.Nil(t, err)
		assert.NotNil(t, solved)
		assert.True(t, solver.Verify(puzzle, solved))
	})

	t.Run("Contradictory clues", func(t *testing.T) {
		//** Arrange: two 5s in row 0
		puzzle := NewGrid()
		puzzle[0][0] = 5
		puzzle[0][4] = 5

		//** Act
		solved, err := solver.Solve(puzzle)

		//** Assert
		assert.Nil(t, err)
		assert.Nil(t, solved)
	})

	t.Run("Puzzle grid is preserved", func(t *testing.T) {
		//** Arrange
		puzzle := mustGrid(t, examplePuzzle)
		original := puzzle.Clone()

		//** Act
		_, err := solver.Solve(puzzle)

		//** Assert
		assert.Nil(t, err)
		assert.Equal(t, original, puzzle)
	})
}

func TestSolveRejectsMalformedGrids(t *testing.T) {
	solver := NewSolver(sat.NewGophersatSolver())

	scenarios := map[string]Grid{
		"nil grid":          nil,
		"missing row":       make(Grid, GridSize-1),
		"ragged row":        {make([]uint8, GridSize-1)},
		"out-of-range cell": func() Grid { grid := NewGrid(); grid[4][4] = 10; return grid }(),
	}

	for name, puzzle := range scenarios {
		t.Run(name, func(t *testing.T) {
			solved, err := solver.Solve(puzzle)

			assert.Nil(t, solved)
			assert.ErrorContains(t, err, "invalid puzzle")
		})
	}
}

func TestVerifyRejectsTamperedSolutions(t *testing.T) {
	//** Arrange
	solver := NewSolver(sat.NewGophersatSolver())
	puzzle := mustGrid(t, examplePuzzle)
	solved := mustGrid(t, exampleSolution)

	//** Act & Assert
	assert.True(t, solver.Verify(puzzle, solved))

	tampered := solved.Clone()
	tampered[0][2], tampered[0][3] = tampered[0][3], tampered[0][2] // Break row-order without breaking the row itself
	assert.False(t, solver.Verify(puzzle, tampered))

	unfilled := solved.Clone()
	unfilled[5][5] = EmptyCell
	assert.False(t, solver.Verify(puzzle, unfilled))

	clueless := solved.Clone()
	clueless[0][0], clueless[0][1] = clueless[0][1], clueless[0][0] // Swap the 5 and 3 clues of row 0
	assert.False(t, solver.Verify(puzzle, clueless))
}

func mustGrid(t *testing.T, puzzle string) Grid {
	t.Helper()
	grid, err := GridFromString(puzzle)
	if err != nil {
		t.Fatalf("cannot parse grid: %v", err)
	}
	return grid
}
