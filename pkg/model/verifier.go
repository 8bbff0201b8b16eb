package model

import "github.com/samber/lo"

// verify checks a solved grid against the puzzle it came from: every row,
// column and box must hold each digit exactly once and every clue of the
// puzzle must be preserved.
func verify(puzzle, solved Grid) bool {
	if puzzle.Validate() != nil || solved.Validate() != nil {
		return false
	}

	//** Check clue preservation and that every cell is filled
	for row := range GridSize {
		for column := range GridSize {
			if solved[row][column] == EmptyCell {
				return false
			}
			if puzzle[row][column] != EmptyCell && puzzle[row][column] != solved[row][column] {
				return false
			}
		}
	}

	//** Collect rows, columns and boxes
	groups := make([][]uint8, 0, 3*GridSize)
	for i := range GridSize {
		column := lo.Map(solved, func(cells []uint8, _ int) uint8 { return cells[i] })
		groups = append(groups, solved[i], column)
	}
	for boxRow := range BoxSize {
		for boxColumn := range BoxSize {
			box := make([]uint8, 0, GridSize)
			for row := boxRow * BoxSize; row < (boxRow+1)*BoxSize; row++ {
				for column := boxColumn * BoxSize; column < (boxColumn+1)*BoxSize; column++ {
					box = append(box, solved[row][column])
				}
			}
			groups = append(groups, box)
		}
	}

	return lo.EveryBy(groups, containsEveryDigitOnce)
}

func containsEveryDigitOnce(group []uint8) bool {
	seen := make(map[uint8]bool, GridSize)
	for _, digit := range group {
		if digit < 1 || digit > GridSize || seen[digit] {
			return false
		}
		seen[digit] = true
	}
	return len(seen) == GridSize
}
