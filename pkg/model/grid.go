package model

import (
	"fmt"
	"strings"
)

const (
	// GridSize is the number of rows, columns and digits of a standard board
	GridSize = 9
	// BoxSize is the side length of the non-overlapping 3×3 sub-grids
	BoxSize = 3
	// EmptyCell marks a cell without a clue in a puzzle grid
	EmptyCell = 0
)

// Grid is a 9×9 board of digits 1..9, where EmptyCell marks an unfilled
// cell. Puzzle grids carry clues and empty cells; solved grids are fully
// filled.
type Grid [][]uint8

func NewGrid() Grid {
	grid := make(Grid, GridSize)
	for i := range grid {
		grid[i] = make([]uint8, GridSize)
	}
	return grid
}

func (grid Grid) Clone() Grid {
	clone := make(Grid, len(grid))
	for i, cells := range grid {
		clone[i] = make([]uint8, len(cells))
		copy(clone[i], cells)
	}
	return clone
}

// Validate rejects malformed boards before they reach clause generation.
func (grid Grid) Validate() error {
	if len(grid) != GridSize {
		return fmt.Errorf("grid must have %v rows, got %v", GridSize, len(grid))
	}
	for row, cells := range grid {
		if len(cells) != GridSize {
			return fmt.Errorf("row %v must have %v cells, got %v", row, GridSize, len(cells))
		}
		for column, digit := range cells {
			if digit > GridSize {
				return fmt.Errorf("cell (%v, %v) holds %v, digits must be within [0, 9]", row, column, digit)
			}
		}
	}
	return nil
}

// GridFromString parses an 81-character puzzle where each character is a
// digit and '0' or '.' marks an empty cell. Whitespace is ignored, so both
// flat strings and row-per-line layouts are accepted.
func GridFromString(puzzle string) (Grid, error) {
	stripped := strings.Join(strings.Fields(puzzle), "")
	if len(stripped) != GridSize*GridSize {
		return nil, fmt.Errorf("puzzle must have %v cells, got %v", GridSize*GridSize, len(stripped))
	}

	grid := NewGrid()
	for i, char := range stripped {
		switch {
		case char == '.':
			// Already EmptyCell
		case char >= '0' && char <= '9':
			grid[i/GridSize][i%GridSize] = uint8(char - '0')
		default:
			return nil, fmt.Errorf("invalid character %q at cell (%v, %v)", char, i/GridSize, i%GridSize)
		}
	}
	return grid, nil
}

// String renders the board with 3×3 separators; empty cells print as dots.
func (grid Grid) String() string {
	var builder strings.Builder
	for row, cells := range grid {
		if row%BoxSize == 0 && row != 0 {
			builder.WriteString("------+-------+------\n")
		}
		for column, digit := range cells {
			if column%BoxSize == 0 && column != 0 {
				builder.WriteString("| ")
			}
			if digit == EmptyCell {
				builder.WriteString(". ")
			} else {
				fmt.Fprintf(&builder, "%d ", digit)
			}
		}
		builder.WriteString("\n")
	}
	return builder.String()
}
