package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridFromString(t *testing.T) {
	// Arrange
	flat := "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	dotted := strings.ReplaceAll(flat, "0", ".")

	// Act
	fromFlat, err1 := GridFromString(flat)
	fromDotted, err2 := GridFromString(dotted)

	// Assert
	assert.Nil(t, err1)
	assert.Nil(t, err2)
	assert.Equal(t, fromFlat, fromDotted)
	assert.Equal(t, uint8(5), fromFlat[0][0])
	assert.Equal(t, uint8(EmptyCell), fromFlat[0][2])
	assert.Equal(t, uint8(9), fromFlat[8][8])
}

func TestGridFromStringRejectsBadInput(t *testing.T) {
	_, err := GridFromString("12345")
	assert.ErrorContains(t, err, "81 cells")

	_, err = GridFromString(strings.Repeat("x", 81))
	assert.ErrorContains(t, err, "invalid character")
}

func TestGridValidate(t *testing.T) {
	assert.Nil(t, NewGrid().Validate())

	assert.ErrorContains(t, Grid(nil).Validate(), "9 rows")
	assert.ErrorContains(t, Grid{make([]uint8, 3)}.Validate(), "9 rows")

	ragged := NewGrid()
	ragged[4] = ragged[4][:5]
	assert.ErrorContains(t, ragged.Validate(), "9 cells")

	outOfRange := NewGrid()
	outOfRange[1][2] = 11
	assert.ErrorContains(t, outOfRange.Validate(), "cell (1, 2)")
}

func TestGridCloneIsIndependent(t *testing.T) {
	// Arrange
	grid := NewGrid()
	grid[3][3] = 7

	// Act
	clone := grid.Clone()
	clone[3][3] = 2

	// Assert
	assert.Equal(t, uint8(7), grid[3][3])
	assert.Equal(t, uint8(2), clone[3][3])
}

func TestGridString(t *testing.T) {
	// Arrange
	grid := NewGrid()
	grid[0][0] = 5
	grid[4][4] = 1

	// Act
	rendered := grid.String()

	// Assert
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	assert.Len(t, lines, GridSize+2) // 9 rows plus 2 box separators
	assert.True(t, strings.HasPrefix(lines[0], "5 . . | "))
	assert.Contains(t, rendered, "------+-------+------")
}
