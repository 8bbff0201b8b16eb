package model

import "log"

// Variables is the number of distinct SAT variables of the encoding: one
// per (row, column, digit) combination of the board.
const Variables = GridSize * GridSize * GridSize

type gridIndexer struct{}

// Index lays the variables out densely over [1, 729]: row is the most
// significant attribute and digit the least significant one.
func (i *gridIndexer) Index(row, column, digit uint64) uint64 {
	return row*GridSize*GridSize + column*GridSize + digit + 1
}

// Attributes is the exact algebraic inverse of Index. Only variables
// produced by Index should ever reach it, so an out-of-range index is a
// contract violation rather than a recoverable condition.
func (i *gridIndexer) Attributes(index uint64) (row uint64, column uint64, digit uint64) {
	if index < 1 || index > Variables {
		log.Panicf("variable %v is outside the encoding range [1, %v]", index, Variables)
	}
	index--

	digit = index % GridSize
	index = index / GridSize

	column = index % GridSize
	index = index / GridSize

	row = index % GridSize

	return row, column, digit
}
