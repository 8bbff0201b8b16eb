package model

import "sync"

// pairsPerGroup is the number of at-most-one clauses the pairwise encoding
// emits for a group of 9 variables: C(9, 2).
const pairsPerGroup = GridSize * (GridSize - 1) / 2

// structuralClauses yields the five grid-independent clause families. They
// only depend on the fixed 9×9×9 structure, so they are built once and
// shared read-only by every solve; callers must never mutate the slice.
var structuralClauses = sync.OnceValue(buildStructuralClauses)

func buildStructuralClauses() [][]int64 {
	indexer := NewIndexer()

	clauses := make([][]int64, 0, 4*GridSize*GridSize*(1+pairsPerGroup))
	clauses = append(clauses, cellConstraints(indexer)...)
	clauses = append(clauses, cellUniquenessConstraints(indexer)...)
	clauses = append(clauses, rowConstraints(indexer)...)
	clauses = append(clauses, columnConstraints(indexer)...)
	clauses = append(clauses, boxConstraints(indexer)...)
	return clauses
}

// cellConstraints states that every cell holds at least one digit. (81 clauses)
func cellConstraints(indexer Indexer) [][]int64 {
	clauses := make([][]int64, 0, GridSize*GridSize)
	for row := range uint64(GridSize) {
		for column := range uint64(GridSize) {
			clause := make([]int64, 0, GridSize)
			for digit := range uint64(GridSize) {
				clause = append(clause, int64(indexer.Index(row, column, digit)))
			}
			clauses = append(clauses, clause)
		}
	}
	return clauses
}

// cellUniquenessConstraints states that every cell holds at most one digit. (81 × 36 clauses)
func cellUniquenessConstraints(indexer Indexer) [][]int64 {
	clauses := make([][]int64, 0, GridSize*GridSize*pairsPerGroup)
	for row := range uint64(GridSize) {
		for column := range uint64(GridSize) {
			for digit1 := range uint64(GridSize - 1) {
				for digit2 := digit1 + 1; digit2 < GridSize; digit2++ {
					index1 := indexer.Index(row, column, digit1)
					index2 := indexer.Index(row, column, digit2)
					clauses = append(clauses, []int64{-int64(index1), -int64(index2)})
				}
			}
		}
	}
	return clauses
}

// rowConstraints states that every row holds each digit exactly once. (9 × 9 × 37 clauses)
func rowConstraints(indexer Indexer) [][]int64 {
	clauses := make([][]int64, 0, GridSize*GridSize*(1+pairsPerGroup))
	for row := range uint64(GridSize) {
		for digit := range uint64(GridSize) {
			group := make([]uint64, 0, GridSize)
			for column := range uint64(GridSize) {
				group = append(group, indexer.Index(row, column, digit))
			}
			clauses = append(clauses, exactlyOneConstraints(group)...)
		}
	}
	return clauses
}

// columnConstraints states that every column holds each digit exactly once. (9 × 9 × 37 clauses)
func columnConstraints(indexer Indexer) [][]int64 {
	clauses := make([][]int64, 0, GridSize*GridSize*(1+pairsPerGroup))
	for column := range uint64(GridSize) {
		for digit := range uint64(GridSize) {
			group := make([]uint64, 0, GridSize)
			for row := range uint64(GridSize) {
				group = append(group, indexer.Index(row, column, digit))
			}
			clauses = append(clauses, exactlyOneConstraints(group)...)
		}
	}
	return clauses
}

// boxConstraints states that every 3×3 box holds each digit exactly once. (9 × 9 × 37 clauses)
func boxConstraints(indexer Indexer) [][]int64 {
	clauses := make([][]int64, 0, GridSize*GridSize*(1+pairsPerGroup))
	for boxRow := range uint64(BoxSize) {
		for boxColumn := range uint64(BoxSize) {
			for digit := range uint64(GridSize) {
				group := make([]uint64, 0, GridSize)
				for row := boxRow * BoxSize; row < (boxRow+1)*BoxSize; row++ {
					for column := boxColumn * BoxSize; column < (boxColumn+1)*BoxSize; column++ {
						group = append(group, indexer.Index(row, column, digit))
					}
				}
				clauses = append(clauses, exactlyOneConstraints(group)...)
			}
		}
	}
	return clauses
}

// clueConstraints pins every pre-filled cell of the puzzle with a unit
// clause. This is the only grid-dependent family.
func clueConstraints(indexer Indexer, puzzle Grid) [][]int64 {
	clauses := make([][]int64, 0, GridSize*GridSize)
	for row, cells := range puzzle {
		for column, digit := range cells {
			if digit != EmptyCell {
				index := indexer.Index(uint64(row), uint64(column), uint64(digit-1))
				clauses = append(clauses, []int64{int64(index)})
			}
		}
	}
	return clauses
}

// exactlyOneConstraints forces exactly one variable of the group to be true:
// one at-least-one clause plus the naive pairwise at-most-one clauses.
func exactlyOneConstraints(group []uint64) [][]int64 {
	clauses := make([][]int64, 0, 1+pairsPerGroup)

	atLeastOne := make([]int64, 0, len(group))
	for _, variable := range group {
		atLeastOne = append(atLeastOne, int64(variable))
	}
	clauses = append(clauses, atLeastOne)

	for i := range len(group) - 1 {
		for j := i + 1; j < len(group); j++ {
			clauses = append(clauses, []int64{-int64(group[i]), -int64(group[j])})
		}
	}
	return clauses
}
