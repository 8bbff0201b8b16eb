package model

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestStructuralClauseFamilyCounts(t *testing.T) {
	// Arrange
	indexer := NewIndexer()

	// Act & Assert
	assert.Len(t, cellConstraints(indexer), 81)
	assert.Len(t, cellUniquenessConstraints(indexer), 2916)
	assert.Len(t, rowConstraints(indexer), 2997)
	assert.Len(t, columnConstraints(indexer), 2997)
	assert.Len(t, boxConstraints(indexer), 2997)
	assert.Len(t, structuralClauses(), 81+2916+3*2997)
}

func TestStructuralClausesAreSharedAcrossCalls(t *testing.T) {
	first := structuralClauses()
	second := structuralClauses()

	assert.Len(t, second, len(first))
	// sync.OnceValue must hand out the same underlying slice
	assert.Same(t, &first[0], &second[0])
}

func TestStructuralClauseLiteralsAreWithinEncodingRange(t *testing.T) {
	valid := lo.EveryBy(structuralClauses(), func(clause []int64) bool {
		return len(clause) > 0 && lo.EveryBy(clause, func(literal int64) bool {
			return literal != 0 && literal >= -Variables && literal <= Variables
		})
	})

	assert.True(t, valid)
}

func TestClueConstraints(t *testing.T) {
	// Arrange
	indexer := NewIndexer()
	puzzle := NewGrid()
	puzzle[0][0] = 5
	puzzle[8][8] = 9

	// Act
	clauses := clueConstraints(indexer, puzzle)

	// Assert
	assert.Equal(t, [][]int64{
		{int64(indexer.Index(0, 0, 4))},
		{int64(indexer.Index(8, 8, 8))},
	}, clauses)
}

func TestClueConstraintsOnEmptyGrid(t *testing.T) {
	assert.Empty(t, clueConstraints(NewIndexer(), NewGrid()))
}
