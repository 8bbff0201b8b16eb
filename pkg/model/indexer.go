package model

// Indexer interface is designed to give a unique SAT variable to a (row, column, digit) combination of the board and vice versa
type Indexer interface {
	// Returns the SAT variable encoding "cell (row, column) holds digit+1" (attributes are zero-indexed)
	Index(row, column, digit uint64) uint64
	// Returns the (row, column, digit) combination encoded by a SAT variable
	Attributes(index uint64) (row uint64, column uint64, digit uint64)
}

func NewIndexer() Indexer {
	return &gridIndexer{}
}
