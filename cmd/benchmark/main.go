package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/limaJavier/sudokusat/pkg/model"
	"github.com/limaJavier/sudokusat/pkg/sat"
)

type benchmarkPuzzle struct {
	Name   string
	Puzzle string
}

type benchmarkSolver struct {
	Name   string
	Binary string // Empty for in-process backends
	New    func() sat.SATSolver
}

var puzzles = []benchmarkPuzzle{
	{
		Name:   "example",
		Puzzle: "530070000600195000098000060800060003400803001700020006060000280000419005000080079",
	},
	{
		Name:   "escargot",
		Puzzle: "1....7.9..3..2...8..96..5....53..9...1..8...26....4...3......1..4......7..7...3..",
	},
	{
		Name:   "empty",
		Puzzle: strings.Repeat("0", 81),
	},
	{
		Name:   "contradictory",
		Puzzle: "550000000" + strings.Repeat("0", 72),
	},
}

var solvers = []benchmarkSolver{
	{Name: "gophersat", New: sat.NewGophersatSolver},
	{Name: "gini", New: sat.NewGiniSolver},
	{Name: "kissat", Binary: "kissat", New: sat.NewKissatSolver},
	{Name: "cadical", Binary: "cadical", New: sat.NewCadicalSolver},
	{Name: "cryptominisat", Binary: "cryptominisat", New: sat.NewCryptominisatSolver},
	{Name: "minisat", Binary: "minisat", New: sat.NewMinisatSolver},
}

func main() {
	writer := csv.NewWriter(os.Stdout)
	defer writer.Flush()

	if err := writer.Write([]string{"solver", "puzzle", "result", "duration_ms"}); err != nil {
		log.Fatalf("cannot write csv header: %v", err)
	}

	for _, backend := range solvers {
		if backend.Binary != "" {
			if _, err := exec.LookPath(backend.Binary); err != nil {
				log.Printf("skipping %v: binary not available", backend.Name)
				continue
			}
		}

		solver := model.NewSolver(backend.New())
		for _, puzzle := range puzzles {
			grid, err := model.GridFromString(puzzle.Puzzle)
			if err != nil {
				log.Fatalf("cannot parse puzzle %v: %v", puzzle.Name, err)
			}

			start := time.Now()
			solved, err := solver.Solve(grid)
			duration := time.Since(start)

			result := "solved"
			if err != nil {
				result = "error"
			} else if solved == nil {
				result = "unsatisfiable"
			} else if !solver.Verify(grid, solved) {
				result = "invalid"
			}

			record := []string{
				backend.Name,
				puzzle.Name,
				result,
				fmt.Sprintf("%v", duration.Milliseconds()),
			}
			if err := writer.Write(record); err != nil {
				log.Fatalf("cannot write csv record: %v", err)
			}
		}
	}
}
