package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/limaJavier/sudokusat/pkg/model"
	"github.com/limaJavier/sudokusat/pkg/sat"
	"github.com/samber/lo"
)

// The worked example puzzle; its solution is unique.
const examplePuzzle = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

var (
	validSolvers = []string{"gophersat", "gini", "kissat", "cadical", "cryptominisat", "minisat"}
	solvers      = map[string]func() sat.SATSolver{
		"gophersat":     sat.NewGophersatSolver,
		"gini":          sat.NewGiniSolver,
		"kissat":        sat.NewKissatSolver,
		"cadical":       sat.NewCadicalSolver,
		"cryptominisat": sat.NewCryptominisatSolver,
		"minisat":       sat.NewMinisatSolver,
	}
)

func main() {
	var (
		solverName string
		inputFile  string
		puzzleStr  string
		useExample bool
	)
	flag.StringVar(&solverName, "solver", "gophersat", fmt.Sprintf("SAT solver backend, one of %v", validSolvers))
	flag.StringVar(&inputFile, "input", "", "path to a JSON puzzle file")
	flag.StringVar(&puzzleStr, "puzzle", "", "81-character puzzle string ('0' or '.' for empty cells)")
	flag.BoolVar(&useExample, "example", false, "solve the built-in example puzzle")
	flag.Parse()

	if !lo.Contains(validSolvers, solverName) {
		log.Fatalf("invalid solver %q: must be one of %v", solverName, validSolvers)
	}

	puzzle, err := loadPuzzle(inputFile, puzzleStr, useExample)
	if err != nil {
		log.Fatalf("cannot load puzzle: %v", err)
	}

	solver := model.NewSolver(solvers[solverName]())

	fmt.Println("Puzzle:")
	fmt.Println(puzzle)

	solved, err := solver.Solve(puzzle)
	if err != nil {
		log.Fatal(err)
	} else if solved == nil {
		fmt.Println("Not satisfiable")
		return
	}

	fmt.Println("Solution:")
	fmt.Println(solved)

	if !solver.Verify(puzzle, solved) {
		log.Fatal("Verification failed")
	}
}

func loadPuzzle(inputFile, puzzleStr string, useExample bool) (model.Grid, error) {
	switch {
	case useExample:
		return model.GridFromString(examplePuzzle)
	case inputFile != "":
		input, err := model.InputFromJson(inputFile)
		if err != nil {
			return nil, err
		}
		return input.Grid()
	case puzzleStr != "":
		return model.GridFromString(puzzleStr)
	default:
		return nil, fmt.Errorf("one of -input, -puzzle or -example is required")
	}
}
