package sat

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const minisatPath = "minisat"

// minisat does not print its model on stdout; it writes a result file whose
// first line is SAT/UNSAT and whose second line holds the literal values.
type minisatSolver struct{}

func NewMinisatSolver() SATSolver {
	return &minisatSolver{}
}

func (solver *minisatSolver) Solve(instance SAT) (SATSolution, error) {
	dimacs := instance.ToDIMACS()

	inputTempFile, err := os.CreateTemp("", "dimacs-*.cnf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(inputTempFile.Name())

	outputTempFile, err := os.CreateTemp("", "minisat_output-*.out")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(outputTempFile.Name())

	if _, err := inputTempFile.WriteString(dimacs); err != nil {
		return nil, fmt.Errorf("failed to write DIMACS to temporary file: %v", err)
	}
	if err := inputTempFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temporary file: %v", err)
	}

	cmd := exec.Command(minisatPath, "-verb=0", inputTempFile.Name(), outputTempFile.Name())

	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	err = cmd.Run()
	if cmd.ProcessState == nil { // The solver never started (e.g. binary not found)
		return nil, fmt.Errorf("an error occurred during minisat execution: %v", err)
	}
	// Exit-code of 10 stands for satisfiable and exit-code 20 stands for unsatisfiable
	if err != nil && cmd.ProcessState.ExitCode() != 10 && cmd.ProcessState.ExitCode() != 20 {
		return nil, fmt.Errorf("an error occurred during minisat execution: %v : %v", err.Error(), stdErr.String())
	} else if cmd.ProcessState.ExitCode() == 20 {
		return nil, nil
	}

	output, err := os.ReadFile(outputTempFile.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to read output file: %v", err)
	}
	return solver.parseSolution(string(output)), nil
}

func (solver *minisatSolver) parseSolution(solverOutput string) SATSolution {
	lines := strings.SplitN(solverOutput, "\n", 2)
	if len(lines) < 2 { // The first line is the SAT/UNSAT header, the model is on the second line
		return SATSolution{}
	}
	solution := lo.Map(strings.Fields(lines[1]), func(valueStr string, _ int) int64 {
		value, err := strconv.ParseInt(valueStr, 10, 64)
		if err != nil {
			log.Panicf("invalid literal in solver output: %v", err)
		}
		return value
	})
	if len(solution) == 0 {
		return SATSolution{}
	}
	return solution[:len(solution)-1] // Drop the trailing 0 terminator
}
