package sat

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// solveWithCommand feeds the DIMACS form of the instance into the solver's
// standard input and interprets the conventional exit codes: 10 stands for
// satisfiable and 20 for unsatisfiable.
func solveWithCommand(name string, args []string, instance SAT) (SATSolution, error) {
	dimacs := instance.ToDIMACS()

	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(dimacs)

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	err := cmd.Run()
	if cmd.ProcessState == nil { // The solver never started (e.g. binary not found)
		return nil, fmt.Errorf("an error occurred during %v execution: %v", name, err)
	}
	if err != nil && cmd.ProcessState.ExitCode() != 10 && cmd.ProcessState.ExitCode() != 20 {
		return nil, fmt.Errorf("an error occurred during %v execution: %v : %v", name, err.Error(), stdErr.String())
	} else if cmd.ProcessState.ExitCode() == 20 {
		return nil, nil
	}

	return ParseSolution(stdOut.String()), nil
}
