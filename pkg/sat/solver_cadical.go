package sat

const cadicalPath = "cadical"

type cadicalSolver struct{}

func NewCadicalSolver() SATSolver {
	return &cadicalSolver{}
}

func (solver *cadicalSolver) Solve(instance SAT) (SATSolution, error) {
	return solveWithCommand(cadicalPath, []string{"-q"}, instance)
}
