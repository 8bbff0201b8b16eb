package sat

const kissatPath = "kissat"

type kissatSolver struct{}

func NewKissatSolver() SATSolver {
	return &kissatSolver{}
}

func (solver *kissatSolver) Solve(instance SAT) (SATSolution, error) {
	return solveWithCommand(kissatPath, []string{"-q", "--relaxed"}, instance)
}
