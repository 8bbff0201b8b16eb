package sat

const cryptominisatPath = "cryptominisat"

type cryptominisatSolver struct{}

func NewCryptominisatSolver() SATSolver {
	return &cryptominisatSolver{}
}

func (solver *cryptominisatSolver) Solve(instance SAT) (SATSolution, error) {
	return solveWithCommand(cryptominisatPath, []string{"--verb", "0"}, instance)
}
