package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// giniSolver runs the pure-Go gini engine in-process.
type giniSolver struct{}

func NewGiniSolver() SATSolver {
	return &giniSolver{}
}

func (gs *giniSolver) Solve(instance SAT) (SATSolution, error) {
	g := gini.New()

	for _, clause := range instance.Clauses {
		for _, literal := range clause {
			g.Add(dimacsToGiniLit(literal))
		}
		g.Add(0) // Clause terminator
	}

	if g.Solve() != 1 { // gini reports 1 for satisfiable and -1 for unsatisfiable
		return nil, nil
	}

	solution := make(SATSolution, 0, instance.Variables)
	for variable := uint64(1); variable <= instance.Variables; variable++ {
		if g.Value(z.Var(variable).Pos()) {
			solution = append(solution, int64(variable))
		} else {
			solution = append(solution, -int64(variable))
		}
	}

	return solution, nil
}

func dimacsToGiniLit(literal int64) z.Lit {
	if literal < 0 {
		return z.Var(-literal).Pos().Not()
	}
	return z.Var(literal).Pos()
}
