package sat

import (
	"github.com/crillab/gophersat/solver"
	"github.com/samber/lo"
)

// gophersatSolver runs the pure-Go gophersat engine in-process, so it needs
// no external binary on the host.
type gophersatSolver struct{}

func NewGophersatSolver() SATSolver {
	return &gophersatSolver{}
}

func (gs *gophersatSolver) Solve(instance SAT) (SATSolution, error) {
	clauses := lo.Map(instance.Clauses, func(clause []int64, _ int) []int {
		return lo.Map(clause, func(literal int64, _ int) int { return int(literal) })
	})

	problem := solver.ParseSlice(clauses)
	s := solver.New(problem)

	if s.Solve() != solver.Sat {
		return nil, nil
	}

	// Model()[i] is the value of DIMACS variable i+1
	model := s.Model()
	solution := make(SATSolution, 0, instance.Variables)
	for i, value := range model {
		variable := int64(i) + 1
		if value {
			solution = append(solution, variable)
		} else {
			solution = append(solution, -variable)
		}
	}

	return solution, nil
}
