package maze

import "github.com/katalvlaran/labyrinth/core"

// PathLabel marks the cells of a solved path in a SolverMonitor.
const PathLabel = -1

// SolverMonitor is the treatment counter handed to a Solver. Every write
// is reported to the observer given at construction.
type SolverMonitor struct {
	*core.ObservedLabelling[int]
}

// NewSolverMonitor returns n zeroed counters reporting to observer.
func NewSolverMonitor(n int, observer core.GraphObserver) *SolverMonitor {
	return &SolverMonitor{core.NewObservedLabelling[int](n, observer)}
}

// Total returns the sum of all labels. Before MarkPath it is the number
// of treatments the solver performed.
func (m *SolverMonitor) Total() int {
	total := 0
	for _, n := range m.Snapshot() {
		total += n
	}

	return total
}

// MarkPath labels every cell of path with PathLabel, in order.
// It stops at the first error, which may be a cancellation.
func (m *SolverMonitor) MarkPath(path []int) error {
	for _, v := range path {
		if err := m.SetLabel(v, PathLabel); err != nil {
			return err
		}
	}

	return nil
}
