package maze

import (
	"sync"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/gridgraph"
)

var (
	_ core.Grid2D = (*ObservableMaze)(nil)
	_ MazeBuilder = (*ObservableMaze)(nil)
)

// Subscription identifies an observer registered with Subscribe.
type Subscription uint64

// ObservableMaze pairs a fully bound topology with the maze carved from it.
//
// As a core.Grid2D it exposes the maze, not the topology: solvers and
// painters see the passages carved so far. Every wall change and every
// progression change is reported to the subscribers, synchronously and in
// subscription order, after the change was committed. The first observer
// error stops the fan-out and is returned to the mutating caller.
//
// Subscribe and Unsubscribe may be called from any goroutine. Mutations
// must be serialized by the caller.
type ObservableMaze struct {
	topology     core.Grid2D
	grid         *gridgraph.GridGraph
	progressions *core.ObservedLabelling[Progression]

	mu     sync.RWMutex
	nextID Subscription
	subs   []subscriber
}

type subscriber struct {
	id       Subscription
	observer core.GraphObserver
}

// NewObservableMaze builds a bound width×height topology and an empty maze
// of the same size. Every cell starts Pending.
func NewObservableMaze(width, height int) (*ObservableMaze, error) {
	topology, err := gridgraph.NewBound(width, height)
	if err != nil {
		return nil, err
	}
	grid, err := gridgraph.New(width, height)
	if err != nil {
		return nil, err
	}

	return newObservableMaze(topology, grid), nil
}

func newObservableMaze(topology core.Grid2D, grid *gridgraph.GridGraph) *ObservableMaze {
	m := &ObservableMaze{topology: topology, grid: grid}
	m.progressions = core.NewObservedLabelling[Progression](grid.NbVertices(), core.ObserverFuncs{
		VertexChanged: func(v int) error { return m.observers().OnVertexChanged(v) },
	})

	return m
}

// Subscribe registers o and returns the handle to unsubscribe it with.
func (m *ObservableMaze) Subscribe(o core.GraphObserver) Subscription {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	m.subs = append(m.subs, subscriber{id: m.nextID, observer: o})

	return m.nextID
}

// Unsubscribe removes the observer registered under id.
// It reports whether such an observer existed.
func (m *ObservableMaze) Unsubscribe(id Subscription) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, s := range m.subs {
		if s.id == id {
			m.subs = append(m.subs[:i:i], m.subs[i+1:]...)
			return true
		}
	}

	return false
}

// observers snapshots the subscriber list so notifications run unlocked.
func (m *ObservableMaze) observers() core.Observers {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(core.Observers, len(m.subs))
	for i, s := range m.subs {
		out[i] = s.observer
	}

	return out
}

// Topology returns the candidate-passage grid.
func (m *ObservableMaze) Topology() core.Grid2D { return m.topology }

// Progressions returns the observed generation state of every cell.
func (m *ObservableMaze) Progressions() core.VertexLabelling[Progression] { return m.progressions }

// Progression returns the generation state of v.
func (m *ObservableMaze) Progression(v int) (Progression, error) {
	return m.progressions.Label(v)
}

// RemoveWall carves a passage between u and v.
func (m *ObservableMaze) RemoveWall(u, v int) error {
	return m.AddEdge(u, v)
}

// Reset walls every cell back in and marks every cell Pending.
// Subscribers are not notified; painters are expected to repaint.
func (m *ObservableMaze) Reset() {
	m.grid.Reset()
	for v := 0; v < m.grid.NbVertices(); v++ {
		_ = m.progressions.Labels.SetLabel(v, Pending)
	}
}

func (m *ObservableMaze) NbVertices() int { return m.grid.NbVertices() }
func (m *ObservableMaze) VertexExists(v int) bool { return m.grid.VertexExists(v) }
func (m *ObservableMaze) Neighbors(v int) ([]int, error) { return m.grid.Neighbors(v) }
func (m *ObservableMaze) Width() int { return m.grid.Width() }
func (m *ObservableMaze) Height() int { return m.grid.Height() }
func (m *ObservableMaze) AreAdjacent(u, v int) (bool, error) { return m.grid.AreAdjacent(u, v) }
func (m *ObservableMaze) Edges() []core.Edge { return m.grid.Edges() }

// AddEdge joins u and v in the maze and notifies OnEdgeAdded.
func (m *ObservableMaze) AddEdge(u, v int) error {
	if err := m.grid.AddEdge(u, v); err != nil {
		return err
	}

	return m.observers().OnEdgeAdded(u, v)
}

// RemoveEdge separates u and v in the maze and notifies OnEdgeRemoved.
func (m *ObservableMaze) RemoveEdge(u, v int) error {
	if err := m.grid.RemoveEdge(u, v); err != nil {
		return err
	}

	return m.observers().OnEdgeRemoved(u, v)
}
