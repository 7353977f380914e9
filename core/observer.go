package core

// GraphObserver is notified synchronously after each graph mutation and
// each label change. Returning a non-nil error asks the running algorithm
// to stop; an observer that wants to cancel should return an error
// wrapping ErrCanceled (see Canceled).
type GraphObserver interface {
	// OnEdgeAdded is called after the wall between u and v was removed.
	OnEdgeAdded(u, v int) error

	// OnEdgeRemoved is called after the wall between u and v was built.
	OnEdgeRemoved(u, v int) error

	// OnVertexChanged is called after the label of v changed.
	OnVertexChanged(v int) error
}

// Observers fans a notification out to several observers in order,
// stopping at the first error.
type Observers []GraphObserver

// OnEdgeAdded forwards to every observer.
func (o Observers) OnEdgeAdded(u, v int) error {
	for _, obs := range o {
		if err := obs.OnEdgeAdded(u, v); err != nil {
			return err
		}
	}

	return nil
}

// OnEdgeRemoved forwards to every observer.
func (o Observers) OnEdgeRemoved(u, v int) error {
	for _, obs := range o {
		if err := obs.OnEdgeRemoved(u, v); err != nil {
			return err
		}
	}

	return nil
}

// OnVertexChanged forwards to every observer.
func (o Observers) OnVertexChanged(v int) error {
	for _, obs := range o {
		if err := obs.OnVertexChanged(v); err != nil {
			return err
		}
	}

	return nil
}

// ObserverFuncs adapts optional callbacks to GraphObserver.
// Nil fields are no-ops.
type ObserverFuncs struct {
	EdgeAdded     func(u, v int) error
	EdgeRemoved   func(u, v int) error
	VertexChanged func(v int) error
}

// OnEdgeAdded calls EdgeAdded if set.
func (f ObserverFuncs) OnEdgeAdded(u, v int) error {
	if f.EdgeAdded == nil {
		return nil
	}

	return f.EdgeAdded(u, v)
}

// OnEdgeRemoved calls EdgeRemoved if set.
func (f ObserverFuncs) OnEdgeRemoved(u, v int) error {
	if f.EdgeRemoved == nil {
		return nil
	}

	return f.EdgeRemoved(u, v)
}

// OnVertexChanged calls VertexChanged if set.
func (f ObserverFuncs) OnVertexChanged(v int) error {
	if f.VertexChanged == nil {
		return nil
	}

	return f.VertexChanged(v)
}
