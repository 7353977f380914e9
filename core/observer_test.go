package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/labyrinth/core"
)

// recorder logs every notification as a short string.
type recorder struct {
	name string
	log  *[]string
	fail error
}

func (r recorder) OnEdgeAdded(u, v int) error {
	*r.log = append(*r.log, r.name+":add")
	return r.fail
}

func (r recorder) OnEdgeRemoved(u, v int) error {
	*r.log = append(*r.log, r.name+":remove")
	return r.fail
}

func (r recorder) OnVertexChanged(v int) error {
	*r.log = append(*r.log, r.name+":vertex")
	return r.fail
}

// TestObservers_OrderAndShortCircuit checks fan-out order and that the
// first error stops propagation.
func TestObservers_OrderAndShortCircuit(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	obs := core.Observers{
		recorder{name: "a", log: &log},
		recorder{name: "b", log: &log, fail: boom},
		recorder{name: "c", log: &log},
	}

	assert.ErrorIs(t, obs.OnEdgeAdded(0, 1), boom)
	assert.ErrorIs(t, obs.OnEdgeRemoved(0, 1), boom)
	assert.ErrorIs(t, obs.OnVertexChanged(0), boom)
	assert.Equal(t, []string{
		"a:add", "b:add",
		"a:remove", "b:remove",
		"a:vertex", "b:vertex",
	}, log)
}

func TestObserverFuncs_NilFieldsAreNoops(t *testing.T) {
	var f core.ObserverFuncs
	assert.NoError(t, f.OnEdgeAdded(0, 1))
	assert.NoError(t, f.OnEdgeRemoved(0, 1))
	assert.NoError(t, f.OnVertexChanged(0))
}

// TestCanceled_WrapsCause verifies the cancellation error matches both
// ErrCanceled and the underlying context error.
func TestCanceled_WrapsCause(t *testing.T) {
	err := core.Canceled(context.Canceled)
	assert.ErrorIs(t, err, core.ErrCanceled)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, core.Canceled(nil), core.ErrCanceled)
}
