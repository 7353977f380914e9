package core

// VertexLabelling stores one label of type T per vertex. It is owned by the
// caller: algorithms write progress through SetLabel while renderers read
// it back through Label.
//
// Both methods fail with an error wrapping ErrVertexOutOfRange for an
// invalid vertex. SetLabel may also return the error of an attached
// observer, which is how a running algorithm learns it was canceled.
type VertexLabelling[T any] interface {
	// Label returns the current label of v.
	Label(v int) (T, error)

	// SetLabel replaces the label of v.
	SetLabel(v int, label T) error
}

// Labels is a plain slice-backed VertexLabelling with no side effects.
type Labels[T any] struct {
	values []T
}

// NewLabels allocates n labels, each set to initial.
// A negative n is treated as zero.
func NewLabels[T any](n int, initial T) *Labels[T] {
	if n < 0 {
		n = 0
	}
	values := make([]T, n)
	for i := range values {
		values[i] = initial
	}

	return &Labels[T]{values: values}
}

// Len returns the number of labelled vertices.
func (l *Labels[T]) Len() int {
	return len(l.values)
}

// Label returns the label of v.
func (l *Labels[T]) Label(v int) (T, error) {
	if v < 0 || v >= len(l.values) {
		var zero T
		return zero, OutOfRange(v, len(l.values))
	}

	return l.values[v], nil
}

// SetLabel replaces the label of v.
func (l *Labels[T]) SetLabel(v int, label T) error {
	if v < 0 || v >= len(l.values) {
		return OutOfRange(v, len(l.values))
	}
	l.values[v] = label

	return nil
}

// Snapshot returns a copy of all labels, indexed by vertex.
func (l *Labels[T]) Snapshot() []T {
	out := make([]T, len(l.values))
	copy(out, l.values)

	return out
}

// ObservedLabelling is a slice-backed VertexLabelling that notifies an
// observer after every SetLabel. The label is stored before the
// notification, so a canceling observer never loses a committed write.
type ObservedLabelling[T any] struct {
	Labels[T]
	observer GraphObserver
}

// NewObservedLabelling allocates n zero-valued labels reporting to observer.
// A nil observer disables notifications.
func NewObservedLabelling[T any](n int, observer GraphObserver) *ObservedLabelling[T] {
	var zero T

	return &ObservedLabelling[T]{
		Labels:   *NewLabels[T](n, zero),
		observer: observer,
	}
}

// SetLabel stores label for v and calls OnVertexChanged(v).
func (l *ObservedLabelling[T]) SetLabel(v int, label T) error {
	if err := l.Labels.SetLabel(v, label); err != nil {
		return err
	}
	if l.observer == nil {
		return nil
	}

	return l.observer.OnVertexChanged(v)
}
