package event

// Callback is a handler supplied by a parent component. Functions cannot be
// compared in Go, so a callback carries a stable ID and two callbacks are
// equal when their IDs match. Parents must change the ID when they change
// the behaviour behind it.
type Callback[E any] struct {
	ID string
	fn func(E)
}

// NewCallback binds fn under id.
func NewCallback[E any](id string, fn func(E)) Callback[E] {
	return Callback[E]{ID: id, fn: fn}
}

// Emit calls the handler. An unset callback drops the event.
func (c Callback[E]) Emit(e E) {
	if c.fn != nil {
		c.fn(e)
	}
}

// IsSet reports whether a handler is bound.
func (c Callback[E]) IsSet() bool { return c.fn != nil }

func (c Callback[E]) Equal(other Callback[E]) bool { return c.ID == other.ID }
