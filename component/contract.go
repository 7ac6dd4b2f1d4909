// Package component is the update/render contract every stateful component
// in the library follows, and the Host that drives it.
//
// A component is a Reducer over three types: an immutable configuration C
// supplied by the parent, local state S, and a closed message union M.
// Hosts (the web server, the terminal program) never touch S directly:
// platform events go through Adapt, messages through Fold, markup comes
// from View.
package component

import (
	"github.com/rohanthewiz/element"

	"gostyles/event"
)

// Config is implemented by component configurations. Equal must be value
// equality; identity comparison would re-render on every parent pass.
type Config[C any] interface {
	Equal(other C) bool
	Validate() error
}

// Adapted reports what an adapter made of a platform event.
type Adapted int

const (
	// Unexpected means the event shape is not valid for the target. It is ignored.
	Unexpected Adapted = iota
	// Message means the returned message must be folded.
	Message
	// Forwarded means the event went to a parent callback; nothing to fold.
	Forwarded
)

func (a Adapted) String() string {
	switch a {
	case Message:
		return "message"
	case Forwarded:
		return "forwarded"
	default:
		return "unexpected"
	}
}

// Reducer is the behaviour of one component type.
type Reducer[C Config[C], S any, M any] interface {
	// Name is the component type name used in logs and errors.
	Name() string
	// Init builds the initial state. It must be deterministic and side-effect free.
	Init(cfg C) S
	// Fold applies msg to state and reports whether a re-render is wanted.
	// It must update only the slice of state the message names.
	Fold(state S, msg M) (S, bool)
	// Adapt turns a raw event raised by target into a message.
	Adapt(cfg C, target string, ev event.Event) (M, Adapted)
	// View writes the markup for state and cfg. It must not mutate either.
	View(b *element.Builder, sc Scope, state S, cfg C)
}

// Configurable is implemented by reducers that publish derived values
// (for example into a styles.Registry passed through configuration) each
// time a configuration is adopted.
type Configurable[C any] interface {
	Configured(instance string, cfg C)
}

// Reconciler is implemented by reducers whose state depends on the shape
// of the configuration. Reconcile runs after a new configuration is adopted.
type Reconciler[C any, S any] interface {
	Reconcile(state S, cfg C) S
}
