package component

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"

	"gostyles/event"
)

// Phase is the host state machine: Idle between updates, Pending while a
// message or configuration is being folded.
type Phase int

const (
	Idle Phase = iota
	Pending
)

func (p Phase) String() string {
	if p == Pending {
		return "pending"
	}
	return "idle"
}

// RenderPolicy decides how a fold's re-render flag is interpreted.
type RenderPolicy int

const (
	// RenderOnChange re-renders only when the fold asked for it and the
	// state actually differs from the previous one.
	RenderOnChange RenderPolicy = iota
	// RenderAlways trusts the fold flag as is.
	RenderAlways
)

// Options tune a Host.
type Options struct {
	Policy   RenderPolicy
	Endpoint string
}

// Result describes what Handle did with an event.
type Result struct {
	Adapted  Adapted
	Rerender bool
}

// Instance is the type-erased view of a Host used by registries and the web API.
type Instance interface {
	element.Component
	Name() string
	Handle(target string, ev event.Event) Result
	Markup() (string, Delta)
	Snapshot() any
}

// Host owns one mounted component: its configuration, state and phase.
// All transitions are serialized, so a Host may be shared by concurrent requests.
type Host[C Config[C], S any, M any] struct {
	mu      sync.Mutex
	name    string
	reducer Reducer[C, S, M]
	opts    Options
	cfg     C
	state   S
	phase   Phase
	markup  string
}

// New validates cfg and constructs the instance called name.
func New[C Config[C], S any, M any](name string, r Reducer[C, S, M], cfg C, opts Options) (*Host[C, S, M], error) {
	if name == "" {
		return nil, serr.New("instance name is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, serr.Wrap(err, "failed to construct "+r.Name())
	}

	h := &Host[C, S, M]{
		name:    name,
		reducer: r,
		opts:    opts,
		cfg:     cfg,
		state:   r.Init(cfg),
	}
	h.configured()
	return h, nil
}

// Name is the instance name.
func (h *Host[C, S, M]) Name() string { return h.name }

// State returns the current state.
func (h *Host[C, S, M]) State() S {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Config returns the adopted configuration.
func (h *Host[C, S, M]) Config() C {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cfg
}

// Phase returns the current phase. Outside of an update it is always Idle.
func (h *Host[C, S, M]) Phase() Phase {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.phase
}

// Snapshot implements Instance.
func (h *Host[C, S, M]) Snapshot() any { return h.State() }

// Dispatch folds msg into the state and reports whether to re-render.
func (h *Host[C, S, M]) Dispatch(msg M) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.phase = Pending
	defer func() { h.phase = Idle }()

	next, flag := h.reducer.Fold(h.state, msg)
	changed := !reflect.DeepEqual(h.state, next)
	h.state = next

	rerender := flag
	if h.opts.Policy == RenderOnChange {
		rerender = flag && changed
	}

	logger.Debug("Message folded", "component", h.reducer.Name(), "instance", h.name,
		"message", fmt.Sprintf("%T", msg), "rerender", rerender)
	return rerender
}

// Handle adapts a platform event raised by target and folds the resulting message.
// Unexpected events leave the state untouched and are logged.
func (h *Host[C, S, M]) Handle(target string, ev event.Event) Result {
	msg, adapted := h.reducer.Adapt(h.Config(), target, ev)

	switch adapted {
	case Message:
		return Result{Adapted: Message, Rerender: h.Dispatch(msg)}
	case Forwarded:
		return Result{Adapted: Forwarded}
	default:
		kind := "<nil>"
		if ev != nil {
			kind = string(ev.Kind())
		}
		logger.LogErr(serr.New("ignored unexpected event"), "component", h.reducer.Name(),
			"instance", h.name, "target", target, "kind", kind)
		return Result{Adapted: Unexpected}
	}
}

// Reconfigure adopts cfg when it differs from the current configuration.
// Invalid configurations are rejected and the current one is kept.
func (h *Host[C, S, M]) Reconfigure(cfg C) (bool, error) {
	if err := cfg.Validate(); err != nil {
		return false, serr.Wrap(err, "failed to reconfigure "+h.name)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.phase = Pending
	defer func() { h.phase = Idle }()

	if h.cfg.Equal(cfg) {
		return false, nil
	}
	h.cfg = cfg
	if rec, ok := h.reducer.(Reconciler[C, S]); ok {
		h.state = rec.Reconcile(h.state, cfg)
	}
	h.configured()
	return true, nil
}

// Render implements element.Component, wrapping the view in the instance root.
// The output becomes the baseline for the next Markup delta.
func (h *Host[C, S, M]) Render(b *element.Builder) (x any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.markup = h.renderString()
	b.T(h.markup)
	return
}

// Markup renders the instance on its own and reports how it differs from
// the markup produced by the previous render.
func (h *Host[C, S, M]) Markup() (string, Delta) {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := h.renderString()
	delta := diffMarkup(h.markup, out)
	h.markup = out
	return out, delta
}

func (h *Host[C, S, M]) scope() Scope {
	return Scope{Instance: h.name, Endpoint: h.opts.Endpoint}
}

func (h *Host[C, S, M]) renderString() string {
	sc := h.scope()
	b := element.NewBuilder()
	b.Div("id", sc.RootID(), "class", "gs-root", "data-component", h.reducer.Name()).R(
		b.Wrap(func() {
			h.reducer.View(b, sc, h.state, h.cfg)
		}),
	)
	return b.String()
}

func (h *Host[C, S, M]) configured() {
	if hook, ok := h.reducer.(Configurable[C]); ok {
		hook.Configured(h.name, h.cfg)
	}
}
