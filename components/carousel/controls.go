// Package carousel holds the carousel controls, which only forward clicks
// to their parent, and the Carousel that owns the active slide.
package carousel

import (
	"github.com/rohanthewiz/element"

	"gostyles/component"
	"gostyles/event"
	"gostyles/styles"
)

// Targets raised by the controls.
const (
	TargetPrev = "prev"
	TargetNext = "next"
)

// ControlsConfig wires the two arrows to parent callbacks.
type ControlsConfig struct {
	Prev event.Callback[event.Click]
	Next event.Callback[event.Click]

	Style     styles.Style   `validate:"variant"`
	Palette   styles.Palette `validate:"variant"`
	Size      styles.Size    `validate:"variant"`
	Key       string
	ClassName string
	ID        string
}

func (c ControlsConfig) Validate() error { return styles.Validate("carousel controls", c) }

func (c ControlsConfig) Equal(o ControlsConfig) bool {
	return c.Prev.Equal(o.Prev) &&
		c.Next.Equal(o.Next) &&
		c.Style.OrDefault() == o.Style.OrDefault() &&
		c.Palette.OrDefault() == o.Palette.OrDefault() &&
		c.Size.OrDefault() == o.Size.OrDefault() &&
		c.Key == o.Key &&
		c.ClassName == o.ClassName &&
		c.ID == o.ID
}

// ControlsState is empty: the controls hold no state of their own.
type ControlsState struct{}

// ControlsMsg has no variants; every event is forwarded.
type ControlsMsg interface{ isControlsMsg() }

// Controls implements component.Reducer.
type Controls struct{}

// ControlsHost is a mounted pair of controls.
type ControlsHost = component.Host[ControlsConfig, ControlsState, ControlsMsg]

// NewControls mounts carousel controls called name.
func NewControls(name string, cfg ControlsConfig, opts component.Options) (*ControlsHost, error) {
	return component.New[ControlsConfig, ControlsState, ControlsMsg](name, Controls{}, cfg, opts)
}

func (Controls) Name() string { return "carousel-controls" }

func (Controls) Init(ControlsConfig) ControlsState { return ControlsState{} }

func (Controls) Fold(s ControlsState, _ ControlsMsg) (ControlsState, bool) { return s, false }

// Adapt forwards the click, unchanged, to the parent callback for the arrow.
func (Controls) Adapt(cfg ControlsConfig, target string, ev event.Event) (ControlsMsg, component.Adapted) {
	click, ok := ev.(event.Click)
	if !ok {
		return nil, component.Unexpected
	}

	switch target {
	case TargetPrev:
		cfg.Prev.Emit(click)
	case TargetNext:
		cfg.Next.Emit(click)
	default:
		return nil, component.Unexpected
	}
	return nil, component.Forwarded
}

// ArrowClasses is the class list of one arrow icon.
func ArrowClasses(side string, cfg ControlsConfig) string {
	return styles.Classes("carousel-control-"+side, cfg.Size.Class(), cfg.Style.Class(), cfg.Palette.Class(), cfg.ClassName)
}

func (Controls) View(b *element.Builder, sc component.Scope, _ ControlsState, cfg ControlsConfig) {
	root := []string{"class", "carousel-control"}
	root = append(root, component.Pair("id", cfg.ID)...)
	root = append(root, component.Pair("data-key", cfg.Key)...)

	b.Div(root...).R(
		b.Div(component.Attrs([]string{"class", "carousel-control-left-container", "id", sc.ID(TargetPrev)}, sc.OnClick(TargetPrev))...).R(
			element.RenderComponents(b, chevron{left: true, class: ArrowClasses("left", cfg)}),
		),
		b.Div(component.Attrs([]string{"class", "carousel-control-right-container", "id", sc.ID(TargetNext)}, sc.OnClick(TargetNext))...).R(
			element.RenderComponents(b, chevron{class: ArrowClasses("right", cfg)}),
		),
	)
}

type chevron struct {
	left  bool
	class string
}

func (c chevron) Render(b *element.Builder) (x any) {
	points := "9 6 15 12 9 18"
	if c.left {
		points = "15 6 9 12 15 18"
	}
	b.T(`<svg class="` + c.class + `" width="50" height="50" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">` +
		`<polyline points="` + points + `"/></svg>`)
	return
}
