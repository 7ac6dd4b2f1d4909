// Package navbar is the navigation bar. It owns one piece of state, whether
// the collapsed menu is open on narrow viewports, and derives its classes
// and position from configuration.
package navbar

import (
	"reflect"

	"github.com/rohanthewiz/element"

	"gostyles/component"
	"gostyles/components/layouts"
	"gostyles/event"
	"gostyles/styles"
)

// TargetMenu is the event target of the menu toggle.
const TargetMenu = "menu-toggle"

// Config is supplied by the parent on every render.
type Config struct {
	Palette   styles.Palette `validate:"variant"`
	Style     styles.Style   `validate:"variant"`
	Fixed     Fixed          `validate:"variant"`
	ClassName string
	ID        string
	Children  []element.Component

	// Registry, when set, receives the position properties under
	// RegistryKey (or the instance name) whenever a configuration is adopted.
	Registry    *styles.Registry
	RegistryKey string
}

func (c Config) Validate() error {
	if err := styles.Validate("navbar", c); err != nil {
		return err
	}
	for _, ch := range c.Children {
		if v, ok := ch.(interface{ Validate() error }); ok {
			if err := v.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c Config) Equal(o Config) bool {
	return c.Palette.OrDefault() == o.Palette.OrDefault() &&
		c.Style.OrDefault() == o.Style.OrDefault() &&
		c.Fixed.OrDefault() == o.Fixed.OrDefault() &&
		c.ClassName == o.ClassName &&
		c.ID == o.ID &&
		c.Registry == o.Registry &&
		c.RegistryKey == o.RegistryKey &&
		reflect.DeepEqual(c.Children, o.Children)
}

// State is the menu visibility.
type State struct {
	MenuOpen bool `json:"menu_open"`
}

// Msg is the navbar message union.
type Msg interface{ isNavbarMsg() }

// MenuToggled flips the menu visibility.
type MenuToggled struct{}

func (MenuToggled) isNavbarMsg() {}

// Navbar implements component.Reducer.
type Navbar struct{}

// Host is a mounted navbar.
type Host = component.Host[Config, State, Msg]

// New mounts a navbar called name.
func New(name string, cfg Config, opts component.Options) (*Host, error) {
	return component.New[Config, State, Msg](name, Navbar{}, cfg, opts)
}

func (Navbar) Name() string { return "navbar" }

func (Navbar) Init(Config) State { return State{} }

func (Navbar) Fold(s State, msg Msg) (State, bool) {
	switch msg.(type) {
	case MenuToggled:
		s.MenuOpen = !s.MenuOpen
		return s, true
	}
	return s, false
}

func (Navbar) Adapt(_ Config, target string, ev event.Event) (Msg, component.Adapted) {
	if target != TargetMenu {
		return nil, component.Unexpected
	}
	switch ev.(type) {
	case event.Click:
		return MenuToggled{}, component.Message
	case event.Input, event.Select, event.Unknown:
	}
	return nil, component.Unexpected
}

// Configured publishes the position into the registry passed in configuration.
func (Navbar) Configured(instance string, cfg Config) {
	if cfg.Registry == nil {
		return
	}
	key := cfg.RegistryKey
	if key == "" {
		key = instance
	}
	publish(cfg.Registry, key, cfg.Fixed)
}

// Classes returns the class list shared by the mobile and desktop bars.
func Classes(cfg Config) string {
	return styles.Classes(cfg.Style.Class(), cfg.Palette.Class(), cfg.ClassName)
}

func (Navbar) View(b *element.Builder, sc component.Scope, s State, cfg Config) {
	position := FixedStyle(cfg.Fixed)

	mobile := []string{"class", styles.Classes("navbar-mobile", Classes(cfg)), "style", position}
	desktop := []string{"class", styles.Classes("navbar", Classes(cfg)), "style", position}
	if cfg.ID != "" {
		desktop = append(desktop, "id", cfg.ID)
	}

	toggle := Item{
		ClassName: "navbar-menu-toggle",
		Bind:      component.Attrs(sc.OnClick(TargetMenu), []string{"id", sc.ID(TargetMenu)}),
		Children:  []element.Component{menuIcon{}},
	}

	b.Div(mobile...).R(
		element.RenderComponents(b, Container{Justify: layouts.End, Children: []element.Component{toggle}}),
		b.Wrap(func() {
			if s.MenuOpen {
				b.DivClass("navbar-menu").R(
					element.RenderComponents(b, cfg.Children...),
				)
			}
		}),
	)

	b.Div(desktop...).R(
		element.RenderComponents(b, cfg.Children...),
	)
}
