package navbar

import (
	"html"

	"github.com/rohanthewiz/element"

	"gostyles/components/layouts"
	"gostyles/styles"
)

// Container aligns navbar items along the bar.
type Container struct {
	Justify   layouts.Justify `validate:"variant"`
	ClassName string
	Children  []element.Component
}

func (c Container) Validate() error { return styles.Validate("navbar container", c) }

func (c Container) Render(b *element.Builder) (x any) {
	b.DivClass(styles.Classes("navbar-container", c.Justify.Class(), c.ClassName)).R(
		element.RenderComponents(b, c.Children...),
	)
	return
}

// Item is one entry of the bar: a link when Href is set, otherwise a plain cell.
type Item struct {
	Text      string
	Href      string
	Active    bool
	ClassName string
	Bind      []string
	Children  []element.Component
}

func (it Item) Render(b *element.Builder) (x any) {
	active := ""
	if it.Active {
		active = "active"
	}
	a := append([]string{"class", styles.Classes("navbar-item", active, it.ClassName)}, it.Bind...)

	b.Div(a...).R(
		b.Wrap(func() {
			switch {
			case it.Href != "":
				b.A("href", html.EscapeString(it.Href)).T(html.EscapeString(it.Text))
			case it.Text != "":
				b.Span().T(html.EscapeString(it.Text))
			}
		}),
		element.RenderComponents(b, it.Children...),
	)
	return
}

// menuIcon is the hamburger shown on narrow viewports.
type menuIcon struct{}

func (menuIcon) Render(b *element.Builder) (x any) {
	b.T(`<svg class="navbar-menu-icon" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">` +
		`<line x1="3" y1="6" x2="21" y2="6"/><line x1="3" y1="12" x2="21" y2="12"/><line x1="3" y1="18" x2="21" y2="18"/></svg>`)
	return
}
