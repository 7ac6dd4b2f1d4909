package views

import (
	"html"

	"github.com/rohanthewiz/element"
)

// BaseLayout creates the HTML document for a page.
// styles is written into a style tag after the stylesheet, so rules published
// to a styles.Registry override the defaults.
func BaseLayout(title string, styles string, bodyComponent element.Component) string {
	b := element.NewBuilder()

	b.Html().R(
		b.Head().R(
			b.Meta("charset", "UTF-8"),
			b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
			b.Title().T(html.EscapeString(title)),
			b.Link("rel", "stylesheet", "href", "/static/css/gostyles.css"),

			b.Wrap(func() {
				if styles != "" {
					b.Style().T(styles)
				}
			}),
		),
		b.Body().R(
			element.RenderComponents(b, bodyComponent),

			// Event bindings post back to the component API
			b.Script("src", "/static/js/gostyles.js").R(),
		),
	)

	return b.String()
}

// SimpleLayout creates a minimal page, used for errors.
func SimpleLayout(title string, content element.Component) string {
	b := element.NewBuilder()

	b.Html().R(
		b.Head().R(
			b.Meta("charset", "UTF-8"),
			b.Title().T(html.EscapeString(title)),
			b.Link("rel", "stylesheet", "href", "/static/css/gostyles.css"),
		),
		b.Body().R(
			element.RenderComponents(b, content),
		),
	)

	return b.String()
}

// Message is a titled paragraph, the body of SimpleLayout pages.
type Message struct {
	Title string
	Text  string
}

func (m Message) Render(b *element.Builder) (x any) {
	b.DivClass("message").R(
		b.H1().T(html.EscapeString(m.Title)),
		b.P().T(html.EscapeString(m.Text)),
	)
	return
}
