package shared

import (
	"html"

	"github.com/rohanthewiz/element"
)

// Banner is the page header.
type Banner struct {
	Title    string
	Subtitle string
}

func (bn Banner) Render(b *element.Builder) any {
	b.Header("class", "banner").R(
		b.H1().T(html.EscapeString(bn.Title)),
		b.Wrap(func() {
			if bn.Subtitle != "" {
				b.P().T(html.EscapeString(bn.Subtitle))
			}
		}),
	)
	return nil
}
