package demo

import (
	"net/url"

	"github.com/rohanthewiz/element"

	"gostyles/components/layouts"
	"gostyles/components/navbar"
	"gostyles/styles"
	"gostyles/views"
	"gostyles/web/pages/comps"
	"gostyles/web/pages/shared"
)

// Page is the body of the demo document.
type Page struct {
	shared.Page
	Shell   *Shell
	Variant Variant
}

// Render returns the whole document. Styles published by the components
// are inlined in the head.
func (sh *Shell) Render(v Variant) string {
	p := Page{
		Page:    shared.Page{Title: "gostyles", Subtitle: "Styled components rendered on the server"},
		Shell:   sh,
		Variant: v,
	}
	return views.BaseLayout("gostyles", sh.Styles.CSS(), p)
}

func (p Page) Render(b *element.Builder) (x any) {
	element.RenderComponents(b, p.Shell.Navbar, p.Banner())

	b.Main("class", "demo").R(
		b.Div("id", "forms", "class", "demo-section").R(
			element.RenderComponents(b, p.Shell.Form),
		),
		b.Div("id", "carousel", "class", "demo-section").R(
			element.RenderComponents(b,
				comps.Heading{Title: "Carousel", Level: 2},
				p.Shell.Carousel,
				p.Shell.Controls,
			),
		),
		b.Div("id", "variants", "class", "demo-section").R(
			element.RenderComponents(b,
				comps.Heading{Title: "Variants", Level: 2},
				Picker{Current: p.Variant},
			),
		),
	)

	element.RenderComponents(b, p.Footer())
	return
}

// Picker links to the page with one variant changed at a time.
type Picker struct {
	Current Variant
}

func (pk Picker) Render(b *element.Builder) (x any) {
	rows := []element.Component{
		pickerRow{label: "Palette", key: "palette", values: strs(styles.Palettes()), current: string(pk.Current.Palette.OrDefault()), base: pk.Current},
		pickerRow{label: "Style", key: "style", values: strs(styles.Styles()), current: string(pk.Current.Style.OrDefault()), base: pk.Current},
		pickerRow{label: "Size", key: "size", values: strs(styles.Sizes()), current: string(pk.Current.Size.OrDefault()), base: pk.Current},
		pickerRow{label: "Fixed", key: "fixed", values: strs(navbar.FixedModes()), current: string(pk.Current.Fixed.OrDefault()), base: pk.Current},
	}
	element.RenderComponents(b, layouts.Container{Direction: layouts.Column, Children: rows})
	return
}

type pickerRow struct {
	label   string
	key     string
	values  []string
	current string
	base    Variant
}

func (r pickerRow) Render(b *element.Builder) (x any) {
	b.DivClass("picker-row").R(
		b.Span("class", "picker-label").T(r.label),
		element.ForEach(r.values, func(v string) {
			class := "picker-link"
			if v == r.current {
				class += " active"
			}
			b.A("class", class, "href", "/?"+r.base.query(r.key, v)).T(v)
		}),
	)
	return
}

// query encodes v with key replaced by value.
func (v Variant) query(key, value string) string {
	q := url.Values{}
	q.Set("palette", string(v.Palette.OrDefault()))
	q.Set("style", string(v.Style.OrDefault()))
	q.Set("size", string(v.Size.OrDefault()))
	q.Set("fixed", string(v.Fixed.OrDefault()))
	q.Set(key, value)
	return q.Encode()
}

func strs[T ~string](vals []T) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}
