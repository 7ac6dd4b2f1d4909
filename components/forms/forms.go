// Package forms holds the stateless form controls. They render markup and
// carry whatever event bindings their owner passes in Bind; the owning
// component keeps the values.
package forms

import (
	"html"
	"slices"
	"strconv"
	"strings"

	"github.com/rohanthewiz/element"

	"gostyles/styles"
)

// InputType is the type attribute of a FormInput.
type InputType string

const (
	Text     InputType = "text"
	Password InputType = "password"
	Email    InputType = "email"
	Number   InputType = "number"
	Search   InputType = "search"
	Tel      InputType = "tel"
	URL      InputType = "url"
	Date     InputType = "date"
	Color    InputType = "color"
	Range    InputType = "range"
)

var inputTypes = []InputType{Text, Password, Email, Number, Search, Tel, URL, Date, Color, Range}

func (t InputType) Valid() bool { return t == "" || slices.Contains(inputTypes, t) }

func (InputType) Options() string {
	parts := make([]string, len(inputTypes))
	for i, t := range inputTypes {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

func (t InputType) attr() string {
	if t == "" {
		return string(Text)
	}
	return string(t)
}

// Orientation lays out the label and control of a FormGroup.
type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

func (o Orientation) Valid() bool   { return o == "" || o == Vertical || o == Horizontal }
func (Orientation) Options() string { return "vertical, horizontal" }

// Input is a single-line text control.
type Input struct {
	ID          string
	Name        string
	Type        InputType      `validate:"variant"`
	Value       string
	Placeholder string
	Palette     styles.Palette `validate:"variant"`
	Size        styles.Size    `validate:"variant"`
	Underline   bool
	Disabled    bool
	Required    bool
	ClassName   string
	Bind        []string
}

func (in Input) Validate() error { return styles.Validate("form input", in) }

func (in Input) Render(b *element.Builder) (x any) {
	underline := ""
	if in.Underline {
		underline = "underline"
	}

	a := []string{
		"type", in.Type.attr(),
		"class", styles.Classes("form-input", in.Palette.Class(), in.Size.Class(), underline, in.ClassName),
		"value", html.EscapeString(in.Value),
	}
	a = append(a, optional("id", in.ID, "name", in.Name, "placeholder", in.Placeholder)...)
	a = append(a, flags("disabled", in.Disabled, "required", in.Required)...)
	a = append(a, in.Bind...)

	b.Input(a...)
	return
}

// TextArea is a multi-line text control.
type TextArea struct {
	ID          string
	Name        string
	Value       string
	Placeholder string
	Rows        int            `validate:"gte=0"`
	Palette     styles.Palette `validate:"variant"`
	Size        styles.Size    `validate:"variant"`
	Disabled    bool
	ClassName   string
	Bind        []string
}

func (ta TextArea) Validate() error { return styles.Validate("form textarea", ta) }

func (ta TextArea) Render(b *element.Builder) (x any) {
	a := []string{"class", styles.Classes("form-textarea", ta.Palette.Class(), ta.Size.Class(), ta.ClassName)}
	a = append(a, optional("id", ta.ID, "name", ta.Name, "placeholder", ta.Placeholder)...)
	if ta.Rows > 0 {
		a = append(a, "rows", strconv.Itoa(ta.Rows))
	}
	a = append(a, flags("disabled", ta.Disabled)...)
	a = append(a, ta.Bind...)

	b.TextArea(a...).T(html.EscapeString(ta.Value))
	return
}

// SelectOption is one entry of a Select.
type SelectOption struct {
	Value    string
	Label    string
	Disabled bool
	Selected bool
}

// Select is a single or multiple choice control.
type Select struct {
	ID        string
	Name      string
	Options   []SelectOption
	Multiple  bool
	Size      styles.Size `validate:"variant"`
	Disabled  bool
	Required  bool
	ClassName string
	Bind      []string
}

func (s Select) Validate() error { return styles.Validate("form select", s) }

func (s Select) Render(b *element.Builder) (x any) {
	a := []string{"class", styles.Classes("form-select", s.Size.Class(), s.ClassName)}
	a = append(a, optional("id", s.ID, "name", s.Name)...)
	a = append(a, flags("multiple", s.Multiple, "disabled", s.Disabled, "required", s.Required)...)
	a = append(a, s.Bind...)

	b.Select(a...).R(
		element.ForEach(s.Options, func(o SelectOption) {
			oa := []string{"value", html.EscapeString(o.Value)}
			oa = append(oa, flags("disabled", o.Disabled, "selected", o.Selected)...)
			b.Option(oa...).T(html.EscapeString(o.Label))
		}),
	)
	return
}

// Label captions a control.
type Label struct {
	Text      string
	For       string
	ClassName string
}

func (l Label) Render(b *element.Builder) (x any) {
	a := []string{"class", styles.Classes("form-label", l.ClassName)}
	a = append(a, optional("for", l.For)...)
	b.Label(a...).T(html.EscapeString(l.Text))
	return
}

// Group stacks a label, a control and any helper output.
type Group struct {
	Orientation Orientation `validate:"variant"`
	ClassName   string
	Children    []element.Component
}

func (g Group) Validate() error {
	if err := styles.Validate("form group", g); err != nil {
		return err
	}
	for _, ch := range g.Children {
		if v, ok := ch.(interface{ Validate() error }); ok {
			if err := v.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g Group) Render(b *element.Builder) (x any) {
	orientation := g.Orientation
	if orientation == "" {
		orientation = Vertical
	}
	b.DivClass(styles.Classes("form-group", string(orientation), g.ClassName)).R(
		element.RenderComponents(b, g.Children...),
	)
	return
}

// Output is a line of text shown under a control, e.g. the current value.
type Output struct {
	Text      string
	ClassName string
}

func (o Output) Render(b *element.Builder) (x any) {
	b.DivClass(styles.Classes("form-output", o.ClassName)).T(html.EscapeString(o.Text))
	return
}

// optional returns the name/value pairs whose value is not empty.
func optional(pairs ...string) []string {
	out := make([]string, 0, len(pairs))
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			out = append(out, pairs[i], html.EscapeString(pairs[i+1]))
		}
	}
	return out
}

// flags emits boolean attributes in their name="name" form.
func flags(pairs ...any) []string {
	var out []string
	for i := 0; i+1 < len(pairs); i += 2 {
		name, _ := pairs[i].(string)
		if on, _ := pairs[i+1].(bool); on {
			out = append(out, name, name)
		}
	}
	return out
}
