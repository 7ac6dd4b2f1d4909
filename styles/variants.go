// Package styles holds the visual variants shared by every component
// and the pure functions that turn them into presentation tokens.
package styles

import (
	"slices"
	"strings"

	"github.com/rohanthewiz/serr"
)

// Palette is the color family of a component.
type Palette string

const (
	Standard  Palette = "standard"
	Primary   Palette = "primary"
	Secondary Palette = "secondary"
	Success   Palette = "success"
	Info      Palette = "info"
	Link      Palette = "link"
	Warning   Palette = "warning"
	Danger    Palette = "danger"
)

var palettes = []Palette{Standard, Primary, Secondary, Success, Info, Link, Warning, Danger}

// Size is one of the three standard component sizes.
type Size string

const (
	Small  Size = "small"
	Medium Size = "medium"
	Big    Size = "big"
)

var sizes = []Size{Small, Medium, Big}

// Style is the fill treatment of a component.
type Style string

const (
	Regular Style = "regular"
	Light   Style = "light"
	Outline Style = "outline"
)

var stylesList = []Style{Regular, Light, Outline}

// Palettes returns every palette in declaration order.
func Palettes() []Palette { return slices.Clone(palettes) }

// Sizes returns every size in declaration order.
func Sizes() []Size { return slices.Clone(sizes) }

// Styles returns every style in declaration order.
func Styles() []Style { return slices.Clone(stylesList) }

// Valid reports whether p is empty (meaning the default) or a known palette.
func (p Palette) Valid() bool { return p == "" || slices.Contains(palettes, p) }

// OrDefault resolves the zero value to Standard.
func (p Palette) OrDefault() Palette {
	if p == "" {
		return Standard
	}
	return p
}

// Class is the class token for the palette.
func (p Palette) Class() string { return string(p.OrDefault()) }

// Options lists the accepted values, used in validation messages.
func (Palette) Options() string { return join(palettes) }

func (s Size) Valid() bool { return s == "" || slices.Contains(sizes, s) }

// OrDefault resolves the zero value to Medium.
func (s Size) OrDefault() Size {
	if s == "" {
		return Medium
	}
	return s
}

func (s Size) Class() string { return string(s.OrDefault()) }

func (Size) Options() string { return join(sizes) }

func (s Style) Valid() bool { return s == "" || slices.Contains(stylesList, s) }

func (Style) Options() string { return join(stylesList) }

func (s Style) Class() string { return string(s.OrDefault()) }

// OrDefault resolves the zero value to Regular.
func (s Style) OrDefault() Style {
	if s == "" {
		return Regular
	}
	return s
}

// ParsePalette converts user input (query strings, config files) into a Palette.
// Empty input yields the default.
func ParsePalette(s string) (Palette, error) {
	p := Palette(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", serr.New("unknown palette " + quote(s) + ", want one of " + p.Options())
	}
	return p.OrDefault(), nil
}

// ParseSize converts user input into a Size. Empty input yields the default.
func ParseSize(s string) (Size, error) {
	v := Size(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", serr.New("unknown size " + quote(s) + ", want one of " + v.Options())
	}
	return v.OrDefault(), nil
}

// ParseStyle converts user input into a Style. Empty input yields the default.
func ParseStyle(s string) (Style, error) {
	v := Style(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", serr.New("unknown style " + quote(s) + ", want one of " + v.Options())
	}
	return v.OrDefault(), nil
}

// Classes joins class tokens with single spaces, skipping empty ones.
// The caller's custom class name is usually passed last.
func Classes(tokens ...string) string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, " ")
}

func join[T ~string](vals []T) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

func quote(s string) string { return `"` + s + `"` }
