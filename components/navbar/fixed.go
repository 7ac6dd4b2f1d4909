package navbar

import (
	"slices"
	"strings"

	"github.com/rohanthewiz/serr"

	"gostyles/styles"
)

// Fixed pins the navbar to an edge of the viewport.
type Fixed string

const (
	None   Fixed = "none"
	Top    Fixed = "top"
	Bottom Fixed = "bottom"
)

var fixedModes = []Fixed{None, Top, Bottom}

func (f Fixed) Valid() bool   { return f == "" || slices.Contains(fixedModes, f) }
func (Fixed) Options() string { return "none, top, bottom" }

// OrDefault resolves the zero value to Top.
func (f Fixed) OrDefault() Fixed {
	if f == "" {
		return Top
	}
	return f
}

// FixedModes lists the accepted Fixed values.
func FixedModes() []Fixed { return slices.Clone(fixedModes) }

// ParseFixed converts user input into a Fixed. Empty input yields Top.
func ParseFixed(s string) (Fixed, error) {
	f := Fixed(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", serr.New(`unknown fixed position "` + s + `", want one of ` + f.Options())
	}
	return f.OrDefault(), nil
}

// FixedProperties returns the position and offset properties for f.
func FixedProperties(f Fixed) map[string]string {
	switch f.OrDefault() {
	case Top:
		return map[string]string{"position": "fixed", "top": "0"}
	case Bottom:
		return map[string]string{"position": "fixed", "bottom": "0"}
	default:
		return map[string]string{"position": "inherit"}
	}
}

// FixedStyle is FixedProperties rendered as an inline style value.
func FixedStyle(f Fixed) string { return styles.Declarations(FixedProperties(f)) }

// publish stores the properties for f under key, replacing whatever was there.
func publish(reg *styles.Registry, key string, f Fixed) {
	reg.Replace(key, FixedProperties(f))
}
