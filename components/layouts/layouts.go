// Package layouts provides the flexbox Container and its Item cells.
package layouts

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/rohanthewiz/element"

	"gostyles/styles"
)

// Direction is the flex direction of a Container.
type Direction string

const (
	Row           Direction = "row"
	RowReverse    Direction = "row-reverse"
	Column        Direction = "column"
	ColumnReverse Direction = "column-reverse"
)

var directions = []Direction{Row, RowReverse, Column, ColumnReverse}

func (d Direction) Valid() bool   { return d == "" || slices.Contains(directions, d) }
func (Direction) Options() string { return joinVariants(directions) }
func (d Direction) Class() string { return "direction-" + string(cmp.Or(d, Row)) }

// Wrap is the flex wrap mode of a Container.
type Wrap string

const (
	Wrapped     Wrap = "wrap"
	NoWrap      Wrap = "nowrap"
	WrapReverse Wrap = "wrap-reverse"
)

var wraps = []Wrap{Wrapped, NoWrap, WrapReverse}

func (w Wrap) Valid() bool   { return w == "" || slices.Contains(wraps, w) }
func (Wrap) Options() string { return joinVariants(wraps) }
func (w Wrap) Class() string { return string(cmp.Or(w, Wrapped)) }

// Justify is the main-axis alignment of a Container.
type Justify string

const (
	Start   Justify = "start"
	End     Justify = "end"
	Center  Justify = "center"
	Between Justify = "space-between"
	Around  Justify = "space-around"
	Evenly  Justify = "space-evenly"
)

var justifies = []Justify{Start, End, Center, Between, Around, Evenly}

func (j Justify) Valid() bool   { return j == "" || slices.Contains(justifies, j) }
func (Justify) Options() string { return joinVariants(justifies) }

// Class is empty for the zero value so no alignment class is emitted.
func (j Justify) Class() string {
	if j == "" {
		return ""
	}
	return "justify-content-" + string(j)
}

// Breakpoint is the viewport range an ItemLayout applies to.
type Breakpoint string

const (
	XS Breakpoint = "xs"
	S  Breakpoint = "s"
	M  Breakpoint = "m"
	L  Breakpoint = "l"
	XL Breakpoint = "xl"
)

var breakpoints = []Breakpoint{XS, S, M, L, XL}

func (bp Breakpoint) Valid() bool  { return slices.Contains(breakpoints, bp) }
func (Breakpoint) Options() string { return joinVariants(breakpoints) }

// ItemLayout is the number of grid columns (1-12) an Item spans at a breakpoint.
type ItemLayout struct {
	Breakpoint Breakpoint `validate:"variant"`
	Columns    int        `validate:"min=1,max=12"`
}

// ItXS and friends build an ItemLayout for one breakpoint.
func ItXS(cols int) ItemLayout { return ItemLayout{Breakpoint: XS, Columns: cols} }
func ItS(cols int) ItemLayout  { return ItemLayout{Breakpoint: S, Columns: cols} }
func ItM(cols int) ItemLayout  { return ItemLayout{Breakpoint: M, Columns: cols} }
func ItL(cols int) ItemLayout  { return ItemLayout{Breakpoint: L, Columns: cols} }
func ItXL(cols int) ItemLayout { return ItemLayout{Breakpoint: XL, Columns: cols} }

// Class is e.g. "it-m-6".
func (l ItemLayout) Class() string { return fmt.Sprintf("it-%s-%d", l.Breakpoint, l.Columns) }

// Container is a flex box laying out its children.
type Container struct {
	ID        string
	ClassName string
	Direction Direction `validate:"variant"`
	Wrap      Wrap      `validate:"variant"`
	Justify   Justify   `validate:"variant"`
	Children  []element.Component
}

// Validate checks the variants of the container and of any child that can validate itself.
func (c Container) Validate() error {
	if err := styles.Validate("container", c); err != nil {
		return err
	}
	return validateChildren(c.Children)
}

func (c Container) Render(b *element.Builder) (x any) {
	b.Div(attrs(c.ID, styles.Classes("container", c.Direction.Class(), c.Wrap.Class(), c.Justify.Class(), c.ClassName))...).R(
		element.RenderComponents(b, c.Children...),
	)
	return
}

// Item is a grid cell inside a Container.
type Item struct {
	ID        string
	ClassName string
	Layouts   []ItemLayout `validate:"dive"`
	Children  []element.Component
}

func (it Item) Validate() error {
	if err := styles.Validate("item", it); err != nil {
		return err
	}
	return validateChildren(it.Children)
}

func (it Item) Render(b *element.Builder) (x any) {
	classes := []string{"item"}
	for _, l := range it.Layouts {
		classes = append(classes, l.Class())
	}
	classes = append(classes, it.ClassName)

	b.Div(attrs(it.ID, styles.Classes(classes...))...).R(
		element.RenderComponents(b, it.Children...),
	)
	return
}

func attrs(id, class string) []string {
	out := []string{"class", class}
	if id != "" {
		out = append(out, "id", id)
	}
	return out
}

func validateChildren(children []element.Component) error {
	for _, ch := range children {
		if v, ok := ch.(interface{ Validate() error }); ok {
			if err := v.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

func joinVariants[T ~string](vals []T) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
