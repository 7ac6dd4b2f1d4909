// Package formpage is the form demo page: three text inputs, a single
// select and a multi-select, each echoing its current value.
package formpage

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/rohanthewiz/element"

	"gostyles/component"
	"gostyles/components/forms"
	"gostyles/components/layouts"
	"gostyles/event"
	"gostyles/styles"
	"gostyles/web/pages/comps"
)

// Slots is the number of value slots the page keeps.
const Slots = 50

// Slot indexes used by the rendered controls.
const (
	SlotStandard  = 0
	SlotUnderline = 1
	SlotSuccess   = 2
	SlotLibrary   = 3
)

// Targets raised by the page.
const (
	inputPrefix    = "input-"
	selectPrefix   = "select-"
	TargetMultiple = "multi-select"
)

// InputTarget is the target name of the text input bound to slot i.
func InputTarget(i int) string { return inputPrefix + strconv.Itoa(i) }

// SelectTarget is the target name of the single select bound to slot i.
func SelectTarget(i int) string { return selectPrefix + strconv.Itoa(i) }

// Libraries are the choices offered by both selects.
var Libraries = []forms.SelectOption{
	{Value: "yew", Label: "Yew"},
	{Value: "yew_styles", Label: "Yew Styles"},
	{Value: "yew_prism", Label: "Yew prism"},
}

// Config is empty: the page takes no parameters, so reconfiguring never re-renders.
type Config struct{}

func (Config) Equal(Config) bool { return true }
func (Config) Validate() error   { return nil }

// State holds the slot values and the current multi-select result.
type State struct {
	Values         []string `json:"values"`
	MultipleValues []string `json:"multiple_values"`
}

// Msg is the page message union.
type Msg interface{ isFormMsg() }

// InputChanged sets a slot from a text input.
type InputChanged struct {
	Index int
	Value string
}

// SelectChanged sets a slot from a single select.
type SelectChanged struct {
	Index int
	Value string
}

// MultipleSelected replaces the multi-select result.
type MultipleSelected struct {
	Values []string
}

func (InputChanged) isFormMsg()     {}
func (SelectChanged) isFormMsg()    {}
func (MultipleSelected) isFormMsg() {}

// FormPage implements component.Reducer.
type FormPage struct{}

// Host is a mounted form page.
type Host = component.Host[Config, State, Msg]

// New mounts a form page called name.
func New(name string, opts component.Options) (*Host, error) {
	return component.New[Config, State, Msg](name, FormPage{}, Config{}, opts)
}

func (FormPage) Name() string { return "form-page" }

func (FormPage) Init(Config) State {
	return State{Values: make([]string, Slots), MultipleValues: []string{}}
}

func (FormPage) Fold(s State, msg Msg) (State, bool) {
	switch m := msg.(type) {
	case InputChanged:
		return setSlot(s, m.Index, m.Value)
	case SelectChanged:
		return setSlot(s, m.Index, m.Value)
	case MultipleSelected:
		values := slices.Clone(m.Values)
		if values == nil {
			values = []string{}
		}
		s.MultipleValues = values
		return s, true
	}
	return s, false
}

func setSlot(s State, i int, v string) (State, bool) {
	if i < 0 || i >= len(s.Values) {
		return s, false
	}
	s.Values = slices.Clone(s.Values)
	s.Values[i] = v
	return s, true
}

func (FormPage) Adapt(_ Config, target string, ev event.Event) (Msg, component.Adapted) {
	switch e := ev.(type) {
	case event.Input:
		if i, ok := slotOf(target, inputPrefix); ok {
			return InputChanged{Index: i, Value: e.Value}, component.Message
		}
	case event.Select:
		if target == TargetMultiple {
			return MultipleSelected{Values: event.SelectedValues(e.Options)}, component.Message
		}
		if i, ok := slotOf(target, selectPrefix); ok {
			return SelectChanged{Index: i, Value: e.Value}, component.Message
		}
	case event.Click, event.Unknown:
	}
	return nil, component.Unexpected
}

func slotOf(target, prefix string) (int, bool) {
	rest, ok := strings.CutPrefix(target, prefix)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(rest)
	if err != nil || i < 0 || i >= Slots {
		return 0, false
	}
	return i, true
}

// textInput describes one of the demo text inputs.
type textInput struct {
	label     string
	slot      int
	palette   styles.Palette
	size      styles.Size
	underline bool
}

var textInputs = []textInput{
	{label: "standard input", slot: SlotStandard, palette: styles.Standard, size: styles.Medium},
	{label: "underline input", slot: SlotUnderline, palette: styles.Standard, underline: true},
	{label: "Success input type", slot: SlotSuccess, palette: styles.Success, size: styles.Medium},
}

func (FormPage) View(b *element.Builder, sc component.Scope, s State, _ Config) {
	full := []layouts.ItemLayout{layouts.ItXS(12)}
	third := []layouts.ItemLayout{layouts.ItL(4), layouts.ItM(6), layouts.ItXS(12)}
	half := []layouts.ItemLayout{layouts.ItM(6), layouts.ItXS(12)}

	var inputs []element.Component
	for _, ti := range textInputs {
		target := InputTarget(ti.slot)
		inputs = append(inputs, layouts.Item{Layouts: third, Children: []element.Component{
			forms.Group{Orientation: forms.Horizontal, Children: []element.Component{
				forms.Label{Text: ti.label, For: sc.ID(target)},
				forms.Input{
					ID:          sc.ID(target),
					Type:        forms.Text,
					Value:       value(s, ti.slot),
					Placeholder: "test",
					Palette:     ti.palette,
					Size:        ti.size,
					Underline:   ti.underline,
					Bind:        sc.OnInput(target),
				},
				forms.Output{Text: "Value: " + value(s, ti.slot)},
			}},
		}})
	}

	single := []forms.SelectOption{{Value: "", Label: "Select library", Disabled: true, Selected: value(s, SlotLibrary) == ""}}
	for _, o := range Libraries {
		o.Selected = o.Value == value(s, SlotLibrary)
		single = append(single, o)
	}
	multiple := []forms.SelectOption{{Value: "", Label: "Select multiple library", Disabled: true}}
	for _, o := range Libraries {
		o.Selected = slices.Contains(s.MultipleValues, o.Value)
		multiple = append(multiple, o)
	}

	selects := []element.Component{
		layouts.Item{Layouts: half, Children: []element.Component{
			forms.Group{Children: []element.Component{
				forms.Select{ID: sc.ID(SelectTarget(SlotLibrary)), Size: styles.Medium, Options: single, Bind: sc.OnChange(SelectTarget(SlotLibrary))},
				forms.Output{Text: "Value: " + value(s, SlotLibrary)},
			}},
		}},
		layouts.Item{Layouts: half, Children: []element.Component{
			forms.Group{Children: []element.Component{
				forms.Select{ID: sc.ID(TargetMultiple), Size: styles.Medium, Multiple: true, Options: multiple, Bind: sc.OnChange(TargetMultiple)},
				forms.Output{Text: fmt.Sprintf("Value: %q", s.MultipleValues)},
			}},
		}},
	}

	element.RenderComponents(b,
		layouts.Item{Layouts: full, Children: []element.Component{comps.Heading{Title: "Form Component"}}},
		layouts.Item{Layouts: full, Children: []element.Component{comps.Heading{Title: "Form input types", Level: 2}}},
		layouts.Container{Direction: layouts.Row, Wrap: layouts.Wrapped, Children: inputs},
		layouts.Container{Direction: layouts.Row, Wrap: layouts.Wrapped, Children: selects},
	)
}

func value(s State, i int) string {
	if i < len(s.Values) {
		return s.Values[i]
	}
	return ""
}
