// Package tui drives the form page, navbar and carousel reducers from a
// terminal. Key presses are turned into the same events the browser posts,
// so the components behave identically in both hosts.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gostyles/component"
	"gostyles/web/pages/demo"
	"gostyles/web/pages/formpage"
)

// Field is the focusable part of the form.
type Field int

const (
	FieldStandard Field = iota
	FieldUnderline
	FieldSuccess
	FieldLibrary
	FieldMultiple
	fieldCount
)

// inputSlots maps the text fields onto form page slots.
var inputSlots = []int{formpage.SlotStandard, formpage.SlotUnderline, formpage.SlotSuccess}

// Model contains the Bubbletea state for the terminal demo.
type Model struct {
	shell  *demo.Shell
	inputs []textinput.Model
	focus  Field
	cursor int
	width  int
	quit   bool
}

// NewModel mounts the demo components for variant v.
func NewModel(v demo.Variant) (Model, error) {
	shell, err := demo.NewShell(v, component.Options{})
	if err != nil {
		return Model{}, err
	}

	m := Model{shell: shell}
	for range inputSlots {
		ti := textinput.New()
		ti.Placeholder = "test"
		ti.Prompt = ""
		ti.CharLimit = 256
		m.inputs = append(m.inputs, ti)
	}
	m.inputs[0].Focus()
	return m, nil
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Shell exposes the mounted components.
func (m Model) Shell() *demo.Shell { return m.shell }

// Focus reports the focused field.
func (m Model) Focus() Field { return m.focus }

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool { return m.quit }

func (m *Model) setFocus(f Field) {
	m.focus = (f + fieldCount) % fieldCount
	for i := range m.inputs {
		if Field(i) == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}
