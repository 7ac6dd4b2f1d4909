package tui

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"gostyles/components/carousel"
	"gostyles/components/forms"
	"gostyles/components/navbar"
	"gostyles/event"
	"gostyles/web/pages/formpage"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if int(m.focus) < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quit = true
		return m, tea.Quit
	case tea.KeyTab, tea.KeyDown:
		if msg.Type == tea.KeyTab || m.focus != FieldMultiple {
			m.setFocus(m.focus + 1)
			return m, nil
		}
	case tea.KeyShiftTab, tea.KeyUp:
		if msg.Type == tea.KeyShiftTab || m.focus != FieldMultiple {
			m.setFocus(m.focus - 1)
			return m, nil
		}
	case tea.KeyCtrlN:
		m.shell.Navbar.Handle(navbar.TargetMenu, event.Click{})
		return m, nil
	case tea.KeyPgUp:
		m.shell.Controls.Handle(carousel.TargetPrev, event.Click{})
		return m, nil
	case tea.KeyPgDown:
		m.shell.Controls.Handle(carousel.TargetNext, event.Click{})
		return m, nil
	}

	switch {
	case int(m.focus) < len(m.inputs):
		return m.updateInput(msg)
	case m.focus == FieldLibrary:
		return m.updateLibrary(msg), nil
	default:
		return m.updateMultiple(msg), nil
	}
}

// updateInput feeds the key to the focused text input and reports the new
// value to the form page when it changed.
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	i := int(m.focus)
	before := m.inputs[i].Value()

	var cmd tea.Cmd
	m.inputs[i], cmd = m.inputs[i].Update(msg)

	if after := m.inputs[i].Value(); after != before {
		m.shell.Form.Handle(formpage.InputTarget(inputSlots[i]), event.Input{Value: after})
	}
	return m, cmd
}

// updateLibrary cycles the single select with left and right.
func (m Model) updateLibrary(msg tea.KeyMsg) Model {
	step := 0
	switch msg.Type {
	case tea.KeyLeft:
		step = -1
	case tea.KeyRight, tea.KeySpace:
		step = 1
	default:
		return m
	}

	current := m.shell.Form.State().Values[formpage.SlotLibrary]
	idx := slices.IndexFunc(formpage.Libraries, func(o forms.SelectOption) bool { return o.Value == current })
	n := len(formpage.Libraries)
	switch {
	case idx < 0 && step > 0:
		idx = 0
	case idx < 0:
		idx = n - 1
	default:
		idx = (idx + step + n) % n
	}

	m.shell.Form.Handle(formpage.SelectTarget(formpage.SlotLibrary), event.Select{Value: formpage.Libraries[idx].Value})
	return m
}

// updateMultiple moves the cursor with up and down and toggles the option
// under it with space.
func (m Model) updateMultiple(msg tea.KeyMsg) Model {
	n := len(formpage.Libraries)
	switch msg.Type {
	case tea.KeyUp:
		m.cursor = (m.cursor - 1 + n) % n
	case tea.KeyDown:
		m.cursor = (m.cursor + 1) % n
	case tea.KeySpace, tea.KeyEnter:
		selected := m.shell.Form.State().MultipleValues
		opts := make([]event.Option, n)
		for i, o := range formpage.Libraries {
			on := slices.Contains(selected, o.Value)
			if i == m.cursor {
				on = !on
			}
			opts[i] = event.Option{Value: o.Value, Selected: on}
		}
		m.shell.Form.Handle(formpage.TargetMultiple, event.Select{Multiple: true, Options: opts})
	}
	return m
}
