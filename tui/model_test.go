package tui

import (
	"context"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gostyles/styles"
	"gostyles/web/pages/demo"
)

func newModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(demo.Variant{Palette: styles.Primary})
	require.NoError(t, err)
	return m
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTypingUpdatesFocusedSlot(t *testing.T) {
	m := send(t, newModel(t), runes("t"), runes("e"), runes("s"), runes("t"))

	values := m.Shell().Form.State().Values
	require.Equal(t, "test", values[0])
	for i := 1; i < len(values); i++ {
		assert.Empty(t, values[i], "slot %d", i)
	}
	assert.Contains(t, m.View(), "Value: test")
}

func TestTabMovesFocus(t *testing.T) {
	m := send(t, newModel(t), tea.KeyMsg{Type: tea.KeyTab}, runes("x"))
	assert.Equal(t, FieldUnderline, m.Focus())
	assert.Equal(t, "x", m.Shell().Form.State().Values[1])

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, FieldMultiple, m.Focus(), "focus wraps around")
}

func TestLibrarySelect(t *testing.T) {
	m := send(t, newModel(t), tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, FieldLibrary, m.Focus())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "yew", m.Shell().Form.State().Values[3])
	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "yew_prism", m.Shell().Form.State().Values[3])
}

func TestMultipleToggles(t *testing.T) {
	m := newModel(t)
	m.setFocus(FieldMultiple)

	m = send(t, m,
		tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeySpace},
		tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, []string{"yew_styles", "yew_prism"}, m.Shell().Form.State().MultipleValues)

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, []string{"yew_styles"}, m.Shell().Form.State().MultipleValues)
	assert.Equal(t, FieldMultiple, m.Focus(), "arrows move the cursor, not the focus")
}

func TestMenuAndCarouselKeys(t *testing.T) {
	m := send(t, newModel(t), tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.True(t, m.Shell().Navbar.State().MenuOpen)
	assert.Contains(t, m.View(), "Carousel")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.False(t, m.Shell().Navbar.State().MenuOpen)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyPgDown}, tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 2, m.Shell().Carousel.State().Active)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 1, m.Shell().Carousel.State().Active)
	assert.Contains(t, m.View(), demo.Slides[1].Title)
}

func TestQuit(t *testing.T) {
	updated, cmd := newModel(t).Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m := updated.(Model)
	assert.True(t, m.Quitting())
	require.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestRunNeedsTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	err = Run(context.Background(), demo.Variant{}, r, w)
	assert.Error(t, err)
}
