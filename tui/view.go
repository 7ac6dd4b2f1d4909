package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gostyles/components/navbar"
	"gostyles/styles"
	"gostyles/web/pages/demo"
	"gostyles/web/pages/formpage"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Width(20)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	focusMark    = lipgloss.NewStyle().Bold(true).Render("›")
)

var inputLabels = []string{"standard input", "underline input", "Success input type"}
var inputPalettes = []styles.Palette{styles.Standard, styles.Standard, styles.Success}

// View renders the model.
func (m Model) View() string {
	if m.quit {
		return ""
	}

	sections := []string{
		m.viewNavbar(),
		headingStyle.Render("Form Component"),
		m.viewInputs(),
		m.viewSelects(),
		m.viewCarousel(),
		mutedStyle.Render("tab focus · ←/→ library · space toggle · ctrl+n menu · pgup/pgdn slides · esc quit"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewNavbar() string {
	cfg := m.shell.Navbar.Config()
	bar := styles.Terminal(cfg.Palette, cfg.Style)
	if m.width > 0 {
		bar = bar.Width(m.width)
	}

	items := make([]string, 0, len(cfg.Children))
	for _, ch := range cfg.Children {
		if it, ok := ch.(navbar.Item); ok {
			items = append(items, it.Text)
		}
	}

	line := "≡  " + strings.Join(items, "   ")
	if !m.shell.Navbar.State().MenuOpen {
		line = "≡"
	}
	return bar.Render(line)
}

func (m Model) viewInputs() string {
	values := m.shell.Form.State().Values
	width := styles.TerminalWidth(m.shell.Variant().Size)

	rows := make([]string, 0, len(m.inputs))
	for i, in := range m.inputs {
		in.Width = width
		field := styles.Terminal(inputPalettes[i], styles.Outline).Render(in.View())
		if i == int(FieldUnderline) {
			field = lipgloss.NewStyle().Underline(true).Render(in.View())
		}
		row := lipgloss.JoinHorizontal(lipgloss.Center,
			m.mark(Field(i)), labelStyle.Render(inputLabels[i]), field,
			mutedStyle.Render("  Value: "+values[inputSlots[i]]))
		rows = append(rows, row)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewSelects() string {
	s := m.shell.Form.State()

	library := s.Values[formpage.SlotLibrary]
	shown := "Select library"
	for _, o := range formpage.Libraries {
		if o.Value == library {
			shown = o.Label
		}
	}
	single := lipgloss.JoinHorizontal(lipgloss.Center,
		m.mark(FieldLibrary), labelStyle.Render("library"), "‹ "+shown+" ›",
		mutedStyle.Render("  Value: "+library))

	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, m.mark(FieldMultiple), labelStyle.Render("Select multiple library"))}
	for i, o := range formpage.Libraries {
		box := "[ ]"
		if slices.Contains(s.MultipleValues, o.Value) {
			box = "[x]"
		}
		cursor := "  "
		if m.focus == FieldMultiple && i == m.cursor {
			cursor = "> "
		}
		lines = append(lines, "   "+cursor+box+" "+o.Label)
	}
	lines = append(lines, mutedStyle.Render(fmt.Sprintf("   Value: %q", s.MultipleValues)))

	return lipgloss.JoinVertical(lipgloss.Left, "", single, "", strings.Join(lines, "\n"))
}

func (m Model) viewCarousel() string {
	s := m.shell.Carousel.State()
	slide := demo.Slides[s.Active]
	box := styles.Terminal(m.shell.Variant().Palette, styles.Outline).Width(styles.TerminalWidth(styles.Big))
	dots := make([]string, s.Count)
	for i := range dots {
		dots[i] = "○"
		if i == s.Active {
			dots[i] = "●"
		}
	}
	body := lipgloss.JoinVertical(lipgloss.Center, slide.Title, mutedStyle.Render(slide.Caption), strings.Join(dots, " "))
	return lipgloss.JoinVertical(lipgloss.Left, "", "‹ "+box.Render(body)+" ›")
}

func (m Model) mark(f Field) string {
	if m.focus == f {
		return focusMark + " "
	}
	return "  "
}
