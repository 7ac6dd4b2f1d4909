package tui

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
	"golang.org/x/term"

	"gostyles/web/pages/demo"
)

func isTerminal(f *os.File) bool { return term.IsTerminal(int(f.Fd())) }

// Run starts the terminal demo on in and out. It refuses to start when
// either is not a terminal.
func Run(ctx context.Context, v demo.Variant, in, out *os.File) error {
	if !isTerminal(in) || !isTerminal(out) {
		return serr.New("the terminal demo needs an interactive terminal")
	}

	m, err := NewModel(v)
	if err != nil {
		return serr.Wrap(err, "failed to build terminal demo")
	}

	return run(ctx, m, in, out)
}

func run(ctx context.Context, m Model, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return serr.Wrap(err, "terminal demo failed")
	}

	if fm, ok := final.(Model); ok {
		s := fm.shell.Form.State()
		logger.Info("Terminal demo finished", "standard", s.Values[0], "library", s.Values[3],
			"selected", len(s.MultipleValues))
	}
	return nil
}
