package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/iw2rmb/lined/editor"
	"github.com/iw2rmb/lined/render"
)

func runTea(cfg editor.Config, stdin, stdout *os.File, _ *log.Logger) error {
	p := tea.NewProgram(editor.NewModel(cfg),
		tea.WithAltScreen(),
		tea.WithInput(stdin),
		tea.WithOutput(stdout),
	)
	final, err := p.Run()
	if err != nil {
		return err
	}
	return finalErr(final)
}

// ansiModel keeps the ANSI target sized to the terminal.
type ansiModel struct {
	editor.Model
	out *render.ANSI
}

func (m ansiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.out.Resize(ws.Width, ws.Height)
		if err := m.out.Clear(); err != nil {
			return m, tea.Quit
		}
	}
	next, cmd := m.Model.Update(msg)
	m.Model = next.(editor.Model)
	return m, cmd
}

// runANSI decodes input with Bubble Tea but draws with plain escape
// sequences, bypassing the Bubble Tea renderer.
func runANSI(cfg editor.Config, stdin, stdout *os.File, _ *log.Logger) error {
	fd := int(stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, state) }()

	w, h, err := term.GetSize(int(stdout.Fd()))
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	out := render.NewANSI(stdout, w, h)
	if err := out.Clear(); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}
	defer func() { _ = out.Clear() }()

	cfg.Target = out
	m := ansiModel{Model: editor.NewModel(cfg), out: out}
	if err := m.Editor().Resize(w, h); err != nil {
		return err
	}

	p := tea.NewProgram(m,
		tea.WithInput(stdin),
		tea.WithOutput(stdout),
		tea.WithoutRenderer(),
	)
	final, err := p.Run()
	if err != nil {
		return err
	}
	return finalErr(final)
}

func finalErr(final tea.Model) error {
	var err error
	switch m := final.(type) {
	case editor.Model:
		err = m.Err()
	case ansiModel:
		err = m.Err()
	}
	if errors.Is(err, editor.ErrRender) {
		return err
	}
	return nil
}
