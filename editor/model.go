package editor

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lined/internal/grapheme"
	"github.com/iw2rmb/lined/render"
)

// Model is a Bubble Tea program model driving an Editor.
//
// By default the Editor draws into an in-memory grid that View renders.
// When Config.Target is set the Model works in direct mode: the Editor
// draws to that target and View returns "".
type Model struct {
	ed     *Editor
	grid   *render.Grid
	style  Style
	direct bool

	err error
}

func NewModel(cfg Config) Model {
	m := Model{style: cfg.Style}
	if cfg.Target == nil {
		m.grid = render.NewGrid(cfg.Width, cfg.Height)
		cfg.Target = m.grid
	} else {
		m.direct = true
	}
	m.ed = New(cfg)
	return m
}

// Editor returns the driven editor.
func (m Model) Editor() *Editor { return m.ed }

// Err returns the last error that was not a quit request: a failed save is
// kept here while the program continues, a render failure also stops it.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.grid != nil {
			m.grid.Resize(msg.Width, msg.Height)
		}
		if err := m.ed.Resize(msg.Width, msg.Height); err != nil {
			m.err = err
			return m, tea.Quit
		}
	case tea.KeyMsg:
		for _, k := range KeysFromTea(msg) {
			err := m.ed.HandleKey(k)
			switch {
			case err == nil:
			case errors.Is(err, ErrQuit):
				return m, tea.Quit
			case errors.Is(err, ErrRender):
				m.err = err
				return m, tea.Quit
			default:
				m.err = err
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.direct || m.grid == nil {
		return ""
	}
	cx, cy := m.grid.Cursor()
	// Past the last column of a full row the cursor sits on the last cell.
	if w := m.grid.Width(); cx == w && w > 0 {
		cx = w - 1
	}
	lines := make([]string, m.grid.Height())
	for y := range lines {
		row := m.grid.Row(y)
		if y != cy || cx < 0 || cx >= len(row) {
			lines[y] = m.style.Text.Render(strings.Join(row, ""))
			continue
		}
		lines[y] = m.style.Text.Render(strings.Join(row[:cx], "")) +
			m.style.Cursor.Render(row[cx]) +
			m.style.Text.Render(strings.Join(row[cx+1:], ""))
	}
	return strings.Join(lines, "\n")
}

// KeysFromTea converts a Bubble Tea key message to editor keys. Rune
// messages carrying several graphemes, such as pastes, yield one key per
// grapheme; line breaks inside them become return keys.
func KeysFromTea(msg tea.KeyMsg) []Key {
	switch msg.Type {
	case tea.KeyRunes:
		clusters := grapheme.Split(string(msg.Runes))
		out := make([]Key, 0, len(clusters))
		for _, c := range clusters {
			switch c {
			case "\n", "\r", "\r\n":
				out = append(out, Key{Name: "return"})
			default:
				out = append(out, Key{Char: c, Meta: msg.Alt})
			}
		}
		return out
	case tea.KeySpace:
		return []Key{{Char: " ", Meta: msg.Alt}}
	}

	var k Key
	name := msg.String()
	for {
		switch {
		case strings.HasPrefix(name, "ctrl+"):
			k.Ctrl = true
			name = name[len("ctrl+"):]
			continue
		case strings.HasPrefix(name, "alt+"):
			k.Meta = true
			name = name[len("alt+"):]
			continue
		case strings.HasPrefix(name, "shift+"):
			k.Shift = true
			name = name[len("shift+"):]
			continue
		}
		break
	}
	if name == "enter" {
		name = "return"
	}
	k.Name = name
	return []Key{k}
}
