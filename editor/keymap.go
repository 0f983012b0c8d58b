package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Keys are matched against Key.String().
type KeyMap struct {
	Up, Down, Left, Right key.Binding

	Backspace key.Binding
	Newline   key.Binding

	Save, SaveQuit, Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		// Bubble Tea spells return "enter".
		Newline: key.NewBinding(key.WithKeys("return", "enter"), key.WithHelp("enter", "split line")),

		Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		SaveQuit: key.NewBinding(key.WithKeys("ctrl+x", "ctrl+c"), key.WithHelp("ctrl+x", "save and quit")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "quit")),
	}
}

// ShortHelp returns bindings for a one-line help view.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Save, km.SaveQuit, km.Quit}
}
