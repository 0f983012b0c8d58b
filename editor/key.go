package editor

import "strings"

// Key is one decoded key event.
//
// Char carries the grapheme a printable key produces; Name is the symbolic
// key ("up", "backspace", "return", or a letter when a modifier is held).
type Key struct {
	Char  string
	Name  string
	Ctrl  bool
	Meta  bool
	Shift bool
}

// String renders k the way key bindings spell it, for example "ctrl+s",
// "alt+left" or "a".
func (k Key) String() string {
	name := k.Name
	if name == "" {
		name = k.Char
	}
	if !k.Ctrl && !k.Meta && !k.Shift {
		return name
	}

	var sb strings.Builder
	if k.Ctrl {
		sb.WriteString("ctrl+")
	}
	if k.Meta {
		sb.WriteString("alt+")
	}
	if k.Shift {
		sb.WriteString("shift+")
	}
	sb.WriteString(name)
	return sb.String()
}
