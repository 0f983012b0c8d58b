package editor

import "github.com/charmbracelet/bubbles/key"

// Intent identifies the action a key event requests.
type Intent uint8

const (
	IntentNone Intent = iota
	IntentInsert
	IntentBackspace
	IntentNewline
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
	IntentSave
	IntentSaveQuit
	IntentQuit

	intentCount
)

func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentInsert:
		return "insert"
	case IntentBackspace:
		return "backspace"
	case IntentNewline:
		return "newline"
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentSave:
		return "save"
	case IntentSaveQuit:
		return "save-quit"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// IntentFor maps k to an intent. Bindings win over printable characters, so
// ctrl+s saves instead of inserting "s".
func (km KeyMap) IntentFor(k Key) Intent {
	switch {
	case key.Matches(k, km.Up):
		return IntentUp
	case key.Matches(k, km.Down):
		return IntentDown
	case key.Matches(k, km.Left):
		return IntentLeft
	case key.Matches(k, km.Right):
		return IntentRight
	case key.Matches(k, km.Backspace):
		return IntentBackspace
	case key.Matches(k, km.Newline):
		return IntentNewline
	case key.Matches(k, km.Save):
		return IntentSave
	case key.Matches(k, km.SaveQuit):
		return IntentSaveQuit
	case key.Matches(k, km.Quit):
		return IntentQuit
	case k.Char != "":
		return IntentInsert
	default:
		return IntentNone
	}
}

type intentHandler func(e *Editor, k Key) error

// Every intent below intentCount has exactly one handler.
var intentHandlers = [intentCount]intentHandler{
	IntentNone:      (*Editor).ignore,
	IntentInsert:    (*Editor).insert,
	IntentBackspace: (*Editor).backspace,
	IntentNewline:   (*Editor).newline,
	IntentUp:        (*Editor).moveUp,
	IntentDown:      (*Editor).moveDown,
	IntentLeft:      (*Editor).moveLeft,
	IntentRight:     (*Editor).moveRight,
	IntentSave:      (*Editor).save,
	IntentSaveQuit:  (*Editor).saveQuit,
	IntentQuit:      (*Editor).quit,
}
