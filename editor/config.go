package editor

import (
	"log"

	"github.com/iw2rmb/lined/buffer"
)

// Config configures an Editor.
type Config struct {
	// Initial content. Buffer wins over Text when both are set.
	Text   string
	Buffer *buffer.Buffer

	// File is the save target. Empty disables saving.
	File string

	// Initial viewport. Hosts normally call Resize once the terminal size
	// is known.
	Width, Height int

	// Target receives drawing. Nil draws nowhere.
	Target RenderTarget

	// Store loads and saves buffers.
	Store Store

	// KeyMap defaults to DefaultKeyMap().
	KeyMap *KeyMap

	// Logger defaults to a discarding logger.
	Logger *log.Logger

	// OnChange is called after an event changed the buffer, cursor or
	// scroll.
	OnChange func(ChangeEvent)

	// Style is used by Model only.
	Style Style
}
