package editor

import (
	"errors"

	"github.com/iw2rmb/lined/buffer"
)

var (
	// ErrNoFile is returned by Save when the editor has no file name.
	ErrNoFile = errors.New("editor: no file name")
	// ErrNoStore is returned by Save and Load when Config.Store is nil.
	ErrNoStore = errors.New("editor: no store configured")
)

// Store is the persistence boundary.
//
// Load returns a fully built buffer or an error; it never returns partial
// content. Save must not modify the buffer.
type Store interface {
	Load(name string) (*buffer.Buffer, error)
	Save(name string, b *buffer.Buffer) error
}
