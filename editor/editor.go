package editor

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/iw2rmb/lined/buffer"
	"github.com/iw2rmb/lined/internal/grapheme"
)

// ErrQuit is returned by HandleKey when the key asks the host to stop.
var ErrQuit = errors.New("editor: quit")

// Editor owns one buffer, cursor, scroll, Movement and Drawer and applies
// key events to them.
type Editor struct {
	cfg  Config
	keys KeyMap
	log  *log.Logger

	file string
	buf  *buffer.Buffer

	cursor Cursor
	scroll Scroll
	view   Viewport

	movement *Movement
	drawer   *Drawer

	savedVersion uint64
}

func New(cfg Config) *Editor {
	buf := cfg.Buffer
	if buf == nil {
		buf = buffer.New(cfg.Text)
	}
	buf.AllocRow(0)

	keys := DefaultKeyMap()
	if cfg.KeyMap != nil {
		keys = *cfg.KeyMap
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	target := cfg.Target
	if target == nil {
		target = discardTarget{}
	}

	e := &Editor{
		cfg:          cfg,
		keys:         keys,
		log:          logger,
		file:         cfg.File,
		buf:          buf,
		view:         clampViewport(cfg.Width, cfg.Height),
		savedVersion: buf.Version(),
	}
	e.movement = NewMovement(e.buf, &e.cursor, &e.scroll)
	e.drawer = NewDrawer(e.buf, &e.cursor, &e.scroll, target)
	e.movement.UpdateSize(e.view.Width, e.view.Height)
	e.drawer.UpdateSize(e.view.Width, e.view.Height)
	return e
}

func (e *Editor) Buffer() *buffer.Buffer { return e.buf }
func (e *Editor) Cursor() Cursor         { return e.cursor }
func (e *Editor) Scroll() Scroll         { return e.scroll }
func (e *Editor) Viewport() Viewport     { return e.view }
func (e *Editor) File() string           { return e.file }
func (e *Editor) KeyMap() KeyMap         { return e.keys }

// Modified reports whether the buffer changed since it was created, loaded
// or saved.
func (e *Editor) Modified() bool { return e.buf.Version() != e.savedVersion }

// Draw repaints the whole viewport.
func (e *Editor) Draw() error { return e.drawer.FullDraw() }

// HandleKey applies one key event. It returns ErrQuit when the key asks the
// host to stop, errors wrapping ErrRender when drawing failed, and storage
// errors from save keys.
func (e *Editor) HandleKey(k Key) error {
	before := e.changeState()
	intent := e.keys.IntentFor(k)
	err := intentHandlers[intent](e, k)
	e.emitChange(before)
	return err
}

// Resize propagates a new terminal size and redraws.
func (e *Editor) Resize(width, height int) error {
	before := e.changeState()
	e.view = clampViewport(width, height)
	e.movement.UpdateSize(e.view.Width, e.view.Height)
	e.drawer.UpdateSize(e.view.Width, e.view.Height)
	e.movement.UpdateScroll()
	e.log.Printf("Editor: resize to %dx%d", e.view.Width, e.view.Height)
	err := e.drawer.FullDraw()
	e.emitChange(before)
	return err
}

// Load replaces the buffer with the content of name. On failure the
// current buffer, cursor and scroll are kept.
func (e *Editor) Load(name string) error {
	if e.cfg.Store == nil {
		return ErrNoStore
	}
	buf, err := e.cfg.Store.Load(name)
	if err != nil {
		e.log.Printf("Editor: Failed to load %s: %v", name, err)
		return fmt.Errorf("editor: load %s: %w", name, err)
	}

	before := e.changeState()
	buf.AllocRow(0)
	e.file = name
	e.buf = buf
	e.savedVersion = buf.Version()
	e.cursor = Cursor{}
	e.scroll = Scroll{}
	e.movement.UpdateBuffer(buf)
	e.drawer.UpdateBuffer(buf)
	e.movement.UpdateScroll()
	e.log.Printf("Editor: Loaded %s (%d rows)", name, buf.RowCount())

	err = e.drawer.FullDraw()
	e.emitChange(before)
	return err
}

// Save writes the buffer to the current file.
func (e *Editor) Save() error {
	if e.file == "" {
		return ErrNoFile
	}
	if e.cfg.Store == nil {
		return ErrNoStore
	}
	if err := e.cfg.Store.Save(e.file, e.buf); err != nil {
		e.log.Printf("Editor: Failed to save %s: %v", e.file, err)
		return fmt.Errorf("editor: save %s: %w", e.file, err)
	}
	e.savedVersion = e.buf.Version()
	e.log.Printf("Editor: Saved %s (%d rows)", e.file, e.buf.RowCount())
	return nil
}

// isEditable reports whether typing k inserts at the cursor: the cursor and
// the row must be inside the viewport width, no modifier may be held, and
// the character must fill exactly one cell.
func (e *Editor) isEditable(k Key) bool {
	if k.Ctrl || k.Meta {
		return false
	}
	if e.cursor.X >= e.view.Width {
		return false
	}
	if e.buf.RowLen(e.cursor.Y) >= e.view.Width {
		return false
	}
	return grapheme.IsSingleCell(k.Char)
}

func (e *Editor) ignore(Key) error { return nil }

func (e *Editor) insert(k Key) error {
	if !e.isEditable(k) {
		return nil
	}
	e.buf.InsertChar(e.cursor.Y, e.cursor.X, k.Char)
	e.cursor.X++
	return e.drawer.DrawLineSmart(e.cursor.Y)
}

func (e *Editor) backspace(Key) error {
	switch {
	case e.cursor.X > 0:
		e.buf.RemoveChar(e.cursor.Y, e.cursor.X-1)
		e.cursor.X--
		return e.drawer.DrawLineSmart(e.cursor.Y)
	case e.cursor.Y > 0:
		return e.removeLine()
	default:
		return nil
	}
}

// removeLine merges the cursor row into the end of the previous row.
func (e *Editor) removeLine() error {
	c := &e.cursor
	c.X = e.buf.RowLen(c.Y - 1)

	// An empty last row has nothing below it to shift, so only the cursor
	// needs repositioning.
	if c.Y == e.buf.RowCount()-1 && e.buf.RowLen(c.Y) == 0 {
		e.buf.RemoveRow(c.Y)
		c.Y--
		if e.movement.UpdateScroll() {
			return e.drawer.FullDraw()
		}
		return e.drawer.UpdateCursorPos()
	}

	c.Y--
	removed := e.buf.RemoveRow(c.Y + 1)
	e.buf.ConcatRow(c.Y, removed)
	e.movement.UpdateScroll()
	return e.drawer.FullDraw()
}

// newline splits the cursor row and moves to the start of the new row.
func (e *Editor) newline(Key) error {
	c := &e.cursor
	suffix := e.buf.CutSuffix(c.Y, c.X)
	c.Y++
	c.X = 0
	e.buf.InsertRow(c.Y, suffix)
	e.movement.UpdateScroll()
	return e.drawer.FullDraw()
}

func (e *Editor) moveUp(Key) error    { return e.afterMove(e.movement.Up()) }
func (e *Editor) moveDown(Key) error  { return e.afterMove(e.movement.Down()) }
func (e *Editor) moveLeft(Key) error  { return e.afterMove(e.movement.Left()) }
func (e *Editor) moveRight(Key) error { return e.afterMove(e.movement.Right()) }

func (e *Editor) afterMove(scrolled bool) error {
	if scrolled {
		return e.drawer.FullDraw()
	}
	return e.drawer.UpdateCursorPos()
}

func (e *Editor) save(Key) error { return e.Save() }

func (e *Editor) saveQuit(Key) error {
	if e.file != "" {
		if err := e.Save(); err != nil {
			return err
		}
	}
	e.log.Printf("Editor: quit")
	return ErrQuit
}

func (e *Editor) quit(Key) error {
	e.log.Printf("Editor: quit without saving")
	return ErrQuit
}
