package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/iw2rmb/lined/editor"
	"github.com/iw2rmb/lined/render"
)

var newScreen = tcell.NewScreen

func runTcell(cfg editor.Config, _, _ *os.File, logger *log.Logger) error {
	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	cfg.Target = render.NewScreen(screen)
	ed := editor.New(cfg)
	w, h := screen.Size()
	if err := ed.Resize(w, h); err != nil {
		return err
	}
	return runLoop(screen.PollEvent, screen, ed, logger)
}

// runLoop feeds events to ed until a quit key, a render failure or the end
// of the event stream.
func runLoop(poll func() tcell.Event, screen tcell.Screen, ed *editor.Editor, logger *log.Logger) error {
	for {
		switch ev := poll().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			w, h := ev.Size()
			if err := ed.Resize(w, h); err != nil {
				return err
			}
		case *tcell.EventKey:
			k, ok := keyFromTcell(ev)
			if !ok {
				continue
			}
			err := ed.HandleKey(k)
			switch {
			case err == nil:
			case errors.Is(err, editor.ErrQuit):
				return nil
			case errors.Is(err, editor.ErrRender):
				return err
			default:
				logger.Printf("lined: %v", err)
				_ = screen.Beep()
			}
		}
	}
}

var tcellNames = map[tcell.Key]string{
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyEnter:      "return",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyTab:        "tab",
	tcell.KeyEscape:     "esc",
	tcell.KeyDelete:     "delete",
	tcell.KeyInsert:     "insert",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdown",
}

// keyFromTcell decodes ev. Keys that share a control code with a letter
// (backspace, tab, return) are reported by name without Ctrl.
func keyFromTcell(ev *tcell.EventKey) (editor.Key, bool) {
	mods := ev.Modifiers()
	k := editor.Key{
		Ctrl:  mods&tcell.ModCtrl != 0,
		Meta:  mods&tcell.ModAlt != 0,
		Shift: mods&tcell.ModShift != 0,
	}

	key := ev.Key()
	if key == tcell.KeyRune {
		k.Char = string(ev.Rune())
		k.Shift = false
		if k.Ctrl {
			k.Name = k.Char
		}
		return k, true
	}
	if name, ok := tcellNames[key]; ok {
		k.Name = name
		switch key {
		case tcell.KeyEnter, tcell.KeyBackspace, tcell.KeyTab:
			k.Ctrl = false
		}
		return k, true
	}
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		k.Name = string(rune('a' + int(key-tcell.KeyCtrlA)))
		k.Ctrl = true
		return k, true
	}
	return editor.Key{}, false
}
