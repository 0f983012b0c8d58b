package editor

// ChangeEvent describes editor state after an event that changed it.
type ChangeEvent struct {
	Version  uint64
	Cursor   Cursor
	Scroll   int
	Modified bool
}

func (e *Editor) changeState() ChangeEvent {
	return ChangeEvent{
		Version:  e.buf.Version(),
		Cursor:   e.cursor,
		Scroll:   e.scroll.Top,
		Modified: e.Modified(),
	}
}

func (e *Editor) emitChange(before ChangeEvent) {
	if e.cfg.OnChange == nil {
		return
	}
	after := e.changeState()
	if after == before {
		return
	}
	e.cfg.OnChange(after)
}
