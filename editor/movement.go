package editor

import "github.com/iw2rmb/lined/buffer"

// Movement applies directional moves to the shared cursor and keeps the
// scroll window around it.
type Movement struct {
	buf    *buffer.Buffer
	cursor *Cursor
	scroll *Scroll
	view   Viewport
}

func NewMovement(buf *buffer.Buffer, cursor *Cursor, scroll *Scroll) *Movement {
	return &Movement{buf: buf, cursor: cursor, scroll: scroll}
}

func (mv *Movement) UpdateSize(width, height int) {
	mv.view = clampViewport(width, height)
}

func (mv *Movement) UpdateBuffer(buf *buffer.Buffer) {
	mv.buf = buf
}

// Up moves one row up, snapping the column to the end of a shorter row.
// It reports whether the scroll offset changed.
func (mv *Movement) Up() (scrolled bool) {
	if mv.cursor.Y == 0 {
		return false
	}
	mv.cursor.Y--
	mv.clampColumn()
	return mv.UpdateScroll()
}

// Down moves one row down, bounded by the last row.
func (mv *Movement) Down() (scrolled bool) {
	if mv.cursor.Y >= mv.buf.RowCount()-1 {
		return false
	}
	mv.cursor.Y++
	mv.clampColumn()
	return mv.UpdateScroll()
}

// Left moves one column left. At column 0 it moves to the end of the
// previous row; at the buffer start it does nothing.
func (mv *Movement) Left() (scrolled bool) {
	c := mv.cursor
	switch {
	case c.X > 0:
		c.X--
		return false
	case c.Y > 0:
		c.Y--
		c.X = mv.buf.RowLen(c.Y)
		return mv.UpdateScroll()
	default:
		return false
	}
}

// Right moves one column right while inside the row and the viewport width,
// otherwise to the start of the next row if there is one.
func (mv *Movement) Right() (scrolled bool) {
	c := mv.cursor
	switch {
	case c.X < mv.buf.RowLen(c.Y) && c.X < mv.view.Width:
		c.X++
		return false
	case c.Y+1 < mv.buf.RowCount():
		c.Y++
		c.X = 0
		return mv.UpdateScroll()
	default:
		return false
	}
}

// UpdateScroll moves the scroll window to the nearest edge that shows the
// cursor row and reports whether Top changed. It depends only on the shared
// cursor, scroll and viewport.
func (mv *Movement) UpdateScroll() bool {
	y := mv.cursor.Y
	h := mv.view.Height
	if h < 1 {
		h = 1
	}
	top := mv.scroll.Top
	switch {
	case y < top:
		top = y
	case y > top+h-1:
		top = y - h + 1
	}
	if top < 0 {
		top = 0
	}
	if top == mv.scroll.Top {
		return false
	}
	mv.scroll.Top = top
	return true
}

func (mv *Movement) clampColumn() {
	if n := mv.buf.RowLen(mv.cursor.Y); mv.cursor.X > n {
		mv.cursor.X = n
	}
}
