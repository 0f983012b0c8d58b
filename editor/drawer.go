package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iw2rmb/lined/buffer"
)

// ErrRender marks failures of the render target. They are fatal for an
// interactive session.
var ErrRender = errors.New("render target failed")

// RenderTarget is an addressable terminal grid.
//
// WriteString writes one cell per grapheme cluster starting at the current
// position and advances it. The hardware cursor is left wherever the last
// MoveTo or write put it.
type RenderTarget interface {
	MoveTo(x, y int) error
	WriteString(s string) error
	Flush() error
}

// Drawer renders the scroll window of a buffer onto a RenderTarget.
type Drawer struct {
	buf    *buffer.Buffer
	cursor *Cursor
	scroll *Scroll
	view   Viewport
	target RenderTarget
}

func NewDrawer(buf *buffer.Buffer, cursor *Cursor, scroll *Scroll, target RenderTarget) *Drawer {
	return &Drawer{buf: buf, cursor: cursor, scroll: scroll, target: target}
}

func (d *Drawer) UpdateSize(width, height int) {
	d.view = clampViewport(width, height)
}

func (d *Drawer) UpdateBuffer(buf *buffer.Buffer) {
	d.buf = buf
}

// FullDraw repaints every screen row and repositions the cursor.
func (d *Drawer) FullDraw() error {
	for sy := 0; sy < d.view.Height; sy++ {
		var row []string
		if y := d.scroll.Top + sy; y < d.buf.RowCount() {
			row = d.buf.Row(y)
		}
		if err := d.drawSpan(sy, row, 0, d.view.Width); err != nil {
			return err
		}
	}
	return d.UpdateCursorPos()
}

// DrawLineSmart repaints the part of row y that a single character insert
// or delete at the cursor can change: from one column left of the cursor to
// one column past the end of the row.
func (d *Drawer) DrawLineSmart(y int) error {
	if sy := y - d.scroll.Top; sy >= 0 && sy < d.view.Height {
		start := d.cursor.X - 1
		if start < 0 {
			start = 0
		}
		row := d.buf.Row(y)
		if err := d.drawSpan(sy, row, start, len(row)+1); err != nil {
			return err
		}
	}
	return d.UpdateCursorPos()
}

// UpdateCursorPos moves the terminal cursor to the logical cursor in screen
// coordinates and flushes the target.
func (d *Drawer) UpdateCursorPos() error {
	x, y := d.cursor.X, d.cursor.Y-d.scroll.Top
	if err := d.target.MoveTo(x, y); err != nil {
		return fmt.Errorf("%w: move cursor to (%d,%d): %w", ErrRender, x, y, err)
	}
	if err := d.target.Flush(); err != nil {
		return fmt.Errorf("%w: flush: %w", ErrRender, err)
	}
	return nil
}

// drawSpan writes columns [start, end) of row on screen row sy, padding
// past the row end with blanks. end is clipped to the viewport width.
func (d *Drawer) drawSpan(sy int, row []string, start, end int) error {
	if end > d.view.Width {
		end = d.view.Width
	}
	if start >= end {
		return nil
	}

	var sb strings.Builder
	for x := start; x < end; x++ {
		if x < len(row) {
			sb.WriteString(row[x])
		} else {
			sb.WriteByte(' ')
		}
	}

	if err := d.target.MoveTo(start, sy); err != nil {
		return fmt.Errorf("%w: move to (%d,%d): %w", ErrRender, start, sy, err)
	}
	if err := d.target.WriteString(sb.String()); err != nil {
		return fmt.Errorf("%w: write row %d: %w", ErrRender, sy, err)
	}
	return nil
}

type discardTarget struct{}

func (discardTarget) MoveTo(int, int) error     { return nil }
func (discardTarget) WriteString(string) error { return nil }
func (discardTarget) Flush() error             { return nil }
