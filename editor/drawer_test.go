package editor

import (
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/iw2rmb/lined/buffer"
	"github.com/iw2rmb/lined/render"
)

var (
	_ RenderTarget = (*render.Grid)(nil)
	_ RenderTarget = (*render.Screen)(nil)
	_ RenderTarget = (*render.ANSI)(nil)
)

func newTestDrawer(buf *buffer.Buffer, c *Cursor, s *Scroll, width, height int) (*Drawer, *render.Grid) {
	g := render.NewGrid(width, height)
	d := NewDrawer(buf, c, s, g)
	d.UpdateSize(width, height)
	return d, g
}

func fullDrawLines(t *testing.T, buf *buffer.Buffer, c Cursor, s Scroll, width, height int) []string {
	t.Helper()
	d, g := newTestDrawer(buf, &c, &s, width, height)
	if err := d.FullDraw(); err != nil {
		t.Fatalf("FullDraw: %v", err)
	}
	return g.Lines()
}

func TestDrawer_FullDraw_PadsRowsAndBlanksBelowBuffer(t *testing.T) {
	buf := buffer.New("ab\ncdef\ng")
	c, s := &Cursor{X: 1, Y: 1}, &Scroll{}
	d, g := newTestDrawer(buf, c, s, 3, 4)

	if err := d.FullDraw(); err != nil {
		t.Fatalf("FullDraw: %v", err)
	}
	want := []string{"ab ", "cde", "g  ", "   "}
	if got := g.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("lines: got %q, want %q", got, want)
	}
	if x, y := g.Cursor(); x != 1 || y != 1 {
		t.Fatalf("cursor: got (%d,%d), want (1,1)", x, y)
	}
	if got := g.Flushes(); got != 1 {
		t.Fatalf("flushes: got %d, want 1", got)
	}
}

func TestDrawer_FullDraw_UsesScrollWindow(t *testing.T) {
	buf := buffer.New("ab\ncdef\ng")
	c, s := &Cursor{X: 0, Y: 2}, &Scroll{Top: 1}
	d, g := newTestDrawer(buf, c, s, 3, 4)

	if err := d.FullDraw(); err != nil {
		t.Fatalf("FullDraw: %v", err)
	}
	want := []string{"cde", "g  ", "   ", "   "}
	if got := g.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("lines: got %q, want %q", got, want)
	}
	if x, y := g.Cursor(); x != 0 || y != 1 {
		t.Fatalf("cursor: got (%d,%d), want (0,1)", x, y)
	}
}

func TestDrawer_FullDraw_OverwritesStaleCells(t *testing.T) {
	buf := buffer.New("long")
	c, s := &Cursor{}, &Scroll{}
	d, g := newTestDrawer(buf, c, s, 5, 1)
	if err := d.FullDraw(); err != nil {
		t.Fatalf("FullDraw: %v", err)
	}

	d.UpdateBuffer(buffer.New("x"))
	if err := d.FullDraw(); err != nil {
		t.Fatalf("FullDraw: %v", err)
	}
	if got, want := g.Line(0), "x    "; got != want {
		t.Fatalf("line: got %q, want %q", got, want)
	}
}

func TestDrawer_DrawLineSmart_AfterInsert(t *testing.T) {
	buf := buffer.New("abc")
	c, s := &Cursor{X: 1}, &Scroll{}
	d, g := newTestDrawer(buf, c, s, 5, 1)
	if err := d.FullDraw(); err != nil {
		t.Fatalf("FullDraw: %v", err)
	}

	buf.InsertChar(0, 1, "X")
	c.X = 2
	g.ResetStats()
	if err := d.DrawLineSmart(0); err != nil {
		t.Fatalf("DrawLineSmart: %v", err)
	}

	if got, want := g.Line(0), "aXbc "; got != want {
		t.Fatalf("line: got %q, want %q", got, want)
	}
	// Columns 1 through 4: the inserted cell, the shifted tail and one blank.
	if got := g.Writes(); got != 4 {
		t.Fatalf("writes: got %d, want 4", got)
	}
	if x, y := g.Cursor(); x != 2 || y != 0 {
		t.Fatalf("cursor: got (%d,%d), want (2,0)", x, y)
	}
}

func TestDrawer_DrawLineSmart_AfterDelete(t *testing.T) {
	buf := buffer.New("abcd")
	c, s := &Cursor{X: 2}, &Scroll{}
	d, g := newTestDrawer(buf, c, s, 6, 1)
	if err := d.FullDraw(); err != nil {
		t.Fatalf("FullDraw: %v", err)
	}

	buf.RemoveChar(0, 1)
	c.X = 1
	if err := d.DrawLineSmart(0); err != nil {
		t.Fatalf("DrawLineSmart: %v", err)
	}
	if got, want := g.Line(0), "acd   "; got != want {
		t.Fatalf("line: got %q, want %q", got, want)
	}
}

func TestDrawer_DrawLineSmart_RowOutsideWindowOnlyMovesCursor(t *testing.T) {
	buf := buffer.New("a\nb\nc")
	c, s := &Cursor{X: 0, Y: 1}, &Scroll{Top: 1}
	d, g := newTestDrawer(buf, c, s, 2, 2)

	if err := d.DrawLineSmart(0); err != nil {
		t.Fatalf("DrawLineSmart: %v", err)
	}
	if got := g.Writes(); got != 0 {
		t.Fatalf("writes: got %d, want 0", got)
	}
	if x, y := g.Cursor(); x != 0 || y != 0 {
		t.Fatalf("cursor: got (%d,%d), want (0,0)", x, y)
	}
}

func TestDrawer_DrawLineSmart_MatchesFullDraw(t *testing.T) {
	const width = 8
	rng := rand.New(rand.NewSource(3))
	alphabet := []string{"a", "b", "c", "d", "e\u0301", "\u00e9"}

	buf := buffer.New("")
	c, s := &Cursor{}, &Scroll{}
	d, g := newTestDrawer(buf, c, s, width, 1)
	if err := d.FullDraw(); err != nil {
		t.Fatalf("FullDraw: %v", err)
	}

	for step := 0; step < 500; step++ {
		n := buf.RowLen(0)
		switch {
		case rng.Intn(3) > 0 && n < width:
			c.X = rng.Intn(n + 1)
			buf.InsertChar(0, c.X, alphabet[rng.Intn(len(alphabet))])
			c.X++
		case n > 0:
			x := 1 + rng.Intn(n)
			buf.RemoveChar(0, x-1)
			c.X = x - 1
		default:
			continue
		}
		if err := d.DrawLineSmart(0); err != nil {
			t.Fatalf("step %d: DrawLineSmart: %v", step, err)
		}
		want := fullDrawLines(t, buf, *c, *s, width, 1)
		if got := g.Lines(); !reflect.DeepEqual(got, want) {
			t.Fatalf("step %d: smart %q, full %q (row %q)", step, got, want, strings.Join(buf.Row(0), ""))
		}
	}
}

type failingTarget struct {
	render.Grid
	err error
}

func (f *failingTarget) WriteString(string) error { return f.err }

func TestDrawer_WrapsTargetErrors(t *testing.T) {
	boom := errors.New("boom")
	buf := buffer.New("ab")
	c, s := &Cursor{}, &Scroll{}
	d := NewDrawer(buf, c, s, &failingTarget{err: boom})
	d.UpdateSize(2, 1)

	err := d.FullDraw()
	if !errors.Is(err, ErrRender) {
		t.Fatalf("error: got %v, want ErrRender", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("error: got %v, want wrapped target error", err)
	}
}

func TestDrawer_ZeroViewportWritesNothing(t *testing.T) {
	buf := buffer.New("ab")
	c, s := &Cursor{}, &Scroll{}
	d, g := newTestDrawer(buf, c, s, 0, 0)
	if err := d.FullDraw(); err != nil {
		t.Fatalf("FullDraw: %v", err)
	}
	if got := g.Writes(); got != 0 {
		t.Fatalf("writes: got %d, want 0", got)
	}
}
