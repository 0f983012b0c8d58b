package render

import (
	"bufio"
	"io"

	"github.com/muesli/termenv"

	"github.com/iw2rmb/lined/internal/grapheme"
)

// ANSI writes cursor-positioning sequences and literal text to a stream.
//
// Output is buffered until Flush. A write error is sticky: every later
// WriteString and Flush returns it.
type ANSI struct {
	w   *bufio.Writer
	out *termenv.Output

	width, height int
	x, y          int
}

// NewANSI draws onto w, a terminal of width x height cells. Call
// Resize when the terminal size changes.
func NewANSI(w io.Writer, width, height int) *ANSI {
	bw := bufio.NewWriter(w)
	a := &ANSI{
		w:   bw,
		out: termenv.NewOutput(bw, termenv.WithProfile(termenv.Ascii)),
	}
	a.Resize(width, height)
	return a
}

func (a *ANSI) Resize(width, height int) {
	a.width, a.height = width, height
}

func (a *ANSI) MoveTo(x, y int) error {
	a.x, a.y = x, y
	// The end-of-line position one past the last column is still a valid
	// cursor target; terminals clamp it to the last column.
	if x >= 0 && y >= 0 && x <= a.width && y < a.height {
		a.out.MoveCursor(y+1, x+1)
	}
	return nil
}

func (a *ANSI) WriteString(s string) error {
	if !a.inside(a.x, a.y) {
		a.x += grapheme.Count(s)
		return nil
	}
	clusters := grapheme.Split(s)
	if n := a.width - a.x; len(clusters) > n {
		clusters = clusters[:n]
	}
	a.x += len(clusters)
	_, err := a.out.WriteString(grapheme.Join(clusters))
	return err
}

func (a *ANSI) Flush() error {
	return a.w.Flush()
}

// Clear erases the screen and homes the cursor.
func (a *ANSI) Clear() error {
	a.out.ClearScreen()
	a.x, a.y = 0, 0
	return a.w.Flush()
}

func (a *ANSI) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < a.width && y < a.height
}
