package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/iw2rmb/lined/internal/grapheme"
)

// Screen draws onto a tcell.Screen.
type Screen struct {
	screen tcell.Screen
	x, y   int
}

func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

func (s *Screen) MoveTo(x, y int) error {
	s.x, s.y = x, y
	return nil
}

func (s *Screen) WriteString(str string) error {
	w, h := s.screen.Size()
	for _, c := range grapheme.Split(str) {
		if s.x >= 0 && s.y >= 0 && s.x < w && s.y < h {
			rs := []rune(c)
			s.screen.SetContent(s.x, s.y, rs[0], rs[1:], tcell.StyleDefault)
		}
		s.x++
	}
	return nil
}

// Flush shows the cursor at the current position and pushes pending cells
// to the terminal.
func (s *Screen) Flush() error {
	s.screen.ShowCursor(s.x, s.y)
	s.screen.Show()
	return nil
}
