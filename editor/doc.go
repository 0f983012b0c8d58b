// Package editor implements the line editor core on top of the buffer
// package: cursor and scroll state, movement rules, the terminal drawer, and
// the key-driven Editor that ties them together.
//
// Editor, Movement and Drawer share one Cursor and one Scroll by pointer.
// One key event is processed at a time; every buffer mutation updates the
// cursor and scroll before the drawer reads them.
//
// Model adapts an Editor to Bubble Tea.
package editor
