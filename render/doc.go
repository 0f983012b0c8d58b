// Package render provides terminal grids the editor Drawer can draw into:
// an in-memory Grid, a tcell Screen and a plain ANSI stream.
//
// All targets place one grapheme cluster per cell and drop writes that fall
// outside their bounds.
package render
