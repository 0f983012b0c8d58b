// Package buffer implements the in-memory row model edited by lined.
//
// A Buffer is a dense, 0-indexed sequence of rows. Each row is a dense,
// 0-indexed sequence of characters, where a character is one grapheme
// cluster assumed to occupy one terminal cell.
//
// Indices are validated by callers. Passing an out-of-range index is a
// programming error and panics with a *RangeError.
package buffer
