package buffer

import (
	"strings"

	"github.com/iw2rmb/lined/internal/grapheme"
)

// Buffer is the text document: rows of grapheme clusters.
type Buffer struct {
	rows    [][]string
	version uint64
}

// New builds a buffer from text. Rows are split on '\n'.
//
// An empty text yields a buffer with one empty row.
func New(text string) *Buffer {
	return &Buffer{rows: splitLines(text)}
}

// Empty returns a buffer with no rows. Callers must AllocRow(0) before any
// cursor-relative operation.
func Empty() *Buffer {
	return &Buffer{}
}

// Text joins rows with '\n'. It is the inverse of New.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, row := range b.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			sb.WriteString(c)
		}
	}
	return sb.String()
}

// Lines returns every row as a string.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.rows))
	for i, row := range b.rows {
		out[i] = grapheme.Join(row)
	}
	return out
}

// Version increments on every effective mutation.
func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) RowCount() int { return len(b.rows) }

func (b *Buffer) RowLen(y int) int {
	b.checkRow("RowLen", y)
	return len(b.rows[y])
}

// Row returns a copy of row y.
func (b *Buffer) Row(y int) []string {
	b.checkRow("Row", y)
	return append([]string(nil), b.rows[y]...)
}

// Cell returns the character at (x, y).
func (b *Buffer) Cell(y, x int) string {
	b.checkRow("Cell", y)
	b.checkCol("Cell", y, x, len(b.rows[y]))
	return b.rows[y][x]
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	rows := make([][]string, 0, len(parts))
	for _, s := range parts {
		rows = append(rows, grapheme.Split(s))
	}
	return rows
}
