package buffer

// AllocRow ensures a row exists at y. It is a no-op for existing rows and
// appends an empty row when y == RowCount(). Larger indices would leave a
// gap and panic.
func (b *Buffer) AllocRow(y int) {
	if y >= 0 && y < len(b.rows) {
		return
	}
	if y != len(b.rows) {
		panic(&RangeError{Op: "AllocRow", Row: y, Col: -1, Limit: len(b.rows) + 1})
	}
	b.rows = append(b.rows, nil)
	b.version++
}

// InsertRow inserts row at index y, shifting y and later rows down.
// y may equal RowCount() to append.
func (b *Buffer) InsertRow(y int, row []string) {
	if y < 0 || y > len(b.rows) {
		panic(&RangeError{Op: "InsertRow", Row: y, Col: -1, Limit: len(b.rows) + 1})
	}
	row = append([]string(nil), row...)
	b.rows = append(b.rows, nil)
	copy(b.rows[y+1:], b.rows[y:])
	b.rows[y] = row
	b.version++
}

// RemoveRow deletes row y and returns its content.
func (b *Buffer) RemoveRow(y int) []string {
	b.checkRow("RemoveRow", y)
	removed := b.rows[y]
	copy(b.rows[y:], b.rows[y+1:])
	b.rows[len(b.rows)-1] = nil
	b.rows = b.rows[:len(b.rows)-1]
	b.version++
	return removed
}

// ConcatRow appends suffix to the end of row y.
func (b *Buffer) ConcatRow(y int, suffix []string) {
	b.checkRow("ConcatRow", y)
	if len(suffix) == 0 {
		return
	}
	b.rows[y] = append(b.rows[y], suffix...)
	b.version++
}

// CutSuffix removes and returns the characters of row y from column fromX
// to the end of the row.
func (b *Buffer) CutSuffix(y, fromX int) []string {
	b.checkRow("CutSuffix", y)
	row := b.rows[y]
	b.checkCol("CutSuffix", y, fromX, len(row)+1)
	if fromX == len(row) {
		return nil
	}
	cut := append([]string(nil), row[fromX:]...)
	b.rows[y] = row[:fromX:fromX]
	b.version++
	return cut
}
