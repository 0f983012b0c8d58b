package buffer

// InsertChar inserts ch at column x of row y, shifting later characters
// right. x may equal RowLen(y).
func (b *Buffer) InsertChar(y, x int, ch string) {
	b.checkRow("InsertChar", y)
	row := b.rows[y]
	b.checkCol("InsertChar", y, x, len(row)+1)
	row = append(row, "")
	copy(row[x+1:], row[x:])
	row[x] = ch
	b.rows[y] = row
	b.version++
}

// RemoveChar removes the character at column x of row y, shifting later
// characters left.
func (b *Buffer) RemoveChar(y, x int) {
	b.checkRow("RemoveChar", y)
	row := b.rows[y]
	b.checkCol("RemoveChar", y, x, len(row))
	copy(row[x:], row[x+1:])
	row[len(row)-1] = ""
	b.rows[y] = row[:len(row)-1]
	b.version++
}
