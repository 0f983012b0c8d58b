package buffer

import "fmt"

// RangeError is the panic value for out-of-range row or column access.
type RangeError struct {
	Op    string
	Row   int
	Col   int // -1 when the operation is row-only
	Limit int // exclusive upper bound that was violated
}

func (e *RangeError) Error() string {
	if e.Col < 0 {
		return fmt.Sprintf("buffer: %s: row %d out of range [0,%d)", e.Op, e.Row, e.Limit)
	}
	return fmt.Sprintf("buffer: %s: row %d col %d out of range [0,%d)", e.Op, e.Row, e.Col, e.Limit)
}

func (b *Buffer) checkRow(op string, y int) {
	if y < 0 || y >= len(b.rows) {
		panic(&RangeError{Op: op, Row: y, Col: -1, Limit: len(b.rows)})
	}
}

// checkCol validates x against [0, limit).
func (b *Buffer) checkCol(op string, y, x, limit int) {
	if x < 0 || x >= limit {
		panic(&RangeError{Op: op, Row: y, Col: x, Limit: limit})
	}
}
