package editor

// Cursor is the logical edit position: column X, row Y.
//
// Collaborators keep 0 <= Y < RowCount() and 0 <= X <= RowLen(Y).
type Cursor struct {
	X int
	Y int
}

// Scroll is the buffer row shown on the first screen row.
type Scroll struct {
	Top int
}

// Viewport is the visible terminal grid in cells.
type Viewport struct {
	Width  int
	Height int
}

func clampViewport(w, h int) Viewport {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Viewport{Width: w, Height: h}
}
