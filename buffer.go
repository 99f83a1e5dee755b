// Package strokevt implements a minimal ANSI/ECMA-48 terminal emulation
// engine: a screen buffer, an escape-sequence parser, a CSI dispatcher,
// a cooperative PTY-driven I/O loop, and a keyboard-to-byte keymap.
package strokevt

// ScreenBuffer is a fixed-size grid of ASCII cells with a single cursor.
// It has no knowledge of escape sequences, PTYs, or rendering; Console
// drives it by calling its plain-text and cursor-motion methods.
type ScreenBuffer struct {
	w, h  int
	cells []byte
	cx, cy int
}

// NewScreenBuffer allocates a w x h grid with zeroed cells, cursor at
// the origin. A zero cell means "never written," distinct from the
// space character an erase operation writes explicitly; make() already
// zero-fills the backing slice, so no blanking pass is needed here.
func NewScreenBuffer(w, h int) *ScreenBuffer {
	b := &ScreenBuffer{w: w, h: h}
	b.cells = make([]byte, w*h)
	return b
}

// blankAll fills every cell with a space. Used by EraseDisplay mode 2,
// which leaves cells explicitly erased rather than never-written.
func (b *ScreenBuffer) blankAll() {
	for i := range b.cells {
		b.cells[i] = ' '
	}
}

// Size returns the buffer's fixed dimensions.
func (b *ScreenBuffer) Size() (w, h int) {
	return b.w, b.h
}

// Cursor returns the current cursor position.
func (b *ScreenBuffer) Cursor() (x, y int) {
	return b.cx, b.cy
}

func (b *ScreenBuffer) index(x, y int) int {
	return y*b.w + x
}

func (b *ScreenBuffer) clampCursor() {
	if b.cx < 0 {
		b.cx = 0
	}
	if b.cx >= b.w {
		b.cx = b.w - 1
	}
	if b.cy < 0 {
		b.cy = 0
	}
	if b.cy >= b.h {
		b.cy = b.h - 1
	}
}

// WriteChar places ch at the current cursor position without moving the
// cursor. It does not wrap, scroll, or interpret control bytes.
func (b *ScreenBuffer) WriteChar(ch byte) {
	b.cells[b.index(b.cx, b.cy)] = ch
}

// CursorInc advances the cursor one column to the right. Hitting the
// right edge is a hard clamp: there is no wrap to the next line.
func (b *ScreenBuffer) CursorInc() {
	if b.cx < b.w-1 {
		b.cx++
	}
}

// Newline moves the cursor to column 0 of the next line, scrolling the
// buffer up by one line if the cursor was already on the last row.
func (b *ScreenBuffer) Newline() {
	b.cx = 0
	if b.cy < b.h-1 {
		b.cy++
		return
	}
	b.ScrollUp()
}

// ScrollUp shifts every row up by one, discarding row 0 and blanking the
// new bottom row. The cursor position is not changed by this method; a
// caller in the middle of Newline has already moved the cursor first.
func (b *ScreenBuffer) ScrollUp() {
	copy(b.cells, b.cells[b.w:])
	for i := b.w * (b.h - 1); i < b.w*b.h; i++ {
		b.cells[i] = ' '
	}
}

// MoveCursor sets the cursor to (x, y). If relative is true, x and y are
// offsets from the current position and the result is clamped into
// bounds; if false, they are absolute and exact (out-of-range values are
// still clamped, since the buffer has no concept of an off-grid cursor).
func (b *ScreenBuffer) MoveCursor(x, y int, relative bool) {
	if relative {
		b.cx += x
		b.cy += y
	} else {
		b.cx = x
		b.cy = y
	}
	b.clampCursor()
}

// EraseLine erases part of the cursor's row. mode 0 erases from the
// cursor to the end of line, mode 1 from the start of line to the
// cursor (inclusive), mode 2 the entire line.
func (b *ScreenBuffer) EraseLine(mode int) {
	row := b.cy * b.w
	switch mode {
	case 0:
		for x := b.cx; x < b.w; x++ {
			b.cells[row+x] = ' '
		}
	case 1:
		for x := 0; x <= b.cx && x < b.w; x++ {
			b.cells[row+x] = ' '
		}
	case 2:
		for x := 0; x < b.w; x++ {
			b.cells[row+x] = ' '
		}
	}
}

// EraseDisplay erases part of the whole screen. Each mode is
// implemented independently rather than partially delegating to
// EraseLine, so mode 0/1 correctly bound only the rows strictly above
// or below the cursor's row in addition to the cursor's own row.
func (b *ScreenBuffer) EraseDisplay(mode int) {
	switch mode {
	case 0:
		b.EraseLine(0)
		for y := b.cy + 1; y < b.h; y++ {
			for x := 0; x < b.w; x++ {
				b.cells[y*b.w+x] = ' '
			}
		}
	case 1:
		b.EraseLine(1)
		for y := 0; y < b.cy; y++ {
			for x := 0; x < b.w; x++ {
				b.cells[y*b.w+x] = ' '
			}
		}
	case 2:
		b.blankAll()
	}
}

// ReportCursor returns the 1-based (row, col) cursor position as used in
// a CPR response (CSI row ; col R).
func (b *ScreenBuffer) ReportCursor() (row, col int) {
	return b.cy + 1, b.cx + 1
}

// Snapshot returns a copy of the grid as h strings of length w, row by
// row, for tests and for feeding a render sink.
func (b *ScreenBuffer) Snapshot() []string {
	rows := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		rows[y] = string(b.cells[y*b.w : (y+1)*b.w])
	}
	return rows
}

// Resize reallocates the grid to w x h, preserving the overlapping
// top-left rectangle of the previous content and clamping the cursor
// into the new bounds. This is not part of any CSI dispatch; its only
// caller is Console.Resize.
func (b *ScreenBuffer) Resize(w, h int) {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	next := make([]byte, w*h)
	for i := range next {
		next[i] = ' '
	}
	copyW := min(w, b.w)
	copyH := min(h, b.h)
	for y := 0; y < copyH; y++ {
		copy(next[y*w:y*w+copyW], b.cells[y*b.w:y*b.w+copyW])
	}
	b.cells = next
	b.w, b.h = w, h
	b.clampCursor()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
