package strokevt

import "testing"

func TestWriteCharPlacesAtCursor(t *testing.T) {
	b := NewScreenBuffer(5, 3)
	b.MoveCursor(2, 1, false)
	b.WriteChar('x')
	rows := b.Snapshot()
	if rows[1][2] != 'x' {
		t.Fatalf("expected 'x' at (2,1), got row %q", rows[1])
	}
}

func TestCursorIncClampsAtRightEdge(t *testing.T) {
	b := NewScreenBuffer(3, 1)
	b.MoveCursor(2, 0, false)
	b.CursorInc()
	x, _ := b.Cursor()
	if x != 2 {
		t.Fatalf("expected cursor clamped at x=2, got %d", x)
	}
}

func TestNewlineScrollsOnLastRow(t *testing.T) {
	b := NewScreenBuffer(3, 2)
	b.WriteChar('a')
	b.MoveCursor(0, 1, false)
	b.WriteChar('b')
	b.Newline()
	rows := b.Snapshot()
	if rows[0][0] != 'b' {
		t.Fatalf("expected scroll to preserve 'b' on row 0, got %q", rows[0])
	}
	if rows[1] != "   " {
		t.Fatalf("expected blank bottom row after scroll, got %q", rows[1])
	}
}

func TestScrollUpPreservesContent(t *testing.T) {
	b := NewScreenBuffer(3, 3)
	b.WriteChar('1')
	b.MoveCursor(0, 1, false)
	b.WriteChar('2')
	b.MoveCursor(0, 2, false)
	b.WriteChar('3')
	b.ScrollUp()
	rows := b.Snapshot()
	if rows[0][0] != '2' || rows[1][0] != '3' {
		t.Fatalf("expected rows shifted up, got %v", rows)
	}
	if rows[2] != "   " {
		t.Fatalf("expected blank new bottom row, got %q", rows[2])
	}
}

func TestMoveCursorRelativeClampsAbsoluteExact(t *testing.T) {
	b := NewScreenBuffer(4, 4)
	b.MoveCursor(10, 10, true)
	x, y := b.Cursor()
	if x != 3 || y != 3 {
		t.Fatalf("expected relative move clamped to (3,3), got (%d,%d)", x, y)
	}
	b.MoveCursor(1, 1, false)
	x, y = b.Cursor()
	if x != 1 || y != 1 {
		t.Fatalf("expected absolute move exact to (1,1), got (%d,%d)", x, y)
	}
}

func TestEraseLineModes(t *testing.T) {
	b := NewScreenBuffer(5, 1)
	for i := 0; i < 5; i++ {
		b.MoveCursor(i, 0, false)
		b.WriteChar(byte('a' + i))
	}
	b.MoveCursor(2, 0, false)
	b.EraseLine(0)
	if got := b.Snapshot()[0]; got != "ab   " {
		t.Fatalf("mode 0: expected %q, got %q", "ab   ", got)
	}

	b2 := NewScreenBuffer(5, 1)
	for i := 0; i < 5; i++ {
		b2.MoveCursor(i, 0, false)
		b2.WriteChar(byte('a' + i))
	}
	b2.MoveCursor(2, 0, false)
	b2.EraseLine(1)
	if got := b2.Snapshot()[0]; got != "   de" {
		t.Fatalf("mode 1: expected %q, got %q", "   de", got)
	}

	b3 := NewScreenBuffer(5, 1)
	for i := 0; i < 5; i++ {
		b3.MoveCursor(i, 0, false)
		b3.WriteChar(byte('a' + i))
	}
	b3.EraseLine(2)
	if got := b3.Snapshot()[0]; got != "     " {
		t.Fatalf("mode 2: expected blank, got %q", got)
	}
}

func TestEraseDisplayModesAreIndependent(t *testing.T) {
	fill := func() *ScreenBuffer {
		b := NewScreenBuffer(3, 3)
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				b.MoveCursor(x, y, false)
				b.WriteChar('x')
			}
		}
		return b
	}

	b0 := fill()
	b0.MoveCursor(1, 1, false)
	b0.EraseDisplay(0)
	rows := b0.Snapshot()
	if rows[0] != "xxx" {
		t.Fatalf("mode 0 must not touch rows above cursor, got %q", rows[0])
	}
	if rows[1] != "x  " {
		t.Fatalf("mode 0 row: expected %q, got %q", "x  ", rows[1])
	}
	if rows[2] != "   " {
		t.Fatalf("mode 0 must blank rows below cursor, got %q", rows[2])
	}

	b1 := fill()
	b1.MoveCursor(1, 1, false)
	b1.EraseDisplay(1)
	rows = b1.Snapshot()
	if rows[0] != "   " {
		t.Fatalf("mode 1 must blank rows above cursor, got %q", rows[0])
	}
	if rows[1] != "  x" {
		t.Fatalf("mode 1 row: expected %q, got %q", "  x", rows[1])
	}
	if rows[2] != "xxx" {
		t.Fatalf("mode 1 must not touch rows below cursor, got %q", rows[2])
	}

	b2 := fill()
	b2.EraseDisplay(2)
	for _, r := range b2.Snapshot() {
		if r != "   " {
			t.Fatalf("mode 2 must blank everything, got %q", r)
		}
	}
}

func TestReportCursorIsOneBased(t *testing.T) {
	b := NewScreenBuffer(10, 10)
	b.MoveCursor(3, 4, false)
	row, col := b.ReportCursor()
	if row != 5 || col != 4 {
		t.Fatalf("expected 1-based (5,4), got (%d,%d)", row, col)
	}
}

func TestResizePreservesOverlapAndClampsCursor(t *testing.T) {
	b := NewScreenBuffer(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			b.MoveCursor(x, y, false)
			b.WriteChar(byte('0' + y))
		}
	}
	b.MoveCursor(3, 3, false)
	b.Resize(2, 2)
	rows := b.Snapshot()
	if rows[0] != "00" || rows[1] != "11" {
		t.Fatalf("expected overlapping top-left preserved, got %v", rows)
	}
	x, y := b.Cursor()
	if x != 1 || y != 1 {
		t.Fatalf("expected cursor clamped into new bounds, got (%d,%d)", x, y)
	}
}
