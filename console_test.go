package strokevt

import "testing"

type recordingSink struct {
	glyphs []recordedGlyph
}

type recordedGlyph struct {
	ch    byte
	x, y  int
	scale float64
}

func (s *recordingSink) RenderGlyph(ch byte, x, y int, scale float64) {
	s.glyphs = append(s.glyphs, recordedGlyph{ch, x, y, scale})
}

func feed(c *Console, s string) {
	c.Put([]byte(s))
}

func TestScenarioPlainText(t *testing.T) {
	c := NewConsole(10, 3)
	feed(c, "hi")
	rows := c.active().Snapshot()
	if rows[0][:2] != "hi" {
		t.Fatalf("expected 'hi' written, got %q", rows[0])
	}
	x, y := c.active().Cursor()
	if x != 2 || y != 0 {
		t.Fatalf("expected cursor after 'hi' at (2,0), got (%d,%d)", x, y)
	}
}

func TestScenarioCursorReport(t *testing.T) {
	c := NewConsole(10, 10)
	feed(c, "\x1b[5;6H")
	feed(c, "\x1b[6n")
	resp := c.TakeCPR()
	if string(resp) != "\x1b[5;6R" {
		t.Fatalf("expected CPR response, got %q", resp)
	}
}

func TestScenarioAbsolutePositioning(t *testing.T) {
	c := NewConsole(10, 10)
	feed(c, "\x1b[3;4H")
	x, y := c.active().Cursor()
	if x != 3 || y != 2 {
		t.Fatalf("expected (3,2) zero-based from CUP 3;4, got (%d,%d)", x, y)
	}
}

func TestScenarioSingleParamCUPHomesToOrigin(t *testing.T) {
	c := NewConsole(10, 10)
	feed(c, "\x1b[5;5H")
	feed(c, "\x1b[H")
	x, y := c.active().Cursor()
	if x != 0 || y != 0 {
		t.Fatalf("expected single-param H to home to (0,0), got (%d,%d)", x, y)
	}
}

func TestScenarioEraseLineToEnd(t *testing.T) {
	c := NewConsole(5, 1)
	feed(c, "abcde")
	feed(c, "\x1b[1;3H\x1b[K")
	rows := c.active().Snapshot()
	if rows[0] != "ab   " {
		t.Fatalf("expected erase-to-end from col 3, got %q", rows[0])
	}
}

func TestScenarioAlternateScreen(t *testing.T) {
	c := NewConsole(5, 2)
	feed(c, "main")
	feed(c, "\x1b[?1049h")
	feed(c, "alt")
	primarySnap := c.screens[screenPrimary].Snapshot()
	if primarySnap[0][:4] != "main" {
		t.Fatalf("expected primary screen content preserved, got %q", primarySnap[0])
	}
	feed(c, "\x1b[?1049l")
	rows := c.active().Snapshot()
	if rows[0][:4] != "main" {
		t.Fatalf("expected primary restored after leaving alternate, got %q", rows[0])
	}
}

func TestScenarioScroll(t *testing.T) {
	c := NewConsole(3, 2)
	feed(c, "ab\n")
	feed(c, "cd\n")
	rows := c.active().Snapshot()
	if rows[0][:2] != "cd" {
		t.Fatalf("expected scroll to preserve second line, got %v", rows)
	}
}

func TestRenderSkipsBlankCells(t *testing.T) {
	c := NewConsole(3, 1)
	feed(c, "a")
	sink := &recordingSink{}
	c.Render(sink, 20)
	if len(sink.glyphs) != 1 || sink.glyphs[0].ch != 'a' {
		t.Fatalf("expected exactly one glyph for 'a', got %v", sink.glyphs)
	}
}

func TestResizeKeepsSID(t *testing.T) {
	c := NewConsole(5, 5)
	feed(c, "\x1b[?1049h")
	if c.sid != screenAlternate {
		t.Fatalf("expected alternate screen active")
	}
	c.Resize(3, 3)
	if c.sid != screenAlternate {
		t.Fatalf("expected Resize to not change sid")
	}
	w, h := c.Size()
	if w != 3 || h != 3 {
		t.Fatalf("expected active screen resized, got %dx%d", w, h)
	}
}

func TestUnknownPrivateModeIsDropped(t *testing.T) {
	c := NewConsole(5, 5)
	feed(c, "\x1b[?25h")
	if c.sid != screenPrimary {
		t.Fatalf("unrelated private mode must not toggle alternate screen")
	}
	diags := c.TakeDiagnostics()
	if len(diags) != 1 || diags[0].Kind != "unknown-private-mode" {
		t.Fatalf("expected one unknown-private-mode diagnostic, got %v", diags)
	}
}

func TestUnknownCSIFinalByteIsDiagnosed(t *testing.T) {
	c := NewConsole(5, 5)
	feed(c, "\x1b[5z")
	diags := c.TakeDiagnostics()
	if len(diags) != 1 || diags[0].Kind != "unknown-csi" {
		t.Fatalf("expected one unknown-csi diagnostic, got %v", diags)
	}
}
