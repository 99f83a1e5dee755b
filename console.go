package strokevt

import "fmt"

// RenderSink receives one glyph draw call per occupied cell during
// Console.Render. Console never owns a canvas itself; the sink is
// injected so the core engine stays testable without any real
// windowing or graphics dependency.
type RenderSink interface {
	RenderGlyph(ch byte, x, y int, scale float64)
}

// screenID selects which of Console's two screen buffers is active.
type screenID int

const (
	screenPrimary screenID = iota
	screenAlternate
)

// Console owns the primary and alternate screen buffers, the escape
// parser, and the CSI dispatch table. It is the only piece of the core
// engine that knows how a completed CSI sequence maps onto ScreenBuffer
// operations.
type Console struct {
	screens [2]*ScreenBuffer
	sid     screenID
	parser  *EscapeParser

	pendingCPR []byte // CPR response bytes produced by the last 'n' dispatch, drained by the IOLoop

	diagnostics []Diagnostic // non-fatal parse/dispatch events, drained by TakeDiagnostics
}

// Diagnostic is a non-fatal event Console records when it drops a
// sequence it does not recognize. Console has no logging dependency of
// its own (see SPEC_FULL.md §9's zero-import rule for the root
// package); a caller that does — typically cmd/strokevt, through
// internal/termlog — drains these with TakeDiagnostics and logs them.
type Diagnostic struct {
	Kind   string
	Detail string
}

// NewConsole allocates a Console with both screen buffers sized w x h.
func NewConsole(w, h int) *Console {
	return &Console{
		screens: [2]*ScreenBuffer{
			NewScreenBuffer(w, h),
			NewScreenBuffer(w, h),
		},
		parser: NewEscapeParser(),
	}
}

func (c *Console) active() *ScreenBuffer {
	return c.screens[c.sid]
}

// Size returns the active screen's dimensions.
func (c *Console) Size() (w, h int) {
	return c.active().Size()
}

// Resize resizes both buffers in lockstep, keeping sid unchanged.
func (c *Console) Resize(w, h int) {
	c.screens[screenPrimary].Resize(w, h)
	c.screens[screenAlternate].Resize(w, h)
}

// TakeCPR returns and clears any pending cursor-position-report bytes
// produced by a CSI n dispatch since the last call.
func (c *Console) TakeCPR() []byte {
	out := c.pendingCPR
	c.pendingCPR = nil
	return out
}

// TakeDiagnostics returns and clears any diagnostic events recorded
// since the last call.
func (c *Console) TakeDiagnostics() []Diagnostic {
	out := c.diagnostics
	c.diagnostics = nil
	return out
}

func (c *Console) diagnose(kind, detail string) {
	c.diagnostics = append(c.diagnostics, Diagnostic{Kind: kind, Detail: detail})
}

// PutByte feeds one PTY byte through the escape parser and applies its
// effect to the active screen buffer.
func (c *Console) PutByte(b byte) {
	res := c.parser.Feed(b)
	switch {
	case res.printable:
		buf := c.active()
		buf.WriteChar(res.ch)
		buf.CursorInc()
	case res.isControl:
		c.applyControl(res.ch)
	case res.csi != nil:
		c.dispatchCSI(res.csi)
	}
}

// Put feeds a whole chunk of PTY bytes through PutByte. All bytes from
// one tick's PTY read are drained before the caller renders, so no
// half-applied escape sequence is ever visible.
func (c *Console) Put(data []byte) {
	for _, b := range data {
		c.PutByte(b)
	}
}

func (c *Console) applyControl(ch byte) {
	switch ch {
	case '\n':
		c.active().Newline()
	case '\r':
		buf := c.active()
		_, y := buf.Cursor()
		buf.MoveCursor(0, y, false)
	case '\b':
		buf := c.active()
		buf.MoveCursor(-1, 0, true)
	}
}

// dispatchCSI applies one completed CSI sequence per the final-byte
// dispatch table: A/B/C/D cursor motion, H/f absolute positioning, J
// erase display, K erase line, m (accepted, no attributes to apply), n
// cursor position report, h/l mode toggles (only DEC private 1049 has
// an effect), anything else is recorded via diagnose and dropped.
func (c *Console) dispatchCSI(seq *csiSequence) {
	switch seq.final {
	case 'A':
		c.active().MoveCursor(0, -param(seq, 0, 1), true)
	case 'B':
		c.active().MoveCursor(0, param(seq, 0, 1), true)
	case 'C':
		c.active().MoveCursor(param(seq, 0, 1), 0, true)
	case 'D':
		c.active().MoveCursor(-param(seq, 0, 1), 0, true)
	case 'H', 'f':
		c.dispatchCUP(seq)
	case 'J':
		c.active().EraseDisplay(param(seq, 0, 0))
	case 'K':
		c.active().EraseLine(param(seq, 0, 0))
	case 'm':
		// No SGR attributes in this emulator; accepted as a no-op so a
		// shell that emits color codes does not desync the parser.
	case 'n':
		c.dispatchCPR(seq)
	case 'h', 'l':
		c.dispatchPrivateMode(seq)
	default:
		// Unknown final byte: the sequence has already been fully
		// consumed by the parser, so dropping it here is silent from
		// the PTY's point of view; recorded so a caller can still log it.
		c.diagnose("unknown-csi", fmt.Sprintf("final byte %q", seq.final))
	}
}

// dispatchCUP implements CSI H / CSI f. A single bare parameter (no
// row;col pair) homes the cursor to (0,0), not (1,1) — the original
// implementation this emulator is modeled on homes to (1,1) for exactly
// this case, which is a bug this emulator does not reproduce.
func (c *Console) dispatchCUP(seq *csiSequence) {
	if len(seq.params) <= 1 {
		c.active().MoveCursor(0, 0, false)
		return
	}
	row := param(seq, 0, 1)
	col := param(seq, 1, 1)
	c.active().MoveCursor(col-1, row-1, false)
}

func (c *Console) dispatchCPR(seq *csiSequence) {
	if param(seq, 0, 0) != 6 {
		return
	}
	row, col := c.active().ReportCursor()
	resp := []byte("\x1b[")
	resp = append(resp, itoaBytes(row)...)
	resp = append(resp, ';')
	resp = append(resp, itoaBytes(col)...)
	resp = append(resp, 'R')
	c.pendingCPR = append(c.pendingCPR, resp...)
}

func itoaBytes(n int) []byte {
	if n == 0 {
		return []byte{'0'}
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return digits
}

// dispatchPrivateMode detects the DEC private alternate-screen toggle
// generically: a '?' private marker, parameter 1049, and final byte h
// or l — not by matching the literal escape string. Any other mode
// sequence is recorded via diagnose and dropped.
func (c *Console) dispatchPrivateMode(seq *csiSequence) {
	if seq.private != '?' {
		c.diagnose("unsupported-mode", fmt.Sprintf("non-private final byte %q", seq.final))
		return
	}
	p := param(seq, 0, -1)
	if p != 1049 {
		c.diagnose("unknown-private-mode", fmt.Sprintf("?%d%c", p, seq.final))
		return
	}
	switch seq.final {
	case 'h':
		c.sid = screenAlternate
	case 'l':
		c.sid = screenPrimary
	}
}

// Render draws every cell of the active screen through sink, in row
// order. Blank cells (space, or the zero byte of a never-written cell)
// are skipped.
func (c *Console) Render(sink RenderSink, scale float64) {
	buf := c.active()
	w, h := buf.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ch := buf.cells[buf.index(x, y)]
			if ch == ' ' || ch == 0 {
				continue
			}
			sink.RenderGlyph(ch, x, y, scale)
		}
	}
}
