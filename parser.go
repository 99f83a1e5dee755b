package strokevt

import "strconv"

// parserState is the explicit state of the escape-sequence state
// machine. Keeping this as a tagged type rather than inferring state
// from the contents of esc_buf makes the "esc_buf is empty or starts
// with ESC" invariant a structural property of stateGround instead of
// something checked after the fact.
type parserState int

const (
	stateGround parserState = iota
	stateEscape             // saw ESC, waiting for '['
	stateCSI                // inside ESC [ ... awaiting a final byte
)

func (s parserState) String() string {
	switch s {
	case stateGround:
		return "ground"
	case stateEscape:
		return "escape"
	case stateCSI:
		return "csi"
	default:
		return "unknown"
	}
}

// csiSequence is a fully-accumulated CSI escape sequence handed to the
// Console's dispatch table once the final byte arrives.
type csiSequence struct {
	private byte // '?' if this is a DEC-private sequence, else 0
	params  []int
	final   byte
}

// EscapeParser consumes raw PTY bytes one at a time and turns them into
// either plain printable bytes or completed CSI sequences. It holds no
// reference to a ScreenBuffer or Console; Console drives it and reacts
// to what it reports.
type EscapeParser struct {
	state  parserState
	escBuf []byte // empty, or starts with 0x1B; mirrors the bytes seen since Ground
	params []byte // raw parameter bytes accumulated inside a CSI sequence
}

// NewEscapeParser returns a parser in the Ground state.
func NewEscapeParser() *EscapeParser {
	return &EscapeParser{}
}

// State returns the parser's current state, chiefly for tests asserting
// the esc_buf invariant.
func (p *EscapeParser) State() parserState {
	return p.state
}

// EscBuf returns the bytes accumulated since the last Ground state. It
// is always either empty or starts with ESC (0x1B).
func (p *EscapeParser) EscBuf() []byte {
	return p.escBuf
}

// byteResult is what feeding one byte into the parser produced.
type byteResult struct {
	printable  bool
	ch         byte
	csi        *csiSequence
	isControl  bool // newline/other C0 control the caller should interpret directly
}

// Feed processes a single input byte and reports what happened. The
// caller (Console.PutByte) interprets printable bytes and control bytes
// itself and dispatches completed CSI sequences through the CSI table.
func (p *EscapeParser) Feed(b byte) byteResult {
	switch p.state {
	case stateGround:
		if b == 0x1B {
			p.state = stateEscape
			p.escBuf = []byte{b}
			return byteResult{}
		}
		if b < 0x20 {
			return byteResult{isControl: true, ch: b}
		}
		return byteResult{printable: true, ch: b}

	case stateEscape:
		p.escBuf = append(p.escBuf, b)
		if b == '[' {
			p.state = stateCSI
			p.params = p.params[:0]
			return byteResult{}
		}
		// Any other byte after a lone ESC is not a recognized sequence
		// in this emulator's scope; drop back to Ground.
		p.state = stateGround
		p.escBuf = nil
		return byteResult{}

	case stateCSI:
		p.escBuf = append(p.escBuf, b)
		if (b >= '0' && b <= '9') || b == ';' || b == '?' {
			p.params = append(p.params, b)
			return byteResult{}
		}
		if b >= 0x40 && b <= 0x7E {
			seq := parseCSI(p.params, b)
			p.state = stateGround
			p.escBuf = nil
			p.params = nil
			return byteResult{csi: seq}
		}
		// Unrecognized intermediate byte: stay in CSI, accumulate and
		// wait for a final byte; malformed sequences are resolved by
		// the eventual final byte rather than aborted mid-stream.
		return byteResult{}
	}
	return byteResult{}
}

// parseCSI splits the accumulated parameter bytes on ';', defaulting any
// empty field to -1 (callers substitute the operation-specific default:
// 1 for motion, 0 for erase/report). A leading '?' marks a DEC-private
// sequence and is not itself a parameter.
func parseCSI(raw []byte, final byte) *csiSequence {
	seq := &csiSequence{final: final}
	s := raw
	if len(s) > 0 && s[0] == '?' {
		seq.private = '?'
		s = s[1:]
	}
	if len(s) == 0 {
		return seq
	}
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ';' {
			field := string(s[start:i])
			if field == "" {
				seq.params = append(seq.params, -1)
			} else if n, err := strconv.Atoi(field); err == nil {
				seq.params = append(seq.params, n)
			} else {
				seq.params = append(seq.params, -1)
			}
			start = i + 1
		}
	}
	return seq
}

// param returns the i'th CSI parameter, or def if it was absent/empty.
func param(seq *csiSequence, i, def int) int {
	if i >= len(seq.params) || seq.params[i] < 0 {
		return def
	}
	return seq.params[i]
}
