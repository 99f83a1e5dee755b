package strokevt

import (
	"errors"
	"os/exec"
)

// PTYEnv carries the values the spec requires be set in the child's
// environment before it execs, driven by internal/config.
type PTYEnv struct {
	Term string
	Cols int
	Rows int
}

// errWouldBlock is returned by PTY.Read when no data is currently
// available and the fd was polled non-blocking, per the IOLoop's tick
// contract: drain what is ready, then move on to render rather than
// waiting for more.
var errWouldBlock = errors.New("strokevt: pty read would block")

// PTY is the interface for platform-specific pseudo-terminal
// implementations. Read must not block the caller past the point where
// no more data is currently available; it returns errWouldBlock in
// that case rather than waiting for the next byte.
type PTY interface {
	// Start starts the PTY with the given command.
	Start(cmd *exec.Cmd) error

	// Read reads from the PTY. It returns errWouldBlock, not a zero
	// read with a nil error, when nothing is available right now.
	Read(p []byte) (n int, err error)

	// Write writes to the PTY.
	Write(p []byte) (n int, err error)

	// Resize resizes the PTY.
	Resize(cols, rows int) error

	// Close closes the PTY.
	Close() error
}
