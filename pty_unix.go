//go:build !windows
// +build !windows

package strokevt

/*
#define _XOPEN_SOURCE 600
#include <stdlib.h>
#include <string.h>
#include <fcntl.h>
#include <unistd.h>
#include <sys/ioctl.h>

static int get_ptsname(int fd, char *buf, size_t buflen) {
    char *name = ptsname(fd);
    if (name == NULL) {
        return -1;
    }
    size_t len = strlen(name);
    if (len >= buflen) {
        return -1;
    }
    strcpy(buf, name);
    return 0;
}

static int grant_pt(int fd) {
    return grantpt(fd);
}

static int unlock_pt(int fd) {
    return unlockpt(fd);
}

static int set_winsize(int fd, unsigned short rows, unsigned short cols) {
    struct winsize ws;
    ws.ws_row = rows;
    ws.ws_col = cols;
    ws.ws_xpixel = 0;
    ws.ws_ypixel = 0;
    return ioctl(fd, TIOCSWINSZ, &ws);
}
*/
import "C"

import (
	"errors"
	"os"
	"os/exec"
	"strconv"
	"syscall"

	"golang.org/x/sys/unix"
)

// UnixPTY implements PTY for Unix systems via /dev/ptmx, without
// relying on any fork/exec helper beyond the standard os/exec.Cmd plus
// Setsid/Setctty — Go does not expose a safe raw fork() for user code,
// so the child's session-leader and controlling-terminal attachment is
// done through SysProcAttr instead.
type UnixPTY struct {
	master *os.File
	slave  *os.File
}

// NewPTY creates a new PTY.
func NewPTY() (PTY, error) {
	return newUnixPTY()
}

func newUnixPTY() (*UnixPTY, error) {
	master, err := os.OpenFile("/dev/ptmx", os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	fd := C.int(master.Fd())

	if C.grant_pt(fd) != 0 {
		master.Close()
		return nil, errors.New("grantpt failed")
	}
	if C.unlock_pt(fd) != 0 {
		master.Close()
		return nil, errors.New("unlockpt failed")
	}

	var buf [256]C.char
	if C.get_ptsname(fd, &buf[0], 256) != 0 {
		master.Close()
		return nil, errors.New("ptsname failed")
	}
	slaveName := C.GoString(&buf[0])

	slave, err := os.OpenFile(slaveName, os.O_RDWR, 0)
	if err != nil {
		master.Close()
		return nil, err
	}

	return &UnixPTY{master: master, slave: slave}, nil
}

// Start starts cmd with the slave as its controlling terminal, leaving
// cmd.Env as the caller configured it; StartWithEnv adds
// TERM/COLUMNS/LINES first.
func (p *UnixPTY) Start(cmd *exec.Cmd) error {
	cmd.Stdin = p.slave
	cmd.Stdout = p.slave
	cmd.Stderr = p.slave

	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid:  true,
		Setctty: true,
		Ctty:    0,
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	p.slave.Close()
	p.slave = nil
	return nil
}

// StartWithEnv is Start plus setting TERM/COLUMNS/LINES on cmd.Env
// ahead of the fork, per the PTY contract: these must be visible to the
// child before it execs, not pushed in after the fact.
func (p *UnixPTY) StartWithEnv(cmd *exec.Cmd, env PTYEnv) error {
	base := cmd.Env
	if base == nil {
		base = os.Environ()
	}
	cmd.Env = append(base,
		"TERM="+env.Term,
		"COLUMNS="+strconv.Itoa(env.Cols),
		"LINES="+strconv.Itoa(env.Rows),
	)
	return p.Start(cmd)
}

// StartWithEnv dispatches to the concrete PTY's StartWithEnv when
// available, falling back to a plain Start so callers do not need to
// type-assert against a platform-specific PTY implementation.
func StartWithEnv(pty PTY, cmd *exec.Cmd, env PTYEnv) error {
	if u, ok := pty.(*UnixPTY); ok {
		return u.StartWithEnv(cmd, env)
	}
	return pty.Start(cmd)
}

// Read reads from the PTY, returning errWouldBlock rather than blocking
// when nothing is currently available — checked with a zero-timeout
// select on the master fd, matching the IOLoop's single-threaded
// cooperative drain-then-render contract.
func (p *UnixPTY) Read(b []byte) (int, error) {
	fd := int(p.master.Fd())
	var rfds unix.FdSet
	fdSetBit(&rfds, fd)
	tv := unix.Timeval{Sec: 0, Usec: 0}
	n, err := unix.Select(fd+1, &rfds, nil, nil, &tv)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, errWouldBlock
	}
	return p.master.Read(b)
}

// fdSetBit sets fd's bit in an fd_set the way FD_SET does in C; the
// x/sys/unix package exposes the raw bitmask but not the macro.
func fdSetBit(set *unix.FdSet, fd int) {
	bitsPerWord := 64
	set.Bits[fd/bitsPerWord] |= 1 << (uint(fd) % uint(bitsPerWord))
}

// Write writes to the PTY.
func (p *UnixPTY) Write(b []byte) (int, error) {
	return p.master.Write(b)
}

// Resize resizes the PTY.
func (p *UnixPTY) Resize(cols, rows int) error {
	fd := C.int(p.master.Fd())
	if C.set_winsize(fd, C.ushort(rows), C.ushort(cols)) != 0 {
		return errors.New("TIOCSWINSZ failed")
	}
	return nil
}

// Close closes the PTY.
func (p *UnixPTY) Close() error {
	if p.slave != nil {
		p.slave.Close()
	}
	return p.master.Close()
}
