package strokevt

import (
	"context"
	"os/exec"
	"testing"
	"time"
)

// fakePTY is a headless PTY double: Read drains a canned byte slice
// once, then reports errWouldBlock; Write records what it is sent.
type fakePTY struct {
	toRead  []byte
	read    bool
	written []byte
}

func (f *fakePTY) Start(cmd *exec.Cmd) error { return nil }

func (f *fakePTY) Read(p []byte) (int, error) {
	if f.read || len(f.toRead) == 0 {
		return 0, errWouldBlock
	}
	n := copy(p, f.toRead)
	f.read = true
	return n, nil
}

func (f *fakePTY) Write(p []byte) (int, error) {
	f.written = append(f.written, p...)
	return len(p), nil
}

func (f *fakePTY) Resize(cols, rows int) error { return nil }
func (f *fakePTY) Close() error                { return nil }

type fakeSink struct {
	presented int
	glyphs    int
}

func (s *fakeSink) RenderGlyph(ch byte, x, y int, scale float64) { s.glyphs++ }
func (s *fakeSink) Present()                                     { s.presented++ }

type fakeEvents struct {
	events []KeyEvent
	quit   bool
}

func (e *fakeEvents) PollKeyEvents() []KeyEvent {
	out := e.events
	e.events = nil
	return out
}
func (e *fakeEvents) ShouldQuit() bool { return e.quit }

func TestIOLoopDrainsRendersAndForwardsKeys(t *testing.T) {
	pty := &fakePTY{toRead: []byte("hi")}
	console := NewConsole(10, 2)
	sink := &fakeSink{}
	events := &fakeEvents{events: []KeyEvent{{Code: KeyA}}}

	loop := NewIOLoop(pty, console, sink, events)
	loop.FrameDelay = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		events.quit = true
	}()
	_ = loop.Run(ctx)
	cancel()

	rows := console.active().Snapshot()
	if rows[0][:2] != "hi" {
		t.Fatalf("expected PTY bytes applied to console, got %q", rows[0])
	}
	if sink.presented == 0 {
		t.Fatalf("expected at least one Present call")
	}
	if len(pty.written) == 0 || pty.written[0] != 'a' {
		t.Fatalf("expected key event forwarded to PTY, got %v", pty.written)
	}
}

func TestIOLoopForwardsDiagnostics(t *testing.T) {
	pty := &fakePTY{toRead: []byte("\x1b[?25h")}
	console := NewConsole(5, 5)
	sink := &fakeSink{}
	events := &fakeEvents{}

	loop := NewIOLoop(pty, console, sink, events)
	loop.FrameDelay = time.Millisecond

	var got []Diagnostic
	loop.OnDiagnostic = func(d Diagnostic) { got = append(got, d) }

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		events.quit = true
	}()
	_ = loop.Run(ctx)
	cancel()

	if len(got) != 1 || got[0].Kind != "unknown-private-mode" {
		t.Fatalf("expected unknown-private-mode diagnostic forwarded, got %v", got)
	}
}

func TestIOLoopStopsOnContextCancel(t *testing.T) {
	pty := &fakePTY{}
	console := NewConsole(5, 5)
	sink := &fakeSink{}
	events := &fakeEvents{}
	loop := NewIOLoop(pty, console, sink, events)
	loop.FrameDelay = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := loop.Run(ctx); err != nil {
		t.Fatalf("expected clean return on canceled context, got %v", err)
	}
}
