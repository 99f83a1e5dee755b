package strokevt

import (
	"context"
	"time"
)

// FrameSink receives one rendered frame per tick. Implemented by the
// windowing layer (internal/glrender); the core engine only depends on
// this interface.
type FrameSink interface {
	RenderSink
	Present()
}

// EventSource supplies keyboard input and quit requests from whatever
// is driving the window's event loop.
type EventSource interface {
	PollKeyEvents() []KeyEvent
	ShouldQuit() bool
}

// IOLoop runs the single-threaded cooperative tick described by the
// concurrency model: sleep, drain the PTY without blocking, render,
// poll the keyboard. There are no worker goroutines and no shared
// mutable state crossing a goroutine boundary; everything below runs on
// the goroutine that calls Run.
type IOLoop struct {
	PTY        PTY
	Console    *Console
	FrameSink  FrameSink
	Events     EventSource
	FrameDelay time.Duration
	FontScale  float64

	// OnDiagnostic, if set, is called once per Console.Diagnostic
	// recorded during a tick's PTY drain. Console itself has no logging
	// dependency; this is the seam a caller uses to surface drops
	// through its own logger (cmd/strokevt wires this to internal/termlog).
	OnDiagnostic func(Diagnostic)

	readBuf []byte
}

// NewIOLoop constructs a loop with a default ~60Hz frame delay and a
// 4096-byte PTY read buffer.
func NewIOLoop(pty PTY, console *Console, sink FrameSink, events EventSource) *IOLoop {
	return &IOLoop{
		PTY:        pty,
		Console:    console,
		FrameSink:  sink,
		Events:     events,
		FrameDelay: 16 * time.Millisecond,
		FontScale:  20,
		readBuf:    make([]byte, 4096),
	}
}

// Run drives ticks until ctx is canceled, the event source requests
// quit, or the PTY read fails unrecoverably.
func (l *IOLoop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if l.Events.ShouldQuit() {
			return nil
		}

		if err := l.tick(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(l.FrameDelay):
		}
	}
}

// tick drains all currently-available PTY bytes, renders exactly once,
// then polls and forwards keyboard input. Draining fully before
// rendering means a tick never presents a half-applied escape
// sequence.
func (l *IOLoop) tick() error {
	for {
		n, err := l.PTY.Read(l.readBuf)
		if n > 0 {
			l.Console.Put(l.readBuf[:n])
		}
		if err != nil {
			if err == errWouldBlock {
				break
			}
			return err
		}
		if n == 0 {
			break
		}
	}

	for _, d := range l.Console.TakeDiagnostics() {
		if l.OnDiagnostic != nil {
			l.OnDiagnostic(d)
		}
	}

	l.Console.Render(l.FrameSink, l.FontScale)
	l.FrameSink.Present()

	for _, ev := range l.Events.PollKeyEvents() {
		bytes := Translate(ev)
		if len(bytes) == 0 {
			continue
		}
		if _, err := l.PTY.Write(bytes); err != nil {
			return err
		}
	}

	if cpr := l.Console.TakeCPR(); len(cpr) > 0 {
		if _, err := l.PTY.Write(cpr); err != nil {
			return err
		}
	}

	return nil
}
