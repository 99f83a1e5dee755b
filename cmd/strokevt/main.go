// Command strokevt runs the terminal emulator: it opens a window, spawns
// a shell behind a PTY, and drives the IOLoop until the window closes or
// the shell exits.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/pixelshell/strokevt"
	"github.com/pixelshell/strokevt/internal/config"
	"github.com/pixelshell/strokevt/internal/glrender"
	"github.com/pixelshell/strokevt/internal/termlog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "strokevt:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	log := termlog.New(os.Getenv("STROKEVT_DEBUG") != "")

	pty, err := strokevt.NewPTY()
	if err != nil {
		log.Fatal("pty setup failed: %v", err)
		return err
	}
	defer pty.Close()

	cmd := exec.Command(cfg.Shell)
	if err := strokevt.StartWithEnv(pty, cmd, strokevt.PTYEnv{
		Term: cfg.TermEnv,
		Cols: cfg.Cols,
		Rows: cfg.Rows,
	}); err != nil {
		log.Fatal("shell spawn failed: %v", err)
		return err
	}

	if err := pty.Resize(cfg.Cols, cfg.Rows); err != nil {
		log.DebugCat(termlog.CatPTY, "initial resize failed: %v", err)
	}

	win, err := glrender.NewWindow(cfg.Cols, cfg.Rows, cfg.FontScale)
	if err != nil {
		log.Fatal("window setup failed: %v", err)
		return err
	}
	defer win.Close()

	console := strokevt.NewConsole(cfg.Cols, cfg.Rows)
	loop := strokevt.NewIOLoop(pty, console, win, win)
	loop.FontScale = cfg.FontScale
	loop.OnDiagnostic = func(d strokevt.Diagnostic) {
		log.DebugCat(termlog.CatParse, "%s: %s", d.Kind, d.Detail)
	}

	return loop.Run(context.Background())
}
