// Package glrender wires a GLFW window and a GL texture upload pipeline
// into the core engine's FrameSink/EventSource interfaces. The core
// package (strokevt) never imports this package or GLFW/GL directly;
// this is the concrete "windowing/event subsystem" and "external
// graphics library" the design notes describe as injected collaborators.
package glrender

import (
	"image"
	"image/draw"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/pixelshell/strokevt"
	"github.com/pixelshell/strokevt/internal/strokefont"
)

// Window owns a GLFW window, a single GL texture sized to the terminal
// grid in pixels, and the stroke-font glyph cache used to fill it.
type Window struct {
	win     *glfw.Window
	texture uint32
	canvas  *image.RGBA
	cache   *strokefont.Cache

	program    uint32
	vao, vbo   uint32
	texUniform int32

	cols, rows int
	scale      float64

	pending []strokevt.KeyEvent
}

// NewWindow creates a GLFW window sized cols x rows cells at scale, and
// initializes the GL texture pipeline backing Present.
func NewWindow(cols, rows int, scale float64) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, err
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	pxW := int(float64(cols) * strokefont.CellWidth * scale / 20)
	pxH := int(float64(rows) * strokefont.CellHeight * scale / 20)

	win, err := glfw.CreateWindow(pxW, pxH, "strokevt", nil, nil)
	if err != nil {
		return nil, err
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, err
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	program, err := compileProgram()
	if err != nil {
		return nil, err
	}
	vao, vbo := newQuad(program)
	texUniform := gl.GetUniformLocation(program, gl.Str("tex\x00"))

	w := &Window{
		win:        win,
		texture:    tex,
		canvas:     image.NewRGBA(image.Rect(0, 0, pxW, pxH)),
		cache:      strokefont.NewCache(),
		program:    program,
		vao:        vao,
		vbo:        vbo,
		texUniform: texUniform,
		cols:       cols,
		rows:       rows,
		scale:      scale,
	}

	win.SetKeyCallback(w.onKey)

	return w, nil
}

// RenderGlyph draws ch's rasterised stroke glyph into the canvas at
// cell (x, y). Called once per occupied cell by Console.Render.
func (w *Window) RenderGlyph(ch byte, x, y int, scale float64) {
	glyph := w.cache.Glyph(ch, scale)
	cellW := int(float64(strokefont.CellWidth) * scale / 20)
	cellH := int(float64(strokefont.CellHeight) * scale / 20)
	dst := image.Rect(x*cellW, y*cellH, x*cellW+cellW, y*cellH+cellH)
	draw.Draw(w.canvas, dst, glyph, image.Point{}, draw.Over)
}

// Present uploads the canvas to the GL texture, draws it full-screen,
// swaps buffers, and polls window events (glfw requires this be called
// from the main/creating goroutine, matching the single-threaded
// cooperative loop this renderer is driven from).
func (w *Window) Present() {
	b := w.canvas.Bounds()
	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, int32(b.Dx()), int32(b.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(w.canvas.Pix))

	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(w.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	gl.Uniform1i(w.texUniform, 0)

	gl.BindVertexArray(w.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)

	w.win.SwapBuffers()
	glfw.PollEvents()

	// Clear the canvas to black for the next tick; occupied cells are
	// redrawn every frame since Console.Render is a full redraw, not an
	// incremental diff.
	draw.Draw(w.canvas, b, image.Black, image.Point{}, draw.Src)
}

// PollKeyEvents drains and returns key events accumulated since the
// last call.
func (w *Window) PollKeyEvents() []strokevt.KeyEvent {
	out := w.pending
	w.pending = nil
	return out
}

// ShouldQuit reports whether the window's close button/shortcut fired.
func (w *Window) ShouldQuit() bool {
	return w.win.ShouldClose()
}

// Close releases the window and GL resources.
func (w *Window) Close() {
	gl.DeleteTextures(1, &w.texture)
	gl.DeleteVertexArrays(1, &w.vao)
	gl.DeleteBuffers(1, &w.vbo)
	gl.DeleteProgram(w.program)
	w.win.Destroy()
	glfw.Terminate()
}

func (w *Window) onKey(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	code, ok := glfwKeymap[key]
	if !ok {
		return
	}
	w.pending = append(w.pending, strokevt.KeyEvent{
		Code:  code,
		Shift: mods&glfw.ModShift != 0,
		Ctrl:  mods&glfw.ModControl != 0,
	})
}
