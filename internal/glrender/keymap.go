package glrender

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/pixelshell/strokevt"
)

// glfwKeymap translates GLFW key constants to the core engine's
// windowing-agnostic Keycode, so strokevt.KeyMap never has to know
// about GLFW.
var glfwKeymap = map[glfw.Key]strokevt.Keycode{
	glfw.KeyA: strokevt.KeyA, glfw.KeyB: strokevt.KeyB, glfw.KeyC: strokevt.KeyC,
	glfw.KeyD: strokevt.KeyD, glfw.KeyE: strokevt.KeyE, glfw.KeyF: strokevt.KeyF,
	glfw.KeyG: strokevt.KeyG, glfw.KeyH: strokevt.KeyH, glfw.KeyI: strokevt.KeyI,
	glfw.KeyJ: strokevt.KeyJ, glfw.KeyK: strokevt.KeyK, glfw.KeyL: strokevt.KeyL,
	glfw.KeyM: strokevt.KeyM, glfw.KeyN: strokevt.KeyN, glfw.KeyO: strokevt.KeyO,
	glfw.KeyP: strokevt.KeyP, glfw.KeyQ: strokevt.KeyQ, glfw.KeyR: strokevt.KeyR,
	glfw.KeyS: strokevt.KeyS, glfw.KeyT: strokevt.KeyT, glfw.KeyU: strokevt.KeyU,
	glfw.KeyV: strokevt.KeyV, glfw.KeyW: strokevt.KeyW, glfw.KeyX: strokevt.KeyX,
	glfw.KeyY: strokevt.KeyY, glfw.KeyZ: strokevt.KeyZ,

	glfw.Key0: strokevt.Key0, glfw.Key1: strokevt.Key1, glfw.Key2: strokevt.Key2,
	glfw.Key3: strokevt.Key3, glfw.Key4: strokevt.Key4, glfw.Key5: strokevt.Key5,
	glfw.Key6: strokevt.Key6, glfw.Key7: strokevt.Key7, glfw.Key8: strokevt.Key8,
	glfw.Key9: strokevt.Key9,

	glfw.KeySpace:        strokevt.KeySpace,
	glfw.KeyEnter:        strokevt.KeyReturn,
	glfw.KeyBackspace:    strokevt.KeyBackspace,
	glfw.KeyEscape:       strokevt.KeyEscape,
	glfw.KeyTab:          strokevt.KeyTab,
	glfw.KeyUp:           strokevt.KeyUp,
	glfw.KeyDown:         strokevt.KeyDown,
	glfw.KeyLeft:         strokevt.KeyLeft,
	glfw.KeyRight:        strokevt.KeyRight,
	glfw.KeyMinus:        strokevt.KeyMinus,
	glfw.KeyEqual:        strokevt.KeyEquals,
	glfw.KeyLeftBracket:  strokevt.KeyLeftBracket,
	glfw.KeyRightBracket: strokevt.KeyRightBracket,
	glfw.KeyBackslash:    strokevt.KeyBackslash,
	glfw.KeySemicolon:    strokevt.KeySemicolon,
	glfw.KeyApostrophe:   strokevt.KeyApostrophe,
	glfw.KeyComma:        strokevt.KeyComma,
	glfw.KeyPeriod:       strokevt.KeyPeriod,
	glfw.KeySlash:        strokevt.KeySlash,
	glfw.KeyGraveAccent:  strokevt.KeyGrave,
	glfw.KeyLeftShift:    strokevt.KeyShift,
	glfw.KeyRightShift:   strokevt.KeyShift,
	glfw.KeyLeftControl:  strokevt.KeyCtrl,
	glfw.KeyRightControl: strokevt.KeyCtrl,
	glfw.KeyLeftAlt:      strokevt.KeyAlt,
	glfw.KeyRightAlt:     strokevt.KeyAlt,
}
