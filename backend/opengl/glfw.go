package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/retained"
)

// GLFWEventAdapter translates GLFW input callbacks into retained events.
// Callbacks queue events as they arrive; the frame loop calls Drain once
// per frame and feeds the result to Window.ProcessEvent.
type GLFWEventAdapter struct {
	window *glfw.Window
	queue  []retained.Event
}

// NewGLFWEventAdapter installs input callbacks on the GLFW window.
func NewGLFWEventAdapter(window *glfw.Window) *GLFWEventAdapter {
	a := &GLFWEventAdapter{window: window}

	window.SetKeyCallback(a.keyCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)

	return a
}

// Drain returns the events queued since the last call, oldest first.
func (a *GLFWEventAdapter) Drain() []retained.Event {
	events := a.queue
	a.queue = nil
	return events
}

func (a *GLFWEventAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	k := glfwKeyToKey(key)
	if k == retained.KeyNone {
		return
	}
	a.queue = append(a.queue, retained.KeyEvent{Key: k, Mods: glfwModsToModifiers(mods)})
}

func (a *GLFWEventAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b, ok := glfwMouseButtonToButton(button)
	if !ok {
		return
	}
	x, y := a.window.GetCursorPos()
	pos := retained.Vec2{X: float32(x), Y: float32(y)}

	switch action {
	case glfw.Press:
		a.queue = append(a.queue, retained.PointerEvent{Kind: retained.PointerDown, Pos: pos, Button: b})
	case glfw.Release:
		a.queue = append(a.queue, retained.PointerEvent{Kind: retained.PointerUp, Pos: pos, Button: b})
	}
}

func (a *GLFWEventAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.queue = append(a.queue, retained.PointerEvent{
		Kind: retained.PointerMove,
		Pos:  retained.Vec2{X: float32(xpos), Y: float32(ypos)},
	})
}

// glfwKeyToKey maps GLFW keys to retained keys.
func glfwKeyToKey(key glfw.Key) retained.Key {
	switch key {
	case glfw.KeyTab:
		return retained.KeyTab
	case glfw.KeyLeft:
		return retained.KeyLeft
	case glfw.KeyRight:
		return retained.KeyRight
	case glfw.KeyUp:
		return retained.KeyUp
	case glfw.KeyDown:
		return retained.KeyDown
	case glfw.KeyHome:
		return retained.KeyHome
	case glfw.KeyEnd:
		return retained.KeyEnd
	case glfw.KeyDelete:
		return retained.KeyDelete
	case glfw.KeyBackspace:
		return retained.KeyBackspace
	case glfw.KeySpace:
		return retained.KeySpace
	case glfw.KeyEnter:
		return retained.KeyEnter
	case glfw.KeyEscape:
		return retained.KeyEscape
	default:
		return retained.KeyNone
	}
}

// glfwModsToModifiers maps the GLFW modifier bitmask to ours.
func glfwModsToModifiers(mods glfw.ModifierKey) retained.Modifiers {
	var m retained.Modifiers
	if mods&glfw.ModShift != 0 {
		m |= retained.ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= retained.ModCtrl
	}
	if mods&glfw.ModAlt != 0 {
		m |= retained.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= retained.ModSuper
	}
	return m
}

// glfwMouseButtonToButton maps GLFW mouse buttons to retained buttons.
func glfwMouseButtonToButton(button glfw.MouseButton) (retained.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return retained.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return retained.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return retained.MouseButtonMiddle, true
	default:
		return 0, false
	}
}
