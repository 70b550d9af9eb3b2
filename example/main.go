// Example demonstrates keyboard focus traversal in a retained widget
// tree.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The example builds a column of focusable labels split across two focus
// scopes and drives it from a GLFW window. Tab and Shift+Tab move focus
// within the scope holding it; clicking a label focuses it. An optional
// TOML theme file recolors the labels and the focus ring.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/retained"
	"github.com/go-theft-auto/retained/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "retained example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	themePath := flag.String("theme", "", "path to a TOML theme file")
	verbose := flag.Bool("v", false, "enable focus trace logging")
	flag.Parse()

	retained.SetVerbose(*verbose)

	if err := run(*themePath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(themePath string) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	glfwWindow, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	glfwWindow.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	events := opengl.NewGLFWEventAdapter(glfwWindow)

	env := retained.DefaultEnv()
	if themePath != "" {
		env, err = retained.LoadTheme(themePath)
		if err != nil {
			return fmt.Errorf("load theme: %w", err)
		}
	}

	shaper := retained.NewBasicShaper()

	// Two scopes: Tab inside one never reaches the other. The first
	// label auto-focuses on startup.
	root := retained.NewColumn(
		retained.NewFocusScope(retained.NewColumn(
			retained.NewFocus(retained.NewLabel("alpha", shaper)).WithAutoFocus(true),
			retained.NewFocus(retained.NewLabel("bravo", shaper)),
			retained.NewFocus(retained.NewLabel("charlie", shaper)),
		).WithGap(12)),
		retained.NewFocusScope(retained.NewColumn(
			retained.NewFocus(retained.NewLabel("delta", shaper)),
			retained.NewFocus(retained.NewLabel("echo", shaper)),
		).WithGap(12)),
	).WithGap(32)

	window := retained.NewWindow(root,
		retained.WithEnv(env),
		retained.WithSize(retained.Vec2{X: windowWidth, Y: windowHeight}),
	)
	window.Attach()

	for !glfwWindow.ShouldClose() {
		glfw.PollEvents()

		w, h := glfwWindow.GetFramebufferSize()
		renderer.Resize(w, h)
		window.SetSize(retained.Vec2{X: float32(w), Y: float32(h)})

		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		dl := window.RunCycle(events.Drain()...)
		if err := renderer.Render(dl); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		glfwWindow.SwapBuffers()
	}

	return nil
}
