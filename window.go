package retained

// Window owns a widget tree and drives the five passes over it. It is
// the single dispatch entry point: a backend feeds events and the
// window fans them out, resolves pending focus changes, flushes queued
// commands, and collects draw operations.
//
// All methods must be called from one goroutine.
type Window struct {
	root     *Pod
	env      *Env
	focus    *FocusManager
	ctx      *Context
	drawList *DrawList
	size     Vec2

	// Commands queued during the current cycle, delivered as
	// CommandEvents at the start of the next one.
	commands []Command

	attached   bool
	needsPaint bool
}

// WindowOption configures a Window at construction.
type WindowOption func(*Window)

// WithEnv replaces the default environment.
func WithEnv(env *Env) WindowOption {
	return func(w *Window) { w.env = env }
}

// WithSize sets the logical window size the root is laid out against.
func WithSize(size Vec2) WindowOption {
	return func(w *Window) { w.size = size }
}

// NewWindow creates a window over the given root widget. The tree is
// not attached until Attach (or the first pass) runs.
func NewWindow(root Widget, opts ...WindowOption) *Window {
	w := &Window{
		root:       NewPod(root),
		env:        DefaultEnv(),
		focus:      NewFocusManager(),
		drawList:   NewDrawList(),
		size:       Vec2{X: 800, Y: 600},
		needsPaint: true,
	}
	w.ctx = &Context{window: w}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Env returns the window's environment.
func (w *Window) Env() *Env {
	return w.env
}

// FocusManager returns the window's focus manager.
func (w *Window) FocusManager() *FocusManager {
	return w.focus
}

// FocusedID returns the widget that currently owns keyboard focus, or
// zero.
func (w *Window) FocusedID() ID {
	return w.focus.Focused()
}

// Root returns the root pod.
func (w *Window) Root() *Pod {
	return w.root
}

// SetSize updates the logical size used for the next layout pass.
func (w *Window) SetSize(size Vec2) {
	w.size = size
	w.needsPaint = true
}

// NeedsPaint reports whether anything requested a repaint since the
// last Paint.
func (w *Window) NeedsPaint() bool {
	return w.needsPaint
}

// Attach walks the tree with WidgetAdded, assigning identities and
// letting focusables register. Runs once; later calls are no-ops.
// Auto-focus requests issued during attachment resolve before Attach
// returns.
func (w *Window) Attach() {
	if w.attached {
		return
	}
	w.attached = true
	w.root.Lifecycle(w.ctx, &LifecycleEvent{Kind: LifecycleWidgetAdded}, w.env)
	w.resolveFocus()
}

// ProcessEvent runs one event cycle: commands queued during the previous
// cycle are delivered first, then ev is dispatched to the whole tree,
// then any pending focus change is resolved.
func (w *Window) ProcessEvent(ev Event) {
	w.Attach()
	w.flushCommands()

	w.ctx.handled = false
	w.root.Event(w.ctx, ev, w.env)
	w.resolveFocus()
}

// SubmitCommand queues a command for delivery on the next event cycle.
// Applications use this to inject addressed messages, such as
// RequestFocusCommand, from outside the tree.
func (w *Window) SubmitCommand(cmd Command) {
	w.submit(cmd)
}

// Update runs the update pass over the tree.
func (w *Window) Update() {
	w.Attach()
	w.root.Update(w.ctx, w.env)
}

// Layout measures the tree against the window size and positions the
// root. Returns the root's size.
func (w *Window) Layout() Vec2 {
	w.Attach()
	size := w.root.Layout(w.ctx, Tight(w.size), w.env)
	w.root.SetLayoutRect(RectFromOriginSize(Vec2{}, size))
	return size
}

// Paint runs the paint pass into a fresh draw list and returns it. The
// list is owned by the window and valid until the next Paint.
func (w *Window) Paint() *DrawList {
	w.Attach()
	w.drawList.Reset()
	w.ctx.origin = Vec2{}
	w.root.Paint(w.ctx, w.env)
	w.needsPaint = false
	return w.drawList
}

// RunCycle is the per-frame convenience driver: it processes the given
// events and runs update, layout, and paint in order.
func (w *Window) RunCycle(events ...Event) *DrawList {
	w.Attach()
	for _, ev := range events {
		w.ProcessEvent(ev)
	}
	w.Update()
	w.Layout()
	return w.Paint()
}

func (w *Window) submit(cmd Command) {
	w.commands = append(w.commands, cmd)
}

// flushCommands delivers the commands queued during the previous cycle
// as CommandEvents, tree-wide. Commands queued while flushing are kept
// for the next cycle. Focus requests raised by command handlers resolve
// before the triggering external event is dispatched.
func (w *Window) flushCommands() {
	if len(w.commands) == 0 {
		return
	}
	pending := w.commands
	w.commands = nil
	for _, cmd := range pending {
		w.ctx.handled = false
		w.root.Event(w.ctx, CommandEvent{Cmd: cmd}, w.env)
	}
	w.resolveFocus()
}

// resolveFocus applies the pending focus request and, when ownership
// moved, notifies the tree: the loser first, then the gainer, each via
// a targeted FocusChanged lifecycle broadcast.
func (w *Window) resolveFocus() {
	old, now, changed := w.focus.resolve()
	if !changed {
		return
	}
	focusLogger.Debug("focus: moved", "from", old, "to", now)
	if old != 0 {
		w.root.Lifecycle(w.ctx, &LifecycleEvent{Kind: LifecycleFocusChanged, Focused: false, Target: old}, w.env)
	}
	if now != 0 {
		w.root.Lifecycle(w.ctx, &LifecycleEvent{Kind: LifecycleFocusChanged, Focused: true, Target: now}, w.env)
	}
	w.needsPaint = true
}
