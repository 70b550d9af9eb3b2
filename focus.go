package retained

// Focus is a transparent wrapper that makes its subtree focusable and
// interprets focus-moving input:
//
//   - pointer press in bounds -> request focus for self
//   - Tab                    -> focus next focusable in the current scope
//   - Shift+Tab              -> focus previous focusable in the current scope
//   - SelectorRequestFocus   -> request focus for self when the payload
//     names this widget's ID
//
// For every pass, Focus installs its own FocusNode as the ambient focus
// context before delegating to the child and restores the caller's node
// afterwards. Descendants read ctx.FocusNode().IsFocused to render focus
// indication.
//
// Unrecognized key chords and commands addressed elsewhere fall through
// to no-ops; nothing in this widget can fail.
type Focus struct {
	child          *Pod
	node           FocusNode
	autoFocus      bool
	focusRequested bool
}

// NewFocus wraps a child widget in a focus node.
func NewFocus(child Widget) *Focus {
	return &Focus{child: NewPod(child)}
}

// WithAutoFocus makes the widget request focus when it attaches. When
// several widgets are auto-focused, the one attached last ends up with
// focus: each issues an unconditional request and the focus manager
// honors the most recent one.
func (f *Focus) WithAutoFocus(auto bool) *Focus {
	f.autoFocus = auto
	return f
}

// bounds returns the widget's laid-out rectangle in window coordinates.
func (f *Focus) bounds(ctx *Context) Rect {
	return RectFromOriginSize(ctx.Origin(), f.child.LayoutRect().Size())
}

// Event implements Widget.
func (f *Focus) Event(ctx *Context, ev Event, env *Env) {
	prev := ctx.FocusNode()
	ctx.SetFocusNode(f.node)

	f.child.Event(ctx, ev, env)

	// React only when no descendant consumed the event.
	if !ctx.IsHandled() {
		switch e := ev.(type) {
		case PointerEvent:
			if e.Kind == PointerDown && f.bounds(ctx).Contains(e.Pos) {
				ctx.RequestFocus()
				ctx.RequestPaint()
			}
		case KeyEvent:
			switch {
			case ChordTab.Matches(e):
				ctx.FocusNext()
				ctx.RequestPaint()
			case ChordShiftTab.Matches(e):
				ctx.FocusPrev()
				ctx.RequestPaint()
			}
		case CommandEvent:
			if e.Cmd.Selector == SelectorRequestFocus {
				if id, ok := e.Cmd.Payload.(ID); ok && id == ctx.WidgetID() {
					ctx.RequestFocus()
					ctx.RequestPaint()
				}
			}
		}
	}

	ctx.SetFocusNode(prev)
}

// Lifecycle implements Widget.
func (f *Focus) Lifecycle(ctx *Context, ev *LifecycleEvent, env *Env) {
	prev := ctx.FocusNode()

	switch ev.Kind {
	case LifecycleWidgetAdded:
		f.node.WidgetID = ctx.WidgetID()
		ctx.SetFocusNode(f.node)
		ctx.RegisterForFocus()
		if f.autoFocus && !f.focusRequested {
			f.focusRequested = true
			ctx.RequestFocus()
		}
	case LifecycleFocusChanged:
		if ev.Target == f.node.WidgetID {
			f.node.IsFocused = ev.Focused
			ctx.Submit(Command{
				Selector: SelectorFocusNodeChanged,
				Payload:  ev.Focused,
				Target:   f.node.WidgetID,
			})
			ctx.RequestPaint()
		}
	}

	ctx.SetFocusNode(f.node)
	f.child.Lifecycle(ctx, ev, env)
	ctx.SetFocusNode(prev)
}

// Update implements Widget.
func (f *Focus) Update(ctx *Context, env *Env) {
	prev := ctx.FocusNode()
	ctx.SetFocusNode(f.node)
	f.child.Update(ctx, env)
	ctx.SetFocusNode(prev)
}

// Layout implements Widget.
func (f *Focus) Layout(ctx *Context, bc BoxConstraints, env *Env) Vec2 {
	prev := ctx.FocusNode()
	ctx.SetFocusNode(f.node)
	size := f.child.Layout(ctx, bc, env)
	f.child.SetLayoutRect(RectFromOriginSize(Vec2{}, size))
	ctx.SetFocusNode(prev)
	return size
}

// Paint implements Widget.
func (f *Focus) Paint(ctx *Context, env *Env) {
	prev := ctx.FocusNode()
	ctx.SetFocusNode(f.node)
	f.child.Paint(ctx, env)
	ctx.SetFocusNode(prev)
}
