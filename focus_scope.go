package retained

// FocusScope is a transparent wrapper that serves as a traversal boundary
// for its descendants: Tab/Shift+Tab navigation started inside the scope
// never leaves it.
//
// For every pass, the scope installs its own identity as the ambient
// focus scope before delegating to the child and restores the caller's
// scope afterwards. It contributes no visual size change of its own; the
// layout pass positions the child at the origin and reports the child's
// size unchanged.
type FocusScope struct {
	child *Pod
	node  FocusScopeNode
}

// NewFocusScope wraps a child widget in a focus scope.
func NewFocusScope(child Widget) *FocusScope {
	return &FocusScope{child: NewPod(child)}
}

// Event implements Widget.
func (s *FocusScope) Event(ctx *Context, ev Event, env *Env) {
	prev := ctx.FocusScope()
	ctx.SetFocusScopeNode(s.node)
	s.child.Event(ctx, ev, env)
	ctx.SetFocusScopeNode(prev)
}

// Lifecycle implements Widget. The scope learns its own identity on
// WidgetAdded, before the child attaches, so focusables registering in
// the same walk bind to this scope.
func (s *FocusScope) Lifecycle(ctx *Context, ev *LifecycleEvent, env *Env) {
	if ev.Kind == LifecycleWidgetAdded {
		s.node.WidgetID = ctx.WidgetID()
	}

	prev := ctx.FocusScope()
	ctx.SetFocusScopeNode(s.node)
	s.child.Lifecycle(ctx, ev, env)
	ctx.SetFocusScopeNode(prev)
}

// Update implements Widget.
func (s *FocusScope) Update(ctx *Context, env *Env) {
	prev := ctx.FocusScope()
	ctx.SetFocusScopeNode(s.node)
	s.child.Update(ctx, env)
	ctx.SetFocusScopeNode(prev)
}

// Layout implements Widget.
func (s *FocusScope) Layout(ctx *Context, bc BoxConstraints, env *Env) Vec2 {
	prev := ctx.FocusScope()
	ctx.SetFocusScopeNode(s.node)
	size := s.child.Layout(ctx, bc, env)
	s.child.SetLayoutRect(RectFromOriginSize(Vec2{}, size))
	ctx.SetFocusScopeNode(prev)
	return size
}

// Paint implements Widget.
func (s *FocusScope) Paint(ctx *Context, env *Env) {
	prev := ctx.FocusScope()
	ctx.SetFocusScopeNode(s.node)
	s.child.Paint(ctx, env)
	ctx.SetFocusScopeNode(prev)
}
