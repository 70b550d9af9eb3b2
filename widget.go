package retained

// Widget is implemented by every node in the retained tree.
//
// The dispatch engine invokes the five passes in a fixed order per cycle:
// event, lifecycle, update, layout, paint. All passes run synchronously on
// one goroutine; within a pass, a parent's pre-delegation logic runs before
// any descendant and its post-delegation logic after all descendants return.
//
// Widgets own their state. The update pass is a "recompute derived state"
// notification rather than a diff against externally threaded app data.
type Widget interface {
	// Event handles a discrete input event. Wrappers forward the event to
	// their child before (or after) reacting themselves; a widget that
	// consumed the event calls ctx.SetHandled().
	Event(ctx *Context, ev Event, env *Env)

	// Lifecycle handles tree-structure notifications such as attachment
	// and focus changes.
	Lifecycle(ctx *Context, ev *LifecycleEvent, env *Env)

	// Update recomputes any state derived from data that changed since
	// the last cycle.
	Update(ctx *Context, env *Env)

	// Layout measures the widget under the given constraints and returns
	// its size. Containers position children via Pod.SetLayoutRect.
	Layout(ctx *Context, bc BoxConstraints, env *Env) Vec2

	// Paint records draw operations into ctx.DrawList().
	Paint(ctx *Context, env *Env)
}

// Pod wraps a child widget with the bookkeeping the engine needs: the
// child's identity, attachment state, and layout rectangle. All pass
// dispatch to a child goes through its Pod, which installs the child's
// identity in the context for the duration of the call.
type Pod struct {
	widget   Widget
	id       ID
	attached bool
	rect     Rect
}

// NewPod wraps a widget for insertion into the tree.
func NewPod(w Widget) *Pod {
	return &Pod{widget: w}
}

// ID returns the widget's identity, or zero before attachment.
func (p *Pod) ID() ID {
	return p.id
}

// Widget returns the wrapped widget.
func (p *Pod) Widget() Widget {
	return p.widget
}

// LayoutRect returns the rectangle assigned by the parent's layout pass.
func (p *Pod) LayoutRect() Rect {
	return p.rect
}

// SetLayoutRect positions the child within its parent's coordinate space.
// Parents call this from their layout pass after measuring the child.
func (p *Pod) SetLayoutRect(r Rect) {
	p.rect = r
}

// Event dispatches the event pass to the child, translating the
// traversal origin by the child's layout position so widgets can test
// pointer positions against their own bounds.
func (p *Pod) Event(ctx *Context, ev Event, env *Env) {
	prevID := ctx.widgetID
	prevOrigin := ctx.origin
	ctx.widgetID = p.id
	ctx.origin = ctx.origin.Add(p.rect.Origin())
	p.widget.Event(ctx, ev, env)
	ctx.origin = prevOrigin
	ctx.widgetID = prevID
}

// Lifecycle dispatches the lifecycle pass to the child. On the first
// WidgetAdded event the pod assigns the child's ID; the ID never changes
// afterwards.
func (p *Pod) Lifecycle(ctx *Context, ev *LifecycleEvent, env *Env) {
	if ev.Kind == LifecycleWidgetAdded && !p.attached {
		p.id = NewID()
		p.attached = true
	}
	prev := ctx.widgetID
	ctx.widgetID = p.id
	p.widget.Lifecycle(ctx, ev, env)
	ctx.widgetID = prev
}

// Update dispatches the update pass to the child.
func (p *Pod) Update(ctx *Context, env *Env) {
	prev := ctx.widgetID
	ctx.widgetID = p.id
	p.widget.Update(ctx, env)
	ctx.widgetID = prev
}

// Layout dispatches the layout pass to the child and returns its size.
func (p *Pod) Layout(ctx *Context, bc BoxConstraints, env *Env) Vec2 {
	prev := ctx.widgetID
	ctx.widgetID = p.id
	size := p.widget.Layout(ctx, bc, env)
	ctx.widgetID = prev
	return size
}

// Paint dispatches the paint pass to the child, translating the paint
// origin by the child's layout position for the duration of the call.
func (p *Pod) Paint(ctx *Context, env *Env) {
	prevID := ctx.widgetID
	prevOrigin := ctx.origin
	ctx.widgetID = p.id
	ctx.origin = ctx.origin.Add(p.rect.Origin())
	p.widget.Paint(ctx, env)
	ctx.origin = prevOrigin
	ctx.widgetID = prevID
}
