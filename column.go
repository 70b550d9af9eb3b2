package retained

// Column stacks its children vertically in insertion order. Children
// are measured with loosened constraints and positioned top-to-bottom
// with an optional gap.
//
// Events are delivered to children in order; a child that marks the
// event handled stops delivery to the siblings after it. Lifecycle and
// update notifications always reach every child.
type Column struct {
	children []*Pod
	gap      float32
}

// NewColumn creates a column over the given children.
func NewColumn(children ...Widget) *Column {
	c := &Column{}
	for _, w := range children {
		c.children = append(c.children, NewPod(w))
	}
	return c
}

// WithGap sets the vertical spacing between children.
func (c *Column) WithGap(gap float32) *Column {
	c.gap = gap
	return c
}

// Children returns the child pods in layout order.
func (c *Column) Children() []*Pod {
	return c.children
}

// Event implements Widget.
func (c *Column) Event(ctx *Context, ev Event, env *Env) {
	for _, child := range c.children {
		if ctx.IsHandled() {
			return
		}
		child.Event(ctx, ev, env)
	}
}

// Lifecycle implements Widget.
func (c *Column) Lifecycle(ctx *Context, ev *LifecycleEvent, env *Env) {
	for _, child := range c.children {
		child.Lifecycle(ctx, ev, env)
	}
}

// Update implements Widget.
func (c *Column) Update(ctx *Context, env *Env) {
	for _, child := range c.children {
		child.Update(ctx, env)
	}
}

// Layout implements Widget.
func (c *Column) Layout(ctx *Context, bc BoxConstraints, env *Env) Vec2 {
	var width, y float32
	childBC := bc.Loosen()

	for i, child := range c.children {
		if i > 0 {
			y += c.gap
		}
		size := child.Layout(ctx, childBC, env)
		child.SetLayoutRect(RectFromOriginSize(Vec2{Y: y}, size))
		width = maxf(width, size.X)
		y += size.Y
	}

	return bc.Constrain(Vec2{X: width, Y: y})
}

// Paint implements Widget.
func (c *Column) Paint(ctx *Context, env *Env) {
	for _, child := range c.children {
		child.Paint(ctx, env)
	}
}
