package retained

import "math"

// Label is a leaf widget that displays a single text buffer. It owns a
// TextLayout and keeps it in sync with its text across passes: the
// buffer is re-measured during update when SetText changed it, and the
// wrap width follows the layout constraints.
//
// When the ambient focus node is focused, Label paints a focus ring
// around its bounds, so wrapping a Label in Focus gives a visible
// focus indicator with no extra code.
type Label struct {
	text   string
	shaper Shaper
	layout *TextLayout
	dirty  bool
}

// NewLabel creates a label. The shaper is captured for later
// re-measurement.
func NewLabel(text string, shaper Shaper) *Label {
	return &Label{text: text, shaper: shaper}
}

// Text returns the current text.
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the text. The change is picked up on the next update
// pass; call Window.Update after mutating widget state.
func (l *Label) SetText(text string) {
	if text != l.text {
		l.text = text
		l.dirty = true
	}
}

// Event implements Widget. Labels do not react to input.
func (l *Label) Event(ctx *Context, ev Event, env *Env) {}

// Lifecycle implements Widget. The text is measured once on attach.
func (l *Label) Lifecycle(ctx *Context, ev *LifecycleEvent, env *Env) {
	if ev.Kind == LifecycleWidgetAdded {
		l.layout = NewTextLayout(l.text, l.shaper, env, WidthUnbounded)
	}
}

// Update implements Widget. A pending SetText is applied here.
func (l *Label) Update(ctx *Context, env *Env) {
	if l.dirty && l.layout != nil {
		l.layout.UpdateBuffer(l.text, l.shaper, env)
		l.dirty = false
		ctx.RequestPaint()
	}
}

// Layout implements Widget.
func (l *Label) Layout(ctx *Context, bc BoxConstraints, env *Env) Vec2 {
	if l.layout == nil {
		return bc.Constrain(Vec2{})
	}
	if math.IsInf(float64(bc.Max.X), 1) {
		l.layout.UpdateWidth(WidthUnbounded)
	} else {
		l.layout.UpdateWidth(bc.Max.X)
	}
	return bc.Constrain(l.layout.Size())
}

// Paint implements Widget.
func (l *Label) Paint(ctx *Context, env *Env) {
	if l.layout == nil {
		return
	}
	if ctx.FocusNode().IsFocused {
		bounds := RectFromOriginSize(ctx.Origin(), l.layout.Size())
		DrawFocusRing(ctx.DrawList(), bounds, env)
	}
	l.layout.Draw(ctx, ctx.Origin(), env)
}
