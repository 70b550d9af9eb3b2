package retained

import (
	"log/slog"
	"os"
)

// traceLogLevel controls the log level for focus tracing.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var traceLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for the retained
// tree. Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		traceLogLevel.Set(slog.LevelDebug)
	} else {
		traceLogLevel.Set(slog.LevelInfo)
	}
}

// focusLogger is the logger for focus traversal debugging.
var focusLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: traceLogLevel}))

// Context carries the per-dispatch traversal state shared by all five
// passes. This is NOT context.Context - it's a dedicated widget-tree
// context owned by the Window and valid only for the duration of one
// top-level dispatch call.
//
// The ambient focus node and focus scope follow stack discipline: a
// wrapper that installs its own value must restore the previous value
// before returning, on every code path. Context does not police this;
// Focus and FocusScope are the only writers and both save/restore.
type Context struct {
	window *Window

	// Identity of the widget currently being dispatched to.
	// Maintained by Pod around every pass call.
	widgetID ID

	// Ambient focus context. See FocusNode/FocusScopeNode.
	focusNode FocusNode
	scopeNode FocusScopeNode

	// Event-pass state: set once a widget consumes the current event.
	handled bool

	// Accumulated origin of the widget being dispatched, in window
	// coordinates. Maintained by Pod during the event and paint passes.
	origin Vec2
}

// WidgetID returns the identity of the widget currently being dispatched.
func (ctx *Context) WidgetID() ID {
	return ctx.widgetID
}

// FocusNode returns the ambient focus node (the nearest enclosing Focus
// wrapper's node, or the zero node outside any Focus).
func (ctx *Context) FocusNode() FocusNode {
	return ctx.focusNode
}

// SetFocusNode installs a focus node as the ambient focus context.
// Callers must restore the previous value before returning.
func (ctx *Context) SetFocusNode(node FocusNode) {
	ctx.focusNode = node
}

// FocusScope returns the ambient focus scope (the nearest enclosing
// FocusScope wrapper's node, or the zero node for the window root scope).
func (ctx *Context) FocusScope() FocusScopeNode {
	return ctx.scopeNode
}

// SetFocusScopeNode installs a scope node as the ambient scope context.
// Callers must restore the previous value before returning.
func (ctx *Context) SetFocusScopeNode(node FocusScopeNode) {
	ctx.scopeNode = node
}

// IsHandled reports whether a descendant already consumed the current
// event.
func (ctx *Context) IsHandled() bool {
	return ctx.handled
}

// SetHandled marks the current event as consumed, suppressing further
// sibling/ancestor handling within this event pass.
func (ctx *Context) SetHandled() {
	ctx.handled = true
}

// RequestFocus asks the focus manager to move keyboard focus to the
// current widget. The request is resolved at the end of the dispatch
// cycle; the last request issued during a cycle wins.
func (ctx *Context) RequestFocus() {
	ctx.window.focus.RequestFocus(ctx.widgetID)
}

// RegisterForFocus adds the current widget to the focus traversal order,
// bound to the ambient focus scope. Called once, during WidgetAdded.
func (ctx *Context) RegisterForFocus() {
	ctx.window.focus.Register(ctx.widgetID, ctx.scopeNode.WidgetID)
}

// FocusNext moves focus to the next focusable widget within the focused
// widget's scope, wrapping past the end.
func (ctx *Context) FocusNext() {
	ctx.window.focus.FocusNext()
}

// FocusPrev moves focus to the previous focusable widget within the
// focused widget's scope, wrapping past the start.
func (ctx *Context) FocusPrev() {
	ctx.window.focus.FocusPrev()
}

// RequestPaint marks the window as needing a repaint.
func (ctx *Context) RequestPaint() {
	ctx.window.needsPaint = true
}

// Submit queues a command for delivery on the next dispatch cycle.
func (ctx *Context) Submit(cmd Command) {
	ctx.window.submit(cmd)
}

// DrawList returns the window's draw list. Valid during the paint pass.
func (ctx *Context) DrawList() *DrawList {
	return ctx.window.drawList
}

// Origin returns the accumulated origin of the current widget in window
// coordinates. Valid during the event and paint passes.
func (ctx *Context) Origin() Vec2 {
	return ctx.origin
}

// Window returns the window driving this dispatch.
func (ctx *Context) Window() *Window {
	return ctx.window
}
