package retained

// FocusNode identifies one focusable widget in the ambient focus context.
// WidgetID is assigned once, during tree attachment, and never changes;
// IsFocused is flipped only in response to the focus manager's
// LifecycleFocusChanged broadcast.
type FocusNode struct {
	WidgetID  ID
	IsFocused bool
}

// FocusScopeNode identifies the root of a focus scope.
// The zero value is the window-root scope.
type FocusScopeNode struct {
	WidgetID ID
}
