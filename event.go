package retained

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
)

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	names := map[Key]string{
		KeyNone:      "--",
		KeyTab:       "Tab",
		KeyLeft:      "Left",
		KeyRight:     "Right",
		KeyUp:        "Up",
		KeyDown:      "Down",
		KeyHome:      "Home",
		KeyEnd:       "End",
		KeyDelete:    "Del",
		KeyBackspace: "Backspace",
		KeySpace:     "Space",
		KeyEnter:     "Enter",
		KeyEscape:    "Esc",
	}
	if name, ok := names[k]; ok {
		return name
	}
	return "?"
}

// Modifiers is a bitmask of modifier keys held during a key event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper // Cmd on Mac, Win on Windows
)

// Shift reports whether the shift modifier is held.
func (m Modifiers) Shift() bool { return m&ModShift != 0 }

// Ctrl reports whether the control modifier is held.
func (m Modifiers) Ctrl() bool { return m&ModCtrl != 0 }

// Alt reports whether the alt modifier is held.
func (m Modifiers) Alt() bool { return m&ModAlt != 0 }

// Super reports whether the super (cmd/win) modifier is held.
func (m Modifiers) Super() bool { return m&ModSuper != 0 }

// Event is a discrete input delivered through the event pass.
// The concrete types are PointerEvent, KeyEvent, and CommandEvent;
// widgets type-switch on them.
type Event interface {
	isEvent()
}

// PointerKind identifies the kind of pointer event.
type PointerKind uint8

const (
	PointerDown PointerKind = iota
	PointerUp
	PointerMove
)

// PointerEvent is a mouse/touch event.
// Hit-testing is the embedding application's concern: the dispatch engine
// forwards pointer events to the subtree it decides is under the pointer.
type PointerEvent struct {
	Kind   PointerKind
	Pos    Vec2
	Button MouseButton
}

// KeyEvent is a key press with its modifier state.
type KeyEvent struct {
	Key  Key
	Mods Modifiers
}

// CommandEvent delivers a queued Command through the event pass.
// Commands submitted during one cycle are delivered at the start of the
// next ProcessEvent cycle.
type CommandEvent struct {
	Cmd Command
}

func (PointerEvent) isEvent() {}
func (KeyEvent) isEvent()     {}
func (CommandEvent) isEvent() {}

// Chord matches a key event against an exact key + modifier combination.
// A chord with zero Mods only matches when no modifier is held.
type Chord struct {
	Mods Modifiers
	Key  Key
}

// Matches reports whether the key event is exactly this chord.
func (c Chord) Matches(ev KeyEvent) bool {
	return ev.Key == c.Key && ev.Mods == c.Mods
}

// Focus traversal chords.
var (
	ChordTab      = Chord{Key: KeyTab}
	ChordShiftTab = Chord{Mods: ModShift, Key: KeyTab}
)

// LifecycleKind identifies the kind of lifecycle event.
type LifecycleKind uint8

const (
	// LifecycleWidgetAdded fires once when a widget joins the tree.
	// Widget IDs are assigned just before this event is delivered.
	LifecycleWidgetAdded LifecycleKind = iota

	// LifecycleFocusChanged tells the target widget it gained or lost
	// keyboard focus. Broadcast tree-wide with Target set; widgets that
	// are not the target ignore it.
	LifecycleFocusChanged
)

// LifecycleEvent is delivered through the lifecycle pass.
type LifecycleEvent struct {
	Kind    LifecycleKind
	Focused bool // valid for LifecycleFocusChanged
	Target  ID   // zero for tree-wide events like LifecycleWidgetAdded
}
