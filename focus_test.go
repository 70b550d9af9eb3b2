package retained

import (
	"math"
	"testing"
)

// probeWidget is a leaf widget that records what it observes during
// passes: the ambient focus context, delivered events, and focus-change
// notifications.
type probeWidget struct {
	size       Vec2
	handleKeys bool

	events     []Event
	commands   []Command
	eventNode  FocusNode
	eventScope FocusScopeNode
	addedScope FocusScopeNode

	focusChanges []focusChange

	// Submitted on the next non-command event, then cleared.
	submitOnEvent *Command
}

type focusChange struct {
	target  ID
	focused bool
}

func (p *probeWidget) Event(ctx *Context, ev Event, env *Env) {
	p.events = append(p.events, ev)
	p.eventNode = ctx.FocusNode()
	p.eventScope = ctx.FocusScope()

	switch e := ev.(type) {
	case CommandEvent:
		p.commands = append(p.commands, e.Cmd)
	case KeyEvent:
		if p.handleKeys {
			ctx.SetHandled()
		}
	}

	if _, ok := ev.(CommandEvent); !ok && p.submitOnEvent != nil {
		ctx.Submit(*p.submitOnEvent)
		p.submitOnEvent = nil
	}
}

func (p *probeWidget) Lifecycle(ctx *Context, ev *LifecycleEvent, env *Env) {
	switch ev.Kind {
	case LifecycleWidgetAdded:
		p.addedScope = ctx.FocusScope()
	case LifecycleFocusChanged:
		p.focusChanges = append(p.focusChanges, focusChange{target: ev.Target, focused: ev.Focused})
	}
}

func (p *probeWidget) Update(ctx *Context, env *Env) {}

func (p *probeWidget) Layout(ctx *Context, bc BoxConstraints, env *Env) Vec2 {
	return bc.Constrain(p.size)
}

func (p *probeWidget) Paint(ctx *Context, env *Env) {}

func approxEq(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.001
}

// dummyEvent is an event no widget reacts to, used to drive a cycle.
func dummyEvent() Event {
	return PointerEvent{Kind: PointerMove}
}

func TestFocus_AmbientNodeInstalledForDescendants(t *testing.T) {
	probe := &probeWidget{}
	outside := &probeWidget{}
	inner := NewFocus(probe)
	outer := NewFocus(inner)

	w := NewWindow(NewColumn(outer, outside))
	w.Attach()
	w.ProcessEvent(dummyEvent())

	if probe.eventNode.WidgetID == 0 {
		t.Fatal("Expected probe to see a focus node during event dispatch")
	}
	if probe.eventNode.WidgetID != inner.node.WidgetID {
		t.Errorf("Expected probe to see the innermost node %d, got %d",
			inner.node.WidgetID, probe.eventNode.WidgetID)
	}
	if outside.eventNode.WidgetID != 0 {
		t.Errorf("Expected sibling outside any Focus to see the zero node, got %d",
			outside.eventNode.WidgetID)
	}
}

func TestFocus_AutoFocusLastAttachedWins(t *testing.T) {
	first := NewFocus(&probeWidget{}).WithAutoFocus(true)
	second := NewFocus(&probeWidget{}).WithAutoFocus(true)

	w := NewWindow(NewColumn(first, second))
	w.Attach()

	if w.FocusedID() != second.node.WidgetID {
		t.Errorf("Expected last auto-focus widget %d to hold focus, got %d",
			second.node.WidgetID, w.FocusedID())
	}
	if first.node.IsFocused {
		t.Error("Expected first widget to not be focused")
	}
	if !second.node.IsFocused {
		t.Error("Expected second widget's node to report focused")
	}
}

func TestFocus_PointerPressRequestsFocus(t *testing.T) {
	f := NewFocus(&probeWidget{size: Vec2{X: 100, Y: 20}})
	w := NewWindow(NewColumn(f, NewColumn(&probeWidget{})))
	w.Attach()
	w.Layout()

	if w.FocusedID() != 0 {
		t.Fatalf("Expected no focus before input, got %d", w.FocusedID())
	}

	w.ProcessEvent(PointerEvent{Kind: PointerDown, Pos: Vec2{X: 10, Y: 5}, Button: MouseButtonLeft})

	if w.FocusedID() != f.node.WidgetID {
		t.Errorf("Expected pointer press to focus widget %d, got %d",
			f.node.WidgetID, w.FocusedID())
	}
}

func TestFocus_PointerPressFocusesWidgetUnderPointer(t *testing.T) {
	first := NewFocus(&probeWidget{size: Vec2{X: 100, Y: 20}})
	second := NewFocus(&probeWidget{size: Vec2{X: 100, Y: 20}})

	w := NewWindow(NewColumn(first, second))
	w.Attach()
	w.Layout()

	// Inside the first widget's bounds; the press also reaches the
	// second widget but must not focus it.
	w.ProcessEvent(PointerEvent{Kind: PointerDown, Pos: Vec2{X: 10, Y: 5}, Button: MouseButtonLeft})
	if w.FocusedID() != first.node.WidgetID {
		t.Fatalf("Expected click at y=5 to focus first widget %d, got %d",
			first.node.WidgetID, w.FocusedID())
	}

	// Inside the second widget, which sits below the first.
	w.ProcessEvent(PointerEvent{Kind: PointerDown, Pos: Vec2{X: 10, Y: 25}, Button: MouseButtonLeft})
	if w.FocusedID() != second.node.WidgetID {
		t.Fatalf("Expected click at y=25 to focus second widget %d, got %d",
			second.node.WidgetID, w.FocusedID())
	}

	// Outside both: focus stays put.
	w.ProcessEvent(PointerEvent{Kind: PointerDown, Pos: Vec2{X: 10, Y: 500}, Button: MouseButtonLeft})
	if w.FocusedID() != second.node.WidgetID {
		t.Errorf("Expected click outside all bounds to leave focus on %d, got %d",
			second.node.WidgetID, w.FocusedID())
	}
}

func TestFocus_TabTraversalStaysInScopeAndWraps(t *testing.T) {
	a1 := NewFocus(&probeWidget{}).WithAutoFocus(true)
	a2 := NewFocus(&probeWidget{})
	a3 := NewFocus(&probeWidget{})
	b1 := NewFocus(&probeWidget{})
	b2 := NewFocus(&probeWidget{})

	w := NewWindow(NewColumn(
		NewFocusScope(NewColumn(a1, a2, a3)),
		NewFocusScope(NewColumn(b1, b2)),
	))
	w.Attach()

	if w.FocusedID() != a1.node.WidgetID {
		t.Fatalf("Expected auto-focus on a1, got %d", w.FocusedID())
	}

	tab := KeyEvent{Key: KeyTab}
	want := []ID{a2.node.WidgetID, a3.node.WidgetID, a1.node.WidgetID, a2.node.WidgetID}
	for i, id := range want {
		w.ProcessEvent(tab)
		if w.FocusedID() != id {
			t.Fatalf("Tab press %d: expected focus %d, got %d", i+1, id, w.FocusedID())
		}
	}

	for _, f := range []*Focus{b1, b2} {
		if f.node.IsFocused {
			t.Errorf("Expected Tab to never reach widget %d in the other scope", f.node.WidgetID)
		}
	}
}

func TestFocus_ShiftTabTraversesBackwardsAndWraps(t *testing.T) {
	f1 := NewFocus(&probeWidget{}).WithAutoFocus(true)
	f2 := NewFocus(&probeWidget{})
	f3 := NewFocus(&probeWidget{})

	w := NewWindow(NewFocusScope(NewColumn(f1, f2, f3)))
	w.Attach()

	shiftTab := KeyEvent{Key: KeyTab, Mods: ModShift}

	w.ProcessEvent(shiftTab)
	if w.FocusedID() != f3.node.WidgetID {
		t.Fatalf("Expected Shift+Tab from first to wrap to last %d, got %d",
			f3.node.WidgetID, w.FocusedID())
	}

	w.ProcessEvent(shiftTab)
	if w.FocusedID() != f2.node.WidgetID {
		t.Errorf("Expected Shift+Tab to move to %d, got %d", f2.node.WidgetID, w.FocusedID())
	}
}

func TestFocus_HandledKeySuppressesTraversal(t *testing.T) {
	consumer := &probeWidget{handleKeys: true}
	f1 := NewFocus(consumer).WithAutoFocus(true)
	f2 := NewFocus(&probeWidget{})

	w := NewWindow(NewColumn(f1, f2))
	w.Attach()

	w.ProcessEvent(KeyEvent{Key: KeyTab})

	if w.FocusedID() != f1.node.WidgetID {
		t.Errorf("Expected handled Tab to leave focus on %d, got %d",
			f1.node.WidgetID, w.FocusedID())
	}
}

func TestFocus_RequestFocusCommandByID(t *testing.T) {
	f1 := NewFocus(&probeWidget{})
	f2 := NewFocus(&probeWidget{})

	w := NewWindow(NewColumn(f1, f2))
	w.Attach()

	w.SubmitCommand(RequestFocusCommand(f2.node.WidgetID))
	w.ProcessEvent(dummyEvent())

	if w.FocusedID() != f2.node.WidgetID {
		t.Errorf("Expected command to focus widget %d, got %d",
			f2.node.WidgetID, w.FocusedID())
	}

	// A command naming an unknown ID moves nothing.
	w.SubmitCommand(RequestFocusCommand(ID(99999)))
	w.ProcessEvent(dummyEvent())

	if w.FocusedID() != f2.node.WidgetID {
		t.Errorf("Expected unknown target to leave focus on %d, got %d",
			f2.node.WidgetID, w.FocusedID())
	}
}

func TestFocus_ReemitsFocusNodeChangedCommand(t *testing.T) {
	probe := &probeWidget{}
	f1 := NewFocus(probe).WithAutoFocus(true)
	f2 := NewFocus(&probeWidget{})

	w := NewWindow(NewColumn(f1, f2))
	w.Attach()

	// The gain notification from Attach is queued; the next cycle
	// delivers it.
	w.ProcessEvent(dummyEvent())

	var gained, lost int
	for _, cmd := range probe.commands {
		if cmd.Selector != SelectorFocusNodeChanged || cmd.Target != f1.node.WidgetID {
			continue
		}
		if focused, ok := cmd.Payload.(bool); ok && focused {
			gained++
		} else {
			lost++
		}
	}
	if gained != 1 || lost != 0 {
		t.Fatalf("Expected one gain notification after attach, got gained=%d lost=%d", gained, lost)
	}

	// Move focus away and run another cycle to flush the loss.
	w.SubmitCommand(RequestFocusCommand(f2.node.WidgetID))
	w.ProcessEvent(dummyEvent())
	w.ProcessEvent(dummyEvent())

	lost = 0
	for _, cmd := range probe.commands {
		if cmd.Selector == SelectorFocusNodeChanged && cmd.Target == f1.node.WidgetID {
			if focused, ok := cmd.Payload.(bool); ok && !focused {
				lost++
			}
		}
	}
	if lost != 1 {
		t.Errorf("Expected one loss notification, got %d", lost)
	}
}

func TestFocus_LoserNotifiedBeforeGainer(t *testing.T) {
	probe := &probeWidget{}
	f1 := NewFocus(&probeWidget{}).WithAutoFocus(true)
	f2 := NewFocus(&probeWidget{})

	w := NewWindow(NewColumn(f1, f2, probe))
	w.Attach()

	probe.focusChanges = nil
	w.SubmitCommand(RequestFocusCommand(f2.node.WidgetID))
	w.ProcessEvent(dummyEvent())

	if len(probe.focusChanges) != 2 {
		t.Fatalf("Expected 2 focus-change broadcasts, got %d", len(probe.focusChanges))
	}
	if probe.focusChanges[0].target != f1.node.WidgetID || probe.focusChanges[0].focused {
		t.Errorf("Expected first broadcast to be loss for %d, got %+v",
			f1.node.WidgetID, probe.focusChanges[0])
	}
	if probe.focusChanges[1].target != f2.node.WidgetID || !probe.focusChanges[1].focused {
		t.Errorf("Expected second broadcast to be gain for %d, got %+v",
			f2.node.WidgetID, probe.focusChanges[1])
	}
}

func TestFocusManager_RegisterIsIdempotent(t *testing.T) {
	fm := NewFocusManager()
	fm.Register(1, 0)
	fm.Register(2, 0)
	fm.Register(1, 0)

	if len(fm.entries) != 2 {
		t.Errorf("Expected 2 entries after duplicate register, got %d", len(fm.entries))
	}
}

func TestFocusManager_UnregisterClearsFocus(t *testing.T) {
	fm := NewFocusManager()
	fm.Register(1, 0)
	fm.Register(2, 0)

	fm.RequestFocus(1)
	fm.resolve()
	if fm.Focused() != 1 {
		t.Fatalf("Expected focus on 1, got %d", fm.Focused())
	}

	fm.Unregister(1)
	if fm.Focused() != 0 {
		t.Errorf("Expected focus cleared after unregister, got %d", fm.Focused())
	}
	if len(fm.entries) != 1 {
		t.Errorf("Expected 1 entry left, got %d", len(fm.entries))
	}
}

func TestFocusManager_AdvanceWithoutOwnerPicksEnds(t *testing.T) {
	fm := NewFocusManager()
	fm.Register(1, 0)
	fm.Register(2, 0)
	fm.Register(3, 0)

	fm.FocusNext()
	if _, now, changed := fm.resolve(); !changed || now != 1 {
		t.Errorf("Expected FocusNext with no owner to pick first, got %d", now)
	}

	fm.Unregister(1)
	fm.Unregister(2)
	fm.Unregister(3)
	fm.Register(4, 0)
	fm.Register(5, 0)

	fm.FocusPrev()
	if _, now, changed := fm.resolve(); !changed || now != 5 {
		t.Errorf("Expected FocusPrev with no owner to pick last, got %d", now)
	}
}

func TestFocusManager_LastRequestWins(t *testing.T) {
	fm := NewFocusManager()
	fm.Register(1, 0)
	fm.Register(2, 0)

	fm.RequestFocus(1)
	fm.RequestFocus(2)

	old, now, changed := fm.resolve()
	if !changed || old != 0 || now != 2 {
		t.Errorf("Expected last request to win (0 -> 2), got old=%d now=%d changed=%t", old, now, changed)
	}

	// Re-requesting the current owner is not a change.
	fm.RequestFocus(2)
	if _, _, changed := fm.resolve(); changed {
		t.Error("Expected re-request of current owner to report no change")
	}
}

func TestPod_AssignsIDOnce(t *testing.T) {
	w := NewWindow(&probeWidget{})
	w.Attach()

	id := w.root.ID()
	if id == 0 {
		t.Fatal("Expected pod to have an ID after attach")
	}

	w.root.Lifecycle(w.ctx, &LifecycleEvent{Kind: LifecycleWidgetAdded}, w.env)
	if w.root.ID() != id {
		t.Errorf("Expected ID to stay %d after repeated WidgetAdded, got %d", id, w.root.ID())
	}
}
