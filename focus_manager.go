package retained

// FocusManager tracks which widget currently owns keyboard focus and moves
// it between registered focusables. Registration order is tree pre-order,
// because widgets register during the WidgetAdded lifecycle walk; that
// order is the Tab traversal order.
//
// Each focusable is bound to the focus scope that was ambient when it
// registered, which is its innermost enclosing FocusScope. Next/Prev
// navigation never leaves the focused widget's scope and wraps at both
// ends of the scope's filtered list.
//
// Focus changes are requested, not applied, during a pass: the pending
// request is resolved by the Window at the end of the dispatch cycle, and
// the last request issued during a cycle wins.
type FocusManager struct {
	entries    []focusEntry
	focused    ID // zero = none
	pending    ID
	hasPending bool
}

type focusEntry struct {
	id    ID
	scope ID // enclosing scope root; zero = window root scope
}

// NewFocusManager creates an empty focus manager.
func NewFocusManager() *FocusManager {
	return &FocusManager{}
}

// Register adds a focusable widget bound to the given scope.
// Registering an already-known widget is a no-op.
func (fm *FocusManager) Register(id, scope ID) {
	if id == 0 {
		return
	}
	for _, e := range fm.entries {
		if e.id == id {
			return
		}
	}
	fm.entries = append(fm.entries, focusEntry{id: id, scope: scope})
	focusLogger.Debug("focus: registered", "id", id, "scope", scope, "order", len(fm.entries)-1)
}

// Unregister removes a widget from the traversal order, clearing focus if
// it was the owner.
func (fm *FocusManager) Unregister(id ID) {
	for i, e := range fm.entries {
		if e.id == id {
			fm.entries = append(fm.entries[:i], fm.entries[i+1:]...)
			break
		}
	}
	if fm.focused == id {
		fm.focused = 0
	}
	if fm.hasPending && fm.pending == id {
		fm.hasPending = false
	}
}

// Focused returns the widget that currently owns focus, or zero.
func (fm *FocusManager) Focused() ID {
	return fm.focused
}

// IsFocused reports whether the given widget owns focus.
func (fm *FocusManager) IsFocused(id ID) bool {
	return id != 0 && fm.focused == id
}

// RequestFocus records a pending focus change. Overwrites any earlier
// request from the same cycle.
func (fm *FocusManager) RequestFocus(id ID) {
	fm.pending = id
	fm.hasPending = true
	focusLogger.Debug("focus: requested", "id", id)
}

// FocusNext requests focus for the next focusable after the current one,
// staying within the current owner's scope and wrapping past the end.
// With no current owner, the first focusable of the root scope is chosen.
func (fm *FocusManager) FocusNext() {
	fm.advance(1)
}

// FocusPrev requests focus for the previous focusable before the current
// one, staying within the current owner's scope and wrapping past the
// start. With no current owner, the last focusable of the root scope is
// chosen.
func (fm *FocusManager) FocusPrev() {
	fm.advance(-1)
}

func (fm *FocusManager) advance(delta int) {
	scope := fm.scopeOf(fm.focused)
	ids := fm.inScope(scope)
	if len(ids) == 0 {
		focusLogger.Debug("focus: no focusables in scope", "scope", scope)
		return
	}

	idx := -1
	for i, id := range ids {
		if id == fm.focused {
			idx = i
			break
		}
	}

	var next ID
	if idx < 0 {
		if delta > 0 {
			next = ids[0]
		} else {
			next = ids[len(ids)-1]
		}
	} else {
		next = ids[(idx+delta+len(ids))%len(ids)]
	}

	focusLogger.Debug("focus: advance", "from", fm.focused, "to", next, "scope", scope)
	fm.RequestFocus(next)
}

// scopeOf returns the scope the given widget registered under, or the
// root scope if the widget is unknown.
func (fm *FocusManager) scopeOf(id ID) ID {
	for _, e := range fm.entries {
		if e.id == id {
			return e.scope
		}
	}
	return 0
}

// inScope returns the ids of all focusables bound to the given scope, in
// registration order.
func (fm *FocusManager) inScope(scope ID) []ID {
	ids := make([]ID, 0, len(fm.entries))
	for _, e := range fm.entries {
		if e.scope == scope {
			ids = append(ids, e.id)
		}
	}
	return ids
}

// resolve applies the pending request, if any. Returns the previous and
// new owner when focus actually moved.
func (fm *FocusManager) resolve() (old, now ID, changed bool) {
	if !fm.hasPending {
		return 0, 0, false
	}
	fm.hasPending = false
	if fm.pending == fm.focused {
		return 0, 0, false
	}
	old = fm.focused
	fm.focused = fm.pending
	return old, fm.focused, true
}
