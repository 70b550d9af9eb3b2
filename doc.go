/*
Package retained provides a retained-mode widget tree with keyboard-focus
management, designed as idiomatic Go with a dedicated Context type.

# Overview

This package implements a retained-mode widget tree: the application
builds the tree once, and a Window drives five passes over it each frame
(event, lifecycle, update, layout, paint). Widgets own their state;
focus is tracked centrally by a FocusManager and flows through the tree
as an ambient context that wrapper widgets install and restore.

# Quick Start

	// Build a tree: a column of focusable labels.
	shaper := retained.NewBasicShaper()
	root := retained.NewColumn(
	    retained.NewFocus(retained.NewLabel("first", shaper)).WithAutoFocus(true),
	    retained.NewFocus(retained.NewLabel("second", shaper)),
	)

	window := retained.NewWindow(root)
	window.Attach()

	// Frame loop
	for running {
	    dl := window.RunCycle(pollEvents()...)
	    render(dl)
	}

# Focus

Wrapping any widget in Focus makes its subtree focusable: a pointer
press inside its laid-out bounds requests focus, Tab and Shift+Tab move
focus between
focusables, and descendants can read the ambient FocusNode from the
Context to render focus indication. FocusScope constrains Tab traversal
to the focusables inside it, wrapping at both ends.

Focus changes never apply mid-pass. Requests accumulate during a
dispatch cycle, the last one wins, and the Window resolves the winner at
the end of the cycle, notifying the loser and then the gainer through
targeted FocusChanged lifecycle events.

# Commands

Commands are typed messages queued with Context.Submit (or
Window.SubmitCommand from outside the tree) and delivered tree-wide as
CommandEvents at the start of the next event cycle. Receivers filter by
Selector and Target. RequestFocusCommand moves focus to an arbitrary
widget by ID without knowing its place in the tree.

# Text

Label measures its text through a Shaper and caches the result in a
TextLayout, re-measuring only when the text, font, or wrap width change.
A font the shaper cannot resolve degrades the layout to empty instead of
failing the pass.
*/
package retained
