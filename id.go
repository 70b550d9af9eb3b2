package retained

import "sync/atomic"

// ID uniquely identifies a widget in the tree.
// IDs are assigned by the dispatch engine when a widget is attached and
// stay stable for the lifetime of the widget. Zero is "no widget".
type ID uint64

var nextID atomic.Uint64

// NewID returns a fresh widget ID.
// Called by Pod when a widget first joins the tree; widgets never mint
// their own IDs.
func NewID() ID {
	return ID(nextID.Add(1))
}
