package retained

// Selector identifies the kind of a Command.
// Applications can define their own selectors; the values below are the
// ones the focus subsystem uses.
type Selector string

const (
	// SelectorRequestFocus asks the Focus widget whose ID matches the
	// payload to request keyboard focus for itself.
	SelectorRequestFocus Selector = "retained.request-focus"

	// SelectorFocusNodeChanged is re-emitted by a Focus widget, addressed
	// to itself, when its focus state changes. Composite widgets that
	// wrap a Focus observe this to react to focus gain/loss.
	SelectorFocusNodeChanged Selector = "retained.focus-node-changed"
)

// Command is a typed message queued during one dispatch cycle and
// delivered as a CommandEvent on the next.
type Command struct {
	Selector Selector
	Payload  any
	Target   ID // zero = no specific target; receivers filter themselves
}

// RequestFocusCommand builds the command that moves focus to the Focus
// widget with the given ID.
func RequestFocusCommand(id ID) Command {
	return Command{Selector: SelectorRequestFocus, Payload: id}
}
