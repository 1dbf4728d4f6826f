package engine

// Action is a subscription lifecycle verb.
type Action string

const (
	ActionEnable  Action = "enable"
	ActionDisable Action = "disable"
	ActionAttach  Action = "attach"
	ActionDetach  Action = "detach"
	ActionRefresh Action = "refresh"
)

// Batched reports whether the action operates on a list of services.
// attach, detach and refresh are single-shot machine-level actions.
func (a Action) Batched() bool {
	return a == ActionEnable || a == ActionDisable
}

// RequiresAttachment reports whether the action is only meaningful on an
// attached machine.
func (a Action) RequiresAttachment() bool {
	switch a {
	case ActionEnable, ActionDisable, ActionDetach, ActionRefresh:
		return true
	default:
		return false
	}
}

// Request describes one CLI invocation of a batched action.
type Request struct {
	Action Action
	// Services is the raw requested name list, in CLI order, possibly
	// containing duplicates and unknown names.
	Services []string
	// AssumeYes skips interactive confirmation. It does not influence
	// resolution; it is carried for the command layer.
	AssumeYes bool
}
