package core

// Action represents a semantic game intent, abstracted from physical key
// presses. The platform maps keys to actions; games never see raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveNorth        // W, Up arrow - move toward -Z
	ActionMoveSouth        // S, Down arrow - move toward +Z
	ActionMoveWest         // A, Left arrow - move toward -X
	ActionMoveEast         // D, Right arrow - move toward +X
	ActionPush             // F - push a nearby box
	ActionRestart          // R - restart the session
	ActionPause            // P - pause/unpause
	ActionHelp             // H - toggle help overlay
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveNorth:
		return "MoveNorth"
	case ActionMoveSouth:
		return "MoveSouth"
	case ActionMoveWest:
		return "MoveWest"
	case ActionMoveEast:
		return "MoveEast"
	case ActionPush:
		return "Push"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the intents gathered during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
