package core

// Action represents a semantic host action, abstracted from physical key presses.
// The simulation itself takes no input; actions only steer the platform.
type Action int

const (
	ActionNone              Action = iota
	ActionRestart                  // R - repopulate the arena with a fresh seed
	ActionToggleDiagnostics        // D - show/hide the FPS and figure count overlay
	ActionToggleHelp               // ? - show/hide the key help line
	ActionQuit                     // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRestart:
		return "Restart"
	case ActionToggleDiagnostics:
		return "ToggleDiagnostics"
	case ActionToggleHelp:
		return "ToggleHelp"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
