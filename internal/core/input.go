package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform translates raw input into actions; the game never polls devices.
type Action int

const (
	ActionNone        Action = iota
	ActionStartFlight        // Space, W, Up - jetpack thrust on
	ActionStopFlight         // thrust released (or hold window expired)
	ActionFire               // F, X, J - fire weapon
	ActionConfirm            // Enter - start a run from the title screen
	ActionBack               // B, Escape - leave the scoreboard
	ActionRestart            // R - new run after game over
	ActionScores             // S - open the scoreboard after game over
	ActionQuit               // Q, Ctrl+C - exit
	ActionPause              // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStartFlight:
		return "StartFlight"
	case ActionStopFlight:
		return "StopFlight"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionScores:
		return "Scores"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame holds the discrete actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
	DtMs    float64 // Real time since the previous tick; 0 means one nominal tick
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make(map[Action]bool, len(actions))}
	for _, a := range actions {
		f.Actions[a] = true
	}
	return f
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
	return f.Actions[a]
}

// Clear resets all actions and the elapsed time for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.DtMs = 0
}
