package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow
	ActionDown             // S, Down arrow
	ActionLeft             // A, Left arrow
	ActionRight            // D, Right arrow
	ActionDash             // Space - dash while moving
	ActionPause            // P - pause toggle
	ActionRestart          // Enter - play again after a run ends
	ActionHardReset        // R - restart the current run immediately
	ActionBuySpeed         // 1 - purchase speed upgrade
	ActionBuyLives         // 2 - purchase lives upgrade
	ActionBuyMagnet        // 3 - purchase magnet upgrade
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDash:
		return "Dash"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionHardReset:
		return "HardReset"
	case ActionBuySpeed:
		return "BuySpeed"
	case ActionBuyLives:
		return "BuyLives"
	case ActionBuyMagnet:
		return "BuyMagnet"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot consumed by one simulation tick.
//
// Held contains level-triggered actions (currently down). Pressed contains
// edge-triggered actions that began during this frame; the driver clears them
// after the tick so a single press fires at most once.
type InputFrame struct {
	Held    map[Action]bool
	Pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held:    make(map[Action]bool),
		Pressed: make(map[Action]bool),
	}
}

// Hold marks an action as currently held.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Press records a new press of an action. A pressed action is also held.
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
	f.Hold(a)
}

// IsHeld returns true if the action is down during this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// WasPressed returns true if the action was pressed during this frame.
func (f InputFrame) WasPressed(a Action) bool {
	return f.Pressed[a]
}

// Axis returns the raw movement direction from the four movement actions.
// Opposite directions cancel out.
func (f InputFrame) Axis() (dx, dy float64) {
	if f.IsHeld(ActionRight) {
		dx++
	}
	if f.IsHeld(ActionLeft) {
		dx--
	}
	if f.IsHeld(ActionDown) {
		dy++
	}
	if f.IsHeld(ActionUp) {
		dy--
	}
	return dx, dy
}
