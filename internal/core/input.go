package core

// Action represents a semantic platform action, abstracted from physical key
// presses. Game movement keys travel as KeyEvents instead.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // P - pause/unpause the loop
	ActionRules          // ? - toggle the rules panel
	ActionRuns           // T - toggle the session runs table
	ActionBack           // Esc - close any open panel
	ActionRestart        // R - rebuild the game from its config
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRules:
		return "Rules"
	case ActionRuns:
		return "Runs"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Key is a key identifier as reported by the input source.
type Key string

// Directional key identifiers. Both the legacy and the modern spellings are
// recognised by games.
const (
	KeyLeft       Key = "Left"
	KeyRight      Key = "Right"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
)

// KeyEventType distinguishes presses from releases.
type KeyEventType int

const (
	KeyPress KeyEventType = iota
	KeyRelease
)

// String returns "press" or "release".
func (t KeyEventType) String() string {
	if t == KeyRelease {
		return "release"
	}
	return "press"
}

// KeyEvent is a single key press or release.
type KeyEvent struct {
	Type KeyEventType
	Key  Key
}

// Press builds a key press event.
func Press(k Key) KeyEvent {
	return KeyEvent{Type: KeyPress, Key: k}
}

// Release builds a key release event.
func Release(k Key) KeyEvent {
	return KeyEvent{Type: KeyRelease, Key: k}
}

// InputFrame represents the input for a single simulation tick: the key
// events delivered since the previous tick, in arrival order, plus any
// platform actions.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Keys holds key events in the order they arrived.
	Keys []KeyEvent
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

// AddKey appends a key event to the frame.
func (f *InputFrame) AddKey(ev KeyEvent) {
	f.Keys = append(f.Keys, ev)
}

// Clear resets all actions and key events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Keys = f.Keys[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if len(f.Keys) > 0 {
		clone.Keys = append([]KeyEvent(nil), f.Keys...)
	}
	return clone
}
