package core

// Event is a single decoded player input, abstracted from the physical
// key press. Both the live keyboard and the playback reader produce
// events; the session consumes them without knowing the source.
type Event int

const (
	EventUnknown Event = iota
	EventLeft
	EventRight
	EventUp
	EventDown
	EventQuit
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventLeft:
		return "Left"
	case EventRight:
		return "Right"
	case EventUp:
		return "Up"
	case EventDown:
		return "Down"
	case EventQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the event is one of the four moves.
func (e Event) IsDirection() bool {
	switch e {
	case EventLeft, EventRight, EventUp, EventDown:
		return true
	}
	return false
}

// Key returns the canonical key character for the event. Replay files
// always store the canonical character, regardless of which physical
// key produced the move.
func (e Event) Key() byte {
	switch e {
	case EventLeft:
		return 'a'
	case EventRight:
		return 'd'
	case EventUp:
		return 'w'
	case EventDown:
		return 's'
	case EventQuit:
		return 'q'
	default:
		return '?'
	}
}

// EventForKey maps a key character to an event. Both WASD and vim-style
// HJKL are accepted. Anything else is EventUnknown.
func EventForKey(key byte) Event {
	switch key {
	case 'a', 'h':
		return EventLeft
	case 'd', 'l':
		return EventRight
	case 'w', 'k':
		return EventUp
	case 's', 'j':
		return EventDown
	case 'q':
		return EventQuit
	default:
		return EventUnknown
	}
}
