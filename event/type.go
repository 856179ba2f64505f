package event

// EventType identifies a host notification delivered to scenes
type EventType uint8

const (
	// EventResize carries new viewport dimensions
	EventResize EventType = iota + 1
	// EventTheme signals that the theme source switched palettes
	EventTheme
	// EventPause signals the clock was paused or resumed
	EventPause
	// EventPointer carries the pointer position in normalized device coordinates
	EventPointer
)

func (t EventType) String() string {
	switch t {
	case EventResize:
		return "Resize"
	case EventTheme:
		return "Theme"
	case EventPause:
		return "Pause"
	case EventPointer:
		return "Pointer"
	default:
		return "Unknown"
	}
}

// Event is one notification, fields beyond Type are set per type
type Event struct {
	Type   EventType
	Width  int
	Height int
	Paused bool
	X, Y   float64 // pointer, [-1,1] with y up
}
