package press

// Vec2 is a 2D vector used for pointer coordinates and offsets.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersect returns the overlap of r and other. The result has zero width or
// height when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.X+r.Width, other.X+other.Width)
	y1 := min(r.Y+r.Height, other.Y+other.Height)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// EventType identifies a platform pointer event or a press notification.
type EventType uint8

const (
	EventPointerDown  EventType = iota // a pointer button was pressed over a surface
	EventPointerMove                   // the pointer moved
	EventPointerLeave                  // the pointer left a surface
	EventPointerUp                     // a pointer button was released
	EventPressStart                    // a press gesture began
	EventPressEnd                      // a press gesture completed
	EventPressCancel                   // a press gesture was aborted
)

var eventNames = [...]string{
	EventPointerDown:  "pointerdown",
	EventPointerMove:  "pointermove",
	EventPointerLeave: "pointerleave",
	EventPointerUp:    "pointerup",
	EventPressStart:   "pressstart",
	EventPressEnd:     "pressend",
	EventPressCancel:  "presscancel",
}

// String returns the lowercase event name, e.g. "pressstart".
func (e EventType) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}

// State is the gesture state of a Tracker.
type State uint8

const (
	StateIdle   State = iota // no gesture in progress
	StateActive              // pointer down, gesture not yet resolved
)

// String returns "idle" or "active".
func (s State) String() string {
	if s == StateActive {
		return "active"
	}
	return "idle"
}
