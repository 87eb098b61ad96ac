package press

// RawPointerEvent is a pointer event as delivered by the platform. Mouse-style
// events carry their own coordinates; touch-style events carry touch lists.
// Either coordinate may be absent.
type RawPointerEvent struct {
	X, Y           float64
	HasX, HasY     bool
	Touches        []Vec2 // touches currently on the surface
	ChangedTouches []Vec2 // touches that changed in this event (e.g. lifted)
}

// PointerEvent is the canonical {clientX, clientY} shape handlers receive.
type PointerEvent struct {
	ClientX, ClientY float64
	HasX, HasY       bool
}

// PointerAt returns a raw event with both coordinates set.
func PointerAt(x, y float64) RawPointerEvent {
	return RawPointerEvent{X: x, Y: y, HasX: true, HasY: true}
}

// PointerWithout returns a raw event that carries no coordinates.
func PointerWithout() RawPointerEvent {
	return RawPointerEvent{}
}

// Valid reports whether both coordinates are present.
func (e PointerEvent) Valid() bool {
	return e.HasX && e.HasY
}

// Point returns the event position. Only meaningful when Valid is true.
func (e PointerEvent) Point() Vec2 {
	return Vec2{X: e.ClientX, Y: e.ClientY}
}

// normalizeEvent maps a raw event to a PointerEvent. The first active touch
// wins, then the first changed touch (a lifted finger is only listed there),
// then the event's own coordinates.
func normalizeEvent(raw RawPointerEvent) PointerEvent {
	if len(raw.Touches) > 0 {
		t := raw.Touches[0]
		return PointerEvent{ClientX: t.X, ClientY: t.Y, HasX: true, HasY: true}
	}
	if len(raw.ChangedTouches) > 0 {
		t := raw.ChangedTouches[0]
		return PointerEvent{ClientX: t.X, ClientY: t.Y, HasX: true, HasY: true}
	}
	return PointerEvent{ClientX: raw.X, ClientY: raw.Y, HasX: raw.HasX, HasY: raw.HasY}
}
