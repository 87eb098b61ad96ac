package press

// Tracker turns the pointer events of one target surface into press
// notifications. A press starts on pointer-down over the target and resolves
// on the first of:
//
//   - pointer-up: EventPressEnd, or EventPressCancel if the check below fires
//   - pointer-move that fails the check: EventPressCancel
//   - pointer-leave: EventPressCancel
//
// The check cancels when the pointer moved more than the max distance from
// where the press started, or when any scroll-container ancestor of the
// target scrolled since then.
//
// Only one press is tracked at a time. Events that do not apply to the
// current state are ignored.
type Tracker struct {
	target Surface
	notify Notifier
	events *Emitter

	maxDistance float64
	debug       bool
	destroyed   bool

	state    State
	anchor   *Vec2
	last     *Vec2
	snapshot *ScrollSnapshot

	handles [4]CallbackHandle

	// Bound at construction; re-invoking after Destroy is a no-op.
	onDown  func(PointerEvent)
	onMove  func(PointerEvent)
	onLeave func(PointerEvent)
	onUp    func(PointerEvent)
}

// NewTracker binds a tracker to target. Pointer-down is observed on target
// itself; move, leave and up are observed on Window so a press is followed
// after the pointer wanders off the target.
func NewTracker(src Subscriber, target Surface) *Tracker {
	events := NewEmitter()
	t := &Tracker{
		target:      target,
		notify:      events,
		events:      events,
		maxDistance: DefaultMaxDistance,
	}
	t.onDown = func(ev PointerEvent) { t.handleDown(ev) }
	t.onMove = func(ev PointerEvent) { t.handleMove(ev) }
	t.onLeave = func(ev PointerEvent) { t.handleLeave(ev) }
	t.onUp = func(ev PointerEvent) { t.handleUp(ev) }

	t.handles[0] = src.On(target, EventPointerDown, t.onDown)
	t.handles[1] = src.On(Window, EventPointerMove, t.onMove)
	t.handles[2] = src.On(Window, EventPointerLeave, t.onLeave)
	t.handles[3] = src.On(Window, EventPointerUp, t.onUp)
	return t
}

// Destroy unsubscribes from all pointer events and drops any press in
// progress without notifying. Calling Destroy again is a no-op.
func (t *Tracker) Destroy() {
	if t.destroyed {
		return
	}
	t.destroyed = true
	t.reset()
	for i := range t.handles {
		t.handles[i].Remove()
		t.handles[i] = CallbackHandle{}
	}
	if t.debug {
		debugf("tracker destroyed")
	}
}

// Target returns the surface the tracker is bound to.
func (t *Tracker) Target() Surface {
	return t.target
}

// State returns the current gesture state.
func (t *Tracker) State() State {
	return t.state
}

// Anchor returns the position where the active press started.
// ok is false when idle.
func (t *Tracker) Anchor() (p Vec2, ok bool) {
	if t.anchor == nil {
		return Vec2{}, false
	}
	return *t.anchor, true
}

// Last returns the most recent pointer position of the active press.
// ok is false when idle.
func (t *Tracker) Last() (p Vec2, ok bool) {
	if t.last == nil {
		return Vec2{}, false
	}
	return *t.last, true
}

// Snapshot returns the scroll state captured when the active press started.
// ok is false when idle.
func (t *Tracker) Snapshot() (snap ScrollSnapshot, ok bool) {
	if t.snapshot == nil {
		return ScrollSnapshot{}, false
	}
	return *t.snapshot, true
}

// On registers fn for a press notification on the tracker's own emitter.
// Listeners registered here are not called after SetNotifier replaces the
// emitter.
func (t *Tracker) On(event EventType, fn func(EventType)) CallbackHandle {
	return t.events.On(event, fn)
}

// Once registers fn for the next occurrence of a press notification.
func (t *Tracker) Once(event EventType, fn func(EventType)) CallbackHandle {
	return t.events.Once(event, fn)
}

// SetNotifier routes press notifications to n instead of the tracker's own
// emitter. Passing nil restores the tracker's emitter.
func (t *Tracker) SetNotifier(n Notifier) {
	if n == nil {
		n = t.events
	}
	t.notify = n
}

// SetMaxDistance sets the motion limit past which an active press is
// cancelled.
func (t *Tracker) SetMaxDistance(d float64) {
	t.maxDistance = d
}

// MaxDistance returns the motion limit.
func (t *Tracker) MaxDistance() float64 {
	return t.maxDistance
}

// SetDebugMode enables logging of state transitions.
func (t *Tracker) SetDebugMode(enabled bool) {
	t.debug = enabled
}

// --- Transitions ---

func (t *Tracker) handleDown(ev PointerEvent) {
	if t.destroyed || t.state != StateIdle {
		return
	}
	if !ev.Valid() {
		return
	}
	p := ev.Point()
	anchor, last := p, p
	snap := CollectScrollables(t.target)
	t.anchor = &anchor
	t.last = &last
	t.snapshot = &snap
	t.state = StateActive
	if t.debug {
		debugf("press start at (%g, %g), %d scroll containers", p.X, p.Y, len(snap.Scrollables))
	}
	t.notify.Emit(EventPressStart)
}

func (t *Tracker) handleMove(ev PointerEvent) {
	if t.destroyed || t.state != StateActive {
		return
	}
	t.updateLast(ev)
	t.cancelIfMoving()
}

func (t *Tracker) handleLeave(ev PointerEvent) {
	if t.destroyed || t.state != StateActive {
		return
	}
	t.updateLast(ev)
	t.cancel("pointer left")
}

func (t *Tracker) handleUp(ev PointerEvent) {
	if t.destroyed || t.state != StateActive {
		return
	}
	t.updateLast(ev)
	if t.cancelIfMoving() {
		return
	}
	t.reset()
	if t.debug {
		debugf("press end")
	}
	t.notify.Emit(EventPressEnd)
}

// updateLast records the event position. Events without coordinates keep the
// previous position.
func (t *Tracker) updateLast(ev PointerEvent) {
	if !ev.Valid() {
		return
	}
	p := ev.Point()
	t.last = &p
}

// cancelIfMoving cancels the press when the pointer travelled too far or a
// scroll container under the target scrolled. Reports whether it cancelled.
func (t *Tracker) cancelIfMoving() bool {
	if exceedsDistance(*t.anchor, *t.last, t.maxDistance) {
		return t.cancel("moved too far")
	}
	now := CollectScrollables(t.target)
	if t.snapshot.Scrolled(now) {
		return t.cancel("surface scrolled")
	}
	return false
}

func (t *Tracker) cancel(reason string) bool {
	t.reset()
	if t.debug {
		debugf("press cancel: %s", reason)
	}
	t.notify.Emit(EventPressCancel)
	return true
}

// reset returns to idle and clears every per-press field.
func (t *Tracker) reset() {
	t.state = StateIdle
	t.anchor = nil
	t.last = nil
	t.snapshot = nil
}
