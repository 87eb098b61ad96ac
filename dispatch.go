package press

import "reflect"

// --- Window surface ---

type windowSurface struct{}

func (windowSurface) ParentSurface() Surface           { return nil }
func (windowSurface) ScrollOffset() (float64, float64) { return 0, 0 }
func (windowSurface) IsScrollContainer() bool          { return false }

// Window is the global input surface. Every dispatched pointer event reaches
// handlers registered on Window after it has bubbled through the target's
// ancestors.
var Window Surface = windowSurface{}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerEvent)
}

type dispatchKey struct {
	target Surface
	event  EventType
}

// keyable reports whether s can be used as a registry key. Surfaces whose
// dynamic value holds slices, maps or funcs cannot.
func keyable(s Surface) bool {
	return reflect.ValueOf(s).Comparable()
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	remove func()
}

// NewCallbackHandle wraps an unsubscribe function. Subscriber implementations
// outside this package use it to return handles.
func NewCallbackHandle(remove func()) CallbackHandle {
	return CallbackHandle{remove: remove}
}

// Remove unregisters the callback so it no longer fires. Removing a zero
// handle, or removing twice, is a no-op.
func (h CallbackHandle) Remove() {
	if h.remove != nil {
		h.remove()
	}
}

// Subscriber attaches callbacks to named pointer events on a surface.
type Subscriber interface {
	On(target Surface, event EventType, fn func(PointerEvent)) CallbackHandle
}

// Dispatcher is the platform event subscription mechanism. Any number of
// callbacks may be registered per (surface, event) pair; each handle removes
// only its own callback.
//
// A Dispatcher is not safe for concurrent use.
type Dispatcher struct {
	handlers map[dispatchKey][]pointerHandler
	nextID   uint32
	fireBuf  []pointerHandler
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[dispatchKey][]pointerHandler)}
}

// On registers fn for event on target. Use Window as the target for global
// listeners. A target that is not comparable is never delivered to: On
// returns a zero handle and registers nothing.
func (d *Dispatcher) On(target Surface, event EventType, fn func(PointerEvent)) CallbackHandle {
	if !keyable(target) {
		if globalDebug {
			debugf("dispatcher: ignoring %s handler on non-comparable surface %T", event, target)
		}
		return CallbackHandle{}
	}
	d.nextID++
	id := d.nextID
	key := dispatchKey{target: target, event: event}
	d.handlers[key] = append(d.handlers[key], pointerHandler{id: id, fn: fn})
	return CallbackHandle{remove: func() { d.remove(key, id) }}
}

func (d *Dispatcher) remove(key dispatchKey, id uint32) {
	s := d.handlers[key]
	for i := range s {
		if s[i].id == id {
			// Fresh backing array so an in-flight dispatch keeps its view.
			out := make([]pointerHandler, 0, len(s)-1)
			out = append(out, s[:i]...)
			out = append(out, s[i+1:]...)
			if len(out) == 0 {
				delete(d.handlers, key)
			} else {
				d.handlers[key] = out
			}
			return
		}
	}
}

// HandlerCount returns the number of callbacks registered for event on target.
func (d *Dispatcher) HandlerCount(target Surface, event EventType) int {
	if !keyable(target) {
		return 0
	}
	return len(d.handlers[dispatchKey{target: target, event: event}])
}

// Dispatch normalizes raw and delivers it to handlers on target, then on each
// ancestor of target, then on Window. Callbacks registered or removed while
// dispatching take effect from the next Dispatch. Returns the number of
// callbacks run.
func (d *Dispatcher) Dispatch(target Surface, event EventType, raw RawPointerEvent) int {
	ev := normalizeEvent(raw)

	// Collect first: a callback may unsubscribe itself or others. The buffer
	// is detached while firing so a nested Dispatch allocates its own.
	buf := d.fireBuf[:0]
	d.fireBuf = nil
	for s := target; s != nil && s != Window; s = s.ParentSurface() {
		if keyable(s) {
			buf = append(buf, d.handlers[dispatchKey{target: s, event: event}]...)
		}
	}
	buf = append(buf, d.handlers[dispatchKey{target: Window, event: event}]...)

	for _, h := range buf {
		h.fn(ev)
	}
	n := len(buf)
	clear(buf)
	d.fireBuf = buf[:0]
	return n
}
