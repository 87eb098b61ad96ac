package press

// Notifier delivers press notifications. Tracker emits through it.
type Notifier interface {
	Emit(event EventType)
}

type notifyHandler struct {
	id   uint32
	once bool
	fn   func(EventType)
}

// Emitter is a synchronous publish/subscribe notifier for press events.
// Listeners run in registration order on the emitting goroutine. The zero
// value is ready to use.
type Emitter struct {
	listeners map[EventType][]notifyHandler
	nextID    uint32
}

// NewEmitter returns an emitter with no listeners.
func NewEmitter() *Emitter {
	return &Emitter{listeners: make(map[EventType][]notifyHandler)}
}

// On registers fn for event.
func (e *Emitter) On(event EventType, fn func(EventType)) CallbackHandle {
	return e.add(event, fn, false)
}

// Once registers fn for the next emission of event only.
func (e *Emitter) Once(event EventType, fn func(EventType)) CallbackHandle {
	return e.add(event, fn, true)
}

func (e *Emitter) add(event EventType, fn func(EventType), once bool) CallbackHandle {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]notifyHandler)
	}
	e.nextID++
	id := e.nextID
	e.listeners[event] = append(e.listeners[event], notifyHandler{id: id, once: once, fn: fn})
	return CallbackHandle{remove: func() { e.remove(event, id) }}
}

func (e *Emitter) remove(event EventType, id uint32) {
	s := e.listeners[event]
	for i := range s {
		if s[i].id == id {
			out := make([]notifyHandler, 0, len(s)-1)
			out = append(out, s[:i]...)
			out = append(out, s[i+1:]...)
			if len(out) == 0 {
				delete(e.listeners, event)
			} else {
				e.listeners[event] = out
			}
			return
		}
	}
}

// Emit calls every listener registered for event. Once-listeners are removed
// before they run.
func (e *Emitter) Emit(event EventType) {
	s := e.listeners[event]
	if len(s) == 0 {
		return
	}
	for _, h := range s {
		if h.once {
			e.remove(event, h.id)
		}
	}
	for _, h := range s {
		h.fn(event)
	}
}

// ListenerCount returns the number of listeners registered for event.
func (e *Emitter) ListenerCount(event EventType) int {
	return len(e.listeners[event])
}

// RemoveAll drops every listener for every event.
func (e *Emitter) RemoveAll() {
	clear(e.listeners)
}
