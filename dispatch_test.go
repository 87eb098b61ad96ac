package press

import (
	"strings"
	"testing"
)

func TestDispatch_BubblesToAncestorsThenWindow(t *testing.T) {
	d := NewDispatcher()
	root := NewNode("root")
	parent := NewNode("parent")
	child := NewNode("child")
	root.AddChild(parent)
	parent.AddChild(child)

	var order []string
	d.On(Window, EventPointerMove, func(PointerEvent) { order = append(order, "window") })
	d.On(root, EventPointerMove, func(PointerEvent) { order = append(order, "root") })
	d.On(child, EventPointerMove, func(PointerEvent) { order = append(order, "child") })
	d.On(parent, EventPointerMove, func(PointerEvent) { order = append(order, "parent") })
	d.On(parent, EventPointerUp, func(PointerEvent) { order = append(order, "wrong event") })

	n := d.Dispatch(child, EventPointerMove, PointerAt(1, 2))

	if got := strings.Join(order, ","); got != "child,parent,root,window" {
		t.Errorf("order = %s", got)
	}
	if n != 4 {
		t.Errorf("Dispatch returned %d, want 4", n)
	}
}

func TestDispatch_ToWindowOnly(t *testing.T) {
	d := NewDispatcher()
	n := NewNode("n")
	var nodeHits, windowHits int
	d.On(n, EventPointerUp, func(PointerEvent) { nodeHits++ })
	d.On(Window, EventPointerUp, func(PointerEvent) { windowHits++ })

	d.Dispatch(Window, EventPointerUp, PointerAt(0, 0))

	if nodeHits != 0 || windowHits != 1 {
		t.Errorf("node=%d window=%d, want 0 and 1", nodeHits, windowHits)
	}
}

func TestDispatch_NormalizesEvent(t *testing.T) {
	d := NewDispatcher()
	var got PointerEvent
	d.On(Window, EventPointerDown, func(ev PointerEvent) { got = ev })

	d.Dispatch(Window, EventPointerDown, RawPointerEvent{Touches: []Vec2{{7, 8}}})

	if !got.Valid() || got.ClientX != 7 || got.ClientY != 8 {
		t.Errorf("handler got %+v, want (7,8)", got)
	}
}

func TestCallbackHandle_RemovesOnlyItself(t *testing.T) {
	d := NewDispatcher()
	var a, b int
	ha := d.On(Window, EventPointerMove, func(PointerEvent) { a++ })
	d.On(Window, EventPointerMove, func(PointerEvent) { b++ })

	ha.Remove()
	ha.Remove() // second removal is a no-op
	d.Dispatch(Window, EventPointerMove, PointerAt(0, 0))

	if a != 0 || b != 1 {
		t.Errorf("a=%d b=%d, want 0 and 1", a, b)
	}
	if n := d.HandlerCount(Window, EventPointerMove); n != 1 {
		t.Errorf("HandlerCount = %d, want 1", n)
	}
}

func TestCallbackHandle_ZeroValue(t *testing.T) {
	var h CallbackHandle
	h.Remove() // should not panic

	called := false
	NewCallbackHandle(func() { called = true }).Remove()
	if !called {
		t.Error("NewCallbackHandle should call the remove func")
	}
}

func TestDispatch_RemoveDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	var calls []string
	var hb CallbackHandle
	d.On(Window, EventPointerUp, func(PointerEvent) {
		calls = append(calls, "a")
		hb.Remove()
	})
	hb = d.On(Window, EventPointerUp, func(PointerEvent) { calls = append(calls, "b") })

	d.Dispatch(Window, EventPointerUp, PointerAt(0, 0))
	d.Dispatch(Window, EventPointerUp, PointerAt(0, 0))

	// b was collected before a removed it; the removal applies next time.
	if got := strings.Join(calls, ","); got != "a,b,a" {
		t.Errorf("calls = %s, want a,b,a", got)
	}
}

func TestDispatch_AddDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	var late int
	d.On(Window, EventPointerMove, func(PointerEvent) {
		d.On(Window, EventPointerMove, func(PointerEvent) { late++ })
	})

	d.Dispatch(Window, EventPointerMove, PointerAt(0, 0))
	if late != 0 {
		t.Errorf("handler added during dispatch ran %d times in the same dispatch", late)
	}
}

func TestDispatch_Nested(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.On(Window, EventPointerUp, func(PointerEvent) {
		order = append(order, "up1")
		d.Dispatch(Window, EventPointerLeave, PointerAt(0, 0))
	})
	d.On(Window, EventPointerUp, func(PointerEvent) { order = append(order, "up2") })
	d.On(Window, EventPointerLeave, func(PointerEvent) { order = append(order, "leave") })

	d.Dispatch(Window, EventPointerUp, PointerAt(0, 0))

	if got := strings.Join(order, ","); got != "up1,leave,up2" {
		t.Errorf("order = %s, want up1,leave,up2", got)
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		ev   EventType
		want string
	}{
		{EventPointerDown, "pointerdown"},
		{EventPointerLeave, "pointerleave"},
		{EventPressStart, "pressstart"},
		{EventPressEnd, "pressend"},
		{EventPressCancel, "presscancel"},
		{EventType(200), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.ev, got, tt.want)
		}
	}
	if StateIdle.String() != "idle" || StateActive.String() != "active" {
		t.Error("State strings mismatch")
	}
}

// taggedSurface is a value Surface that cannot be compared.
type taggedSurface struct {
	tags   []string
	parent Surface
}

func (s taggedSurface) ParentSurface() Surface           { return s.parent }
func (s taggedSurface) ScrollOffset() (float64, float64) { return 0, 0 }
func (s taggedSurface) IsScrollContainer() bool          { return false }

func TestDispatch_NonComparableSurface(t *testing.T) {
	d := NewDispatcher()
	parent := NewNode("parent")
	target := taggedSurface{tags: []string{"a"}, parent: parent}

	var targetHits, parentHits, windowHits int
	h := d.On(target, EventPointerDown, func(PointerEvent) { targetHits++ })
	h.Remove()
	d.On(parent, EventPointerDown, func(PointerEvent) { parentHits++ })
	d.On(Window, EventPointerDown, func(PointerEvent) { windowHits++ })

	if n := d.HandlerCount(target, EventPointerDown); n != 0 {
		t.Errorf("HandlerCount = %d, want 0", n)
	}
	if n := d.Dispatch(target, EventPointerDown, PointerAt(1, 1)); n != 2 {
		t.Errorf("Dispatch returned %d, want 2", n)
	}
	if targetHits != 0 || parentHits != 1 || windowHits != 1 {
		t.Errorf("hits target=%d parent=%d window=%d, want 0 1 1", targetHits, parentHits, windowHits)
	}
}

func TestNewTracker_NonComparableTargetNeverPresses(t *testing.T) {
	d := NewDispatcher()
	target := taggedSurface{tags: []string{"a"}}
	tr := NewTracker(d, target)
	rec := &recorder{}
	tr.On(EventPressStart, rec.Emit)

	d.Dispatch(target, EventPointerDown, PointerAt(1, 1))

	if tr.State() != StateIdle || len(rec.events) != 0 {
		t.Errorf("state = %v, events = %v, want idle with none", tr.State(), rec.events)
	}
	tr.Destroy()
	if n := d.HandlerCount(Window, EventPointerUp); n != 0 {
		t.Errorf("Window up handlers after Destroy = %d, want 0", n)
	}
}
