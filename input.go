package press

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointerState is the scene's view of the single tracked pointer.
type pointerState struct {
	seen    bool // a position has been observed
	down    bool
	lastX   float64
	lastY   float64
	hover   *Node
	touch   bool // the current press comes from a touch, not the mouse
	touchID ebiten.TouchID
}

// pointerSample is one frame's reading of the pointer.
type pointerSample struct {
	x, y    float64
	pressed bool
	touch   bool
}

// raw builds the platform event for the sample. Touch releases only list the
// lifted finger under ChangedTouches.
func (p pointerSample) raw() RawPointerEvent {
	if !p.touch {
		return PointerAt(p.x, p.y)
	}
	pos := []Vec2{{X: p.x, Y: p.y}}
	if p.pressed {
		return RawPointerEvent{Touches: pos}
	}
	return RawPointerEvent{ChangedTouches: pos}
}

// processInput is called from Scene.Update. Injected events take priority
// over real input for the frame.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	s.processPointer(s.readPointer())
}

// readPointer samples ebiten input. A touch that began while the mouse was
// up owns the pointer until it lifts; only one pointer is tracked.
func (s *Scene) readPointer() pointerSample {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	ps := &s.pointer
	if ps.touch {
		for _, id := range touchIDs {
			if id == ps.touchID {
				tx, ty := ebiten.TouchPosition(id)
				return pointerSample{x: float64(tx), y: float64(ty), pressed: true, touch: true}
			}
		}
		tx, ty := inpututil.TouchPositionInPreviousTick(ps.touchID)
		ps.touch = false
		return pointerSample{x: float64(tx), y: float64(ty), pressed: false, touch: true}
	}
	if len(touchIDs) > 0 && !ps.down {
		ps.touch = true
		ps.touchID = touchIDs[0]
		tx, ty := ebiten.TouchPosition(ps.touchID)
		return pointerSample{x: float64(tx), y: float64(ty), pressed: true, touch: true}
	}

	mx, my := ebiten.CursorPosition()
	return pointerSample{
		x:       float64(mx),
		y:       float64(my),
		pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}

// inViewport reports whether (x, y) is on screen. Always true when no
// viewport size is set.
func (s *Scene) inViewport(x, y float64) bool {
	if s.viewportW <= 0 || s.viewportH <= 0 {
		return true
	}
	return x >= 0 && y >= 0 && x < s.viewportW && y < s.viewportH
}

// processPointer turns one sample into platform events, in order:
// leave (hovered node changed), move, then down or up.
func (s *Scene) processPointer(p pointerSample) {
	ps := &s.pointer

	var hover *Node
	if s.inViewport(p.x, p.y) {
		hover = s.hitTest(p.x, p.y)
	}
	raw := p.raw()

	if hover != ps.hover {
		if ps.hover != nil {
			s.dispatcher.Dispatch(ps.hover, EventPointerLeave, raw)
		}
		ps.hover = hover
	}

	if ps.seen && (p.x != ps.lastX || p.y != ps.lastY) {
		s.dispatcher.Dispatch(surfaceOrWindow(hover), EventPointerMove, raw)
	}

	if p.pressed && !ps.down {
		ps.down = true
		if hover != nil {
			s.dispatcher.Dispatch(hover, EventPointerDown, raw)
		}
	} else if !p.pressed && ps.down {
		ps.down = false
		s.dispatcher.Dispatch(surfaceOrWindow(hover), EventPointerUp, raw)
	}

	ps.seen = true
	ps.lastX = p.x
	ps.lastY = p.y
}

// processLeave reports the pointer leaving whatever it hovers.
func (s *Scene) processLeave(x, y float64) {
	ps := &s.pointer
	s.dispatcher.Dispatch(surfaceOrWindow(ps.hover), EventPointerLeave, PointerAt(x, y))
	ps.hover = nil
}

func surfaceOrWindow(n *Node) Surface {
	if n == nil {
		return Window
	}
	return n
}
