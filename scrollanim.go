package press

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds the tweens moving one scroll container.
type scrollAnim struct {
	node      *Node
	tweenTop  *gween.Tween
	tweenLeft *gween.Tween
	// Last values written; a mismatch means the offset was set elsewhere.
	top, left float64
}

// ScrollTo animates n's scroll offset to (top, left) over duration seconds.
// A nil easeFn scrolls linearly. A running animation on n is replaced.
// Setting the offset directly while animating stops the animation.
func (s *Scene) ScrollTo(n *Node, top, left float64, duration float32, easeFn ease.TweenFunc) {
	if easeFn == nil {
		easeFn = ease.Linear
	}
	s.stopScroll(n)
	s.scrolls = append(s.scrolls, &scrollAnim{
		node:      n,
		tweenTop:  gween.New(float32(n.ScrollTop), float32(top), duration, easeFn),
		tweenLeft: gween.New(float32(n.ScrollLeft), float32(left), duration, easeFn),
		top:       n.ScrollTop,
		left:      n.ScrollLeft,
	})
}

// ScrollBy is ScrollTo relative to the current offset.
func (s *Scene) ScrollBy(n *Node, dTop, dLeft float64, duration float32, easeFn ease.TweenFunc) {
	s.ScrollTo(n, n.ScrollTop+dTop, n.ScrollLeft+dLeft, duration, easeFn)
}

// IsScrolling reports whether n has a running scroll animation.
func (s *Scene) IsScrolling(n *Node) bool {
	for _, a := range s.scrolls {
		if a.node == n {
			return true
		}
	}
	return false
}

func (s *Scene) stopScroll(n *Node) {
	kept := s.scrolls[:0]
	for _, a := range s.scrolls {
		if a.node != n {
			kept = append(kept, a)
		}
	}
	clear(s.scrolls[len(kept):])
	s.scrolls = kept
}

// advanceScroll steps every scroll animation by dt seconds and drops the
// finished ones.
func (s *Scene) advanceScroll(dt float32) {
	kept := s.scrolls[:0]
	for _, a := range s.scrolls {
		if a.node.IsDisposed() || a.node.ScrollTop != a.top || a.node.ScrollLeft != a.left {
			continue
		}
		top, doneTop := a.tweenTop.Update(dt)
		left, doneLeft := a.tweenLeft.Update(dt)
		a.top, a.left = float64(top), float64(left)
		a.node.ScrollTop, a.node.ScrollLeft = a.top, a.left
		if !doneTop || !doneLeft {
			kept = append(kept, a)
		}
	}
	clear(s.scrolls[len(kept):])
	s.scrolls = kept
}
