package press

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area in local coordinates.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	var positive, negative bool
	for i := 0; i < n; i++ {
		x1, y1 := p.Points[i].X, p.Points[i].Y
		j := (i + 1) % n
		x2, y2 := p.Points[j].X, p.Points[j].Y

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// --- World geometry ---

// WorldOrigin returns the screen position of the node's local (0, 0). Every
// scroll-container ancestor shifts its content by its scroll offset.
func (n *Node) WorldOrigin() (x, y float64) {
	x, y = n.X, n.Y
	for p := n.Parent; p != nil; p = p.Parent {
		x += p.X
		y += p.Y
		if p.IsScrollContainer() {
			x -= p.ScrollLeft
			y -= p.ScrollTop
		}
	}
	return x, y
}

// WorldBounds returns the node's Width x Height box in screen coordinates.
func (n *Node) WorldBounds() Rect {
	x, y := n.WorldOrigin()
	return Rect{X: x, Y: y, Width: n.Width, Height: n.Height}
}

// WorldToLocal converts a screen point into the node's local coordinates.
func (n *Node) WorldToLocal(wx, wy float64) (float64, float64) {
	ox, oy := n.WorldOrigin()
	return wx - ox, wy - oy
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region.
// Uses HitShape if set; otherwise the Width x Height box. Zero-sized nodes
// without a HitShape are not hit-testable.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	if n.Width == 0 && n.Height == 0 {
		return false
	}
	return lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height
}

// hitCandidate is a node paired with the clip rectangle its scroll-container
// ancestors impose.
type hitCandidate struct {
	node    *Node
	clip    Rect
	clipped bool
}

// collectInteractable walks the tree in paint order (DFS, children in order),
// appending hit-testable nodes to buf. Skips Visible=false or
// Interactable=false subtrees. Children of a sized scroll container are
// clipped to its box.
func collectInteractable(n *Node, clip Rect, clipped bool, buf []hitCandidate) []hitCandidate {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.HitShape != nil || n.Width != 0 || n.Height != 0 {
		buf = append(buf, hitCandidate{node: n, clip: clip, clipped: clipped})
	}
	if len(n.children) == 0 {
		return buf
	}
	if n.IsScrollContainer() && (n.Width != 0 || n.Height != 0) {
		box := n.WorldBounds()
		if clipped {
			box = box.Intersect(clip)
		}
		clip, clipped = box, true
	}
	for _, child := range n.children {
		buf = collectInteractable(child, clip, clipped, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (wx, wy) below root.
// Returns root when nothing else is hit.
func (s *Scene) hitTest(wx, wy float64) *Node {
	s.hitBuf = collectInteractable(s.root, Rect{}, false, s.hitBuf[:0])

	// Iterate backward (reverse paint order): topmost node first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		c := s.hitBuf[i]
		if c.clipped && !c.clip.Contains(wx, wy) {
			continue
		}
		lx, ly := c.node.WorldToLocal(wx, wy)
		if nodeContainsLocal(c.node, lx, ly) {
			return c.node
		}
	}
	return s.root
}
