package press

// Surface is a node of the tree a Tracker is attached to. Implementations
// expose their parent, their current scroll offset, and whether they act as
// a scrollable viewport.
//
// A Dispatcher keys handlers by surface, so implementations should be
// comparable, typically pointers. Handlers registered on a non-comparable
// surface never fire.
type Surface interface {
	// ParentSurface returns the containing surface, or nil at the root.
	ParentSurface() Surface
	// ScrollOffset returns the current vertical and horizontal scroll.
	ScrollOffset() (top, left float64)
	// IsScrollContainer reports whether the surface scrolls its content.
	IsScrollContainer() bool
}

// ScrollEntry records one scroll container's offset at snapshot time.
type ScrollEntry struct {
	Surface Surface
	Top     float64
	Left    float64
}

// ScrollSnapshot is a point-in-time capture of every scroll container between
// a surface and the root, innermost first, plus the summed offsets.
type ScrollSnapshot struct {
	Scrollables []ScrollEntry
	Top         float64
	Left        float64
}

// CollectScrollables walks from s up to the root and records the offset of
// every scroll container on the way. Surfaces that do not scroll are skipped
// but the walk continues through them.
func CollectScrollables(s Surface) ScrollSnapshot {
	var snap ScrollSnapshot
	for s != nil {
		if s.IsScrollContainer() {
			top, left := s.ScrollOffset()
			snap.Scrollables = append(snap.Scrollables, ScrollEntry{Surface: s, Top: top, Left: left})
			snap.Top += top
			snap.Left += left
		}
		s = s.ParentSurface()
	}
	return snap
}

// Scrolled reports whether the aggregate offset of after differs from snap
// on either axis. Both snapshots must come from the same ancestor chain.
func (snap ScrollSnapshot) Scrolled(after ScrollSnapshot) bool {
	return snap.Top != after.Top || snap.Left != after.Left
}
