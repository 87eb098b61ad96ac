package press

import "strings"

// ScrollViewClass is the class tag that marks a node as a scroll container.
const ScrollViewClass = "scroll-view"

// HitShape is used for custom hit testing regions in local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// nodeIDCounter is a plain counter (no atomic: a scene is driven from one
// goroutine).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool

// Node is an element of the surface tree. Nodes implement Surface, so any
// node can be the target of a Tracker.
type Node struct {
	// Identity
	ID   uint32
	Name string
	// Class is a space-separated list of tags. A node whose Class contains
	// ScrollViewClass is a scroll container.
	Class string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Layout, relative to the parent's content origin.
	X, Y          float64
	Width, Height float64

	// Scroll offset applied to this node's children. Only honoured when the
	// node is a scroll container.
	ScrollTop  float64
	ScrollLeft float64

	// Visibility & interaction
	Visible      bool
	Interactable bool

	// Hit testing. When nil the node's Width x Height box is used.
	HitShape HitShape

	// Metadata
	UserData any

	disposed bool
}

// NewNode creates a visible, interactable node with the given name.
func NewNode(name string) *Node {
	return &Node{
		ID:           nextNodeID(),
		Name:         name,
		Visible:      true,
		Interactable: true,
	}
}

// NewBox creates a node at (x, y) with the given size.
func NewBox(name string, x, y, w, h float64) *Node {
	n := NewNode(name)
	n.X, n.Y = x, y
	n.Width, n.Height = w, h
	return n
}

// NewScrollView creates a sized scroll container. Its children are offset by
// the scroll position and clipped to its box.
func NewScrollView(name string, x, y, w, h float64) *Node {
	n := NewBox(name, x, y, w, h)
	n.Class = ScrollViewClass
	return n
}

// --- Surface ---

// ParentSurface returns the parent node, or nil at the root.
func (n *Node) ParentSurface() Surface {
	if n.Parent == nil {
		return nil
	}
	return n.Parent
}

// ScrollOffset returns the node's scroll position.
func (n *Node) ScrollOffset() (top, left float64) {
	return n.ScrollTop, n.ScrollLeft
}

// IsScrollContainer reports whether Class contains ScrollViewClass.
// Matching is by substring, so "scroll-view-x" also qualifies.
func (n *Node) IsScrollContainer() bool {
	return strings.Contains(n.Class, ScrollViewClass)
}

// SetScroll sets the scroll position directly, cancelling any running
// scroll animation on the next scene update.
func (n *Node) SetScroll(top, left float64) {
	n.ScrollTop = top
	n.ScrollLeft = left
}

// AddClass appends tag to Class if it is not already listed.
func (n *Node) AddClass(tag string) {
	for _, c := range strings.Fields(n.Class) {
		if c == tag {
			return
		}
	}
	if n.Class == "" {
		n.Class = tag
		return
	}
	n.Class += " " + tag
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("press: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("press: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("press: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChildAt (parent)")
		debugCheckDisposed(child, "AddChildAt (child)")
	}
	if isAncestor(child, n) {
		panic("press: adding child would create a cycle")
	}
	limit := len(n.children)
	if child.Parent == n {
		limit--
	}
	if index < 0 || index > limit {
		panic("press: child index out of range")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("press: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// FindByName returns the first node named name in n's subtree (depth-first,
// n included), or nil.
func (n *Node) FindByName(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if found := c.FindByName(name); found != nil {
			return found
		}
	}
	return nil
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.HitShape = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
