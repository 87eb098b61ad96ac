package press

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode("test")
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != "test" {
		t.Errorf("Name = %q, want %q", n.Name, "test")
	}
	if !n.Visible || !n.Interactable {
		t.Error("new nodes should be visible and interactable")
	}
	if n.IsScrollContainer() {
		t.Error("plain node should not be a scroll container")
	}
}

func TestUniqueIDs(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	if a.ID == b.ID {
		t.Errorf("IDs should differ, both %d", a.ID)
	}
}

func TestNewScrollView(t *testing.T) {
	n := NewScrollView("list", 1, 2, 30, 40)
	if !n.IsScrollContainer() {
		t.Error("NewScrollView should be a scroll container")
	}
	if n.X != 1 || n.Y != 2 || n.Width != 30 || n.Height != 40 {
		t.Errorf("box = (%v,%v,%v,%v)", n.X, n.Y, n.Width, n.Height)
	}
}

func TestIsScrollContainer(t *testing.T) {
	tests := []struct {
		class string
		want  bool
	}{
		{"", false},
		{"scroll-view", true},
		{"panel scroll-view dark", true},
		{"scroll-view-horizontal", true},
		{"scroll", false},
		{"scrollview", false},
	}
	for _, tt := range tests {
		n := NewNode("n")
		n.Class = tt.class
		if got := n.IsScrollContainer(); got != tt.want {
			t.Errorf("Class %q: IsScrollContainer = %v, want %v", tt.class, got, tt.want)
		}
	}
}

func TestAddClass(t *testing.T) {
	n := NewNode("n")
	n.AddClass("panel")
	n.AddClass(ScrollViewClass)
	n.AddClass("panel")
	if n.Class != "panel scroll-view" {
		t.Errorf("Class = %q, want %q", n.Class, "panel scroll-view")
	}
	if !n.IsScrollContainer() {
		t.Error("AddClass(ScrollViewClass) should make a scroll container")
	}
}

func TestParentSurface(t *testing.T) {
	root := NewNode("root")
	child := NewNode("child")
	root.AddChild(child)

	if child.ParentSurface() != Surface(root) {
		t.Error("ParentSurface should return the parent")
	}
	// A nil *Node must surface as an untyped nil so walks terminate.
	if root.ParentSurface() != nil {
		t.Error("root ParentSurface should be nil")
	}
}

// --- Tree manipulation ---

func TestAddChild(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 || parent.Children()[0] != child {
		t.Error("parent should hold child")
	}
}

func TestAddChildReparents(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	child := NewNode("child")
	a.AddChild(child)
	b.AddChild(child)

	if a.NumChildren() != 0 {
		t.Errorf("old parent has %d children, want 0", a.NumChildren())
	}
	if child.Parent != b {
		t.Error("child should be reparented to b")
	}
}

func TestAddChildAt(t *testing.T) {
	p := NewNode("p")
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	p.AddChild(a)
	p.AddChild(c)
	p.AddChildAt(b, 1)

	var names []string
	for _, ch := range p.Children() {
		names = append(names, ch.Name)
	}
	if got := strings.Join(names, ""); got != "abc" {
		t.Errorf("order = %s, want abc", got)
	}
}

func TestAddChildPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"nil child", func() { NewNode("p").AddChild(nil) }},
		{"self", func() { n := NewNode("n"); n.AddChild(n) }},
		{"cycle", func() {
			a, b := NewNode("a"), NewNode("b")
			a.AddChild(b)
			b.AddChild(a)
		}},
		{"index out of range", func() { NewNode("p").AddChildAt(NewNode("c"), 3) }},
		{"remove foreign child", func() { NewNode("p").RemoveChild(NewNode("c")) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic")
				}
				if !strings.HasPrefix(fmt.Sprint(r), "press:") {
					t.Errorf("panic %q should carry the package prefix", r)
				}
			}()
			tt.fn()
		})
	}
}

func TestRemoveFromParent(t *testing.T) {
	p := NewNode("p")
	c := NewNode("c")
	p.AddChild(c)
	c.RemoveFromParent()
	if c.Parent != nil || p.NumChildren() != 0 {
		t.Error("child should be detached")
	}
	c.RemoveFromParent() // no-op
}

func TestFindByName(t *testing.T) {
	root := NewNode("root")
	list := NewScrollView("list", 0, 0, 10, 10)
	item := NewNode("item")
	root.AddChild(list)
	list.AddChild(item)

	if root.FindByName("item") != item {
		t.Error("FindByName should find nested nodes")
	}
	if root.FindByName("root") != root {
		t.Error("FindByName should include the receiver")
	}
	if root.FindByName("missing") != nil {
		t.Error("FindByName should return nil when absent")
	}
}

// --- Disposal ---

func TestDispose(t *testing.T) {
	root := NewNode("root")
	parent := NewNode("parent")
	child := NewNode("child")
	root.AddChild(parent)
	parent.AddChild(child)

	parent.Dispose()

	if !parent.IsDisposed() || !child.IsDisposed() {
		t.Error("parent and descendants should be disposed")
	}
	if root.NumChildren() != 0 {
		t.Error("disposed node should be removed from its parent")
	}
	if child.Parent != nil {
		t.Error("disposed child should have no parent")
	}
	parent.Dispose() // idempotent
}

func TestDebugMode_DisposedNodePanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	child := NewNode("child")
	child.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild with disposed node, got none")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()

	s.Root().AddChild(child)
}

func TestDebugMode_TreeDepthWarning(t *testing.T) {
	var buf bytes.Buffer
	prev := debugOutput
	debugOutput = &buf
	defer func() { debugOutput = prev }()

	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	n := s.Root()
	for i := 0; i <= debugMaxTreeDepth; i++ {
		c := NewNode(fmt.Sprintf("n%d", i))
		n.AddChild(c)
		n = c
	}

	if !strings.Contains(buf.String(), "tree depth") {
		t.Errorf("expected tree depth warning, got %q", buf.String())
	}
}

func TestAddChildAtOutOfRangeKeepsOldParent(t *testing.T) {
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	a.AddChild(c)

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic")
			}
		}()
		b.AddChildAt(c, 5)
	}()

	if c.Parent != a || a.NumChildren() != 1 || b.NumChildren() != 0 {
		t.Errorf("c.Parent is a: %v, a=%d b=%d children, want true 1 0", c.Parent == a, a.NumChildren(), b.NumChildren())
	}
}

func TestAddChildAtSameParent(t *testing.T) {
	p := NewNode("p")
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	p.AddChild(a)
	p.AddChild(b)
	p.AddChild(c)

	p.AddChildAt(a, 2)
	var names []string
	for _, ch := range p.Children() {
		names = append(names, ch.Name)
	}
	if got := strings.Join(names, ""); got != "bca" {
		t.Errorf("order = %s, want bca", got)
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic for index past the last slot")
			}
		}()
		p.AddChildAt(a, 3)
	}()
	if p.NumChildren() != 3 || a.Parent != p {
		t.Errorf("children = %d, want 3 with a still attached", p.NumChildren())
	}
}
