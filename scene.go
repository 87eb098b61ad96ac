package press

import "github.com/hajimehoshi/ebiten/v2"

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, press notifications of tracked nodes are forwarded.
type EntityStore interface {
	EmitEvent(event PressEvent)
}

// PressEvent carries a press notification for the ECS bridge.
type PressEvent struct {
	Type   EventType
	NodeID uint32
	Name   string
}

// Scene owns a node tree, the dispatcher pointer events are routed through,
// the trackers attached to its nodes, and the single pointer's input state.
type Scene struct {
	root       *Node
	dispatcher *Dispatcher
	store      EntityStore
	config     Config
	debug      bool

	viewportW, viewportH float64

	trackers map[*Node]*trackedNode

	// Input state
	pointer      pointerState
	hitBuf       []hitCandidate
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent
	testRunner   *TestRunner

	scrolls []*scrollAnim
}

type trackedNode struct {
	tracker *Tracker
	forward [3]CallbackHandle
}

// NewScene creates a new scene with a pre-created root node and the default
// configuration.
func NewScene() *Scene {
	return &Scene{
		root:       NewNode("root"),
		dispatcher: NewDispatcher(),
		config:     DefaultConfig(),
		trackers:   make(map[*Node]*trackedNode),
	}
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// Dispatcher returns the dispatcher the scene routes pointer events through.
func (s *Scene) Dispatcher() *Dispatcher {
	return s.dispatcher
}

// SetViewport sets the screen size. Pointer positions outside it count as
// having left the window. A zero size disables the check.
func (s *Scene) SetViewport(w, h float64) {
	s.viewportW, s.viewportH = w, h
}

// Config returns the scene's configuration.
func (s *Scene) Config() Config {
	return s.config
}

// SetConfig replaces the configuration. Trackers created afterwards, and
// those already attached, use the new max distance.
func (s *Scene) SetConfig(cfg Config) {
	s.config = cfg
	for _, tn := range s.trackers {
		tn.tracker.SetMaxDistance(cfg.MaxDistance)
	}
	s.SetDebugMode(cfg.Debug)
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are printed, and every
// tracker logs its transitions.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	s.config.Debug = enabled
	globalDebug = enabled
	for _, tn := range s.trackers {
		tn.tracker.SetDebugMode(enabled)
	}
}

// Track attaches a Tracker to n, or returns the one already attached.
// Press notifications are also forwarded to the entity store. Disposing n
// untracks it on the next Update.
func (s *Scene) Track(n *Node) *Tracker {
	if tn, ok := s.trackers[n]; ok {
		return tn.tracker
	}
	t := NewTracker(s.dispatcher, n)
	t.SetMaxDistance(s.config.MaxDistance)
	t.SetDebugMode(s.debug)

	tn := &trackedNode{tracker: t}
	for i, ev := range [...]EventType{EventPressStart, EventPressEnd, EventPressCancel} {
		tn.forward[i] = t.On(ev, func(ev EventType) { s.emitPressEvent(ev, n) })
	}
	s.trackers[n] = tn
	return t
}

// Untrack destroys the tracker attached to n, if any.
func (s *Scene) Untrack(n *Node) {
	tn, ok := s.trackers[n]
	if !ok {
		return
	}
	for _, h := range tn.forward {
		h.Remove()
	}
	tn.tracker.Destroy()
	delete(s.trackers, n)
}

// untrackDisposed drops the trackers of disposed nodes so they stop
// listening on Window.
func (s *Scene) untrackDisposed() {
	for n := range s.trackers {
		if n.IsDisposed() {
			s.Untrack(n)
		}
	}
}

// Tracker returns the tracker attached to n, or nil.
func (s *Scene) Tracker(n *Node) *Tracker {
	if tn, ok := s.trackers[n]; ok {
		return tn.tracker
	}
	return nil
}

// Update advances scroll animations and processes one frame of input.
// Trackers of nodes disposed since the last frame are destroyed first.
func (s *Scene) Update() {
	s.untrackDisposed()
	dt := float32(1.0 / float64(ebiten.TPS()))
	s.advanceScroll(dt)
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
}

func (s *Scene) emitPressEvent(ev EventType, n *Node) {
	if s.store == nil {
		return
	}
	s.store.EmitEvent(PressEvent{Type: ev, NodeID: n.ID, Name: n.Name})
}
