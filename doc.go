// Package press recognizes press gestures (tap or hold) on a tree of surfaces
// and tells them apart from drags and scrolls.
//
// A [Tracker] watches one target surface. Pointer-down on the target starts a
// press and emits [EventPressStart]. The press then resolves exactly once:
//
//   - [EventPressEnd] on pointer-up, when the pointer stayed within the max
//     distance and no scroll container above the target scrolled
//   - [EventPressCancel] otherwise, or as soon as the pointer leaves
//
// Trackers subscribe through a [Subscriber], normally a [Dispatcher]:
//
//	d := press.NewDispatcher()
//	t := press.NewTracker(d, button)
//	t.On(press.EventPressEnd, func(press.EventType) { activate() })
//	// ... platform glue calls d.Dispatch(target, press.EventPointerDown, raw)
//	t.Destroy()
//
// # Scenes
//
// [Scene] hosts a tree of [Node] values on [Ebitengine], hit tests the pointer,
// dispatches platform events, and owns the trackers created by
// [Scene.Track]. Nodes whose Class contains [ScrollViewClass] are scroll
// containers; [Scene.ScrollTo] animates them via [gween].
//
//	scene := press.NewScene()
//	list := press.NewScrollView("list", 0, 0, 320, 480)
//	scene.Root().AddChild(list)
//	item := press.NewBox("item", 0, 0, 320, 48)
//	list.AddChild(item)
//	scene.Track(item).On(press.EventPressEnd, func(press.EventType) { open(item) })
//
// Call [Scene.Update] once per ebiten tick. Tests drive a scene with
// [Scene.InjectPress] and friends, or with a script from [LoadTestScript].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package press
