// Package ecs provides ECS adapters for press notifications.
//
// The primary adapter is [NewDonburiStore], which bridges the pressstart,
// pressend and presscancel notifications of tracked nodes into a [Donburi]
// world as typed events. Subscribe to [PressEventType] in your ECS systems
// to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
