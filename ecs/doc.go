// Package ecs provides ECS adapters for livecharts interaction events.
//
// The primary adapter is [NewDonburiSink], which bridges chart interaction
// events (data clicks, double-clicks, hover enter/leave, pointer moves) into
// a [Donburi] world as typed events. Subscribe to [InteractionEventType] in
// your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	view.SetInteractionSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
