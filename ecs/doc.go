// Package ecs provides ECS adapters for gridreveal's reveal events.
//
// The primary adapter is [NewDonburiSink], which bridges section reveal
// events (enter, leave, enter back, leave back, complete) into a [Donburi]
// world as typed events. Subscribe to [RevealEventType] in your ECS systems
// to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	page.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
