// Package gridreveal renders scroll-driven grid reveal animations with
// [Ebitengine].
//
// A page is a vertical stack of sections. Each section holds a grid of
// cells and a few text elements, a scroll [Trigger] that maps scroll
// position to progress, and a [Timeline] of tweens built by a [Sequence].
// Scrolling through a section plays its timeline forwards; scrolling back
// plays it in reverse.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	page := gridreveal.NewPage(gridreveal.Size{Width: 1280, Height: 800}, gridreveal.PageConfig{})
//	cells := gridreveal.GridLayout(area, 4, 6, 16)
//	page.AddSection(gridreveal.NewSection("depth", gridreveal.SequenceFourth, 800, area, cells, nil))
//	gridreveal.Run(page, gridreveal.RunConfig{Title: "Grids", Width: 1280, Height: 800})
//
// For full control, implement [ebiten.Game] yourself and call
// [Page.Update] and [Page.Draw] directly.
//
// # Initial transforms
//
// [InitialTransform] is the heart of the depth reveals. Given a cell's box
// and the viewport it returns a 3D offset pointing away from the viewport
// center, scaled by how far the cell is from that center:
//
//	t, err := gridreveal.InitialTransform(cell, viewport, gridreveal.DefaultTransformParams())
//
// A cell exactly at the center gets the zero transform. A zero
// OffsetDistance is rejected with [ErrZeroOffsetDistance]. A [RevealPreset]
// combines one [TransformParams] per channel (x, y, z and rotation) into a
// start [State].
//
// # Sequences
//
// Eleven built-in sequences are provided, from [SequenceFrame] to
// [SequenceNinth]. Look them up by name with [SequenceByName]. Every random
// choice a sequence makes draws from the page's seeded generator, so a page
// builds identically on every run and every resize.
//
// # Smooth scrolling
//
// [SmoothScroller] eases the scroll position toward its target with
// frame-rate independent damping. Wheel and keyboard input are read each
// tick unless [PageConfig.DisableInput] is set.
//
// # Assets
//
// [Preload] decodes a set of images concurrently before the page starts.
// PNG, JPEG, GIF, WebP and TGA files are supported.
//
// # Testing and ECS
//
// [LoadTestScript] drives a page from a JSON script of scroll, wait and
// screenshot steps. Reveal events can be forwarded to a [Donburi] world via
// the adapter in gridreveal/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package gridreveal
