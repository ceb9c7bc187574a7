// Package squishy is an interactive distortion demo for [Ebitengine].
//
// A draggable control point bends a grid layer through a Kage fragment
// shader. When the point is released it springs back to the center of the
// window.
//
// # Quick start
//
//	squishy.Run(squishy.RunConfig{
//		Title: "Squishy", Width: 640, Height: 640,
//	})
//
// # Pieces
//
// [DragTracker] turns drag updates into an absolute position. The first
// update of a gesture records the grab offset and does not move the point;
// later updates apply the gesture translation to it.
//
// [MapParams] is a pure function from the tracked position, the container
// center and the fixed [Anchors] to the [Params] handed to the shader. The
// [Curve] tag only selects which shader program runs.
//
// [Squisher] connects the two with the layout and, on release, asks its
// [Animator] to return the point to the center. The default
// [TrackerAnimator] installs a harmonica-driven [SpringAnimation] (or a
// gween [TweenAnimation]) that [DragTracker.Tick] advances once per frame.
// Starting a new gesture stops the animation where it is.
//
// [Game] implements [ebiten.Game] and draws everything; [Run] opens a window
// around it.
//
// [Ebitengine]: https://ebitengine.org
package squishy
