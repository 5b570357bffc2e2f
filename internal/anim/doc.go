// Package anim defines the data model shared by the animation engine, the
// step generators and the renderers.
//
// The package has no behaviour of its own beyond validation and copying:
//
//   - [RunState]: lifecycle of a single animation run
//   - [Stats]: comparison and operation counters
//   - [Frame]: immutable snapshot of the structure being animated
//   - [Input]: parsed user data plus an optional search target
//
// # Frames
//
// A frame is produced at every pause point of a step generator. It carries a
// copy of the structure (array, graph, stack, queue or tree), the highlighted
// element indices, optional per-element color roles and the counters at the
// moment it was emitted. Consumers must treat frames as read-only; use
// [Frame.Clone] before mutating.
package anim
