// Package core contains the interactive session: model routing, message
// contracts, key and command registries, and the picker state machine shared
// by overlays.
//
// Allowed here:
// - selection state, focus, scroll position, and the render pipeline that
//   turns the selected topic into viewport content
// - shared state machines used across screens (for example picker logic)
//
// Not allowed here:
// - concrete overlay implementations (see screens)
// - low-level widget rendering primitives (see widgets)
// - topic content (see internal/content)
package core
