// Package page defines the display elements a topic renderer emits.
//
// Renderers write to a Surface. Document is the in-memory Surface used by the
// navigator; the render package turns a Document into terminal output.
package page
