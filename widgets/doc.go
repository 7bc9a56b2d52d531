// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, stacks, sidebar list, popup overlay compositor)
//
// Not allowed here:
// - key handling, selection state, scope logic, or content rendering
package widgets
