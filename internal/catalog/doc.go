// Package catalog maps topic labels to renderers.
//
// A Registry is filled once at startup, in sidebar order, then sealed. The
// Navigator resolves the current selection against it and runs the renderer
// on a page.Surface.
package catalog
