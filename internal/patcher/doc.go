// Package patcher splices the genesis footer into a snake SVG.
//
// Apply is the pure in-memory transformation: it extracts anchors, computes
// the layout, renders the fragment and rewrites the sizing attributes.
// ApplyFile wraps it with the on-disk contract: existence check, advisory
// lock, whole-file read and an atomic replace that only happens once the new
// document is fully assembled. Both are idempotent; a document that already
// carries the footer marker is returned untouched.
package patcher
