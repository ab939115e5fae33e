// Package block defines the typed document model for composed emails: the
// six body block variants, the fixed header/help/compliance/footer sections,
// and the EmailDocument that ties them together.
//
// Blocks are immutable value objects. Nothing in this package validates or
// renders content; see pkg/validate and pkg/render for that. Optional styling
// fields left at their zero value are substituted with per-variant defaults
// at render time, so a zero-value block is always renderable.
//
// The block union is closed: every variant embeds the package-private marker
// via the Block interface, and consumers dispatch with a type switch rather
// than probing fields dynamically.
package block
