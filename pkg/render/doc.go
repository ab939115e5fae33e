// Package render serializes a validated EmailDocument into table-based,
// inline-styled HTML compatible with legacy email clients.
//
// Every function here is pure: identical input yields byte-identical output,
// nothing is mutated and nothing is logged. No renderer validates its input;
// out-of-range or missing values are substituted with per-field defaults,
// because validation runs before render (pkg/validate) and sanitization runs
// before storage (pkg/sanitize). Rendering an unvalidated document produces
// best-effort HTML, not an error.
//
// Title and Paragraph content is expanded through pkg/inline before
// embedding. HighlightBox content is embedded directly without token
// expansion; see RenderBlock for why that asymmetry is kept.
package render
