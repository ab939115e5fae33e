// Package sanitize reduces untrusted text and HTML to a safe, whitelisted
// subset before it is stored as block content.
//
// The package follows a fail-closed policy: anything not explicitly
// recognized as safe (unknown tags, dangerous attributes, non-whitelisted
// URL protocols) is silently dropped rather than surfaced as an error. The
// only blocking errors are raised by SanitizeBlock for button and image
// blocks whose URLs fail protocol validation entirely, since those blocks
// are unusable without a URL.
//
// The sanitizer is a single linear scan over the input, not an HTML parser:
// the permitted tag set is inline-only, so no DOM or recursive descent is
// needed. Tag markup that is dropped never takes its inner text with it:
// content survives, markup doesn't.
//
// Personalization tokens ({{firstName}}, {{lastName}}, {{email}}) survive
// sanitization verbatim. They share brace syntax with the inline formatting
// tokens expanded at render time by pkg/inline, but the two namespaces never
// collide: personalization extraction only matches the three bare names,
// while formatting tokens always carry a colon or slash.
//
// All functions are pure and safe for concurrent use.
package sanitize
