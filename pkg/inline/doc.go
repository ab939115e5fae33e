// Package inline expands the custom {{kind:spec}}content{{/kind}} micro
// markup into safe inline HTML at render time.
//
// Three token kinds exist (bold, style and link) and the grammar is
// deliberately non-nesting: Expand runs three independent linear passes, one
// per kind, in that fixed order. Each pass scans the output of the previous
// one, which matters for adjacent tokens of different kinds but never turns
// into recursive parsing. Do not "fix" this into a recursive-descent parser;
// the editor that produces the tokens guarantees they never nest.
//
// The expander is best-effort and never fails: unknown kinds, unterminated
// spans and invalid specs degrade per kind (literal token, unwrapped content
// or plain text) rather than erroring. Input is expected to have passed
// pkg/sanitize first; the expander only has to keep its own output, the
// spans and anchors it generates, safe. It does that by validating colors
// against a hex regex and link targets against the protocol whitelist.
package inline
