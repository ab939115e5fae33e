// Package validate checks an EmailDocument against a template configuration
// and reports structured errors. It is the acceptance gate that runs before
// rendering; the render core itself never validates.
//
// Validation never transforms content. It returns every finding at once
// (cardinality violations, missing mandatory blocks, duplicate identifiers,
// malformed field values) rather than stopping at the first, so an editor
// can surface all problems in one pass. Findings carry a severity; strict
// mode promotes warnings to errors.
package validate
