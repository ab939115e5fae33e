// Package template holds the static per-template configuration tables:
// which block types a template permits, how many of each, and which are
// mandatory. The tables are consumed by pkg/validate, never by the render
// core.
//
// Configurations come from two sources: the built-in set registered in code
// (Builtin), and YAML files loaded at startup (Load, LoadFile) for
// deployments that tune templates without a rebuild.
package template
