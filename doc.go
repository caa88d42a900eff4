// Package argparsegen generates Python argparse CLI scripts for callables
// described by a signature schema.
//
// Given a module description (a YAML document listing objects, their
// parameters and their docstrings), it derives a complete command-line
// surface for one callable: short and long flag names with a stable,
// collision-free naming policy, required and optional status, type
// coercions, choice sets for enumerations and literal types, and boolean
// flag actions. The result is rendered as a ready-to-run script.
//
// The library only produces text; it never executes the generated parser.
package argparsegen

//go:generate gomarkdoc ./ -o docs/argparse-gen.md
