// Package commands defines the bsort CLI and wires dependencies for subcommands.
//
// Commands
//
//   - (root)  Sort the built-in demo sequence and print it before and after
//   - sort    Sort integers given as arguments, or read from stdin
//
// # Implementation
//
// The root command builds the dependency graph (renderer, sorting service,
// logger) before any subcommand runs, so handlers share one app context.
// The --verbose flag turns on debug logging to stderr; stdout carries only
// the two labelled lines.
package commands
