// Package app wires application dependencies for the CLI.
//
// It builds the concrete renderer, sorting service and logger from Config,
// exposing them via the Wire struct for commands to use.
package app
