// Package sorter ties sorting and rendering together for the CLI.
//
// The service renders a sequence, sorts it in place, renders it again, and
// logs pass/swap statistics at debug level.
package sorter
