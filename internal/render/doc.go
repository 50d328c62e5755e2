// Package render writes labelled sequences to an output stream.
package render
