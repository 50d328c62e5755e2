package app

import "io"

// Config holds runtime wiring options for building the app.
type Config struct {
	Out     io.Writer // sorted output stream; defaults to os.Stdout
	Verbose bool      // raise the log level to debug
}
