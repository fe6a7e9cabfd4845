package logger

import (
	"io"
	"log"
)

// New returns a plain diagnostic logger for the given writer, without
// timestamps so messages read well on a terminal; swap in structured logging
// when needed.
func New(w io.Writer) *log.Logger {
	return log.New(w, "", 0)
}
