package shader

import (
	"io"
	"log"
)

var logger = log.New(io.Discard, "", 0)

// SetLogger enables diagnostic output for program construction.
// Passing nil silences the package again.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}
