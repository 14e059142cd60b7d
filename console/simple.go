package console

import (
	"fmt"
	"io"
)

// Simple console writes every line straight to the underlying writer.
type Simple struct {
	w           io.Writer
	currentLine int // number of lines written so far
}

// NewSimple returns a console writing to w
func NewSimple(w io.Writer) *Simple {
	return &Simple{w: w}
}

// WriteConsole writes msg, one line at a time
func (c *Simple) WriteConsole(msg string) error {
	for _, line := range splitLines(msg) {
		if _, err := fmt.Fprintln(c.w, line); err != nil {
			return err
		}
		c.currentLine++
	}
	return nil
}

// Lines returns the number of lines written
func (c *Simple) Lines() int {
	return c.currentLine
}
