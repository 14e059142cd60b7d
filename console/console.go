// Package console holds the output sinks of the simulator: a plain writer
// for batch runs and gocui views for the interactive front end.
package console

import "strings"

// Console receives output lines. Messages may hold several lines,
// empty lines are dropped.
type Console interface {
	WriteConsole(msg string) error
}

func splitLines(msg string) []string {
	var out []string
	for _, line := range strings.Split(msg, "\n") {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
