package logger

import (
	"io"
	"log"
	"os"
)

const prefix = "vmsim "

// New returns a logger writing to path, opened in append mode.
// With an empty path the logger writes to stderr, stdout is reserved
// for the translation output.
// The returned closer releases the log file.
func New(path string) (*log.Logger, io.Closer, error) {
	if len(path) == 0 {
		return log.New(os.Stderr, prefix, log.Ldate|log.Ltime|log.Lshortfile), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0666)
	if err != nil {
		return nil, nil, err
	}
	l := log.New(f, prefix, log.Ldate|log.Ltime|log.Lshortfile)
	l.Printf("Initializing %s", path)
	return l, f, nil
}

// Discard returns a logger dropping everything
func Discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}
