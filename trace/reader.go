// Package trace reads logical address traces: unsigned decimal numbers
// separated by white space, any number of them per line.
package trace

import (
	"bufio"
	"io"
	"strconv"

	"vmsim/mmu"
)

// Reader returns the addresses of a trace one by one.
// The trace ends at EOF or at the first token which isn't an address.
type Reader struct {
	scanner *bufio.Scanner
	count   int
	ended   bool
	stopped string
	err     error
}

// NewReader returns a trace reader on r
func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &Reader{scanner: s}
}

// Next returns the next address. ok is false once the trace ended.
func (r *Reader) Next() (addr mmu.LogicalAddress, ok bool) {
	if r.ended {
		return 0, false
	}
	if !r.scanner.Scan() {
		r.ended = true
		r.err = r.scanner.Err()
		return 0, false
	}
	token := r.scanner.Text()
	v, err := strconv.ParseUint(token, 10, 16)
	if err != nil {
		r.ended = true
		r.stopped = token
		return 0, false
	}
	r.count++
	return mmu.LogicalAddress(v), true
}

// Err returns the read error which ended the trace, if any.
// Malformed tokens are not errors.
func (r *Reader) Err() error {
	return r.err
}

// Stopped returns the malformed token which ended the trace, or "".
func (r *Reader) Stopped() string {
	return r.stopped
}

// Count returns the number of addresses returned so far
func (r *Reader) Count() int {
	return r.count
}

// ReadAll reads the whole trace
func ReadAll(r io.Reader) ([]mmu.LogicalAddress, error) {
	tr := NewReader(r)
	var out []mmu.LogicalAddress
	for {
		a, ok := tr.Next()
		if !ok {
			return out, tr.Err()
		}
		out = append(out, a)
	}
}
