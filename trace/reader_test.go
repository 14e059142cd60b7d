package trace

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"

	"vmsim/mmu"
)

func TestReadAll(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []mmu.LogicalAddress
	}{
		{"empty", "", nil},
		{"one per line", "1\n256\n65535\n", []mmu.LogicalAddress{1, 256, 65535}},
		{"several per line", "16916 62493  30198\n\t53683\n", []mmu.LogicalAddress{16916, 62493, 30198, 53683}},
		{"no trailing newline", "0\n0", []mmu.LogicalAddress{0, 0}},
		{"malformed token ends the trace", "1 2 x3 4\n", []mmu.LogicalAddress{1, 2}},
		{"negative value ends the trace", "7 -1 8", []mmu.LogicalAddress{7}},
		{"out of range value ends the trace", "7 65536 8", []mmu.LogicalAddress{7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadAll(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadAll() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReader_Stopped(t *testing.T) {
	r := NewReader(strings.NewReader("5 five 6"))
	for {
		if _, ok := r.Next(); !ok {
			break
		}
	}
	if r.Stopped() != "five" {
		t.Errorf("Reader.Stopped() = %q, want %q", r.Stopped(), "five")
	}
	if r.Count() != 1 {
		t.Errorf("Reader.Count() = %d, want 1", r.Count())
	}
	// once ended, stays ended
	if _, ok := r.Next(); ok {
		t.Errorf("Reader.Next() returned an address after the end")
	}
}

func TestReader_ReadError(t *testing.T) {
	errBroken := errors.New("broken pipe")
	_, err := ReadAll(iotest.ErrReader(errBroken))
	if !errors.Is(err, errBroken) {
		t.Errorf("ReadAll() error = %v, want %v", err, errBroken)
	}
}
