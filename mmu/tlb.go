package mmu

// TLBEntry is a single page -> frame mapping cached in the TLB.
type TLBEntry struct {
	Page  Page
	Frame Frame
}

// TLB - translation lookaside buffer with FIFO replacement.
// Entries live in a ring buffer: head points to the oldest entry,
// count is the number of valid entries following it.
// Hits never change the order, the first installed entry is the first evicted.
type TLB struct {
	entries []TLBEntry
	head    int
	count   int
}

// NewTLB returns an empty TLB holding at most capacity entries.
func NewTLB(capacity int) *TLB {
	if capacity < 1 {
		capacity = DefaultTLBEntries
	}
	return &TLB{entries: make([]TLBEntry, capacity)}
}

// Cap returns the TLB capacity
func (t *TLB) Cap() int { return len(t.entries) }

// Len returns number of valid entries
func (t *TLB) Len() int { return t.count }

func (t *TLB) slot(i int) int {
	return (t.head + i) % len(t.entries)
}

// Lookup scans the valid entries for the page. No side effects.
func (t *TLB) Lookup(p Page) (Frame, bool) {
	for i := 0; i < t.count; i++ {
		e := t.entries[t.slot(i)]
		if e.Page == p {
			return e.Frame, true
		}
	}
	return 0, false
}

// Install appends the mapping. If the TLB is full, the oldest entry is evicted.
// The evicted entry is returned along with true, if there was one.
func (t *TLB) Install(p Page, f Frame) (TLBEntry, bool) {
	// a page can only be cached once
	t.remove(func(e TLBEntry) bool { return e.Page == p })

	var evicted TLBEntry
	full := t.count == len(t.entries)
	if full {
		evicted = t.entries[t.head]
		t.head = t.slot(1)
		t.count--
	}
	t.entries[t.slot(t.count)] = TLBEntry{Page: p, Frame: f}
	t.count++
	return evicted, full
}

// InvalidateFrame drops every entry mapped to the frame.
// It returns the number of dropped entries.
func (t *TLB) InvalidateFrame(f Frame) int {
	return t.remove(func(e TLBEntry) bool { return e.Frame == f })
}

// remove compacts the ring, keeping the relative order of surviving entries.
func (t *TLB) remove(match func(TLBEntry) bool) int {
	kept := 0
	for i := 0; i < t.count; i++ {
		e := t.entries[t.slot(i)]
		if match(e) {
			continue
		}
		t.entries[t.slot(kept)] = e
		kept++
	}
	removed := t.count - kept
	t.count = kept
	return removed
}

// Entries returns a copy of the valid entries, oldest first.
func (t *TLB) Entries() []TLBEntry {
	out := make([]TLBEntry, t.count)
	for i := range out {
		out[i] = t.entries[t.slot(i)]
	}
	return out
}
