package mmu

type pageTableEntry struct {
	frame Frame
	valid bool
}

// PageTable maps every page number to a frame, or to nothing.
// Single level, PageEntries entries, all unmapped at start.
type PageTable struct {
	entries [PageEntries]pageTableEntry
}

// NewPageTable returns a page table with all entries unmapped
func NewPageTable() *PageTable {
	return &PageTable{}
}

// Lookup returns the frame the page is mapped to.
func (pt *PageTable) Lookup(p Page) (Frame, bool) {
	e := pt.entries[p]
	return e.frame, e.valid
}

// Set maps page p to frame f.
func (pt *PageTable) Set(p Page, f Frame) {
	pt.entries[p] = pageTableEntry{frame: f, valid: true}
}

// InvalidateFrame unmaps every page pointing to frame f and returns
// the pages which lost their mapping.
func (pt *PageTable) InvalidateFrame(f Frame) []Page {
	var unmapped []Page
	for i := range pt.entries {
		if pt.entries[i].valid && pt.entries[i].frame == f {
			pt.entries[i] = pageTableEntry{}
			unmapped = append(unmapped, Page(i))
		}
	}
	return unmapped
}

// Mapped returns the number of valid entries
func (pt *PageTable) Mapped() int {
	n := 0
	for _, e := range pt.entries {
		if e.valid {
			n++
		}
	}
	return n
}

// Owner returns the page currently mapped to frame f.
func (pt *PageTable) Owner(f Frame) (Page, bool) {
	for i, e := range pt.entries {
		if e.valid && e.frame == f {
			return Page(i), true
		}
	}
	return 0, false
}
