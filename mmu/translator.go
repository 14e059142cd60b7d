package mmu

import (
	"fmt"
	"io"
	"log"
)

// Kind classifies how an address got resolved.
type Kind int

// resolution kinds
const (
	TLBHit Kind = iota
	PageTableHit
	PageFault
)

func (k Kind) String() string {
	switch k {
	case TLBHit:
		return "TLB hit"
	case PageTableHit:
		return "page table hit"
	case PageFault:
		return "page fault"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Translation is the outcome of translating a single logical address.
type Translation struct {
	Logical  LogicalAddress
	Physical PhysicalAddress
	Value    int8
	Frame    Frame
	Kind     Kind
}

// String formats the translation as "0xHHHH -> 0xHHHH: D"
func (t Translation) String() string {
	return fmt.Sprintf("%s -> %s: %d", t.Logical, t.Physical, t.Value)
}

// Options for the translator. Zero values select the defaults.
type Options struct {
	// Frames - number of physical frames, 1..MaxFrames
	Frames int

	// TLBEntries - TLB capacity
	TLBEntries int

	// Backfill copies page table hits into the TLB.
	// Off by default: only page faults install TLB entries.
	Backfill bool

	// Logger receives page fault and eviction messages. nil discards them.
	Logger *log.Logger
}

// Translator owns the TLB, the page table, the physical memory and the
// frame allocator, and resolves logical addresses one at a time.
type Translator struct {
	store    PageReader
	tlb      *TLB
	table    *PageTable
	memory   *Memory
	frames   *FrameAllocator
	stats    Stats
	backfill bool
	log      *log.Logger
}

// New returns a translator with empty TLB, unmapped page table and zeroed memory.
func New(store PageReader, opts Options) *Translator {
	frames := NewFrameAllocator(opts.Frames)
	l := opts.Logger
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	return &Translator{
		store:    store,
		tlb:      NewTLB(opts.TLBEntries),
		table:    NewPageTable(),
		memory:   NewMemory(frames.Count()),
		frames:   frames,
		backfill: opts.Backfill,
		log:      l,
	}
}

// Translate resolves the logical address: TLB first, page table second,
// and the backing store on a page fault.
// A backing store failure leaves the translator untouched and is returned.
func (t *Translator) Translate(a LogicalAddress) (Translation, error) {
	page, offset := Decompose(a)

	kind := TLBHit
	frame, ok := t.tlb.Lookup(page)
	if !ok {
		kind = PageTableHit
		frame, ok = t.table.Lookup(page)
		if ok && t.backfill {
			t.installTLB(page, frame)
		}
	}
	if !ok {
		var err error
		if frame, err = t.pageFault(page); err != nil {
			return Translation{}, fmt.Errorf("translating %s: %w", a, err)
		}
		kind = PageFault
	}

	switch kind {
	case TLBHit:
		t.stats.TLBHits++
	case PageTableHit:
		t.stats.PageTableHits++
	case PageFault:
		t.stats.PageFaults++
	}
	t.stats.Addresses++

	phys := Compose(frame, offset)
	return Translation{
		Logical:  a,
		Physical: phys,
		Value:    t.memory.Read(phys),
		Frame:    frame,
		Kind:     kind,
	}, nil
}

// pageFault loads the page into the next FIFO frame.
// Stale mappings of the frame are dropped before its bytes get overwritten.
func (t *Translator) pageFault(page Page) (Frame, error) {
	data, err := t.store.ReadPage(page)
	if err != nil {
		return 0, fmt.Errorf("page fault on page %d: %w", page, err)
	}
	if len(data) != PageSize {
		return 0, fmt.Errorf("page fault on page %d: backing store returned %d bytes", page, len(data))
	}

	frame := t.frames.Next()
	for _, p := range t.table.InvalidateFrame(frame) {
		t.log.Printf("evicting page %d from frame %d\n", p, frame)
	}
	t.tlb.InvalidateFrame(frame)

	if err := t.memory.Load(frame, data); err != nil {
		return 0, err
	}

	t.installTLB(page, frame)
	t.table.Set(page, frame)
	t.frames.Advance()
	t.log.Printf("page fault: page %d loaded into frame %d\n", page, frame)
	return frame, nil
}

func (t *Translator) installTLB(page Page, frame Frame) {
	if old, evicted := t.tlb.Install(page, frame); evicted {
		t.log.Printf("TLB full, dropping page %d -> frame %d\n", old.Page, old.Frame)
	}
}

// Stats returns a copy of the counters
func (t *Translator) Stats() Stats {
	return t.stats
}

// TLB returns the current TLB entries, oldest first
func (t *Translator) TLB() []TLBEntry {
	return t.tlb.Entries()
}

// Lookup returns the page table mapping of the page
func (t *Translator) Lookup(p Page) (Frame, bool) {
	return t.table.Lookup(p)
}

// Frames returns the number of physical frames
func (t *Translator) Frames() int {
	return t.memory.Frames()
}
