package mmu

import "fmt"

// address geometry. The logical address space is 16 bit wide:
// 8 bits of page number followed by 8 bits of offset.
const (
	// PageSize in bytes. Frames have the same size.
	PageSize = 256

	// FrameSize -> same as PageSize, kept separate for readability
	FrameSize = PageSize

	// PageEntries - number of page table entries (2^8 pages)
	PageEntries = 256

	// MaxFrames - largest physical memory the 8 bit frame field can address
	MaxFrames = 256

	// DefaultTLBEntries - TLB capacity if nothing else is configured
	DefaultTLBEntries = 16

	offsetBits = 8
	offsetMask = 0xff
	pageMask   = 0xff
)

// LogicalAddress is a 16 bit virtual address read from the trace.
type LogicalAddress uint16

// PhysicalAddress points into the physical memory.
type PhysicalAddress uint16

// Page is a page number (0-255).
type Page uint8

// Frame is a physical frame number (0-255).
type Frame uint8

// Page returns the page number part of the address
func (a LogicalAddress) Page() Page {
	return Page((uint16(a) >> offsetBits) & pageMask)
}

// Offset returns the offset within the page
func (a LogicalAddress) Offset() uint8 {
	return uint8(uint16(a) & offsetMask)
}

// Decompose splits the logical address into page number and offset.
func Decompose(a LogicalAddress) (Page, uint8) {
	return a.Page(), a.Offset()
}

// Compose builds the physical address out of frame number and offset.
func Compose(f Frame, offset uint8) PhysicalAddress {
	return PhysicalAddress(uint16(f)<<offsetBits | uint16(offset))
}

func (a LogicalAddress) String() string {
	return fmt.Sprintf("0x%04X", uint16(a))
}

func (a PhysicalAddress) String() string {
	return fmt.Sprintf("0x%04X", uint16(a))
}
