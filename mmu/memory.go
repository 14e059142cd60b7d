package mmu

import "fmt"

// Memory is the simulated physical memory: frames * FrameSize bytes.
// Content is zero until a frame gets loaded during a page fault.
type Memory struct {
	data   []byte
	frames int
}

// NewMemory allocates physical memory for the given number of frames
func NewMemory(frames int) *Memory {
	return &Memory{
		data:   make([]byte, frames*FrameSize),
		frames: frames,
	}
}

// Frames returns the number of frames
func (m *Memory) Frames() int { return m.frames }

// Load copies a page worth of data into frame f.
func (m *Memory) Load(f Frame, page []byte) error {
	if int(f) >= m.frames {
		return fmt.Errorf("frame %d beyond physical memory (%d frames)", f, m.frames)
	}
	if len(page) != FrameSize {
		return fmt.Errorf("page of %d bytes does not fit frame of %d bytes", len(page), FrameSize)
	}
	base := int(f) * FrameSize
	copy(m.data[base:base+FrameSize], page)
	return nil
}

// Read returns the signed byte stored at the physical address.
func (m *Memory) Read(a PhysicalAddress) int8 {
	return int8(m.data[a])
}

// Frame returns the content of frame f. The slice aliases the memory.
func (m *Memory) Frame(f Frame) []byte {
	base := int(f) * FrameSize
	return m.data[base : base+FrameSize]
}
