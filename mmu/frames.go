package mmu

// FrameAllocator hands out frames in strict round robin order.
// It does not track which frames are in use. Evicting the previous owner
// of a frame is the translator's job.
type FrameAllocator struct {
	next  int
	count int
}

// NewFrameAllocator returns an allocator cycling over [0, count).
func NewFrameAllocator(count int) *FrameAllocator {
	if count < 1 || count > MaxFrames {
		count = MaxFrames
	}
	return &FrameAllocator{count: count}
}

// Next returns the frame under the cursor without moving it
func (a *FrameAllocator) Next() Frame {
	return Frame(a.next)
}

// Advance moves the cursor to the following frame, wrapping around.
func (a *FrameAllocator) Advance() {
	a.next = (a.next + 1) % a.count
}

// Count returns the number of frames the allocator cycles over
func (a *FrameAllocator) Count() int {
	return a.count
}
