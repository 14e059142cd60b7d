package mmu

// Stats keeps the translation counters.
type Stats struct {
	Addresses     int
	TLBHits       int
	PageTableHits int
	PageFaults    int
}

// PageFaultRate returns page faults per translated address, in percent.
// ok is false if nothing was translated yet.
func (s Stats) PageFaultRate() (rate float64, ok bool) {
	return percent(s.PageFaults, s.Addresses)
}

// TLBHitRate returns TLB hits per translated address, in percent.
// ok is false if nothing was translated yet.
func (s Stats) TLBHitRate() (rate float64, ok bool) {
	return percent(s.TLBHits, s.Addresses)
}

func percent(n, total int) (float64, bool) {
	if total == 0 {
		return 0, false
	}
	return float64(n) / float64(total) * 100, true
}
