package mmu

import "testing"

func TestFrameAllocator_RoundRobin(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  int
	}{
		{"single frame", 1, 1},
		{"four frames", 4, 4},
		{"full memory", MaxFrames, MaxFrames},
		{"invalid count falls back", 0, MaxFrames},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewFrameAllocator(tt.count)
			if a.Count() != tt.want {
				t.Fatalf("FrameAllocator.Count() = %d, want %d", a.Count(), tt.want)
			}
			for round := 0; round < 3; round++ {
				for i := 0; i < tt.want; i++ {
					if got := a.Next(); int(got) != i {
						t.Fatalf("round %d: FrameAllocator.Next() = %d, want %d", round, got, i)
					}
					a.Advance()
				}
			}
		})
	}
}

func TestFrameAllocator_NextDoesNotAdvance(t *testing.T) {
	a := NewFrameAllocator(8)
	a.Next()
	a.Next()
	if got := a.Next(); got != 0 {
		t.Errorf("FrameAllocator.Next() = %d, want 0", got)
	}
}
