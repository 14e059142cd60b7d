package mmu

import (
	"bytes"
	"testing"
)

func TestMemory_Load(t *testing.T) {
	tests := []struct {
		name    string
		frame   Frame
		page    []byte
		wantErr bool
	}{
		{"first frame", 0, bytes.Repeat([]byte{0xff}, PageSize), false},
		{"last frame", 3, bytes.Repeat([]byte{0x01}, PageSize), false},
		{"frame beyond memory", 4, make([]byte, PageSize), true},
		{"short page", 1, make([]byte, 10), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMemory(4)
			err := m.Load(tt.frame, tt.page)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Memory.Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && !bytes.Equal(m.Frame(tt.frame), tt.page) {
				t.Errorf("Memory.Frame(%d) differs from the loaded page", tt.frame)
			}
		})
	}
}

func TestMemory_ReadIsSigned(t *testing.T) {
	m := NewMemory(2)
	page := make([]byte, PageSize)
	page[0x10] = 0x80
	page[0x11] = 0x7f
	if err := m.Load(1, page); err != nil {
		t.Fatal(err)
	}
	if got := m.Read(Compose(1, 0x10)); got != -128 {
		t.Errorf("Memory.Read() = %d, want -128", got)
	}
	if got := m.Read(Compose(1, 0x11)); got != 127 {
		t.Errorf("Memory.Read() = %d, want 127", got)
	}
	if got := m.Read(Compose(0, 0x10)); got != 0 {
		t.Errorf("Memory.Read() of an unloaded frame = %d, want 0", got)
	}
}
