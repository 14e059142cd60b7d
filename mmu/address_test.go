package mmu

import "testing"

func TestDecompose(t *testing.T) {
	tests := []struct {
		name       string
		addr       LogicalAddress
		wantPage   Page
		wantOffset uint8
	}{
		{"zero", 0, 0, 0},
		{"offset only", 0x00ff, 0, 255},
		{"page only", 0x0100, 1, 0},
		{"both", 0x3f2a, 0x3f, 0x2a},
		{"highest", 0xffff, 255, 255},
		{"decimal 16916", 16916, 66, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, offset := Decompose(tt.addr)
			if page != tt.wantPage || offset != tt.wantOffset {
				t.Errorf("Decompose(%v) = (%d, %d), want (%d, %d)",
					tt.addr, page, offset, tt.wantPage, tt.wantOffset)
			}
		})
	}
}

func TestCompose(t *testing.T) {
	tests := []struct {
		name   string
		frame  Frame
		offset uint8
		want   PhysicalAddress
	}{
		{"frame 0", 0, 0, 0},
		{"frame 1", 1, 0x10, 0x0110},
		{"last byte", 255, 255, 0xffff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compose(tt.frame, tt.offset); got != tt.want {
				t.Errorf("Compose() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddressString(t *testing.T) {
	if got := LogicalAddress(0x2a).String(); got != "0x002A" {
		t.Errorf("LogicalAddress.String() = %q, want %q", got, "0x002A")
	}
	if got := PhysicalAddress(0xbeef).String(); got != "0xBEEF" {
		t.Errorf("PhysicalAddress.String() = %q, want %q", got, "0xBEEF")
	}
}
