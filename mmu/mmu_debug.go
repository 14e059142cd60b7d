package mmu

import (
	"fmt"
	"io"
)

const dumpBytesPerLine = 16

// DumpMemory writes every resident frame, together with the page it holds,
// as a hex dump. Frames never loaded are skipped.
func (t *Translator) DumpMemory(w io.Writer) error {
	for f := 0; f < t.memory.Frames(); f++ {
		frame := Frame(f)
		page, ok := t.table.Owner(frame)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "frame %3d <- page %3d\n", frame, page); err != nil {
			return err
		}
		data := t.memory.Frame(frame)
		for i := 0; i < len(data); i += dumpBytesPerLine {
			if _, err := fmt.Fprintf(w, "  %s : % x\n",
				Compose(frame, uint8(i)), data[i:i+dumpBytesPerLine]); err != nil {
				return err
			}
		}
	}
	return nil
}

// DumpTLB writes the TLB entries, oldest first
func (t *Translator) DumpTLB(w io.Writer) error {
	for i, e := range t.tlb.Entries() {
		if _, err := fmt.Fprintf(w, "%2d: page %3d -> frame %3d\n", i, e.Page, e.Frame); err != nil {
			return err
		}
	}
	return nil
}
