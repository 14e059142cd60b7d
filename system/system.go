package system

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"vmsim/config"
	"vmsim/console"
	"vmsim/disk"
	"vmsim/mmu"
	"vmsim/trace"
)

// ErrConfiguration marks fatal setup problems: unreadable trace,
// backing store, dump file or invalid settings.
var ErrConfiguration = errors.New("configuration error")

// System definition.
type System struct {
	Translator *mmu.Translator

	store   *disk.BackingStore
	cfg     config.Config
	console console.Console
	log     *log.Logger
}

// InitializeSystem attaches the backing store and sets up an empty translator.
func InitializeSystem(cfg config.Config, c console.Console, log *log.Logger) (*System, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	store := disk.New()
	if err := store.Attach(cfg.BackingStore); err != nil {
		return nil, fmt.Errorf("%w: backing store: %w", ErrConfiguration, err)
	}
	if !store.Complete() {
		log.Printf("backing store %s holds %d bytes, pages beyond it will fail to load\n",
			cfg.BackingStore, store.Len())
	}

	return New(cfg, store, c, log), nil
}

// New builds a system on an already attached backing store
func New(cfg config.Config, store *disk.BackingStore, c console.Console, log *log.Logger) *System {
	opts := cfg.TranslatorOptions()
	opts.Logger = log
	sys := &System{
		Translator: mmu.New(store, opts),
		store:      store,
		cfg:        cfg,
		console:    c,
		log:        log,
	}
	log.Printf("translator ready: %d frames, %d TLB entries, backfill %v\n",
		cfg.Frames, cfg.TLBEntries, cfg.TLBBackfill)
	return sys
}

// RunFile replays the trace stored at path
func (sys *System) RunFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: trace: %w", ErrConfiguration, err)
	}
	defer f.Close()
	return sys.Run(f)
}

// Run translates every address of the trace and writes one line per address
// to the console. It stops at the first translation error.
func (sys *System) Run(r io.Reader) error {
	tr := trace.NewReader(r)
	for {
		addr, ok := tr.Next()
		if !ok {
			break
		}
		t, err := sys.Translator.Translate(addr)
		if err != nil {
			return err
		}
		if err := sys.console.WriteConsole(t.String()); err != nil {
			return err
		}
	}
	if err := tr.Err(); err != nil {
		return fmt.Errorf("reading trace: %w", err)
	}
	if tok := tr.Stopped(); tok != "" {
		sys.log.Printf("trace ended at malformed token %q after %d addresses\n", tok, tr.Count())
	}

	s := sys.Translator.Stats()
	sys.log.Printf("%d addresses: %d TLB hits, %d page table hits, %d page faults, %d page reads\n",
		s.Addresses, s.TLBHits, s.PageTableHits, s.PageFaults, sys.store.Reads())
	return nil
}

// Report writes the page fault and TLB hit rates.
func (sys *System) Report(c console.Console) error {
	return c.WriteConsole(FormatReport(sys.Translator.Stats()))
}

// FormatReport renders the statistics, or a no data line if nothing was translated.
func FormatReport(s mmu.Stats) string {
	faults, ok := s.PageFaultRate()
	if !ok {
		return "No addresses translated."
	}
	hits, _ := s.TLBHitRate()
	return fmt.Sprintf("Page-fault rate: %.2f%%\nTLB hit rate: %.2f%%", faults, hits)
}

// Dump writes physical memory and TLB content to the configured dump file.
// Nothing happens when no dump file is set.
func (sys *System) Dump() error {
	if sys.cfg.DumpFile == "" {
		return nil
	}
	file, err := os.Create(sys.cfg.DumpFile)
	if err != nil {
		return fmt.Errorf("%w: dump: %w", ErrConfiguration, err)
	}
	defer file.Close()

	fmt.Fprintf(file, "TLB (oldest first)\n")
	if err := sys.Translator.DumpTLB(file); err != nil {
		return err
	}
	fmt.Fprintf(file, "\nphysical memory\n")
	if err := sys.Translator.DumpMemory(file); err != nil {
		return err
	}
	sys.log.Printf("memory dumped to %s\n", sys.cfg.DumpFile)
	return file.Close()
}
