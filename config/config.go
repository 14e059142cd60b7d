package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"vmsim/mmu"
)

// DefaultBackingStore - backing store image looked up in the working directory
const DefaultBackingStore = "BACKING_STORE.bin"

// Config of a simulation run
type Config struct {
	BackingStore string `json:"backing_store"`
	Frames       int    `json:"frames"`
	TLBEntries   int    `json:"tlb_entries"`
	TLBBackfill  bool   `json:"tlb_backfill"`
	LogFile      string `json:"log_file"`
	DumpFile     string `json:"dump_file"`
}

// Default returns the reference setup: 256 frames, 16 TLB entries, no backfill.
func Default() Config {
	return Config{
		BackingStore: DefaultBackingStore,
		Frames:       mmu.MaxFrames,
		TLBEntries:   mmu.DefaultTLBEntries,
	}
}

// Load reads a JSON config file on top of the defaults.
// Unknown fields are rejected. Values are not validated here, command line
// flags may still override them.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	decoder := json.NewDecoder(f)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values are usable by the translator
func (c Config) Validate() error {
	var errs []error
	if c.Frames < 1 || c.Frames > mmu.MaxFrames {
		errs = append(errs, fmt.Errorf("frames must be within 1..%d, got %d", mmu.MaxFrames, c.Frames))
	}
	if c.TLBEntries < 1 || c.TLBEntries > mmu.PageEntries {
		errs = append(errs, fmt.Errorf("tlb_entries must be within 1..%d, got %d", mmu.PageEntries, c.TLBEntries))
	}
	if c.BackingStore == "" {
		errs = append(errs, errors.New("backing_store is empty"))
	}
	return errors.Join(errs...)
}

// TranslatorOptions converts the config into translator options
func (c Config) TranslatorOptions() mmu.Options {
	return mmu.Options{
		Frames:     c.Frames,
		TLBEntries: c.TLBEntries,
		Backfill:   c.TLBBackfill,
	}
}
