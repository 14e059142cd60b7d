package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vmsim.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Config
		wantErr bool
	}{
		{
			"empty object keeps defaults",
			`{}`,
			Default(),
			false,
		},
		{
			"overrides",
			`{"backing_store": "store.bin", "frames": 128, "tlb_entries": 8, "tlb_backfill": true, "log_file": "vmsim.log"}`,
			Config{BackingStore: "store.bin", Frames: 128, TLBEntries: 8, TLBBackfill: true, LogFile: "vmsim.log"},
			false,
		},
		{"unknown field", `{"frame": 128}`, Config{}, true},
		{"too many frames", `{"frames": 512}`, Config{}, true},
		{"empty tlb", `{"tlb_entries": 0}`, Config{}, true},
		{"not json", `frames = 128`, Config{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(writeConfig(t, tt.content))
			if err == nil {
				err = got.Validate()
			}
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Load() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("Load() of a missing file succeeded")
	}
}

func TestDefault_Valid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
	opts := Default().TranslatorOptions()
	if opts.Frames != 256 || opts.TLBEntries != 16 || opts.Backfill {
		t.Errorf("Default().TranslatorOptions() = %+v", opts)
	}
}
