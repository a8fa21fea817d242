package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Algorithm != "bubble" {
		t.Errorf("expected algorithm bubble, got %s", cfg.Algorithm)
	}
	if cfg.Size <= 0 {
		t.Error("size should be positive")
	}
	if cfg.DelayMs <= 0 {
		t.Error("delay should be positive")
	}
	if cfg.Min > cfg.Max {
		t.Error("min should not exceed max")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortlab.yaml")

	cfg := DefaultConfig()
	cfg.Algorithm = "quick"
	cfg.Size = 64
	cfg.Seed = 1234

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Algorithm != "quick" || loaded.Size != 64 || loaded.Seed != 1234 {
		t.Errorf("roundtrip mismatch: %+v", loaded)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("algorithm: merge\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Algorithm != "merge" {
		t.Errorf("expected merge, got %s", loaded.Algorithm)
	}
	if loaded.Size != DefaultSize {
		t.Errorf("unset fields should keep defaults, got size %d", loaded.Size)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("bubble", "small")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Size != 15 {
		t.Errorf("expected size 15, got %d", cfg.Size)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("bubble", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "small"); cfg != nil {
		t.Error("expected nil for nonexistent algorithm")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("quick"); len(presets) == 0 {
		t.Error("expected presets for quick")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent algorithm")
	}
}
