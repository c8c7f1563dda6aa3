package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewAtMissingFile(t *testing.T) {
	cfg, err := NewAt(filepath.Join(t.TempDir(), "settings.toml"))
	if err != nil {
		t.Fatalf("NewAt on missing file: %v", err)
	}
	if cfg.Settings.Appearance != "" {
		t.Errorf("appearance %q, want empty", cfg.Settings.Appearance)
	}
	if cfg.ColumnWidths("browser") != nil {
		t.Error("widths for unknown table, want nil")
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")

	cfg, err := NewAt(path)
	if err != nil {
		t.Fatalf("NewAt: %v", err)
	}
	cfg.Settings.Appearance = "dark"
	cfg.SetColumnWidths("browser", []int{370, 90, 200})
	cfg.Settings.Stores = append(cfg.Settings.Stores, StoreConfig{
		Name:     "test",
		Endpoint: "localhost:9000",
		Bucket:   "demo",
	})
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := NewAt(path)
	if err != nil {
		t.Fatalf("NewAt after save: %v", err)
	}
	if loaded.Settings.Appearance != "dark" {
		t.Errorf("appearance %q, want dark", loaded.Settings.Appearance)
	}
	widths := loaded.ColumnWidths("browser")
	if len(widths) != 3 || widths[0] != 370 || widths[1] != 90 || widths[2] != 200 {
		t.Errorf("widths %v, want [370 90 200]", widths)
	}
	if len(loaded.Settings.Stores) != 1 || loaded.Settings.Stores[0].Endpoint != "localhost:9000" {
		t.Errorf("stores %+v", loaded.Settings.Stores)
	}
}

func TestLoadRejectsInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewAt(path); err == nil {
		t.Error("expected an error for invalid settings file")
	}
}
