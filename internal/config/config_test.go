package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigYAMLRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Server.URL = "http://interview.example:9000"
	cfg.Files.Resume = "cv.pdf"

	if err := WriteConfig(tmpDir, cfg); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}

	loaded, err := ReadConfig(tmpDir)
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}

	if loaded.Server.URL != "http://interview.example:9000" {
		t.Errorf("Server.URL: got %q", loaded.Server.URL)
	}
	if loaded.Files.Resume != "cv.pdf" {
		t.Errorf("Files.Resume: got %q", loaded.Files.Resume)
	}
}

func TestDefaultConfigTargetsLocalService(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.URL != "http://127.0.0.1:8000" {
		t.Errorf("default Server.URL: got %q", cfg.Server.URL)
	}
	if cfg.Server.TimeoutSeconds <= 0 {
		t.Errorf("default TimeoutSeconds: got %d, want > 0", cfg.Server.TimeoutSeconds)
	}
}

func TestReadConfigMissingFile(t *testing.T) {
	if _, err := ReadConfig(t.TempDir()); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestReadConfigPartialFile(t *testing.T) {
	// Old or hand-written configs may omit sections.
	tmpDir := t.TempDir()
	partial := "version: 1\nserver:\n  url: http://localhost:8000\n"

	dir := filepath.Join(tmpDir, ".interview")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(partial), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := ReadConfig(tmpDir)
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}
	if cfg.Server.URL != "http://localhost:8000" {
		t.Errorf("Server.URL: got %q", cfg.Server.URL)
	}
	if cfg.Files.Resume != "" || cfg.Files.JD != "" {
		t.Errorf("missing files section should stay empty: %+v", cfg.Files)
	}
}
