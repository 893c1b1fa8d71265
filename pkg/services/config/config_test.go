package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_NoFile_UsesDefaults(t *testing.T) {
	// When
	cfg, err := Load(New(), "")

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.OutputDir != "." {
		t.Errorf("expected OutputDir=., got %s", cfg.OutputDir)
	}
	if cfg.ContractorLimit != 15 {
		t.Errorf("expected ContractorLimit=15, got %d", cfg.ContractorLimit)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected LogLevel=info, got %s", cfg.LogLevel)
	}
}

func TestLoad_ValidYAML_OverridesDefaults(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "flood-atlas.yaml")
	content := `output_dir: "reports"
contractor_limit: 0
log_level: "debug"`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// When
	cfg, err := Load(New(), path)

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.OutputDir != "reports" {
		t.Errorf("expected OutputDir=reports, got %s", cfg.OutputDir)
	}
	if cfg.ContractorLimit != 0 {
		t.Errorf("expected ContractorLimit=0, got %d", cfg.ContractorLimit)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected LogLevel=debug, got %s", cfg.LogLevel)
	}
}

func TestLoad_Env_OverridesDefaults(t *testing.T) {
	// Given
	t.Setenv("FLOOD_ATLAS_CONTRACTOR_LIMIT", "7")

	// When
	cfg, err := Load(New(), "")

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.ContractorLimit != 7 {
		t.Errorf("expected ContractorLimit=7, got %d", cfg.ContractorLimit)
	}
}

func TestLoad_InvalidYAML_ReturnsError(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("output_dir: a: b"), 0o644); err != nil {
		t.Fatalf("failed to write bad config: %v", err)
	}

	// When
	_, err := Load(New(), path)

	// Then
	if err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}
