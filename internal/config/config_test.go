package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate: %v", err)
	}

	if cfg.Theme != "nord" {
		t.Errorf("default theme = %q, want nord", cfg.Theme)
	}
	if cfg.MonthlyAnchorDay != DefaultMonthlyAnchorDay {
		t.Errorf("anchor day = %d, want %d", cfg.MonthlyAnchorDay, DefaultMonthlyAnchorDay)
	}
	if cfg.RestartDays != DefaultRestartDays {
		t.Errorf("restart days = %d, want %d", cfg.RestartDays, DefaultRestartDays)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file was not written: %v", err)
	}
}

func TestLoadOrCreateReadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `data_dir = "/tmp/homekeep-test"
theme = "dracula"
monthly_anchor_day = 15
checklist_restart_days = 45
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate: %v", err)
	}

	if cfg.Theme != "dracula" {
		t.Errorf("theme = %q, want dracula", cfg.Theme)
	}
	if cfg.MonthlyAnchorDay != 15 {
		t.Errorf("anchor day = %d, want 15", cfg.MonthlyAnchorDay)
	}
	if cfg.RestartDays != 45 {
		t.Errorf("restart days = %d, want 45", cfg.RestartDays)
	}
}

func TestLoadOrCreateRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `monthly_anchor_day = 99
checklist_restart_days = -3
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate: %v", err)
	}

	if cfg.MonthlyAnchorDay != DefaultMonthlyAnchorDay {
		t.Errorf("out-of-range anchor day kept: %d", cfg.MonthlyAnchorDay)
	}
	if cfg.RestartDays != DefaultRestartDays {
		t.Errorf("non-positive restart days kept: %d", cfg.RestartDays)
	}
}
