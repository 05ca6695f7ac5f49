package config

import (
	"os"
	"testing"
)

func TestLoad_Default(t *testing.T) {
	// Clear env vars to test defaults
	os.Unsetenv("GLIM_JOURNAL")

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.JournalDir == "" {
		t.Error("expected default journal dir")
	}
	if cfg.DefaultView != "feed" {
		t.Errorf("expected default view 'feed', got %q", cfg.DefaultView)
	}
	if cfg.DateFormat != "Jan 2, 2006" {
		t.Errorf("unexpected date format %q", cfg.DateFormat)
	}
	if cfg.GridGap != 2 {
		t.Errorf("expected grid gap 2, got %d", cfg.GridGap)
	}
}

func TestLoad_EnvVar(t *testing.T) {
	t.Setenv("GLIM_JOURNAL", "/tmp/journal-env")

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.JournalDir != "/tmp/journal-env" {
		t.Errorf("expected /tmp/journal-env, got %q", cfg.JournalDir)
	}
}

func TestLoad_CLIFlags(t *testing.T) {
	t.Setenv("GLIM_JOURNAL", "/tmp/journal-env")

	cfg, err := Load(CLIFlags{JournalDir: "/tmp/journal-cli"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// CLI flags should override env vars
	if cfg.JournalDir != "/tmp/journal-cli" {
		t.Errorf("expected /tmp/journal-cli, got %q", cfg.JournalDir)
	}
}
