package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v, want none for a missing file", err)
	}
	if cfg.KubectlBinary != "" {
		t.Errorf("KubectlBinary = %q, want empty (dispatch supplies the default)", cfg.KubectlBinary)
	}
	if cfg.RangeSeparator != DefaultSeparator {
		t.Errorf("RangeSeparator = %q, want %q", cfg.RangeSeparator, DefaultSeparator)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
kubectlBinary: /opt/bin/kubectl
terminal: alacritty -e
rangeSeparator: "==="
impersonate: admin
namespace: staging
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.KubectlBinary != "/opt/bin/kubectl" {
		t.Errorf("KubectlBinary = %q", cfg.KubectlBinary)
	}
	if cfg.Terminal != "alacritty -e" {
		t.Errorf("Terminal = %q", cfg.Terminal)
	}
	if cfg.RangeSeparator != "===" {
		t.Errorf("RangeSeparator = %q", cfg.RangeSeparator)
	}
	if cfg.Impersonate != "admin" {
		t.Errorf("Impersonate = %q", cfg.Impersonate)
	}
	if cfg.Namespace != "staging" {
		t.Errorf("Namespace = %q", cfg.Namespace)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "terminal: alacritty -e\n")
	t.Setenv("GUNGNIR_TERMINAL", "kitty --")
	t.Setenv("GUNGNIR_NAMESPACE", "prod")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Terminal != "kitty --" {
		t.Errorf("Terminal = %q, want env override", cfg.Terminal)
	}
	if cfg.Namespace != "prod" {
		t.Errorf("Namespace = %q, want env override", cfg.Namespace)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := writeConfig(t, "terminal: [unclosed\n")
	if _, err := Load(path); err == nil {
		t.Fatal("Load() = nil error for malformed yaml")
	}
}
