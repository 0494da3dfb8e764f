package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const DefaultSeparator = "---"

type Config struct {
	KubectlBinary  string `yaml:"kubectlBinary,omitempty"`  // exec binary, "kubectl" when unset
	Terminal       string `yaml:"terminal,omitempty"`       // default terminal launcher
	RangeSeparator string `yaml:"rangeSeparator,omitempty"` // line between multi-target outputs
	Impersonate    string `yaml:"impersonate,omitempty"`    // identity passed as --as
	Kubeconfig     string `yaml:"kubeconfig,omitempty"`
	Namespace      string `yaml:"namespace,omitempty"`
}

// Load reads the YAML config at path and applies GUNGNIR_* environment
// overrides. A missing file is not an error; every field has a usable
// default.
func Load(path string) (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return nil, err
	}

	cfg.KubectlBinary = envOr("GUNGNIR_KUBECTL_BINARY", cfg.KubectlBinary)
	cfg.Terminal = envOr("GUNGNIR_TERMINAL", cfg.Terminal)
	cfg.RangeSeparator = envOr("GUNGNIR_RANGE_SEPARATOR", cfg.RangeSeparator)
	cfg.Impersonate = envOr("GUNGNIR_IMPERSONATE", cfg.Impersonate)
	cfg.Kubeconfig = envOr("GUNGNIR_KUBECONFIG", cfg.Kubeconfig)
	cfg.Namespace = envOr("GUNGNIR_NAMESPACE", cfg.Namespace)

	if cfg.RangeSeparator == "" {
		cfg.RangeSeparator = DefaultSeparator
	}
	return &cfg, nil
}

// Dir returns the gungnir configuration directory, ~/.config/gungnir on
// Linux.
func Dir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "gungnir")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "gungnir")
}

func DefaultPath() string { return filepath.Join(Dir(), "config.yaml") }

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
