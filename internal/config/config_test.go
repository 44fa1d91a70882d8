package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/colournodes/internal/colour"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", true)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
	if cfg.Level() != hclog.Warn {
		t.Errorf("Level() = %v, want warn", cfg.Level())
	}
}

func TestLoadMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.yaml")

	if _, err := Load(missing, true); err != nil {
		t.Errorf("Load(optional) error = %v", err)
	}
	if _, err := Load(missing, false); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(required) error = %v, want ErrNotExist", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
mode: Extended
normalize: true
permissive: true
log_level: DEBUG
preview: false
plugin_path: /opt/colournodes
`)

	cfg, err := Load(path, false)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Config{
		Mode:       colour.ModeExtended,
		Normalize:  true,
		Permissive: true,
		LogLevel:   "debug",
		Preview:    false,
		PluginPath: "/opt/colournodes",
	}
	if cfg != want {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "mode: basic\nnormalize: false\n")
	t.Setenv(EnvMode, "extended")
	t.Setenv(EnvNormalize, "true")
	t.Setenv(EnvLogLevel, "error")

	cfg, err := Load(path, false)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Mode != colour.ModeExtended {
		t.Errorf("Mode = %q, want extended", cfg.Mode)
	}
	if !cfg.Normalize {
		t.Error("Normalize not overridden by environment")
	}
	if cfg.Level() != hclog.Error {
		t.Errorf("Level() = %v, want error", cfg.Level())
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{name: "bad yaml", content: "mode: [basic"},
		{name: "bad mode", content: "mode: loud"},
		{name: "bad level", content: "log_level: chatty"},
		{name: "bad env bool", content: "", env: map[string]string{EnvPreview: "sometimes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(writeConfig(t, tt.content), false); err == nil {
				t.Error("Load() expected error")
			}
		})
	}
}
