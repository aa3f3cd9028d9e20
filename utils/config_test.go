package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{"width": 40, "height": 12, "frame_rate": 250000000, "start_playing": false}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned %v", err)
	}
	if config.Width != 40 || config.Height != 12 {
		t.Fatalf("got %dx%d, expected 40x12", config.Width, config.Height)
	}
	if config.FrameRate != 250*time.Millisecond {
		t.Fatalf("frame rate = %v, expected 250ms", config.FrameRate)
	}
	if config.StartPlaying {
		t.Fatal("start_playing should be overridden to false")
	}
	if config.RandomDensity != DefaultConfig().RandomDensity {
		t.Fatal("unset fields should keep their defaults")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("expected a not-exist cause, got %v", err)
	}
	if config != DefaultConfig() {
		t.Fatal("defaults should be returned alongside the error")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, `{"width": `)); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"negative width", func(c *Config) { c.Width = -1 }},
		{"negative height", func(c *Config) { c.Height = -3 }},
		{"zero frame rate", func(c *Config) { c.FrameRate = 0 }},
		{"density above one", func(c *Config) { c.RandomDensity = 1.5 }},
		{"negative density", func(c *Config) { c.RandomDensity = -0.1 }},
		{"negative history", func(c *Config) { c.HistorySize = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			if err := config.Validate(); errors.Cause(err) != ErrInvalidConfig {
				t.Fatalf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}

	zero := DefaultConfig()
	zero.Width, zero.Height = 0, 0
	if err := zero.Validate(); err != nil {
		t.Fatalf("an empty grid is a legal size, got %v", err)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `{"random_density": 2}`))
	if errors.Cause(err) != ErrInvalidConfig {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
