package config

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.OutputFormat != "text" {
		t.Errorf("expected default output format text, got %q", cfg.OutputFormat)
	}
	if cfg.HostConfigDir != "" {
		t.Errorf("expected empty default host config dir, got %q", cfg.HostConfigDir)
	}
}

func TestResolvedValue(t *testing.T) {
	rv := ResolvedValue{
		Key:    "output_format",
		Value:  "json",
		Source: "env",
		Shadowed: map[string]any{
			"config":  "text",
			"default": "text",
		},
	}
	if rv.Key != "output_format" || rv.Source != "env" {
		t.Errorf("unexpected ResolvedValue %+v", rv)
	}
	if len(rv.Shadowed) != 2 {
		t.Errorf("expected 2 shadowed entries, got %d", len(rv.Shadowed))
	}
}
