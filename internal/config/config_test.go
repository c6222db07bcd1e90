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
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 || cfg.DBPath != "cubecomp.db" || cfg.CompetitionLengthDays != 7 {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want default", cfg.Port)
	}
}

func TestLoad_OverlaysFileValues(t *testing.T) {
	path := writeConfig(t, `
port: 9000
scramble_service_url: http://scrambles.local:2014
moderator_password: corner-edge-sub
extra_events: [kilominx, redi]
log_level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Port)
	}
	if cfg.ScrambleServiceURL != "http://scrambles.local:2014" {
		t.Errorf("ScrambleServiceURL = %q", cfg.ScrambleServiceURL)
	}
	if cfg.ModeratorPassword != "corner-edge-sub" {
		t.Errorf("ModeratorPassword = %q", cfg.ModeratorPassword)
	}
	if len(cfg.ExtraEvents) != 2 || cfg.ExtraEvents[0] != "kilominx" {
		t.Errorf("ExtraEvents = %v", cfg.ExtraEvents)
	}
	// unset keys keep defaults
	if cfg.DBPath != "cubecomp.db" || cfg.CompetitionLengthDays != 7 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "port: [not a number")
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad port", "port: -1"},
		{"huge port", "port: 99999"},
		{"bad length", "competition_length_days: 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
