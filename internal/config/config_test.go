package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := Default()
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
	if cfg.MergeGap() != 1250*time.Millisecond {
		t.Fatalf("unexpected default merge gap: %v", cfg.MergeGap())
	}
	if !cfg.Condense.MusicFilter {
		t.Fatal("music filter must default to enabled")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for a missing file")
	}
	if cfg.FFmpeg.Binary != "ffmpeg" {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadAppliesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[condense]
merge_gap_ms = 500
keywords = [" music ", "", "sfx"]

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved == "" {
		t.Fatal("expected the file to be found")
	}
	if cfg.MergeGap() != 500*time.Millisecond {
		t.Fatalf("unexpected merge gap: %v", cfg.MergeGap())
	}
	if len(cfg.Condense.Keywords) != 2 || cfg.Condense.Keywords[0] != "music" {
		t.Fatalf("keywords not normalized: %+v", cfg.Condense.Keywords)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging values not normalized: %+v", cfg.Logging)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []string{
		"[condense]\nmerge_gap_ms = -1\n",
		"[logging]\nformat = \"xml\"\n",
		"[logging]\nlevel = \"loud\"\n",
		"[ffmpeg]\nbinary = \"  \"\n",
	}
	for _, content := range cases {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, _, _, err := Load(path); err == nil {
			t.Fatalf("expected validation error for %q", content)
		}
	}
}

func TestCreateSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "merge_gap_ms") {
		t.Fatal("sample config must document merge_gap_ms")
	}
	// The sample must itself be loadable.
	if _, _, _, err := Load(target); err != nil {
		t.Fatalf("sample config must load cleanly: %v", err)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	expanded, err := ExpandPath("~/x.toml")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if expanded != filepath.Join(home, "x.toml") {
		t.Fatalf("unexpected expansion: %s", expanded)
	}
}
