package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Extension != "rs" {
		t.Errorf("Extension = %q, expected %q", cfg.Extension, "rs")
	}

	// Both accepted license lines present
	expected := []string{
		"// SPDX-License-Identifier: MIT OR Apache-2.0",
		"// SPDX-License-Identifier: MIT",
	}
	if len(cfg.Licenses) != len(expected) {
		t.Fatalf("Licenses = %v, expected %v", cfg.Licenses, expected)
	}
	for i, want := range expected {
		if cfg.Licenses[i] != want {
			t.Errorf("Licenses[%d] = %q, expected %q", i, cfg.Licenses[i], want)
		}
	}

	if cfg.Formatter.Command != "rustfmt" {
		t.Errorf("Formatter.Command = %q, expected %q", cfg.Formatter.Command, "rustfmt")
	}
	found := false
	for _, arg := range cfg.Formatter.Args {
		if arg == "--check" {
			found = true
		}
	}
	if !found {
		t.Error("Formatter.Args should include --check")
	}

	if cfg.Lint.Command != "cargo" {
		t.Errorf("Lint.Command = %q, expected %q", cfg.Lint.Command, "cargo")
	}
	if len(cfg.Lint.Invocations) < 2 {
		t.Errorf("expected multiple lint invocations, got %d", len(cfg.Lint.Invocations))
	}
	for i, inv := range cfg.Lint.Invocations {
		if len(inv) == 0 || inv[0] != "clippy" {
			t.Errorf("Invocations[%d] = %v, expected clippy invocation", i, inv)
		}
	}
}

func TestLoadMissingConfig(t *testing.T) {
	repo := t.TempDir()

	// Load config - should return defaults when file missing
	cfg, err := Load(repo)
	if err != nil {
		t.Fatalf("Load failed for missing config: %v", err)
	}
	if cfg.Extension != "rs" {
		t.Errorf("Expected default extension, got %q", cfg.Extension)
	}
}

func TestLoadValidConfig(t *testing.T) {
	repo := t.TempDir()
	content := `extension: go
licenses:
  - "// SPDX-License-Identifier: Apache-2.0"
formatter:
  command: gofmt
  args: ["-l"]
lint:
  command: staticcheck
  invocations:
    - ["./..."]
`
	if err := os.WriteFile(filepath.Join(repo, FileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(repo)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Extension != "go" {
		t.Errorf("Extension = %q, expected %q", cfg.Extension, "go")
	}
	if len(cfg.Licenses) != 1 || cfg.Licenses[0] != "// SPDX-License-Identifier: Apache-2.0" {
		t.Errorf("Licenses = %v", cfg.Licenses)
	}
	if cfg.Formatter.Command != "gofmt" {
		t.Errorf("Formatter.Command = %q", cfg.Formatter.Command)
	}
	if len(cfg.Lint.Invocations) != 1 {
		t.Errorf("Invocations = %v", cfg.Lint.Invocations)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	repo := t.TempDir()
	if err := os.WriteFile(filepath.Join(repo, FileName), []byte("extension: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(repo); err == nil {
		t.Error("Load should fail for invalid yaml")
	}
}

func TestSaveAndReload(t *testing.T) {
	repo := t.TempDir()

	cfg := DefaultConfig()
	cfg.Extension = "c"
	if err := cfg.Save(repo); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(ConfigPath(repo))
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "extension: c") {
		t.Errorf("saved config missing extension override:\n%s", data)
	}

	loaded, err := Load(repo)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Extension != "c" {
		t.Errorf("Extension = %q after reload, expected %q", loaded.Extension, "c")
	}
}

func TestConfigPath(t *testing.T) {
	path := ConfigPath("/some/repo")
	if path != filepath.Join("/some/repo", FileName) {
		t.Errorf("ConfigPath = %q", path)
	}
}
