package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the repo-local config file, looked up at the repository root.
const FileName = ".commitgate.yaml"

// Tool is an external command with its fixed leading arguments.
type Tool struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

type Config struct {
	// Extension selects which staged files are checked (no leading dot).
	Extension string `yaml:"extension"`
	// Licenses are the accepted first-line license headers, matched exactly.
	Licenses []string `yaml:"licenses"`
	// Formatter is invoked per matching file in check-only mode.
	Formatter Tool `yaml:"formatter"`
	// Lint holds the workspace-level invocations run after the per-file
	// loop. Each invocation is a full argument list for the lint command.
	Lint struct {
		Command     string     `yaml:"command"`
		Invocations [][]string `yaml:"invocations"`
	} `yaml:"lint"`
}

func DefaultConfig() *Config {
	cfg := &Config{
		Extension: "rs",
		Licenses: []string{
			"// SPDX-License-Identifier: MIT OR Apache-2.0",
			"// SPDX-License-Identifier: MIT",
		},
		Formatter: Tool{
			Command: "rustfmt",
			Args:    []string{"--edition", "2021", "--check"},
		},
	}
	cfg.Lint.Command = "cargo"
	cfg.Lint.Invocations = [][]string{
		{"clippy", "--workspace", "--exclude", "fuzz", "--all-features", "--", "-D", "warnings"},
		{"clippy", "--workspace", "--exclude", "fuzz", "--all-features", "--tests", "--", "-D", "warnings"},
		{"clippy", "--package", "fuzz", "--features", "fuzzing", "--", "-D", "warnings"},
	}
	return cfg
}

// ConfigPath returns the config file location for a repository.
func ConfigPath(repoPath string) string {
	return filepath.Join(repoPath, FileName)
}

// Load reads the repo-local config, falling back to defaults when the
// file does not exist.
func Load(repoPath string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath(repoPath))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the config to the repository root.
func (c *Config) Save(repoPath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(ConfigPath(repoPath), data, 0644)
}
