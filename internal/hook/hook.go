// Package hook installs and removes the git pre-commit hook script.
package hook

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/rvickers/commitgate/internal/ports"
)

// marker identifies hook scripts written by us, so Uninstall never
// deletes a hook someone wrote by hand.
const marker = "# installed by commitgate"

const scriptTemplate = `#!/bin/sh
` + marker + `
exec {{.BinaryPath}} run
`

const hookName = "pre-commit"

type scriptConfig struct {
	BinaryPath string
}

// Manager installs the pre-commit hook into a repository.
type Manager struct {
	git ports.GitClient

	// BinaryPath overrides the commitgate binary the hook script calls.
	// Empty means resolve via PATH at install time.
	BinaryPath string
}

// New creates a hook Manager.
func New(git ports.GitClient) *Manager {
	return &Manager{git: git}
}

// HookPath returns where the pre-commit hook script lives for the repo.
func (m *Manager) HookPath(repoPath string) (string, error) {
	dir, err := m.git.HooksDir(repoPath)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, hookName), nil
}

// IsInstalled reports whether our hook script is present.
func (m *Manager) IsInstalled(repoPath string) bool {
	path, err := m.HookPath(repoPath)
	if err != nil {
		return false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return strings.Contains(string(data), marker)
}

// Install writes the pre-commit hook script. It refuses to overwrite an
// existing hook that is not ours.
func (m *Manager) Install(repoPath string) error {
	binaryPath := m.BinaryPath
	if binaryPath == "" {
		var err error
		binaryPath, err = exec.LookPath("commitgate")
		if err != nil {
			return fmt.Errorf("commitgate not found in PATH: %w", err)
		}
	}

	path, err := m.HookPath(repoPath)
	if err != nil {
		return fmt.Errorf("locating hooks directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil && !m.IsInstalled(repoPath) {
		return fmt.Errorf("a pre-commit hook already exists at %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating hooks directory: %w", err)
	}

	tmpl, err := template.New("hook").Parse(scriptTemplate)
	if err != nil {
		return fmt.Errorf("parsing template: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		return fmt.Errorf("creating hook script: %w", err)
	}

	if err := tmpl.Execute(f, scriptConfig{BinaryPath: binaryPath}); err != nil {
		f.Close()
		return fmt.Errorf("writing hook script: %w", err)
	}
	return f.Close()
}

// Uninstall removes the hook script if it is ours.
func (m *Manager) Uninstall(repoPath string) error {
	if !m.IsInstalled(repoPath) {
		return fmt.Errorf("pre-commit hook not installed")
	}
	path, err := m.HookPath(repoPath)
	if err != nil {
		return err
	}
	return os.Remove(path)
}
