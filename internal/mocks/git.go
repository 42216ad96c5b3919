// Package mocks provides reusable test doubles for the ports interfaces.
package mocks

import (
	"fmt"

	"github.com/rvickers/commitgate/internal/ports"
)

// MockGitClient implements ports.GitClient for testing.
type MockGitClient struct {
	// Staged maps repository paths to their staged file lists
	Staged map[string][]string
	// Repos maps paths to whether they are git repos
	Repos map[string]bool
	// HooksDirs maps repository paths to their hooks directories
	HooksDirs map[string]string
}

// NewMockGitClient creates a new mock git client.
func NewMockGitClient() *MockGitClient {
	return &MockGitClient{
		Staged:    make(map[string][]string),
		Repos:     make(map[string]bool),
		HooksDirs: make(map[string]string),
	}
}

// StagedFiles returns the staged paths configured for the repository.
// Returns an empty slice for unknown paths, matching the real client's
// behavior when the git query fails.
func (m *MockGitClient) StagedFiles(repoPath string) []string {
	return m.Staged[repoPath]
}

// IsRepo checks if the given path is a git repository.
func (m *MockGitClient) IsRepo(path string) bool {
	return m.Repos[path]
}

// HooksDir returns the hooks directory configured for the repository.
func (m *MockGitClient) HooksDir(repoPath string) (string, error) {
	dir, ok := m.HooksDirs[repoPath]
	if !ok {
		return "", fmt.Errorf("not a git repository: %s", repoPath)
	}
	return dir, nil
}

// Compile-time check that MockGitClient implements ports.GitClient.
var _ ports.GitClient = (*MockGitClient)(nil)
