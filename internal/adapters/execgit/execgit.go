// Package execgit provides a git client adapter using exec.Command.
package execgit

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rvickers/commitgate/internal/ports"
)

// ExecGitClient implements ports.GitClient using exec.Command.
type ExecGitClient struct{}

// New creates a new ExecGitClient adapter.
func New() *ExecGitClient {
	return &ExecGitClient{}
}

// StagedFiles returns the paths staged in the index, in the order git
// reports them. Returns an empty slice if the query fails.
func (g *ExecGitClient) StagedFiles(repoPath string) []string {
	cmd := exec.Command("git", "diff", "--cached", "--name-only")
	cmd.Dir = repoPath
	out, err := cmd.Output()
	if err != nil {
		return nil
	}
	return splitLines(string(out))
}

// IsRepo checks if the given path is a git repository.
func (g *ExecGitClient) IsRepo(path string) bool {
	// .git is a directory in a normal checkout and a file in a worktree.
	_, err := os.Stat(filepath.Join(path, ".git"))
	return err == nil
}

// HooksDir returns the absolute path of the hooks directory for the
// repository, honoring core.hooksPath when set.
func (g *ExecGitClient) HooksDir(repoPath string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--git-path", "hooks")
	cmd.Dir = repoPath
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	dir := strings.TrimSpace(string(out))
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(repoPath, dir)
	}
	return dir, nil
}

// splitLines splits git's newline-separated path list, dropping blanks.
func splitLines(out string) []string {
	var paths []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			paths = append(paths, line)
		}
	}
	return paths
}

// Compile-time check that ExecGitClient implements ports.GitClient.
var _ ports.GitClient = (*ExecGitClient)(nil)
