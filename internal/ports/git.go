// Package ports defines interfaces (contracts) for external dependencies.
// These enable dependency injection and testability via mock implementations.
package ports

// GitClient abstracts git queries for testability.
// Production code uses ExecGitClient adapter; tests use MockGitClient.
type GitClient interface {
	// StagedFiles returns the paths staged in the index, relative to the
	// repository root, in the order git reports them. Returns an empty
	// slice if the query fails or the directory is not a repository.
	StagedFiles(repoPath string) []string

	// IsRepo checks if the given path is a git repository.
	IsRepo(path string) bool

	// HooksDir returns the absolute path of the hooks directory for the
	// repository.
	HooksDir(repoPath string) (string, error)
}
