package hook

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rvickers/commitgate/internal/mocks"
)

func newManager(t *testing.T) (*Manager, string) {
	t.Helper()
	repo := t.TempDir()
	git := mocks.NewMockGitClient()
	git.Repos[repo] = true
	git.HooksDirs[repo] = filepath.Join(repo, ".git", "hooks")

	mgr := New(git)
	mgr.BinaryPath = "/usr/local/bin/commitgate"
	return mgr, repo
}

func TestInstall(t *testing.T) {
	mgr, repo := newManager(t)

	if mgr.IsInstalled(repo) {
		t.Fatal("hook should not be installed yet")
	}

	if err := mgr.Install(repo); err != nil {
		t.Fatalf("Install failed: %v", err)
	}

	if !mgr.IsInstalled(repo) {
		t.Error("hook should be installed")
	}

	path, err := mgr.HookPath(repo)
	if err != nil {
		t.Fatalf("HookPath failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading hook script: %v", err)
	}
	script := string(data)
	if !strings.HasPrefix(script, "#!/bin/sh") {
		t.Errorf("script missing shebang:\n%s", script)
	}
	if !strings.Contains(script, "/usr/local/bin/commitgate run") {
		t.Errorf("script does not invoke the binary:\n%s", script)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0111 == 0 {
		t.Errorf("hook script not executable: %v", info.Mode())
	}
}

func TestInstallRefusesForeignHook(t *testing.T) {
	mgr, repo := newManager(t)

	path, err := mgr.HookPath(repo)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("#!/bin/sh\necho custom hook\n"), 0755); err != nil {
		t.Fatal(err)
	}

	if err := mgr.Install(repo); err == nil {
		t.Error("Install should refuse to overwrite a foreign hook")
	}
}

func TestUninstall(t *testing.T) {
	mgr, repo := newManager(t)

	if err := mgr.Install(repo); err != nil {
		t.Fatalf("Install failed: %v", err)
	}
	if err := mgr.Uninstall(repo); err != nil {
		t.Fatalf("Uninstall failed: %v", err)
	}
	if mgr.IsInstalled(repo) {
		t.Error("hook should be removed")
	}
}

func TestUninstallNotInstalled(t *testing.T) {
	mgr, repo := newManager(t)

	if err := mgr.Uninstall(repo); err == nil {
		t.Error("Uninstall should fail when no hook is installed")
	}
}

func TestUninstallLeavesForeignHook(t *testing.T) {
	mgr, repo := newManager(t)

	path, err := mgr.HookPath(repo)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("#!/bin/sh\necho custom hook\n"), 0755); err != nil {
		t.Fatal(err)
	}

	if err := mgr.Uninstall(repo); err == nil {
		t.Error("Uninstall should not remove a foreign hook")
	}
	if _, err := os.Stat(path); err != nil {
		t.Error("foreign hook should still exist")
	}
}

func TestIsInstalledBadRepo(t *testing.T) {
	git := mocks.NewMockGitClient()
	mgr := New(git)

	if mgr.IsInstalled("/nonexistent") {
		t.Error("IsInstalled should be false when hooks dir is unknown")
	}
}
