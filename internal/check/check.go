// Package check runs the pre-commit checks: per-file formatter and
// header validation over the staged files, then the workspace-level lint
// invocations.
package check

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/rvickers/commitgate/internal/config"
	"github.com/rvickers/commitgate/internal/header"
	"github.com/rvickers/commitgate/internal/ports"
)

// FileResult holds the per-file check outcomes for one staged file.
type FileResult struct {
	Path         string
	FormatFailed bool
	Header       header.Outcome
}

// Failed reports whether any check on this file failed.
func (r FileResult) Failed() bool {
	return r.FormatFailed || !r.Header.OK
}

// Report accumulates the outcomes of the per-file loop. It replaces a
// process-global pass/fail flag: callers derive the exit status from it
// after every file has been checked.
type Report struct {
	// Checked holds one result per staged file with the watched extension
	Checked []FileResult
	// Skipped counts staged files with other extensions
	Skipped int
}

// Failed reports whether any per-file check failed.
func (r Report) Failed() bool {
	for _, res := range r.Checked {
		if res.Failed() {
			return true
		}
	}
	return false
}

// Failures returns only the failing file results.
func (r Report) Failures() []FileResult {
	var out []FileResult
	for _, res := range r.Checked {
		if res.Failed() {
			out = append(out, res)
		}
	}
	return out
}

// Runner wires the git client, tool runner and header validator together.
type Runner struct {
	git       ports.GitClient
	tools     ports.ToolRunner
	validator *header.Validator
	cfg       *config.Config
}

// New creates a Runner for the given configuration.
func New(git ports.GitClient, tools ports.ToolRunner, cfg *config.Config) *Runner {
	return &Runner{
		git:       git,
		tools:     tools,
		validator: header.NewValidator(cfg.Licenses),
		cfg:       cfg,
	}
}

// CheckStaged runs the formatter check and the header validation for
// every staged file with the configured extension. Failures are recorded
// in the report, never aborting the loop, so one run surfaces every
// problem at once. Files with other extensions are counted as skipped
// and never read.
func (r *Runner) CheckStaged(repoPath string) Report {
	var report Report
	for _, path := range r.git.StagedFiles(repoPath) {
		if extension(path) != r.cfg.Extension {
			report.Skipped++
			continue
		}

		res := FileResult{Path: path}

		args := append(slices.Clone(r.cfg.Formatter.Args), path)
		if err := r.tools.Run(repoPath, r.cfg.Formatter.Command, args...); err != nil {
			// A formatter that cannot run at all fails the file too.
			res.FormatFailed = true
		}

		res.Header = r.validator.ValidateFile(filepath.Join(repoPath, path))
		report.Checked = append(report.Checked, res)
	}
	return report
}

// Lint runs the configured workspace-level lint invocations in order.
// The first failure stops the sequence and is returned as-is; a
// *ports.ExitError carries the tool's own exit code for the caller to
// propagate.
func (r *Runner) Lint(repoPath string) error {
	for _, args := range r.cfg.Lint.Invocations {
		if err := r.tools.Run(repoPath, r.cfg.Lint.Command, args...); err != nil {
			return err
		}
	}
	return nil
}

// CheckFiles validates the headers of explicitly named files, without
// consulting git or the formatter.
func (r *Runner) CheckFiles(paths []string) []FileResult {
	var out []FileResult
	for _, path := range paths {
		out = append(out, FileResult{
			Path:   path,
			Header: r.validator.ValidateFile(path),
		})
	}
	return out
}

// extension returns the suffix after the last dot, without the dot.
// A path with no dot has an empty extension.
func extension(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}
