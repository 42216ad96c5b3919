// Package cli provides the command-line interface with injectable io.Writer for testing.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rvickers/commitgate/internal/adapters/execgit"
	"github.com/rvickers/commitgate/internal/adapters/exectool"
	"github.com/rvickers/commitgate/internal/check"
	"github.com/rvickers/commitgate/internal/config"
	"github.com/rvickers/commitgate/internal/hook"
	"github.com/rvickers/commitgate/internal/ports"
)

// ConfigService provides configuration operations for the CLI.
type ConfigService interface {
	Load(repoPath string) (*config.Config, error)
	Save(cfg *config.Config, repoPath string) error
	ConfigPath(repoPath string) string
}

// CheckService provides the pre-commit check operations for the CLI.
type CheckService interface {
	CheckStaged(cfg *config.Config, repoPath string) check.Report
	Lint(cfg *config.Config, repoPath string) error
	CheckFiles(cfg *config.Config, paths []string) []check.FileResult
}

// HookService provides hook install/uninstall operations for the CLI.
type HookService interface {
	IsInstalled(repoPath string) bool
	Install(repoPath string) error
	Uninstall(repoPath string) error
	HookPath(repoPath string) (string, error)
}

// CLI represents the command-line interface with injectable dependencies.
type CLI struct {
	Out     io.Writer // Standard output
	Err     io.Writer // Standard error
	Version string    // Application version
	Args    []string  // Command arguments (like os.Args)
	Dir     string    // Repository directory the commands operate on

	// Exit function for testability (defaults to os.Exit)
	Exit func(code int)

	// Injectable dependencies (nil means use defaults)
	ConfigSvc ConfigService
	CheckSvc  CheckService
	HookSvc   HookService
	GitSvc    ports.GitClient

	// Color functions (can be disabled for testing)
	green  func(a ...interface{}) string
	yellow func(a ...interface{}) string
	cyan   func(a ...interface{}) string
	gray   func(a ...interface{}) string
	red    func(a ...interface{}) string
}

// New creates a new CLI with default settings.
func New(version string) *CLI {
	return &CLI{
		Out:     os.Stdout,
		Err:     os.Stderr,
		Version: version,
		Args:    os.Args,
		Dir:     ".",
		Exit:    os.Exit,
		green:   color.New(color.FgGreen, color.Bold).SprintFunc(),
		yellow:  color.New(color.FgYellow).SprintFunc(),
		cyan:    color.New(color.FgCyan).SprintFunc(),
		gray:    color.New(color.FgHiBlack).SprintFunc(),
		red:     color.New(color.FgRed).SprintFunc(),
	}
}

// NewForTesting creates a CLI configured for testing (no colors, captured output).
func NewForTesting(out, errOut io.Writer, args []string) *CLI {
	noColor := func(a ...interface{}) string { return fmt.Sprint(a...) }
	exitCode := 0
	return &CLI{
		Out:     out,
		Err:     errOut,
		Version: "test",
		Args:    args,
		Dir:     ".",
		Exit:    func(code int) { exitCode = code; _ = exitCode },
		green:   noColor,
		yellow:  noColor,
		cyan:    noColor,
		gray:    noColor,
		red:     noColor,
	}
}

// defaultConfigService wraps the config package functions.
type defaultConfigService struct{}

func (d *defaultConfigService) Load(repoPath string) (*config.Config, error) {
	return config.Load(repoPath)
}
func (d *defaultConfigService) Save(cfg *config.Config, repoPath string) error {
	return cfg.Save(repoPath)
}
func (d *defaultConfigService) ConfigPath(repoPath string) string {
	return config.ConfigPath(repoPath)
}

// defaultCheckService builds a check.Runner over the exec adapters.
type defaultCheckService struct {
	out    io.Writer
	errOut io.Writer
}

func (d *defaultCheckService) runner(cfg *config.Config) *check.Runner {
	tools := exectool.New(exectool.WithOutput(d.out, d.errOut))
	return check.New(execgit.New(), tools, cfg)
}

func (d *defaultCheckService) CheckStaged(cfg *config.Config, repoPath string) check.Report {
	return d.runner(cfg).CheckStaged(repoPath)
}
func (d *defaultCheckService) Lint(cfg *config.Config, repoPath string) error {
	return d.runner(cfg).Lint(repoPath)
}
func (d *defaultCheckService) CheckFiles(cfg *config.Config, paths []string) []check.FileResult {
	return d.runner(cfg).CheckFiles(paths)
}

// defaultHookService wraps a hook.Manager over the exec git adapter.
type defaultHookService struct {
	mgr *hook.Manager
}

func newDefaultHookService() *defaultHookService {
	return &defaultHookService{mgr: hook.New(execgit.New())}
}

func (d *defaultHookService) IsInstalled(repoPath string) bool  { return d.mgr.IsInstalled(repoPath) }
func (d *defaultHookService) Install(repoPath string) error     { return d.mgr.Install(repoPath) }
func (d *defaultHookService) Uninstall(repoPath string) error   { return d.mgr.Uninstall(repoPath) }
func (d *defaultHookService) HookPath(repoPath string) (string, error) {
	return d.mgr.HookPath(repoPath)
}

// Helper methods to get the service or default
func (c *CLI) configSvc() ConfigService {
	if c.ConfigSvc != nil {
		return c.ConfigSvc
	}
	return &defaultConfigService{}
}

func (c *CLI) checkSvc() CheckService {
	if c.CheckSvc != nil {
		return c.CheckSvc
	}
	return &defaultCheckService{out: c.Out, errOut: c.Err}
}

func (c *CLI) hookSvc() HookService {
	if c.HookSvc != nil {
		return c.HookSvc
	}
	return newDefaultHookService()
}

func (c *CLI) gitSvc() ports.GitClient {
	if c.GitSvc != nil {
		return c.GitSvc
	}
	return execgit.New()
}

// Run executes the CLI with the configured arguments.
func (c *CLI) Run() {
	if len(c.Args) < 2 {
		// Invoked with no command, e.g. directly from a hook script.
		c.RunChecks()
		return
	}

	switch c.Args[1] {
	case "run":
		c.RunChecks()
	case "check":
		c.CheckHeaders()
	case "install":
		c.InstallHook()
	case "uninstall":
		c.UninstallHook()
	case "status":
		c.ShowStatus()
	case "init":
		c.InitConfig()
	case "version", "-v", "--version":
		fmt.Fprintf(c.Out, "commitgate v%s\n", c.Version)
	case "help", "-h", "--help":
		c.PrintUsage()
	default:
		fmt.Fprintf(c.Err, "Unknown command: %s\n", c.Args[1])
		c.PrintUsage()
		c.Exit(1)
	}
}

// PrintUsage prints the help message.
func (c *CLI) PrintUsage() {
	fmt.Fprintln(c.Out, `commitgate - Pre-commit license header, formatting and lint gate

Usage:
  commitgate [run]                Check staged files, then run workspace lints
  commitgate check <file>...      Validate license headers of specific files
  commitgate install              Install the git pre-commit hook
  commitgate uninstall            Remove the git pre-commit hook
  commitgate status               Show hook and config status
  commitgate init                 Create a default config file
  commitgate version, -v          Show version
  commitgate help, -h             Show this help

Config: .commitgate.yaml at the repository root`)
}

// RunChecks runs the full pre-commit sequence: per-file checks over the
// staged files, then the workspace lints. Per-file failures are
// collected and reported together; a failing lint aborts immediately
// with the lint tool's own exit code.
func (c *CLI) RunChecks() {
	cfgSvc := c.configSvc()
	checkSvc := c.checkSvc()

	cfg, err := cfgSvc.Load(c.Dir)
	if err != nil {
		fmt.Fprintf(c.Err, "Error loading config: %v\n", err)
		c.Exit(1)
		return
	}

	report := checkSvc.CheckStaged(cfg, c.Dir)
	for _, res := range report.Checked {
		if res.FormatFailed {
			fmt.Fprintf(c.Out, "  %s %s: %s\n", c.red("x"), res.Path, "formatting check failed")
		}
		if !res.Header.OK {
			fmt.Fprintf(c.Out, "  %s %s: %s\n", c.red("x"), res.Path, res.Header.Reason)
		}
	}

	if err := checkSvc.Lint(cfg, c.Dir); err != nil {
		var exitErr *ports.ExitError
		if errors.As(err, &exitErr) {
			// The lint tool already printed its diagnostics; pass its
			// exit code through unchanged.
			c.Exit(exitErr.Code)
			return
		}
		fmt.Fprintf(c.Err, "Error: %v\n", err)
		c.Exit(1)
		return
	}

	if failed := len(report.Failures()); failed > 0 {
		fmt.Fprintf(c.Out, "\nDone: %d checked, %s failed\n",
			len(report.Checked),
			c.red(fmt.Sprintf("%d", failed)))
		c.Exit(1)
		return
	}

	if len(report.Checked) == 0 {
		fmt.Fprintf(c.Out, "%s No staged files to check\n", c.gray("-"))
		return
	}
	fmt.Fprintf(c.Out, "%s All checks passed (%d files)\n", c.green("*"), len(report.Checked))
}

// CheckHeaders validates the headers of explicitly named files.
func (c *CLI) CheckHeaders() {
	if len(c.Args) < 3 {
		fmt.Fprintln(c.Out, "Usage: commitgate check <file>...")
		c.Exit(1)
		return
	}

	cfgSvc := c.configSvc()
	checkSvc := c.checkSvc()

	cfg, err := cfgSvc.Load(c.Dir)
	if err != nil {
		fmt.Fprintf(c.Err, "Error loading config: %v\n", err)
		c.Exit(1)
		return
	}

	failed := 0
	for _, res := range checkSvc.CheckFiles(cfg, c.Args[2:]) {
		if res.Header.OK {
			fmt.Fprintf(c.Out, "  %s %s\n", c.green("*"), res.Path)
		} else {
			fmt.Fprintf(c.Out, "  %s %s: %s\n", c.red("x"), res.Path, res.Header.Reason)
			failed++
		}
	}

	if failed > 0 {
		c.Exit(1)
	}
}

// InstallHook installs the git pre-commit hook.
func (c *CLI) InstallHook() {
	svc := c.hookSvc()

	if !c.gitSvc().IsRepo(c.Dir) {
		fmt.Fprintln(c.Err, "Not a git repository")
		c.Exit(1)
		return
	}

	if svc.IsInstalled(c.Dir) {
		fmt.Fprintln(c.Out, "Hook already installed. Uninstall first to reinstall.")
		c.Exit(1)
		return
	}

	if err := svc.Install(c.Dir); err != nil {
		fmt.Fprintf(c.Err, "Error installing hook: %v\n", err)
		c.Exit(1)
		return
	}

	path, _ := svc.HookPath(c.Dir)
	fmt.Fprintf(c.Out, "%s Installed pre-commit hook\n", c.green("*"))
	fmt.Fprintf(c.Out, "  Hook: %s\n", path)
}

// UninstallHook removes the git pre-commit hook.
func (c *CLI) UninstallHook() {
	svc := c.hookSvc()

	if !svc.IsInstalled(c.Dir) {
		fmt.Fprintln(c.Out, "Hook not installed.")
		c.Exit(1)
		return
	}

	if err := svc.Uninstall(c.Dir); err != nil {
		fmt.Fprintf(c.Err, "Error uninstalling hook: %v\n", err)
		c.Exit(1)
		return
	}

	fmt.Fprintf(c.Out, "%s Uninstalled pre-commit hook\n", c.yellow("-"))
}

// ShowStatus shows the current status.
func (c *CLI) ShowStatus() {
	cfgSvc := c.configSvc()
	hookSvc := c.hookSvc()

	cfg, err := cfgSvc.Load(c.Dir)
	if err != nil {
		fmt.Fprintf(c.Err, "Error loading config: %v\n", err)
		c.Exit(1)
		return
	}

	fmt.Fprintln(c.Out, "commitgate status:")
	fmt.Fprintf(c.Out, "  Config:    %s\n", cfgSvc.ConfigPath(c.Dir))
	fmt.Fprintf(c.Out, "  Extension: .%s\n", cfg.Extension)
	fmt.Fprintf(c.Out, "  Formatter: %s\n", cfg.Formatter.Command)
	fmt.Fprintf(c.Out, "  Lints:     %d invocations of %s\n", len(cfg.Lint.Invocations), cfg.Lint.Command)

	if !c.gitSvc().IsRepo(c.Dir) {
		fmt.Fprintf(c.Out, "  Hook:      %s\n", c.gray("not a git repository"))
		return
	}
	if hookSvc.IsInstalled(c.Dir) {
		fmt.Fprintf(c.Out, "  Hook:      %s\n", c.green("installed"))
	} else {
		fmt.Fprintf(c.Out, "  Hook:      %s\n", c.gray("not installed"))
	}
}

// InitConfig creates the default config file.
func (c *CLI) InitConfig() {
	svc := c.configSvc()

	if err := svc.Save(config.DefaultConfig(), c.Dir); err != nil {
		fmt.Fprintf(c.Err, "Error saving config: %v\n", err)
		c.Exit(1)
		return
	}
	fmt.Fprintf(c.Out, "Created config at %s\n", svc.ConfigPath(c.Dir))
}
