// Package script runs the workspace maintenance scripts. The dispatcher
// treats them as opaque collaborators: it resolves a name under the
// scripts directory, forwards flags, passes stdio through and surfaces
// the script's exit code as its own.
package script

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/antigravity-core/antigravity/internal/i18n"
	"github.com/antigravity-core/antigravity/internal/ui"
)

// extensions tried when resolving a script name, in order
var extensions = []string{"", ".sh", ".ps1"}

// Runner executes a named workspace script
type Runner interface {
	// Available reports whether the named script exists
	Available(name string) bool
	// Run executes the named script and returns its exit code
	Run(ctx context.Context, name string, args ...string) (int, error)
}

// ExecRunner runs scripts from the workspace scripts directory
type ExecRunner struct {
	ScriptsDir string
	DryRun     bool
	Verbose    bool
	writer     io.Writer
}

// NewExecRunner creates a runner over the given scripts directory
func NewExecRunner(scriptsDir string) *ExecRunner {
	return &ExecRunner{
		ScriptsDir: scriptsDir,
		writer:     os.Stdout,
	}
}

// SetWriter sets the output writer
func (r *ExecRunner) SetWriter(w io.Writer) {
	r.writer = w
}

// SetDryRun enables/disables dry run mode
func (r *ExecRunner) SetDryRun(dryRun bool) {
	r.DryRun = dryRun
}

// SetVerbose enables/disables verbose output
func (r *ExecRunner) SetVerbose(verbose bool) {
	r.Verbose = verbose
}

// Available reports whether the named script exists
func (r *ExecRunner) Available(name string) bool {
	return r.resolve(name) != ""
}

// resolve returns the path of the script file for name, or "" when no
// candidate exists
func (r *ExecRunner) resolve(name string) string {
	for _, ext := range extensions {
		path := filepath.Join(r.ScriptsDir, name+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// Run executes the named script with stdio passed through. The returned
// exit code is the script's own; a missing script is the caller's
// concern and surfaces as an error here.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (int, error) {
	path := r.resolve(name)
	if path == "" {
		return 0, fmt.Errorf("script %s not found in %s", name, r.ScriptsDir)
	}

	if r.DryRun {
		ui.PrintWarning(r.writer, fmt.Sprintf(i18n.MsgDryRunSkipRun, path))
		return 0, nil
	}

	if r.Verbose {
		ui.PrintInfo(r.writer, fmt.Sprintf(i18n.MsgRunningScript, path))
	}

	cmd := buildCommand(ctx, path, args)
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.writer
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return 1, err
	}
	return 0, nil
}

// buildCommand picks the interpreter from the script extension.
// PowerShell scripts need an explicit host, everything else is assumed
// directly executable.
func buildCommand(ctx context.Context, path string, args []string) *exec.Cmd {
	if filepath.Ext(path) == ".ps1" {
		psArgs := append([]string{"-File", path}, args...)
		return exec.CommandContext(ctx, "pwsh", psArgs...)
	}
	return exec.CommandContext(ctx, path, args...)
}
