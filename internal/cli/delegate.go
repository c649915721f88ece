package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/antigravity-core/antigravity/internal/i18n"
	"github.com/antigravity-core/antigravity/internal/script"
	"github.com/antigravity-core/antigravity/internal/ui"
	"github.com/spf13/cobra"
)

// dx report views recognized as sub-targets. Anything else, including
// no sub-target at all, falls back to the default dashboard view.
var dxViews = map[string]bool{
	"roi":         true,
	"quality":     true,
	"bottlenecks": true,
}

const dxDefaultView = "dashboard"

var validateAll bool

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: i18n.CmdHealthShort,
	RunE: func(cmd *cobra.Command, args []string) error {
		return delegate(newRunner(), "health-check")
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: i18n.CmdValidateShort,
	RunE: func(cmd *cobra.Command, args []string) error {
		var fwd []string
		if validateAll {
			fwd = append(fwd, "--all")
		}
		return delegate(newRunner(), "validate-compliance", fwd...)
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: i18n.CmdScanShort,
	RunE: func(cmd *cobra.Command, args []string) error {
		return delegate(newRunner(), "secret-scan")
	},
}

var perfCmd = &cobra.Command{
	Use:   "perf",
	Short: i18n.CmdPerfShort,
	RunE: func(cmd *cobra.Command, args []string) error {
		return delegate(newRunner(), "performance-check")
	},
}

var healCmd = &cobra.Command{
	Use:   "heal",
	Short: i18n.CmdHealShort,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Dry-run is auto-heal's own mode: forward it instead of
		// skipping the invocation.
		var fwd []string
		runner := newRunner()
		if cfg.DryRun {
			fwd = append(fwd, "--dry-run")
			if r, ok := runner.(*script.ExecRunner); ok {
				r.SetDryRun(false)
			}
		}
		return delegate(runner, "auto-heal", fwd...)
	},
}

var dxCmd = &cobra.Command{
	Use:   "dx [roi|quality|bottlenecks]",
	Short: i18n.CmdDxShort,
	Long:  i18n.CmdDxLong,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		view := dxDefaultView
		if len(args) > 0 && dxViews[args[0]] {
			view = args[0]
		}
		return delegate(newRunner(), "dx-analytics", view)
	},
}

func init() {
	validateCmd.Flags().BoolVar(&validateAll, "all", false, i18n.FlagAll)
}

// delegate hands a verb off to its workspace script. A missing script
// is graceful degradation, not a dispatcher failure; a script that ran
// propagates its exit code through delegatedExitCode.
func delegate(runner script.Runner, name string, args ...string) error {
	w := os.Stdout

	if !runner.Available(name) {
		ui.PrintWarning(w, fmt.Sprintf(i18n.MsgScriptNotFound, name))
		return nil
	}

	code, err := runner.Run(context.Background(), name, args...)
	if err != nil {
		return err
	}
	delegatedExitCode = code
	return nil
}
