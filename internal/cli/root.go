// Package cli provides the command-line interface
package cli

import (
	"fmt"
	"os"

	"github.com/antigravity-core/antigravity/internal/config"
	"github.com/antigravity-core/antigravity/internal/i18n"
	"github.com/antigravity-core/antigravity/internal/script"
	"github.com/spf13/cobra"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"

	// Global flags
	cfgFile string
	dryRun  bool
	verbose bool

	// Global config
	cfg *config.Config

	// Exit code propagated from a delegated script
	delegatedExitCode int
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "antigravity",
	Short: i18n.CmdRootShort,
	Long:  i18n.CmdRootLong,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't touch the workspace
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf(i18n.ErrLoadConfigFailed, err)
		}

		// Override with flags
		if dryRun {
			cfg.DryRun = true
		}
		if verbose {
			cfg.Verbose = true
		}

		return cfg.Validate()
	},
}

// Execute runs the root command. The process exit code is non-zero for
// an unrecognized command or a fatal error, and mirrors the delegated
// script's exit code when a delegation ran.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
	if delegatedExitCode != 0 {
		os.Exit(delegatedExitCode)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", i18n.FlagConfig)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, i18n.FlagDryRun)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, i18n.FlagVerbose)

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(statusCmd)

	// Catalog commands
	rootCmd.AddCommand(agentsCmd)
	rootCmd.AddCommand(skillsCmd)
	rootCmd.AddCommand(workflowsCmd)

	// Delegated maintenance commands
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(perfCmd)
	rootCmd.AddCommand(healCmd)
	rootCmd.AddCommand(dxCmd)
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: i18n.CmdVersionShort,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Antigravity %s\n", Version)
		fmt.Printf("  Commit: %s\n", Commit)
		fmt.Printf("  Built:  %s\n", BuildDate)
	},
}

// GetConfig returns the global configuration
func GetConfig() *config.Config {
	return cfg
}

// newRunner builds the script runner for delegated commands.
// Overridable so CLI tests can substitute a fake runner.
var newRunner = func() script.Runner {
	r := script.NewExecRunner(cfg.ScriptsDir)
	r.SetDryRun(cfg.DryRun)
	r.SetVerbose(cfg.Verbose)
	return r
}
