package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/antigravity-core/antigravity/internal/detect"
	"github.com/antigravity-core/antigravity/internal/i18n"
	"github.com/antigravity-core/antigravity/internal/project"
	"github.com/antigravity-core/antigravity/internal/ui"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: i18n.CmdInitShort,
	Long:  i18n.CmdInitLong,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, i18n.FlagForce)
}

func runInit(cmd *cobra.Command, args []string) error {
	w := os.Stdout

	// Existing config without --force is a deliberate no-op, not an error
	if project.Exists(cfg.ProjectFile) && !initForce {
		ui.PrintWarning(w, i18n.MsgAlreadyInitialized)
		return nil
	}

	ui.PrintHeader(w, i18n.UIProjectInit)
	ui.PrintInfo(w, i18n.MsgDetectingStack)

	result := detect.Detect(cfg.ProjectRoot)
	printDetection(w, result)

	pc := project.New(toolVersion(), result)
	ui.PrintInfo(w, fmt.Sprintf(i18n.MsgAgentsActivated, strings.Join(pc.ActiveAgents, ", ")))

	if cfg.DryRun {
		ui.PrintWarning(w, i18n.MsgDryRunSkipWrite)
		return nil
	}

	if err := pc.Save(cfg.ProjectFile); err != nil {
		return err
	}

	ui.PrintSuccess(w, fmt.Sprintf(i18n.MsgConfigWritten, cfg.ProjectFile))
	return nil
}

func printDetection(w io.Writer, result detect.Result) {
	if len(result.Frontend) == 0 && len(result.Backend) == 0 && len(result.Database) == 0 {
		ui.PrintInfo(w, i18n.MsgNothingDetected)
		return
	}

	if len(result.Frontend) > 0 {
		ui.PrintInfo(w, fmt.Sprintf(i18n.MsgDetectedFrontend, strings.Join(result.Frontend, " ")))
	}
	if len(result.Backend) > 0 {
		ui.PrintInfo(w, fmt.Sprintf(i18n.MsgDetectedBackend, strings.Join(result.Backend, " ")))
	}
	if len(result.Database) > 0 {
		ui.PrintInfo(w, fmt.Sprintf(i18n.MsgDetectedDatabase, strings.Join(result.Database, " ")))
	}
}
