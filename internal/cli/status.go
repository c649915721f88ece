package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/antigravity-core/antigravity/internal/catalog"
	"github.com/antigravity-core/antigravity/internal/i18n"
	"github.com/antigravity-core/antigravity/internal/project"
	"github.com/antigravity-core/antigravity/internal/ui"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: i18n.CmdStatusShort,
	Long:  i18n.CmdStatusLong,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	w := os.Stdout

	ui.PrintHeader(w, i18n.UIWorkspaceStatus)

	if v := workspaceVersion(); v != "" {
		ui.PrintInfo(w, fmt.Sprintf(i18n.MsgVersionLine, v))
	} else {
		ui.PrintInfo(w, i18n.MsgVersionUnknown)
	}
	fmt.Fprintln(w)

	cat := catalog.New(cfg.AgentsDir, cfg.SkillsDir, cfg.WorkflowsDir)
	agents, _ := cat.Agents()
	skills, _ := cat.Skills()
	workflows, _ := cat.Workflows()

	table := ui.NewTable(i18n.ColKind, i18n.ColCount)
	table.AddRow(i18n.KindAgents, strconv.Itoa(len(agents)))
	table.AddRow(i18n.KindSkills, strconv.Itoa(len(skills)))
	table.AddRow(i18n.KindWorkflows, strconv.Itoa(len(workflows)))
	table.AddRow(i18n.KindScripts, strconv.Itoa(countScripts()))
	table.Render(w)
	fmt.Fprintln(w)

	if project.Exists(cfg.ProjectFile) {
		pc, err := project.Load(cfg.ProjectFile)
		if err == nil {
			ui.PrintInfo(w, fmt.Sprintf(i18n.MsgProjectInit, pc.Initialized.Format(time.RFC3339)))
			ui.PrintInfo(w, fmt.Sprintf(i18n.MsgActiveAgents, strings.Join(pc.ActiveAgents, ", ")))
			return nil
		}
		// Unreadable config degrades to the not-initialized hint
	}
	ui.PrintInfo(w, ui.StyleMuted.Render(i18n.MsgProjectNotInit))
	return nil
}

// countScripts counts files directly in the scripts directory.
// A missing directory counts as zero, not an error.
func countScripts() int {
	dirents, err := os.ReadDir(cfg.ScriptsDir)
	if err != nil {
		return 0
	}
	count := 0
	for _, d := range dirents {
		if !d.IsDir() {
			count++
		}
	}
	return count
}

// workspaceVersion reads the workspace VERSION marker file. Empty
// string means the workspace carries no version marker.
func workspaceVersion() string {
	data, err := os.ReadFile(cfg.VersionFile)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// toolVersion is what gets stamped into project.json: the workspace
// version when the marker exists, otherwise the binary's build version.
func toolVersion() string {
	if v := workspaceVersion(); v != "" {
		return v
	}
	return Version
}
