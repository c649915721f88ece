package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/antigravity-core/antigravity/internal/catalog"
	"github.com/antigravity-core/antigravity/internal/i18n"
	"github.com/antigravity-core/antigravity/internal/ui"
	"github.com/spf13/cobra"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: i18n.CmdAgentsShort,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := workspaceCatalog().Agents()
		if err != nil {
			return err
		}
		printCatalog(os.Stdout, i18n.LabelAgents, entries)
		return nil
	},
}

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: i18n.CmdSkillsShort,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := workspaceCatalog().Skills()
		if err != nil {
			return err
		}
		printCatalog(os.Stdout, i18n.LabelSkills, entries)
		return nil
	},
}

var workflowsCmd = &cobra.Command{
	Use:   "workflows",
	Short: i18n.CmdWorkflowsShort,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := workspaceCatalog().Workflows()
		if err != nil {
			return err
		}
		printCatalog(os.Stdout, i18n.LabelWorkflows, entries)
		return nil
	},
}

func workspaceCatalog() *catalog.Catalog {
	return catalog.New(cfg.AgentsDir, cfg.SkillsDir, cfg.WorkflowsDir)
}

// printCatalog renders one bullet per entry plus a total count.
// An empty catalog is not an error: it prints a hint and Total: 0.
func printCatalog(w io.Writer, label string, entries []catalog.Entry) {
	if len(entries) == 0 {
		ui.PrintInfo(w, fmt.Sprintf(i18n.MsgNoEntries, label))
	}

	for _, e := range entries {
		line := e.Name
		if e.Deprecated {
			line += " " + ui.DeprecatedStyle.Render(i18n.TagDeprecated)
		}
		if e.Description != "" {
			line += " " + ui.StyleMuted.Render(ui.Truncate(e.Description, 60))
		}
		ui.PrintBullet(w, line)
	}

	fmt.Fprintln(w)
	ui.PrintInfo(w, fmt.Sprintf(i18n.MsgTotalCount, len(entries)))
}
