// Package i18n centralizes all user-facing strings of the antigravity CLI.
// Keeping them in one catalog makes future localization a data change
// rather than a code change.
package i18n

// Command descriptions
const (
	// Root command
	CmdRootShort = "Dispatcher CLI for an Antigravity-Core workspace"
	CmdRootLong  = `Antigravity - command dispatcher for an Antigravity-Core workspace

The workspace is a .agent directory holding agent personas, skills,
workflows and maintenance scripts. This tool lets you:
  • inspect the workspace (status, agents, skills, workflows)
  • initialize a project configuration with tech-stack detection (init)
  • run maintenance tooling (health, validate, scan, perf, heal, dx)`

	// Version command
	CmdVersionShort = "Show version information"

	// Init command
	CmdInitShort = "Initialize the project configuration"
	CmdInitLong  = `Detect the project's tech stack and write project.json under the
workspace root. If a configuration already exists, init is a no-op
unless --force is given, in which case the file is fully replaced.

Examples:
  antigravity init
  antigravity init --force`

	// Status command
	CmdStatusShort = "Show a summary of the workspace"
	CmdStatusLong  = `Count agents, skills, workflows and scripts in the workspace and
show the workspace version plus the project configuration if one
has been initialized.`

	// Catalog commands
	CmdAgentsShort    = "List available agent personas"
	CmdSkillsShort    = "List available skills"
	CmdWorkflowsShort = "List available workflows"

	// Delegated commands
	CmdHealthShort   = "Run the workspace health check"
	CmdValidateShort = "Validate workspace compliance"
	CmdScanShort     = "Scan the project for leaked secrets"
	CmdPerfShort     = "Run the performance check"
	CmdHealShort     = "Apply automatic fixes to the workspace"
	CmdDxShort       = "Show developer-experience analytics"
	CmdDxLong        = `Show developer-experience analytics. An optional view selects the
report: roi, quality or bottlenecks. Anything else (including no
view) opens the default dashboard.

Examples:
  antigravity dx
  antigravity dx roi`
)

// Flag descriptions
const (
	FlagConfig  = "config file (default .antigravity.yaml)"
	FlagDryRun  = "show what would happen without side effects"
	FlagVerbose = "verbose output"
	FlagForce   = "overwrite an existing project configuration"
	FlagAll     = "validate every rule set, not just the active ones"
)

// Status messages
const (
	UIWorkspaceStatus = "Workspace Status"
	MsgVersionLine    = "Version: %s"
	MsgVersionUnknown = "Version: unknown (no VERSION file)"
	MsgProjectInit    = "Project initialized: %s"
	MsgActiveAgents   = "Active agents: %s"
	MsgProjectNotInit = "Project not initialized (run: antigravity init)"
	ColKind           = "Kind"
	ColCount          = "Count"
	KindAgents        = "Agents"
	KindSkills        = "Skills"
	KindWorkflows     = "Workflows"
	KindScripts       = "Scripts"
)

// Catalog messages
const (
	MsgNoEntries   = "No %s found"
	MsgTotalCount  = "Total: %d"
	TagDeprecated  = "[DEPRECATED]"
	LabelAgents    = "agents"
	LabelSkills    = "skills"
	LabelWorkflows = "workflows"
)

// Init messages
const (
	UIProjectInit         = "Project Initialization"
	MsgAlreadyInitialized = "Project already initialized, use --force to overwrite"
	MsgDetectingStack     = "Detecting tech stack..."
	MsgDetectedFrontend   = "Frontend: %s"
	MsgDetectedBackend    = "Backend:  %s"
	MsgDetectedDatabase   = "Database: %s"
	MsgNothingDetected    = "No known tech stack detected"
	MsgAgentsActivated    = "Activated agents: %s"
	MsgConfigWritten      = "Configuration written: %s"
	MsgDryRunSkipWrite    = "[DRY RUN] Skipping configuration write"
)

// Delegation messages
const (
	MsgScriptNotFound = "Script not found: %s (skipping)"
	MsgRunningScript  = "Running %s..."
	MsgDryRunSkipRun  = "[DRY RUN] Would run: %s"
)

// Error operations and messages
const (
	ErrOpConfig  = "config"
	ErrOpProject = "project"
	ErrOpCatalog = "catalog"
	ErrOpScript  = "script"

	ErrMsgWriteProject  = "failed to write project configuration"
	ErrMsgLoadProject   = "failed to read project configuration"
	ErrMsgScriptFailed  = "script %s failed"
	ErrLoadConfigFailed = "failed to load configuration: %w"
)
