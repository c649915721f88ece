// Package config provides configuration management
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration. Every path the dispatcher
// touches flows through here so tests can point it at a temp tree.
type Config struct {
	// Workspace paths
	AgentRoot    string `mapstructure:"agent_root"`
	AgentsDir    string `mapstructure:"agents_dir"`
	SkillsDir    string `mapstructure:"skills_dir"`
	WorkflowsDir string `mapstructure:"workflows_dir"`
	ScriptsDir   string `mapstructure:"scripts_dir"`
	VersionFile  string `mapstructure:"version_file"`
	ProjectFile  string `mapstructure:"project_file"`

	// Project root (the directory whose tech stack is detected)
	ProjectRoot string `mapstructure:"project_root"`

	// Execution settings
	DryRun  bool `mapstructure:"dry_run"`
	Verbose bool `mapstructure:"verbose"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cwd, _ := os.Getwd()
	return &Config{
		AgentRoot:    ".agent",
		AgentsDir:    "agents",
		SkillsDir:    "skills",
		WorkflowsDir: "workflows",
		ScriptsDir:   "scripts",
		VersionFile:  "VERSION",
		ProjectFile:  "project.json",
		ProjectRoot:  cwd,
	}
}

// Load loads configuration from files and environment
func Load() (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName(".antigravity")
	v.SetConfigType("yaml")

	// Search paths
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")
	v.AddConfigPath("$HOME/.config/antigravity")

	// Environment variables
	v.SetEnvPrefix("ANTIGRAVITY")
	v.AutomaticEnv()
	v.BindEnv("agent_root", "ANTIGRAVITY_ROOT")

	// Set defaults
	v.SetDefault("agent_root", cfg.AgentRoot)
	v.SetDefault("agents_dir", cfg.AgentsDir)
	v.SetDefault("skills_dir", cfg.SkillsDir)
	v.SetDefault("workflows_dir", cfg.WorkflowsDir)
	v.SetDefault("scripts_dir", cfg.ScriptsDir)
	v.SetDefault("version_file", cfg.VersionFile)
	v.SetDefault("project_file", cfg.ProjectFile)

	// Try to read config file (don't fail if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal to struct
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg.resolvePaths()

	return cfg, nil
}

// resolvePaths anchors relative paths: the agent root under the project
// root, and the catalog directories under the agent root.
func (c *Config) resolvePaths() {
	if c.ProjectRoot == "" {
		c.ProjectRoot, _ = os.Getwd()
	}

	if !filepath.IsAbs(c.AgentRoot) {
		c.AgentRoot = filepath.Join(c.ProjectRoot, c.AgentRoot)
	}

	for _, dir := range []*string{&c.AgentsDir, &c.SkillsDir, &c.WorkflowsDir, &c.ScriptsDir, &c.VersionFile, &c.ProjectFile} {
		if !filepath.IsAbs(*dir) {
			*dir = filepath.Join(c.AgentRoot, *dir)
		}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.AgentRoot == "" {
		return fmt.Errorf("agent_root is required")
	}
	if c.ProjectFile == "" {
		return fmt.Errorf("project_file is required")
	}
	return nil
}
