package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.AgentRoot != ".agent" {
		t.Errorf("AgentRoot = %q, want %q", cfg.AgentRoot, ".agent")
	}
	if cfg.ProjectFile != "project.json" {
		t.Errorf("ProjectFile = %q, want %q", cfg.ProjectFile, "project.json")
	}
	if cfg.ProjectRoot == "" {
		t.Error("ProjectRoot should default to the working directory")
	}
	if cfg.DryRun || cfg.Verbose {
		t.Error("DryRun and Verbose should default to false")
	}
}

func TestResolvePaths(t *testing.T) {
	cfg := &Config{
		AgentRoot:    ".agent",
		AgentsDir:    "agents",
		SkillsDir:    "skills",
		WorkflowsDir: "workflows",
		ScriptsDir:   "scripts",
		VersionFile:  "VERSION",
		ProjectFile:  "project.json",
		ProjectRoot:  "/work/myproject",
	}

	cfg.resolvePaths()

	wantRoot := filepath.Join("/work/myproject", ".agent")
	if cfg.AgentRoot != wantRoot {
		t.Errorf("AgentRoot = %q, want %q", cfg.AgentRoot, wantRoot)
	}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"agents", cfg.AgentsDir, filepath.Join(wantRoot, "agents")},
		{"skills", cfg.SkillsDir, filepath.Join(wantRoot, "skills")},
		{"workflows", cfg.WorkflowsDir, filepath.Join(wantRoot, "workflows")},
		{"scripts", cfg.ScriptsDir, filepath.Join(wantRoot, "scripts")},
		{"version file", cfg.VersionFile, filepath.Join(wantRoot, "VERSION")},
		{"project file", cfg.ProjectFile, filepath.Join(wantRoot, "project.json")},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s path = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestResolvePaths_AbsolutePathsUntouched(t *testing.T) {
	cfg := &Config{
		AgentRoot:    "/opt/antigravity",
		AgentsDir:    "/elsewhere/agents",
		SkillsDir:    "skills",
		WorkflowsDir: "workflows",
		ScriptsDir:   "scripts",
		VersionFile:  "VERSION",
		ProjectFile:  "project.json",
		ProjectRoot:  "/work/myproject",
	}

	cfg.resolvePaths()

	if cfg.AgentRoot != "/opt/antigravity" {
		t.Errorf("absolute AgentRoot was rewritten to %q", cfg.AgentRoot)
	}
	if cfg.AgentsDir != "/elsewhere/agents" {
		t.Errorf("absolute AgentsDir was rewritten to %q", cfg.AgentsDir)
	}
	if want := filepath.Join("/opt/antigravity", "skills"); cfg.SkillsDir != want {
		t.Errorf("SkillsDir = %q, want %q", cfg.SkillsDir, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"empty agent root", func(c *Config) { c.AgentRoot = "" }, true},
		{"empty project file", func(c *Config) { c.ProjectFile = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
