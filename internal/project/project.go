// Package project handles the persisted project configuration
// (project.json). The file is created once by init, fully replaced on
// a forced re-init, and never merged.
package project

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/antigravity-core/antigravity/internal/detect"
	apperrors "github.com/antigravity-core/antigravity/internal/errors"
)

// BaselineAgents are always active, regardless of detection outcome.
// Detection only appends to this baseline.
var BaselineAgents = []string{"security-auditor", "test-engineer"}

// TechStack holds the detected technologies, one space-joined list per
// category. Empty string means nothing detected.
type TechStack struct {
	Frontend string `json:"frontend"`
	Backend  string `json:"backend"`
	Database string `json:"database"`
}

// Config is the persisted project configuration
type Config struct {
	Version      string    `json:"version"`
	Initialized  time.Time `json:"initialized"`
	TechStack    TechStack `json:"tech_stack"`
	ActiveAgents []string  `json:"active_agents"`
}

// New builds a project configuration from a detection result. The
// active agent set starts from the baseline, appends every persona the
// detection triggered and deduplicates preserving first occurrence.
func New(version string, result detect.Result) *Config {
	return &Config{
		Version:     version,
		Initialized: time.Now().UTC(),
		TechStack: TechStack{
			Frontend: strings.Join(result.Frontend, " "),
			Backend:  strings.Join(result.Backend, " "),
			Database: strings.Join(result.Database, " "),
		},
		ActiveAgents: ActiveAgents(result.Agents),
	}
}

// ActiveAgents finalizes the persona set: baseline first, then detected
// personas, deduplicated in first-occurrence order.
func ActiveAgents(detected []string) []string {
	seen := make(map[string]bool, len(BaselineAgents)+len(detected))
	agents := make([]string, 0, len(BaselineAgents)+len(detected))

	for _, a := range BaselineAgents {
		if !seen[a] {
			seen[a] = true
			agents = append(agents, a)
		}
	}
	for _, a := range detected {
		if !seen[a] {
			seen[a] = true
			agents = append(agents, a)
		}
	}
	return agents
}

// Exists reports whether a project configuration exists at path
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Load reads a project configuration from path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.ErrLoadProject(err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, apperrors.ErrLoadProject(err)
	}
	return &cfg, nil
}

// Save writes the configuration to path as indented UTF-8 JSON.
// A write failure is the one fatal error of the dispatcher.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return apperrors.ErrWriteProject(err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return apperrors.ErrWriteProject(err)
	}
	return nil
}
