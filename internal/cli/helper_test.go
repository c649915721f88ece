package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/antigravity-core/antigravity/internal/config"
)

// testConfig builds a config over a temp workspace: a project root with
// a .agent directory. Catalog subdirectories are created on demand by
// the individual tests.
func testConfig(t *testing.T) *config.Config {
	t.Helper()

	projectRoot := t.TempDir()
	agentRoot := filepath.Join(projectRoot, ".agent")
	if err := os.MkdirAll(agentRoot, 0755); err != nil {
		t.Fatalf("failed to create agent root: %v", err)
	}

	return &config.Config{
		AgentRoot:    agentRoot,
		AgentsDir:    filepath.Join(agentRoot, "agents"),
		SkillsDir:    filepath.Join(agentRoot, "skills"),
		WorkflowsDir: filepath.Join(agentRoot, "workflows"),
		ScriptsDir:   filepath.Join(agentRoot, "scripts"),
		VersionFile:  filepath.Join(agentRoot, "VERSION"),
		ProjectFile:  filepath.Join(agentRoot, "project.json"),
		ProjectRoot:  projectRoot,
	}
}

// swapConfig installs a test config and restores the original when the
// test finishes
func swapConfig(t *testing.T, c *config.Config) {
	t.Helper()
	original := cfg
	cfg = c
	t.Cleanup(func() { cfg = original })
}

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// what was written
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()
	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read captured output: %v", err)
	}
	return buf.String(), fnErr
}

func writeWorkspaceFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
