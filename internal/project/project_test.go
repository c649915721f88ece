package project

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/antigravity-core/antigravity/internal/detect"
	apperrors "github.com/antigravity-core/antigravity/internal/errors"
)

func TestActiveAgents(t *testing.T) {
	tests := []struct {
		name     string
		detected []string
		want     []string
	}{
		{
			name:     "no detection keeps exactly the baseline",
			detected: nil,
			want:     []string{"security-auditor", "test-engineer"},
		},
		{
			name:     "detected personas append after the baseline",
			detected: []string{"frontend-specialist", "backend-specialist"},
			want:     []string{"security-auditor", "test-engineer", "frontend-specialist", "backend-specialist"},
		},
		{
			name:     "duplicates from multiple rules collapse",
			detected: []string{"frontend-specialist", "frontend-specialist", "database-architect", "frontend-specialist"},
			want:     []string{"security-auditor", "test-engineer", "frontend-specialist", "database-architect"},
		},
		{
			name:     "baseline personas are never duplicated",
			detected: []string{"test-engineer", "backend-specialist", "security-auditor"},
			want:     []string{"security-auditor", "test-engineer", "backend-specialist"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ActiveAgents(tt.detected)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ActiveAgents(%v) = %v, want %v", tt.detected, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	result := detect.Result{
		Frontend: []string{"Vue", "TypeScript"},
		Backend:  []string{"Go"},
		Agents:   []string{"frontend-specialist", "backend-specialist"},
	}

	before := time.Now().UTC()
	cfg := New("3.1.0", result)
	after := time.Now().UTC()

	if cfg.Version != "3.1.0" {
		t.Errorf("Version = %q, want %q", cfg.Version, "3.1.0")
	}
	if cfg.TechStack.Frontend != "Vue TypeScript" {
		t.Errorf("TechStack.Frontend = %q, want %q", cfg.TechStack.Frontend, "Vue TypeScript")
	}
	if cfg.TechStack.Backend != "Go" {
		t.Errorf("TechStack.Backend = %q, want %q", cfg.TechStack.Backend, "Go")
	}
	if cfg.TechStack.Database != "" {
		t.Errorf("TechStack.Database = %q, want empty", cfg.TechStack.Database)
	}
	want := []string{"security-auditor", "test-engineer", "frontend-specialist", "backend-specialist"}
	if !reflect.DeepEqual(cfg.ActiveAgents, want) {
		t.Errorf("ActiveAgents = %v, want %v", cfg.ActiveAgents, want)
	}
	if cfg.Initialized.Before(before) || cfg.Initialized.After(after) {
		t.Errorf("Initialized = %v, want within [%v, %v]", cfg.Initialized, before, after)
	}
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.json")

	original := New("1.0.0", detect.Result{
		Backend: []string{"Go"},
		Agents:  []string{"backend-specialist"},
	})
	if err := original.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.Version != original.Version {
		t.Errorf("loaded Version = %q, want %q", loaded.Version, original.Version)
	}
	if loaded.TechStack != original.TechStack {
		t.Errorf("loaded TechStack = %+v, want %+v", loaded.TechStack, original.TechStack)
	}
	if !reflect.DeepEqual(loaded.ActiveAgents, original.ActiveAgents) {
		t.Errorf("loaded ActiveAgents = %v, want %v", loaded.ActiveAgents, original.ActiveAgents)
	}
	if !loaded.Initialized.Equal(original.Initialized) {
		t.Errorf("loaded Initialized = %v, want %v", loaded.Initialized, original.Initialized)
	}
}

func TestSave_ReplacesNotMerges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.json")

	first := New("1.0.0", detect.Result{
		Frontend: []string{"React"},
		Agents:   []string{"frontend-specialist"},
	})
	if err := first.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	second := New("1.0.0", detect.Result{
		Backend: []string{"Go"},
		Agents:  []string{"backend-specialist"},
	})
	if err := second.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.TechStack.Frontend != "" {
		t.Errorf("Frontend = %q after replace, want empty", loaded.TechStack.Frontend)
	}
	if loaded.TechStack.Backend != "Go" {
		t.Errorf("Backend = %q after replace, want %q", loaded.TechStack.Backend, "Go")
	}
	for _, a := range loaded.ActiveAgents {
		if a == "frontend-specialist" {
			t.Errorf("ActiveAgents = %v still contains the replaced persona", loaded.ActiveAgents)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	if strings.Contains(string(data), "React") {
		t.Errorf("config file still mentions the replaced stack:\n%s", data)
	}
}

func TestSave_WriteFailureIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "project.json")

	cfg := New("1.0.0", detect.Result{})
	err := cfg.Save(path)
	if err == nil {
		t.Fatal("Save() into a missing directory should fail")
	}
	if !apperrors.IsFatal(err) {
		t.Errorf("Save() error = %v, want a fatal error", err)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project.json")

	if Exists(path) {
		t.Error("Exists() = true for a missing file")
	}

	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if !Exists(path) {
		t.Error("Exists() = false for an existing file")
	}

	if Exists(dir) {
		t.Error("Exists() = true for a directory")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "project.json"))
	if err == nil {
		t.Fatal("Load() on a missing file should fail")
	}
	if !apperrors.IsRecoverable(err) {
		t.Errorf("Load() error = %v, want a recoverable error", err)
	}
}
