// Package catalog enumerates the workspace catalog: agent personas and
// workflows are Markdown files, skills are directories containing a
// SKILL.md. Entries are filesystem-derived at request time and never
// persisted. A missing catalog directory yields an empty listing, not
// an error.
package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/antigravity-core/antigravity/internal/jsonutil"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

const (
	entryExt           = ".md"
	skillFileName      = "SKILL.md"
	deprecatedFileName = "DEPRECATED.md"
)

// Kind identifies the catalog an entry belongs to
type Kind string

const (
	KindAgent    Kind = "agent"
	KindSkill    Kind = "skill"
	KindWorkflow Kind = "workflow"
)

// Entry is a single catalog entry
type Entry struct {
	Name        string
	Kind        Kind
	Deprecated  bool     // skills only, from the DEPRECATED.md sentinel
	Description string   // from YAML frontmatter, best effort
	Tags        []string // from YAML frontmatter, best effort
}

// Catalog lists entries from the workspace directories
type Catalog struct {
	agentsDir    string
	skillsDir    string
	workflowsDir string
}

// New creates a catalog over the given workspace directories
func New(agentsDir, skillsDir, workflowsDir string) *Catalog {
	return &Catalog{
		agentsDir:    agentsDir,
		skillsDir:    skillsDir,
		workflowsDir: workflowsDir,
	}
}

// Agents lists the agent persona files
func (c *Catalog) Agents() ([]Entry, error) {
	return listMarkdown(c.agentsDir, KindAgent)
}

// Workflows lists the workflow files
func (c *Catalog) Workflows() ([]Entry, error) {
	return listMarkdown(c.workflowsDir, KindWorkflow)
}

// Skills lists the skill directories. A skill is deprecated when a
// DEPRECATED.md sentinel file exists inside its directory.
func (c *Catalog) Skills() ([]Entry, error) {
	dirents, err := os.ReadDir(c.skillsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		if !d.IsDir() {
			continue
		}

		skillDir := filepath.Join(c.skillsDir, d.Name())
		entry := Entry{
			Name: d.Name(),
			Kind: KindSkill,
		}

		if _, err := os.Stat(filepath.Join(skillDir, deprecatedFileName)); err == nil {
			entry.Deprecated = true
		}

		if m := readFrontmatter(filepath.Join(skillDir, skillFileName)); m != nil {
			entry.Description = jsonutil.GetString(m, "description")
			entry.Tags = jsonutil.GetStringSlice(m, "tags")
		}

		entries = append(entries, entry)
	}
	return entries, nil
}

// listMarkdown lists *.md files directly in dir, no recursion
func listMarkdown(dir string, kind Kind) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		if d.IsDir() || !strings.HasSuffix(d.Name(), entryExt) {
			continue
		}

		entry := Entry{
			Name: strings.TrimSuffix(d.Name(), entryExt),
			Kind: kind,
		}

		if m := readFrontmatter(filepath.Join(dir, d.Name())); m != nil {
			entry.Description = jsonutil.GetString(m, "description")
			entry.Tags = jsonutil.GetStringSlice(m, "tags")
		}

		entries = append(entries, entry)
	}
	return entries, nil
}

// readFrontmatter parses the YAML frontmatter of a Markdown file.
// Any failure (missing file, invalid YAML) yields nil: descriptions
// are decoration, never a reason to fail a listing.
func readFrontmatter(path string) map[string]interface{} {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	md := goldmark.New(goldmark.WithExtensions(meta.Meta))
	ctx := parser.NewContext()

	var buf bytes.Buffer
	if err := md.Convert(source, &buf, parser.WithContext(ctx)); err != nil {
		return nil
	}

	return meta.Get(ctx)
}
