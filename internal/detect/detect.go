// Package detect infers a project's tech stack by pattern-matching
// well-known manifest files. Detection is data-driven: ordered rule
// tables map substrings (or file presence) to a technology label, a
// category and an agent persona. Rules are independent except the
// frontend-framework table, which is first-match-wins since a project
// declares at most one primary frontend framework.
package detect

import (
	"os"
	"path/filepath"
	"strings"
)

// Agent personas activated by detection
const (
	AgentFrontend = "frontend-specialist"
	AgentBackend  = "backend-specialist"
	AgentDatabase = "database-architect"
)

// Category is the tech-stack slot a rule contributes to
type Category int

const (
	Frontend Category = iota
	Backend
	Database
)

// Result holds the detected stack and the personas it activates.
// Labels within a category are deduplicated, first occurrence wins.
// Agents may contain duplicates; callers deduplicate on persistence.
type Result struct {
	Frontend []string
	Backend  []string
	Database []string
	Agents   []string
}

// contentRule matches when any of its substrings occurs in a manifest's
// raw text
type contentRule struct {
	substrings []string
	label      string
	category   Category
	agent      string
}

// presenceRule matches when a file exists under the project root
type presenceRule struct {
	paths    []string
	label    string
	category Category
	agent    string
}

// frontendFrameworks is evaluated in order with early termination:
// the first matching framework is the project's frontend framework.
var frontendFrameworks = []contentRule{
	{[]string{`"next"`}, "Next.js", Frontend, AgentFrontend},
	{[]string{`"react"`}, "React", Frontend, AgentFrontend},
	{[]string{`"vue"`}, "Vue", Frontend, AgentFrontend},
	{[]string{`"svelte"`}, "Svelte", Frontend, AgentFrontend},
}

// packageRules are independent rules over package.json content
var packageRules = []contentRule{
	{[]string{`"tailwindcss"`}, "Tailwind", Frontend, AgentFrontend},
	{[]string{`"typescript"`}, "TypeScript", Frontend, AgentFrontend},
	{[]string{`"express"`, `"fastify"`, `"@nestjs/core"`}, "Node.js", Backend, AgentBackend},
	{[]string{`"prisma"`, `"@prisma/client"`}, "Prisma", Database, AgentDatabase},
	{[]string{`"mongoose"`, `"mongodb"`}, "MongoDB", Database, AgentDatabase},
}

// composerRules are independent rules over composer.json content.
// The PHP fallback is handled separately in Detect.
var composerRules = []contentRule{
	{[]string{`"laravel/framework"`}, "Laravel", Backend, AgentBackend},
	{[]string{`"livewire/livewire"`}, "Livewire", Frontend, AgentFrontend},
	{[]string{`"filament/filament"`}, "Filament", Frontend, AgentFrontend},
}

// presenceRules match on file existence alone
var presenceRules = []presenceRule{
	{[]string{"requirements.txt", "pyproject.toml"}, "Python", Backend, AgentBackend},
	{[]string{"go.mod"}, "Go", Backend, AgentBackend},
	{[]string{"Cargo.toml"}, "Rust", Backend, AgentBackend},
	{[]string{filepath.Join("prisma", "schema.prisma")}, "Prisma", Database, AgentDatabase},
	{[]string{"drizzle.config.ts"}, "Drizzle", Database, AgentDatabase},
}

// Detect scans the project root's manifest files and returns the
// detected stack. Missing or unreadable manifests simply don't match.
func Detect(projectRoot string) Result {
	var r Result

	if content, ok := readManifest(projectRoot, "package.json"); ok {
		for _, rule := range frontendFrameworks {
			if rule.matches(content) {
				r.add(rule.category, rule.label, rule.agent)
				break
			}
		}
		for _, rule := range packageRules {
			if rule.matches(content) {
				r.add(rule.category, rule.label, rule.agent)
			}
		}
	}

	if content, ok := readManifest(projectRoot, "composer.json"); ok {
		matched := false
		for _, rule := range composerRules {
			if rule.matches(content) {
				r.add(rule.category, rule.label, rule.agent)
				if rule.category == Backend {
					matched = true
				}
			}
		}
		// A composer project with no recognized framework is still PHP
		if !matched {
			r.add(Backend, "PHP", AgentBackend)
		}
	}

	for _, rule := range presenceRules {
		for _, p := range rule.paths {
			if fileExists(filepath.Join(projectRoot, p)) {
				r.add(rule.category, rule.label, rule.agent)
				break
			}
		}
	}

	return r
}

func (r *contentRule) matches(content string) bool {
	for _, s := range r.substrings {
		if strings.Contains(content, s) {
			return true
		}
	}
	return false
}

// add appends a label to its category, skipping labels already present,
// and records the rule's persona
func (r *Result) add(category Category, label, agent string) {
	target := &r.Frontend
	switch category {
	case Backend:
		target = &r.Backend
	case Database:
		target = &r.Database
	}

	for _, existing := range *target {
		if existing == label {
			r.Agents = append(r.Agents, agent)
			return
		}
	}
	*target = append(*target, label)
	r.Agents = append(r.Agents, agent)
}

func readManifest(root, name string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(root, name))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
