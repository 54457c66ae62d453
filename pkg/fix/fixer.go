package fix

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/padlint/padlint/pkg/core"
)

// Fixer interface for rules that support auto-fixing
type Fixer interface {
	// RuleName returns the rule this fixer is for
	RuleName() string

	// CanFix returns true if this fixer can fix the given violation
	CanFix(v *core.Violation) bool

	// GenerateFix returns the fix for a violation (nil if can't fix)
	GenerateFix(ctx *core.FileContext, v *core.Violation) *Fix
}

// Fix represents a single code fix: one byte-range edit in one file
type Fix struct {
	File      string        // File path
	Edit      core.TextEdit // The replacement to apply
	Message   string        // Description of the fix
	RuleName  string        // Rule that triggered this fix
	Violation *core.Violation
}

// FixResult represents the result of applying fixes to one file
type FixResult struct {
	File         string
	FixesApplied int
	Fixes        []*Fix
	Error        error
}

// Registry holds all registered fixers
type Registry struct {
	fixers map[string]Fixer
}

// DefaultRegistry is the global fixer registry
var DefaultRegistry = NewRegistry()

// NewRegistry creates a new fixer registry
func NewRegistry() *Registry {
	return &Registry{
		fixers: make(map[string]Fixer),
	}
}

// Register adds a fixer to the registry
func (r *Registry) Register(f Fixer) {
	r.fixers[f.RuleName()] = f
}

// Get returns a fixer for the given rule name
func (r *Registry) Get(ruleName string) (Fixer, bool) {
	f, ok := r.fixers[ruleName]
	return f, ok
}

// All returns all registered fixers
func (r *Registry) All() map[string]Fixer {
	return r.fixers
}

// Engine applies fixes to files
type Engine struct {
	registry *Registry
	dryRun   bool
	verbose  bool
}

// NewEngine creates a new fix engine
func NewEngine(registry *Registry, dryRun, verbose bool) *Engine {
	return &Engine{
		registry: registry,
		dryRun:   dryRun,
		verbose:  verbose,
	}
}

// CheckGitStatus checks for uncommitted changes
func (e *Engine) CheckGitStatus(projectRoot string) (bool, error) {
	cmd := exec.Command("git", "status", "--porcelain")
	cmd.Dir = projectRoot
	output, err := cmd.Output()
	if err != nil {
		// Not a git repo or git not available - skip check
		return false, nil
	}
	return len(strings.TrimSpace(string(output))) > 0, nil
}

// GenerateFixes generates fixes for violations without applying them
func (e *Engine) GenerateFixes(violations []*core.Violation, contexts map[string]*core.FileContext) []*Fix {
	var fixes []*Fix

	for _, v := range violations {
		fixer, ok := e.registry.Get(v.Rule)
		if !ok {
			continue
		}

		if !fixer.CanFix(v) {
			continue
		}

		ctx, ok := contexts[v.File]
		if !ok {
			continue
		}

		if fix := fixer.GenerateFix(ctx, v); fix != nil {
			fixes = append(fixes, fix)
		}
	}

	return fixes
}

// ApplyFixes applies fixes to files
func (e *Engine) ApplyFixes(fixes []*Fix) []FixResult {
	// Group fixes by file
	byFile := make(map[string][]*Fix)
	for _, fix := range fixes {
		byFile[fix.File] = append(byFile[fix.File], fix)
	}

	var results []FixResult

	for file, fileFixes := range byFile {
		result := e.applyToFile(file, fileFixes)
		results = append(results, result)
	}

	return results
}

// applyToFile applies a file's edits from the bottom up so earlier
// offsets stay valid. Overlapping edits are skipped, never merged.
func (e *Engine) applyToFile(file string, fixes []*Fix) FixResult {
	result := FixResult{
		File:  file,
		Fixes: fixes,
	}

	content, err := os.ReadFile(file)
	if err != nil {
		result.Error = fmt.Errorf("read file: %w", err)
		return result
	}

	sorted := make([]*Fix, len(fixes))
	copy(sorted, fixes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Edit.Start > sorted[j].Edit.Start
	})

	lastStart := len(content) + 1
	for _, fix := range sorted {
		edit := fix.Edit
		if edit.Start < 0 || edit.End > len(content) || edit.Start > edit.End {
			continue
		}
		if edit.End > lastStart {
			// overlaps a fix already applied below it
			continue
		}

		content = append(content[:edit.Start],
			append([]byte(edit.NewText), content[edit.End:]...)...)
		lastStart = edit.Start
		result.FixesApplied++
	}

	if e.dryRun {
		return result
	}

	if err := os.WriteFile(file, content, 0644); err != nil {
		result.Error = fmt.Errorf("write file: %w", err)
		return result
	}

	return result
}

// ApplyToSource applies a set of edits to source text without touching
// the filesystem. Used by tests and previews.
func ApplyToSource(src []byte, edits []core.TextEdit) []byte {
	sorted := make([]core.TextEdit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start > sorted[j].Start
	})

	out := append([]byte(nil), src...)
	lastStart := len(out) + 1
	for _, edit := range sorted {
		if edit.Start < 0 || edit.End > len(out) || edit.Start > edit.End || edit.End > lastStart {
			continue
		}
		out = append(out[:edit.Start],
			append([]byte(edit.NewText), out[edit.End:]...)...)
		lastStart = edit.Start
	}
	return out
}

// Preview formats fixes for display
func (e *Engine) Preview(fixes []*Fix) string {
	if len(fixes) == 0 {
		return "No fixes available.\n"
	}

	// Group by file
	byFile := make(map[string][]*Fix)
	for _, fix := range fixes {
		byFile[fix.File] = append(byFile[fix.File], fix)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("PROPOSED FIXES (%d changes in %d files):\n\n", len(fixes), len(byFile)))

	for file, fileFixes := range byFile {
		relPath := file
		if cwd, err := os.Getwd(); err == nil {
			if rel, err := filepath.Rel(cwd, file); err == nil {
				relPath = rel
			}
		}

		for _, fix := range fileFixes {
			line := 0
			if fix.Violation != nil {
				line = fix.Violation.Line
			}
			sb.WriteString(fmt.Sprintf("  %s:%d [%s]\n", relPath, line, fix.RuleName))
			sb.WriteString(fmt.Sprintf("    %s\n", fix.Message))
			sb.WriteString("\n")
		}
	}

	if e.dryRun {
		sb.WriteString("Run without --dry-run to apply changes.\n")
	}

	return sb.String()
}
