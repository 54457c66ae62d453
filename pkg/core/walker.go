package core

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Walker traverses files in a project and parses them concurrently
type Walker struct {
	projectRoot string
	config      *Config
	parser      *Parser

	workers int

	// Statistics
	stats WalkerStats
	mu    sync.Mutex
}

// WalkerStats contains statistics about the walk
type WalkerStats struct {
	TotalFiles   int
	ParsedFiles  int
	SkippedFiles int
	ErrorFiles   int
}

// NewWalker creates a new file walker
func NewWalker(projectRoot string, config *Config) *Walker {
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}

	return &Walker{
		projectRoot: projectRoot,
		config:      config,
		parser:      NewParser(),
		workers:     workers,
	}
}

// WithWorkers sets the number of parse goroutines
func (w *Walker) WithWorkers(n int) *Walker {
	if n > 0 {
		w.workers = n
	}
	return w
}

// WalkSync discovers and parses all analyzable files, returning their
// contexts in path order
func (w *Walker) WalkSync() ([]*FileContext, []error) {
	paths := w.discover()

	var (
		contexts []*FileContext
		errors   []error
	)

	var g errgroup.Group
	g.SetLimit(w.workers)

	for _, path := range paths {
		path := path
		g.Go(func() error {
			ctx, err := w.processFile(path)

			w.mu.Lock()
			defer w.mu.Unlock()
			if err != nil {
				w.stats.ErrorFiles++
				errors = append(errors, err)
				return nil
			}
			w.stats.ParsedFiles++
			contexts = append(contexts, ctx)
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(contexts, func(i, j int) bool {
		return contexts[i].Path < contexts[j].Path
	})

	return contexts, errors
}

// discover collects the paths of all files to analyze
func (w *Walker) discover() []string {
	var paths []string

	_ = filepath.Walk(w.projectRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip files with errors
		}

		if info.IsDir() {
			if w.shouldSkipDir(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !w.isAnalyzableFile(path) {
			return nil
		}

		relPath, _ := filepath.Rel(w.projectRoot, path)
		if w.config.ShouldExclude(relPath) {
			w.stats.SkippedFiles++
			return nil
		}

		w.stats.TotalFiles++
		paths = append(paths, path)
		return nil
	})

	return paths
}

// processFile reads and parses a single file
func (w *Walker) processFile(path string) (*FileContext, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	ctx := NewFileContext(path, w.projectRoot, content, w.config)
	ctx.SetTree(w.parser.ParseFile(path, content))

	return ctx, nil
}

// shouldSkipDir returns true if directory should be skipped entirely
func (w *Walker) shouldSkipDir(name string) bool {
	skipDirs := []string{
		".git",
		".svn",
		".hg",
		"node_modules",
		"vendor",
		".next",
		"out",
		"dist",
		"build",
		"coverage",
		".idea",
		".vscode",
	}

	for _, skip := range skipDirs {
		if name == skip {
			return true
		}
	}

	return false
}

// isAnalyzableFile returns true if file should be analyzed
func (w *Walker) isAnalyzableFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))

	analyzableExtensions := []string{
		".js", ".jsx",
		".ts", ".tsx",
		".mjs", ".cjs",
	}

	for _, e := range analyzableExtensions {
		if ext == e {
			return true
		}
	}

	return false
}

// Stats returns the current walker statistics
func (w *Walker) Stats() WalkerStats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}
