package core

import (
	"sync"

	"github.com/padlint/padlint/pkg/syntax"
)

// Parser handles parsing of source files
type Parser struct {
	// Cache for parsed files
	cache   map[string]*syntax.Tree
	cacheMu sync.RWMutex
}

// NewParser creates a new parser
func NewParser() *Parser {
	return &Parser{
		cache: make(map[string]*syntax.Tree),
	}
}

// ParseFile parses a JS/TS file into its token stream and construct tree
func (p *Parser) ParseFile(path string, content []byte) *syntax.Tree {
	// Check cache
	p.cacheMu.RLock()
	if cached, ok := p.cache[path]; ok {
		p.cacheMu.RUnlock()
		return cached
	}
	p.cacheMu.RUnlock()

	tree := syntax.Parse(content)

	p.cacheMu.Lock()
	p.cache[path] = tree
	p.cacheMu.Unlock()

	return tree
}

// ClearCache clears the parser cache
func (p *Parser) ClearCache() {
	p.cacheMu.Lock()
	p.cache = make(map[string]*syntax.Tree)
	p.cacheMu.Unlock()
}

// CacheSize returns the number of cached files
func (p *Parser) CacheSize() int {
	p.cacheMu.RLock()
	defer p.cacheMu.RUnlock()
	return len(p.cache)
}
