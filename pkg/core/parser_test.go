package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParser(t *testing.T) {
	p := NewParser()
	assert.NotNil(t, p)
	assert.Equal(t, 0, p.CacheSize())
}

func TestParserParseFile(t *testing.T) {
	p := NewParser()

	content := []byte("function greet() {\n  return 'hi';\n}\n")

	tree := p.ParseFile("app.js", content)
	require.NotNil(t, tree)
	assert.NotEmpty(t, tree.Tokens)
	assert.NotEmpty(t, tree.Nodes)
}

func TestParserCache(t *testing.T) {
	p := NewParser()

	content := []byte("const a = { b: 1 };\n")

	// First parse
	tree1 := p.ParseFile("app.js", content)
	assert.Equal(t, 1, p.CacheSize())

	// Second parse should hit cache
	tree2 := p.ParseFile("app.js", content)
	assert.Equal(t, 1, p.CacheSize())

	// Should return same cached object
	assert.Same(t, tree1, tree2)
}

func TestParserClearCache(t *testing.T) {
	p := NewParser()

	content := []byte("let x = 1;")
	_ = p.ParseFile("app.js", content)
	assert.Equal(t, 1, p.CacheSize())

	p.ClearCache()
	assert.Equal(t, 0, p.CacheSize())
}

func TestParserTolerantOnBrokenInput(t *testing.T) {
	p := NewParser()

	// Unbalanced braces still produce a tree
	content := []byte("if (a) { if (b) {\n")

	tree := p.ParseFile("broken.js", content)
	require.NotNil(t, tree)
	assert.NotEmpty(t, tree.Tokens)
}
