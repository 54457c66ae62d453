package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// significant filters out comments for assertions that only care about
// code tokens
func significant(tokens []Token) []Token {
	var out []Token
	for _, t := range tokens {
		if !t.IsComment() {
			out = append(out, t)
		}
	}
	return out
}

func texts(tokens []Token) []string {
	var out []string
	for _, t := range tokens {
		out = append(out, t.Text)
	}
	return out
}

func TestScanBasicTokens(t *testing.T) {
	tokens := Scan([]byte("let x = 42;"))

	require.Len(t, tokens, 5)
	assert.Equal(t, TokenKeyword, tokens[0].Kind)
	assert.Equal(t, "let", tokens[0].Text)
	assert.Equal(t, TokenIdent, tokens[1].Kind)
	assert.Equal(t, "x", tokens[1].Text)
	assert.Equal(t, TokenPunct, tokens[2].Kind)
	assert.Equal(t, "=", tokens[2].Text)
	assert.Equal(t, TokenNumber, tokens[3].Kind)
	assert.Equal(t, "42", tokens[3].Text)
	assert.Equal(t, TokenPunct, tokens[4].Kind)
	assert.Equal(t, ";", tokens[4].Text)
}

func TestScanPositions(t *testing.T) {
	tokens := Scan([]byte("a;\n  bb;"))

	require.Len(t, tokens, 4)

	a := tokens[0]
	assert.Equal(t, 1, a.StartLine)
	assert.Equal(t, 1, a.StartCol)
	assert.Equal(t, 0, a.Start)
	assert.Equal(t, 1, a.End)

	bb := tokens[2]
	assert.Equal(t, 2, bb.StartLine)
	assert.Equal(t, 3, bb.StartCol)
	assert.Equal(t, 2, bb.EndLine)
	assert.Equal(t, 5, bb.EndCol)
	assert.Equal(t, 5, bb.Start)
	assert.Equal(t, 7, bb.End)
}

func TestScanTokenIndexes(t *testing.T) {
	tokens := Scan([]byte("a // note\nb"))

	require.Len(t, tokens, 3)
	for i, tok := range tokens {
		assert.Equal(t, i, tok.Index)
	}
	assert.True(t, tokens[1].IsComment())
}

func TestScanComments(t *testing.T) {
	src := `// line comment
x; /* block
comment */ y;`
	tokens := Scan([]byte(src))

	require.Len(t, tokens, 6)
	assert.Equal(t, TokenComment, tokens[0].Kind)
	assert.Equal(t, "// line comment", tokens[0].Text)
	assert.Equal(t, TokenComment, tokens[3].Kind)
	assert.Equal(t, 2, tokens[3].StartLine)
	assert.Equal(t, 3, tokens[3].EndLine)
}

func TestScanStrings(t *testing.T) {
	tokens := Scan([]byte(`'a\'b' + "c"`))

	require.Len(t, tokens, 3)
	assert.Equal(t, TokenString, tokens[0].Kind)
	assert.Equal(t, `'a\'b'`, tokens[0].Text)
	assert.Equal(t, TokenString, tokens[2].Kind)
	assert.Equal(t, `"c"`, tokens[2].Text)
}

func TestScanMultiCharPunctuators(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{"a === b", []string{"a", "===", "b"}},
		{"a ?? b", []string{"a", "??", "b"}},
		{"a?.b", []string{"a", "?.", "b"}},
		{"x => y", []string{"x", "=>", "y"}},
		{"a >>>= b", []string{"a", ">>>=", "b"}},
		{"...rest", []string{"...", "rest"}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, texts(Scan([]byte(tt.src))))
		})
	}
}

func TestScanTemplateLiteral(t *testing.T) {
	tokens := Scan([]byte("`before ${name} after`"))

	require.Len(t, tokens, 3)
	assert.Equal(t, TokenTemplate, tokens[0].Kind)
	assert.Equal(t, "`before ${", tokens[0].Text)
	assert.Equal(t, TokenIdent, tokens[1].Kind)
	assert.Equal(t, "name", tokens[1].Text)
	assert.Equal(t, TokenTemplate, tokens[2].Kind)
	assert.Equal(t, "} after`", tokens[2].Text)
}

func TestScanNestedTemplateInterpolation(t *testing.T) {
	// braces inside the interpolation must not end it early
	tokens := Scan([]byte("`a${ {b: 1}.b }c`"))

	want := []string{"`a${", "{", "b", ":", "1", "}", ".", "b", "}c`"}
	assert.Equal(t, want, texts(tokens))
	assert.Equal(t, TokenTemplate, tokens[0].Kind)
	assert.Equal(t, TokenTemplate, tokens[len(tokens)-1].Kind)
}

func TestScanRegexLiteral(t *testing.T) {
	tokens := Scan([]byte("const re = /ab+c/gi;"))

	require.Len(t, tokens, 5)
	assert.Equal(t, TokenRegex, tokens[3].Kind)
	assert.Equal(t, "/ab+c/gi", tokens[3].Text)
}

func TestScanRegexWithCharClass(t *testing.T) {
	// the slash inside the character class must not end the regex
	tokens := Scan([]byte("x = /[a/b]/;"))

	require.Len(t, tokens, 4)
	assert.Equal(t, TokenRegex, tokens[2].Kind)
	assert.Equal(t, "/[a/b]/", tokens[2].Text)
}

func TestScanDivisionIsNotRegex(t *testing.T) {
	tests := []string{
		"a / b",
		"x = (a) / 2",
		"arr[0] / 2",
		"a++ / 2",
	}

	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			for _, tok := range Scan([]byte(src)) {
				assert.NotEqual(t, TokenRegex, tok.Kind, "token %q", tok.Text)
			}
		})
	}
}

func TestScanRegexAfterKeyword(t *testing.T) {
	tokens := Scan([]byte("return /x/;"))

	require.Len(t, tokens, 3)
	assert.Equal(t, TokenRegex, tokens[1].Kind)
}

func TestScanNumbers(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"42", "42"},
		{"3.14", "3.14"},
		{".5", ".5"},
		{"0xff", "0xff"},
		{"1e10", "1e10"},
		{"2.5e-3", "2.5e-3"},
		{"10_000", "10_000"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tokens := Scan([]byte(tt.src))
			require.NotEmpty(t, tokens)
			assert.Equal(t, TokenNumber, tokens[0].Kind)
			assert.Equal(t, tt.want, tokens[0].Text)
		})
	}
}

func TestScanKeywordsAndIdents(t *testing.T) {
	tokens := Scan([]byte("for (const k of items) {}"))

	sig := significant(tokens)
	require.Len(t, sig, 9)
	assert.Equal(t, TokenKeyword, sig[0].Kind) // for
	assert.Equal(t, TokenKeyword, sig[2].Kind) // const
	// "of" is contextual and stays an identifier
	assert.Equal(t, TokenIdent, sig[4].Kind)
	assert.Equal(t, "of", sig[4].Text)
}

func TestScanUnterminatedString(t *testing.T) {
	// unterminated string stops at the newline, scanning continues
	tokens := Scan([]byte("const s = 'oops\nnext();"))

	var kinds []TokenKind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Contains(t, kinds, TokenString)
	require.Len(t, tokens, 8)
	assert.Equal(t, "'oops", tokens[3].Text)
	assert.Equal(t, "next", tokens[4].Text)
}

func TestScanUnterminatedBlockComment(t *testing.T) {
	tokens := Scan([]byte("x /* never closed"))

	require.Len(t, tokens, 2)
	assert.Equal(t, TokenComment, tokens[1].Kind)
}
