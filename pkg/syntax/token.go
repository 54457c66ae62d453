package syntax

// TokenKind identifies the lexical class of a token
type TokenKind int

const (
	TokenIdent TokenKind = iota
	TokenKeyword
	TokenNumber
	TokenString
	TokenTemplate
	TokenRegex
	TokenPunct
	TokenComment
)

// String returns the string representation of the token kind
func (k TokenKind) String() string {
	switch k {
	case TokenIdent:
		return "ident"
	case TokenKeyword:
		return "keyword"
	case TokenNumber:
		return "number"
	case TokenString:
		return "string"
	case TokenTemplate:
		return "template"
	case TokenRegex:
		return "regex"
	case TokenPunct:
		return "punct"
	case TokenComment:
		return "comment"
	default:
		return "unknown"
	}
}

// Token is a single lexical token with full positional metadata.
// Lines and columns are 1-based; Start/End are byte offsets with End
// exclusive. Index is the token's position in the file's token stream,
// comments included.
type Token struct {
	Kind  TokenKind
	Text  string
	Index int

	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int

	Start int
	End   int
}

// IsComment reports whether the token is a line or block comment
func (t *Token) IsComment() bool {
	return t.Kind == TokenComment
}

// IsPunct reports whether the token is the given punctuator
func (t *Token) IsPunct(text string) bool {
	return t.Kind == TokenPunct && t.Text == text
}

// IsKeyword reports whether the token is the given keyword
func (t *Token) IsKeyword(text string) bool {
	return t.Kind == TokenKeyword && t.Text == text
}

// keywords that the construct builder cares about; everything else
// scans as an identifier ("of" is contextual and stays an identifier)
var keywords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true,
	"const": true, "continue": true, "default": true, "delete": true,
	"do": true, "else": true, "export": true, "extends": true,
	"finally": true, "for": true, "function": true, "if": true,
	"implements": true, "import": true, "in": true, "instanceof": true,
	"interface": true, "let": true, "new": true, "return": true,
	"static": true, "super": true, "switch": true, "this": true,
	"throw": true, "try": true, "typeof": true, "var": true,
	"void": true, "while": true, "yield": true,
}
