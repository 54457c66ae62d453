package syntax

// scanner tokenizes JavaScript/TypeScript source. It is deliberately
// tolerant: unterminated strings, comments, and templates consume the
// rest of the file instead of failing, so a malformed file still yields
// a usable token stream.
type scanner struct {
	src []byte
	pos int

	line int
	col  int

	tokens []Token

	// last non-comment token, used for regex-literal disambiguation
	prev *Token

	// template interpolation state: each entry is the brace depth at
	// which a `${` opened, so the matching `}` resumes the template
	templateStack []int
	braceDepth    int
}

// Scan tokenizes src into a comment-inclusive token stream
func Scan(src []byte) []Token {
	s := &scanner{src: src, line: 1, col: 1}
	s.run()

	for i := range s.tokens {
		s.tokens[i].Index = i
	}
	return s.tokens
}

// multi-character punctuators, longest first
var punctuators = []string{
	">>>=",
	"===", "!==", "**=", "<<=", ">>=", "...", "&&=", "||=", "??=", ">>>",
	"=>", "==", "!=", "<=", ">=", "&&", "||", "??", "?.", "**",
	"++", "--", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<", ">>",
}

func (s *scanner) run() {
	for s.pos < len(s.src) {
		c := s.src[s.pos]

		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			s.advance()
		case c == '/' && s.peek(1) == '/':
			s.scanLineComment()
		case c == '/' && s.peek(1) == '*':
			s.scanBlockComment()
		case c == '\'' || c == '"':
			s.scanString(c)
		case c == '`':
			s.scanTemplate()
		case c == '}' && len(s.templateStack) > 0 && s.templateStack[len(s.templateStack)-1] == s.braceDepth:
			// interpolation terminator, resume the template chunk
			s.templateStack = s.templateStack[:len(s.templateStack)-1]
			s.scanTemplate()
		case c >= '0' && c <= '9', c == '.' && s.peek(1) >= '0' && s.peek(1) <= '9':
			s.scanNumber()
		case isIdentStart(c):
			s.scanIdent()
		case c == '/' && s.regexAllowed():
			s.scanRegex()
		default:
			s.scanPunct()
		}
	}
}

func (s *scanner) peek(ahead int) byte {
	if s.pos+ahead >= len(s.src) {
		return 0
	}
	return s.src[s.pos+ahead]
}

func (s *scanner) advance() {
	if s.src[s.pos] == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.pos++
}

// mark remembers the current position for the token about to be scanned
func (s *scanner) mark() (pos, line, col int) {
	return s.pos, s.line, s.col
}

func (s *scanner) emit(kind TokenKind, start, startLine, startCol int) {
	tok := Token{
		Kind:      kind,
		Text:      string(s.src[start:s.pos]),
		StartLine: startLine,
		StartCol:  startCol,
		EndLine:   s.line,
		EndCol:    s.col,
		Start:     start,
		End:       s.pos,
	}
	s.tokens = append(s.tokens, tok)
	if kind != TokenComment {
		s.prev = &s.tokens[len(s.tokens)-1]
	}
}

func (s *scanner) scanLineComment() {
	start, line, col := s.mark()
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.advance()
	}
	s.emit(TokenComment, start, line, col)
}

func (s *scanner) scanBlockComment() {
	start, line, col := s.mark()
	s.advance() // /
	s.advance() // *
	for s.pos < len(s.src) {
		if s.src[s.pos] == '*' && s.peek(1) == '/' {
			s.advance()
			s.advance()
			break
		}
		s.advance()
	}
	s.emit(TokenComment, start, line, col)
}

func (s *scanner) scanString(quote byte) {
	start, line, col := s.mark()
	s.advance()
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if c == '\\' && s.pos+1 < len(s.src) {
			s.advance()
			s.advance()
			continue
		}
		if c == quote || c == '\n' {
			if c == quote {
				s.advance()
			}
			break
		}
		s.advance()
	}
	s.emit(TokenString, start, line, col)
}

// scanTemplate consumes one template chunk: from an opening backtick or
// a resuming `}` up to either the closing backtick or a `${` that opens
// an interpolation. Interpolation contents are scanned as regular tokens.
func (s *scanner) scanTemplate() {
	start, line, col := s.mark()
	s.advance() // ` or resuming }
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if c == '\\' && s.pos+1 < len(s.src) {
			s.advance()
			s.advance()
			continue
		}
		if c == '`' {
			s.advance()
			break
		}
		if c == '$' && s.peek(1) == '{' {
			s.advance()
			s.advance()
			s.templateStack = append(s.templateStack, s.braceDepth)
			break
		}
		s.advance()
	}
	s.emit(TokenTemplate, start, line, col)
}

func (s *scanner) scanNumber() {
	start, line, col := s.mark()
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if isIdentPart(c) || c == '.' {
			last := c
			s.advance()
			if (last == 'e' || last == 'E') && (s.peek(0) == '+' || s.peek(0) == '-') {
				s.advance()
			}
			continue
		}
		break
	}
	s.emit(TokenNumber, start, line, col)
}

func (s *scanner) scanIdent() {
	start, line, col := s.mark()
	for s.pos < len(s.src) && isIdentPart(s.src[s.pos]) {
		s.advance()
	}
	kind := TokenIdent
	if keywords[string(s.src[start:s.pos])] {
		kind = TokenKeyword
	}
	s.emit(kind, start, line, col)
}

// regexAllowed reports whether a `/` at the current position starts a
// regex literal rather than a division operator, judged by the last
// significant token
func (s *scanner) regexAllowed() bool {
	if s.prev == nil {
		return true
	}
	switch s.prev.Kind {
	case TokenIdent, TokenNumber, TokenString, TokenTemplate, TokenRegex:
		return false
	case TokenKeyword:
		return s.prev.Text != "this" && s.prev.Text != "super"
	case TokenPunct:
		switch s.prev.Text {
		case ")", "]", "}", "++", "--":
			return false
		}
		return true
	}
	return false
}

func (s *scanner) scanRegex() {
	// pre-scan without consuming: if no closing slash on this line,
	// fall back to a division punctuator
	end, ok := s.regexEnd()
	if !ok {
		s.scanPunct()
		return
	}
	start, line, col := s.mark()
	for s.pos < end {
		s.advance()
	}
	s.emit(TokenRegex, start, line, col)
}

func (s *scanner) regexEnd() (int, bool) {
	i := s.pos + 1
	inClass := false
	for i < len(s.src) {
		c := s.src[i]
		switch {
		case c == '\\':
			i++
		case c == '\n':
			return 0, false
		case c == '[':
			inClass = true
		case c == ']':
			inClass = false
		case c == '/' && !inClass:
			i++
			for i < len(s.src) && isIdentPart(s.src[i]) {
				i++
			}
			return i, true
		}
		i++
	}
	return 0, false
}

func (s *scanner) scanPunct() {
	start, line, col := s.mark()

	rest := s.src[s.pos:]
	for _, p := range punctuators {
		if len(rest) >= len(p) && string(rest[:len(p)]) == p {
			for range p {
				s.advance()
			}
			s.emit(TokenPunct, start, line, col)
			return
		}
	}

	switch s.src[s.pos] {
	case '{':
		s.braceDepth++
	case '}':
		s.braceDepth--
	}
	s.advance()
	s.emit(TokenPunct, start, line, col)
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
