package syntax

// NodeKind identifies the syntactic shape of a node. The first five are
// delimited constructs that appear in Tree.Nodes; the rest are owner
// shapes that only ever occur as the Parent of a statement block.
type NodeKind int

const (
	NodeStatementBlock NodeKind = iota
	NodeObjectLiteral
	NodeSwitchStatement
	NodeClassBody
	NodeInterfaceBody

	NodeIfStatement
	NodeForStatement
	NodeForInStatement
	NodeForOfStatement
	NodeWhileStatement
	NodeDoWhileStatement
	NodeFunctionDeclaration
	NodeFunctionExpression
	NodeArrowFunction
	NodeTryStatement
	NodeCatchClause

	NodeProgram
)

// String returns the string representation of the node kind
func (k NodeKind) String() string {
	switch k {
	case NodeStatementBlock:
		return "statement-block"
	case NodeObjectLiteral:
		return "object-literal"
	case NodeSwitchStatement:
		return "switch-statement"
	case NodeClassBody:
		return "class-body"
	case NodeInterfaceBody:
		return "interface-body"
	case NodeIfStatement:
		return "if-statement"
	case NodeForStatement:
		return "for-statement"
	case NodeForInStatement:
		return "for-in-statement"
	case NodeForOfStatement:
		return "for-of-statement"
	case NodeWhileStatement:
		return "while-statement"
	case NodeDoWhileStatement:
		return "do-while-statement"
	case NodeFunctionDeclaration:
		return "function-declaration"
	case NodeFunctionExpression:
		return "function-expression"
	case NodeArrowFunction:
		return "arrow-function"
	case NodeTryStatement:
		return "try-statement"
	case NodeCatchClause:
		return "catch-clause"
	case NodeProgram:
		return "program"
	default:
		return "unknown"
	}
}

// Node is a delimited construct (or, for parent links of statement
// blocks, the lightweight owner statement). First/Last span the whole
// node in token indices; Open/Close are the delimiter tokens. For a
// switch statement First is the switch keyword while Open is the body
// brace, and FirstCase is the first case/default keyword (-1 if none).
type Node struct {
	Kind   NodeKind
	Parent *Node

	First int
	Last  int
	Open  int
	Close int

	FirstCase int

	hasContent bool
}

// HasContent reports whether the construct has checkable content: at
// least one non-comment token inside its delimiters, or for a switch
// body at least one case clause. Comment-only bodies count as empty.
func (n *Node) HasContent() bool {
	if n.Kind == NodeSwitchStatement {
		return n.FirstCase >= 0
	}
	return n.hasContent
}

// Tree is the parsed form of one source file: the full token stream
// (comments included) plus every delimited construct in source order.
type Tree struct {
	Source []byte
	Tokens []Token
	Nodes  []*Node
}

// Token returns the token at index i, or nil when out of range
func (t *Tree) Token(i int) *Token {
	if i < 0 || i >= len(t.Tokens) {
		return nil
	}
	return &t.Tokens[i]
}

// TokenBefore returns the token immediately preceding index i,
// optionally skipping comments
func (t *Tree) TokenBefore(i int, includeComments bool) *Token {
	for j := i - 1; j >= 0; j-- {
		if includeComments || !t.Tokens[j].IsComment() {
			return &t.Tokens[j]
		}
	}
	return nil
}

// TokenAfter returns the token immediately following index i,
// optionally skipping comments
func (t *Tree) TokenAfter(i int, includeComments bool) *Token {
	for j := i + 1; j < len(t.Tokens); j++ {
		if includeComments || !t.Tokens[j].IsComment() {
			return &t.Tokens[j]
		}
	}
	return nil
}

// parenFrame tracks one open parenthesis group and the loop-header
// markers needed to tell for / for-in / for-of apart
type parenFrame struct {
	kwIdx   int // significant token before the ( , -1 if none
	hasSemi bool
	hasIn   bool
	hasOf   bool
}

// pendingBody marks a class/interface keyword waiting for its body
// brace at the same paren depth
type pendingBody struct {
	parens int
}

type treeBuilder struct {
	tokens []Token

	stack  []*Node
	nodes  []*Node
	owners []*Node

	parens       []parenFrame
	closedParens map[int]parenFrame

	pendingClass     *pendingBody
	pendingInterface *pendingBody

	prevSig int // index of last non-comment token, -1 initially
}

// Parse tokenizes src and builds its construct tree. Parsing is
// structural and tolerant: unbalanced delimiters never fail, they just
// truncate the affected constructs at end of file.
func Parse(src []byte) *Tree {
	tokens := Scan(src)
	b := &treeBuilder{
		tokens:       tokens,
		closedParens: make(map[int]parenFrame),
		prevSig:      -1,
	}

	root := &Node{Kind: NodeProgram, FirstCase: -1}
	b.stack = []*Node{root}

	for i := range tokens {
		b.visit(i)
	}

	// unterminated constructs close at EOF
	for len(b.stack) > 1 {
		n := b.pop()
		n.Close = len(tokens) - 1
		n.Last = len(tokens) - 1
	}

	return &Tree{Source: src, Tokens: tokens, Nodes: b.nodes}
}

func (b *treeBuilder) top() *Node {
	return b.stack[len(b.stack)-1]
}

func (b *treeBuilder) pop() *Node {
	n := b.top()
	b.stack = b.stack[:len(b.stack)-1]
	return n
}

func (b *treeBuilder) visit(i int) {
	tok := &b.tokens[i]
	if tok.IsComment() {
		return
	}

	switch {
	case tok.IsPunct("("):
		b.parens = append(b.parens, parenFrame{kwIdx: b.prevSig})
	case tok.IsPunct(")"):
		if len(b.parens) > 0 {
			frame := b.parens[len(b.parens)-1]
			b.parens = b.parens[:len(b.parens)-1]
			b.closedParens[i] = frame
		}
	case tok.IsPunct(";"):
		if len(b.parens) == 0 {
			b.pendingClass = nil
			b.pendingInterface = nil
		} else {
			b.parens[len(b.parens)-1].hasSemi = true
		}
	case tok.IsKeyword("in"):
		if len(b.parens) > 0 && !b.parens[len(b.parens)-1].hasSemi {
			b.parens[len(b.parens)-1].hasIn = true
		}
	case tok.Kind == TokenIdent && tok.Text == "of":
		if len(b.parens) > 0 && !b.parens[len(b.parens)-1].hasSemi {
			b.parens[len(b.parens)-1].hasOf = true
		}
	case tok.IsKeyword("class") && !b.afterDot():
		b.pendingClass = &pendingBody{parens: len(b.parens)}
	case tok.IsKeyword("interface") && !b.afterDot():
		b.pendingInterface = &pendingBody{parens: len(b.parens)}
	case tok.IsKeyword("case") || tok.IsKeyword("default"):
		b.markCase(i)
	case tok.IsPunct("{"):
		b.openConstruct(i)
		b.prevSig = i
		return
	case tok.IsPunct("}"):
		if len(b.stack) > 1 {
			n := b.pop()
			n.Close = i
			n.Last = i
		}
		b.prevSig = i
		return
	}

	b.top().hasContent = true
	b.prevSig = i
}

// afterDot reports whether the previous significant token is a member
// access, which turns keywords into plain property names
func (b *treeBuilder) afterDot() bool {
	if b.prevSig < 0 {
		return false
	}
	p := &b.tokens[b.prevSig]
	return p.IsPunct(".") || p.IsPunct("?.")
}

func (b *treeBuilder) markCase(i int) {
	top := b.top()
	if top.Kind != NodeSwitchStatement || len(b.parens) > 0 {
		return
	}
	if b.tokens[i].IsKeyword("default") && b.prevSig >= 0 && b.tokens[b.prevSig].IsKeyword("export") {
		return
	}
	if top.FirstCase < 0 {
		top.FirstCase = i
	}
}

// openConstruct classifies the brace at index i and pushes the node
func (b *treeBuilder) openConstruct(i int) {
	// the brace itself is content of the enclosing construct
	b.top().hasContent = true

	node := &Node{First: i, Open: i, FirstCase: -1, Parent: b.top()}
	node.Kind = b.classifyBrace(i, node)
	b.nodes = append(b.nodes, node)
	b.stack = append(b.stack, node)
}

// classifyBrace decides what construct an opening brace starts, from
// the significant tokens before it. May rewrite node.First (switch) or
// node.Parent (statement blocks gain an owner node).
func (b *treeBuilder) classifyBrace(i int, node *Node) NodeKind {
	if b.pendingClass != nil && b.pendingClass.parens == len(b.parens) {
		b.pendingClass = nil
		return NodeClassBody
	}
	if b.pendingInterface != nil && b.pendingInterface.parens == len(b.parens) {
		b.pendingInterface = nil
		return NodeInterfaceBody
	}

	if b.prevSig < 0 {
		return NodeStatementBlock
	}
	prev := &b.tokens[b.prevSig]

	switch prev.Kind {
	case TokenKeyword:
		switch prev.Text {
		case "do":
			return b.blockWithOwner(node, NodeDoWhileStatement, b.prevSig)
		case "else":
			return b.blockWithOwner(node, NodeIfStatement, b.prevSig)
		case "try", "finally":
			return b.blockWithOwner(node, NodeTryStatement, b.prevSig)
		case "return", "case", "in", "typeof", "delete", "void", "new",
			"throw", "yield", "default", "instanceof", "extends":
			return NodeObjectLiteral
		}
		return NodeStatementBlock

	case TokenPunct:
		switch prev.Text {
		case "=>":
			return b.blockWithOwner(node, NodeArrowFunction, b.prevSig)
		case ")":
			return b.classifyAfterParens(b.prevSig, node)
		case ":":
			return b.classifyAfterColon(b.prevSig)
		case "]", "}", ";", "{", "++", "--":
			return NodeStatementBlock
		}
		// any other punctuator puts the brace in expression position
		return NodeObjectLiteral

	default:
		// identifier or type-ish tail: possibly a TS return-type
		// annotation between a parameter list and the body brace
		if kind, ok := b.classifyTypedBody(node); ok {
			return kind
		}
		return NodeStatementBlock
	}
}

func (b *treeBuilder) blockWithOwner(node *Node, owner NodeKind, ownerTok int) NodeKind {
	node.Parent = &Node{Kind: owner, Parent: node.Parent, First: ownerTok, Last: ownerTok, FirstCase: -1}
	return NodeStatementBlock
}

// classifyAfterParens handles `) {` by inspecting the token that
// preceded the matching open parenthesis
func (b *treeBuilder) classifyAfterParens(closeIdx int, node *Node) NodeKind {
	frame, ok := b.closedParens[closeIdx]
	if !ok {
		return NodeStatementBlock
	}

	kwIdx := frame.kwIdx
	// `for await (... of ...)`
	if kwIdx >= 0 && b.tokens[kwIdx].Kind == TokenIdent && b.tokens[kwIdx].Text == "await" {
		kwIdx = b.sigBefore(kwIdx)
	}
	if kwIdx < 0 {
		return NodeStatementBlock
	}
	kw := &b.tokens[kwIdx]

	if kw.Kind == TokenKeyword {
		switch kw.Text {
		case "if":
			return b.blockWithOwner(node, NodeIfStatement, kwIdx)
		case "for":
			owner := NodeForStatement
			if !frame.hasSemi {
				if frame.hasIn {
					owner = NodeForInStatement
				} else if frame.hasOf {
					owner = NodeForOfStatement
				}
			}
			return b.blockWithOwner(node, owner, kwIdx)
		case "while":
			return b.blockWithOwner(node, NodeWhileStatement, kwIdx)
		case "catch":
			return b.blockWithOwner(node, NodeCatchClause, kwIdx)
		case "switch":
			node.First = kwIdx
			return NodeSwitchStatement
		case "function":
			return b.classifyFunction(node, kwIdx)
		}
		return NodeStatementBlock
	}

	// named function, method shorthand, or computed member name
	if kw.Kind == TokenIdent || kw.IsPunct("]") || kw.IsPunct(">") {
		j := b.sigBefore(kwIdx)
		if j >= 0 && b.tokens[j].IsPunct("*") {
			j = b.sigBefore(j)
		}
		if j >= 0 && b.tokens[j].IsKeyword("function") {
			return b.classifyFunction(node, j)
		}
		// no function keyword: a method or accessor body
		return b.blockWithOwner(node, NodeFunctionExpression, kwIdx)
	}

	return NodeStatementBlock
}

// classifyFunction tells a declaration from an expression by whether
// the function keyword sits in expression position
func (b *treeBuilder) classifyFunction(node *Node, fnIdx int) NodeKind {
	j := b.sigBefore(fnIdx)
	if j >= 0 && b.tokens[j].Kind == TokenIdent && b.tokens[j].Text == "async" {
		j = b.sigBefore(j)
	}

	owner := NodeFunctionDeclaration
	if j >= 0 {
		p := &b.tokens[j]
		switch {
		case p.Kind == TokenPunct && p.Text != ")" && p.Text != "]" &&
			p.Text != "}" && p.Text != ";" && p.Text != "{":
			owner = NodeFunctionExpression
		case p.Kind == TokenKeyword:
			switch p.Text {
			case "return", "typeof", "new", "in", "case", "delete",
				"void", "throw", "yield", "default", "instanceof":
				owner = NodeFunctionExpression
			}
		}
	}
	return b.blockWithOwner(node, owner, fnIdx)
}

// classifyAfterColon separates case/default labels and statement labels
// from object-property and ternary positions
func (b *treeBuilder) classifyAfterColon(colonIdx int) NodeKind {
	// `case x:` / `default:` directly inside a switch body
	if b.top().Kind == NodeSwitchStatement {
		return NodeStatementBlock
	}

	// `label: {` at statement position; a `{` before the label name is
	// only a statement context when the enclosing brace is not itself
	// an object literal
	j := b.sigBefore(colonIdx)
	if j >= 0 && b.tokens[j].Kind == TokenIdent {
		k := b.sigBefore(j)
		if k < 0 {
			return NodeStatementBlock
		}
		p := &b.tokens[k]
		if p.IsPunct(";") || p.IsPunct("}") {
			return NodeStatementBlock
		}
		if p.IsPunct("{") && b.top().Kind != NodeObjectLiteral {
			return NodeStatementBlock
		}
	}

	return NodeObjectLiteral
}

// classifyTypedBody handles TS `): ReturnType {` bodies: walk back over
// the type tokens to the annotation colon and classify via the
// parameter list before it
func (b *treeBuilder) classifyTypedBody(node *Node) (NodeKind, bool) {
	j := b.prevSig
	for j >= 0 {
		t := &b.tokens[j]
		if t.IsPunct(":") {
			k := b.sigBefore(j)
			if k >= 0 && b.tokens[k].IsPunct(")") {
				return b.classifyAfterParens(k, node), true
			}
			return 0, false
		}
		if !isTypeToken(t) {
			return 0, false
		}
		j = b.sigBefore(j)
	}
	return 0, false
}

func isTypeToken(t *Token) bool {
	switch t.Kind {
	case TokenIdent, TokenNumber, TokenString:
		return true
	case TokenKeyword:
		return t.Text == "void" || t.Text == "typeof" || t.Text == "new" || t.Text == "this"
	case TokenPunct:
		switch t.Text {
		case ".", ",", "<", ">", "[", "]", "|", "&", "?", "=>", "(", ")":
			return true
		}
	}
	return false
}

// sigBefore returns the index of the last non-comment token before i,
// or -1
func (b *treeBuilder) sigBefore(i int) int {
	for j := i - 1; j >= 0; j-- {
		if !b.tokens[j].IsComment() {
			return j
		}
	}
	return -1
}
