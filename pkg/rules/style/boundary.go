package style

import (
	"github.com/padlint/padlint/pkg/syntax"
)

// boundaryTokens are the four tokens that frame a construct's logical
// content: the last token before it, the first and last content tokens,
// and the first token after. Comments attached to a delimiter (sharing
// its line) belong to the delimiter side, never to the content.
type boundaryTokens struct {
	before       *syntax.Token
	firstContent *syntax.Token
	lastContent  *syntax.Token
	after        *syntax.Token
}

// locateBoundaries finds the boundary tokens of a construct. For a
// switch body the opening delimiter is the token immediately preceding
// the first case, because the node's own first token is the switch
// keyword rather than the brace.
func locateBoundaries(tree *syntax.Tree, node *syntax.Node) (boundaryTokens, bool) {
	openIdx := node.First
	if node.Kind == syntax.NodeSwitchStatement {
		open := tree.TokenBefore(node.FirstCase, false)
		if open == nil {
			return boundaryTokens{}, false
		}
		openIdx = open.Index
	}

	// scan forward past comments attached to the opening delimiter
	prev := tree.Token(openIdx)
	first := tree.TokenAfter(openIdx, true)
	for first != nil && first.IsComment() && first.StartLine == prev.EndLine {
		prev = first
		first = tree.TokenAfter(first.Index, true)
	}

	// scan backward past comments attached to the closing delimiter
	next := tree.Token(node.Close)
	last := tree.TokenBefore(node.Close, true)
	for last != nil && last.IsComment() && last.EndLine == next.StartLine {
		next = last
		last = tree.TokenBefore(last.Index, true)
	}

	if first == nil || last == nil {
		return boundaryTokens{}, false
	}

	b := boundaryTokens{
		before:       tree.TokenBefore(first.Index, true),
		firstContent: first,
		lastContent:  last,
		after:        tree.TokenAfter(last.Index, true),
	}
	if b.before == nil || b.after == nil {
		return boundaryTokens{}, false
	}
	return b, true
}

// paddingObservation reports whether blank-line padding exists at each
// end of a construct
type paddingObservation struct {
	topPadded    bool
	bottomPadded bool
}

// observePadding applies the single numeric contract for padding: a
// token pair is padded iff it spans at least two lines, i.e. at least
// one fully blank line separates the tokens.
func observePadding(b boundaryTokens) paddingObservation {
	return paddingObservation{
		topPadded:    b.firstContent.StartLine-b.before.EndLine >= 2,
		bottomPadded: b.after.StartLine-b.lastContent.EndLine >= 2,
	}
}
