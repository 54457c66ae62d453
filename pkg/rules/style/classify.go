package style

import (
	"fmt"

	"github.com/padlint/padlint/pkg/syntax"
)

// classifyConstruct maps a construct node to its ConstructKind. Object
// literals, switch bodies, class bodies, and interface bodies classify
// by their own shape; statement blocks classify by the shape of their
// parent, falling back to GenericBlock when no specialization matches.
// An unrecognized node shape is an invariant violation: the dispatcher
// visited something the classifier does not know, and the check must
// abort rather than silently skip it.
func classifyConstruct(node *syntax.Node) (ConstructKind, error) {
	switch node.Kind {
	case syntax.NodeObjectLiteral:
		return ObjectLiteral, nil
	case syntax.NodeSwitchStatement:
		return SwitchBody, nil
	case syntax.NodeClassBody:
		return ClassBody, nil
	case syntax.NodeInterfaceBody:
		return InterfaceBody, nil
	case syntax.NodeStatementBlock:
		if node.Parent == nil {
			return GenericBlock, nil
		}
		switch node.Parent.Kind {
		case syntax.NodeIfStatement:
			return IfElseBlock, nil
		case syntax.NodeForStatement:
			return ForBlock, nil
		case syntax.NodeForInStatement:
			return ForInBlock, nil
		case syntax.NodeForOfStatement:
			return ForOfBlock, nil
		case syntax.NodeWhileStatement:
			return WhileBlock, nil
		case syntax.NodeDoWhileStatement:
			return DoWhileBlock, nil
		case syntax.NodeFunctionDeclaration:
			return FunctionDeclarationBlock, nil
		case syntax.NodeFunctionExpression:
			return FunctionExpressionBlock, nil
		case syntax.NodeArrowFunction:
			return ArrowFunctionBlock, nil
		case syntax.NodeTryStatement:
			return TryBlock, nil
		case syntax.NodeCatchClause:
			return CatchBlock, nil
		}
		return GenericBlock, nil
	}
	return 0, fmt.Errorf("cannot classify construct of kind %s", node.Kind)
}

// observes reports whether the policy checks any construct that the
// given node shape can classify to. Shapes with no configured kind are
// skipped wholesale, before any token work. Unknown shapes pass
// through so the classifier can reject them loudly.
func (p PolicyMap) observes(kind syntax.NodeKind) bool {
	switch kind {
	case syntax.NodeObjectLiteral:
		_, ok := p[ObjectLiteral]
		return ok
	case syntax.NodeSwitchStatement:
		_, ok := p[SwitchBody]
		return ok
	case syntax.NodeClassBody:
		_, ok := p[ClassBody]
		return ok
	case syntax.NodeInterfaceBody:
		_, ok := p[InterfaceBody]
		return ok
	case syntax.NodeStatementBlock:
		for _, k := range blockConstructKinds {
			if _, ok := p[k]; ok {
				return true
			}
		}
		return false
	}
	return true
}
