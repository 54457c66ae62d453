package style

import "fmt"

// ConstructKind identifies the kind of delimited construct a padding
// policy applies to. Statement blocks specialize by their owning
// statement; GenericBlock is the fallback when no specialization fits.
type ConstructKind int

const (
	GenericBlock ConstructKind = iota
	IfElseBlock
	ForBlock
	ForInBlock
	ForOfBlock
	WhileBlock
	DoWhileBlock
	FunctionDeclarationBlock
	FunctionExpressionBlock
	ArrowFunctionBlock
	TryBlock
	CatchBlock
	ObjectLiteral
	SwitchBody
	ClassBody
	InterfaceBody
)

// String returns the string representation of the construct kind
func (k ConstructKind) String() string {
	switch k {
	case GenericBlock:
		return "block"
	case IfElseBlock:
		return "if/else block"
	case ForBlock:
		return "for block"
	case ForInBlock:
		return "for-in block"
	case ForOfBlock:
		return "for-of block"
	case WhileBlock:
		return "while block"
	case DoWhileBlock:
		return "do-while block"
	case FunctionDeclarationBlock:
		return "function declaration block"
	case FunctionExpressionBlock:
		return "function expression block"
	case ArrowFunctionBlock:
		return "arrow function block"
	case TryBlock:
		return "try block"
	case CatchBlock:
		return "catch block"
	case ObjectLiteral:
		return "object literal"
	case SwitchBody:
		return "switch body"
	case ClassBody:
		return "class body"
	case InterfaceBody:
		return "interface body"
	default:
		return "unknown"
	}
}

// PolicyMap maps each checked construct kind to its required padding
// state: true means blank-line padding is mandatory, false means it is
// forbidden. A kind absent from the map is not checked at all.
type PolicyMap map[ConstructKind]bool

// policyGroups are the recognized configuration group names
var policyGroups = map[string]ConstructKind{
	"blocks":               GenericBlock,
	"ifsAndElses":          IfElseBlock,
	"fors":                 ForBlock,
	"forIns":               ForInBlock,
	"forOfs":               ForOfBlock,
	"whiles":               WhileBlock,
	"doWhiles":             DoWhileBlock,
	"functionDeclarations": FunctionDeclarationBlock,
	"functionExpressions":  FunctionExpressionBlock,
	"arrowFunctions":       ArrowFunctionBlock,
	"tries":                TryBlock,
	"catches":              CatchBlock,
	"objects":              ObjectLiteral,
	"switches":             SwitchBody,
	"classes":              ClassBody,
	"interfaces":           InterfaceBody,
}

var allConstructKinds = []ConstructKind{
	GenericBlock, IfElseBlock, ForBlock, ForInBlock, ForOfBlock,
	WhileBlock, DoWhileBlock, FunctionDeclarationBlock,
	FunctionExpressionBlock, ArrowFunctionBlock, TryBlock, CatchBlock,
	ObjectLiteral, SwitchBody, ClassBody, InterfaceBody,
}

// blockConstructKinds are the specializations classified from
// statement blocks
var blockConstructKinds = []ConstructKind{
	GenericBlock, IfElseBlock, ForBlock, ForInBlock, ForOfBlock,
	WhileBlock, DoWhileBlock, FunctionDeclarationBlock,
	FunctionExpressionBlock, ArrowFunctionBlock, TryBlock, CatchBlock,
}

// ResolvePolicy turns a raw configuration value into a PolicyMap. The
// value is either the string "always"/"never", applied to every kind,
// or a map from group names to "always"/"never", in which case only the
// named kinds are checked. Unknown group names are rejected and at
// least one group is required.
func ResolvePolicy(value interface{}) (PolicyMap, error) {
	switch v := value.(type) {
	case string:
		required, err := parsePaddingValue(v)
		if err != nil {
			return nil, err
		}
		policy := make(PolicyMap, len(allConstructKinds))
		for _, kind := range allConstructKinds {
			policy[kind] = required
		}
		return policy, nil

	case map[string]interface{}:
		if len(v) == 0 {
			return nil, fmt.Errorf("padding config requires at least one group")
		}
		policy := make(PolicyMap, len(v))
		for name, raw := range v {
			kind, ok := policyGroups[name]
			if !ok {
				return nil, fmt.Errorf("unknown padding group %q", name)
			}
			s, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("padding group %q: expected \"always\" or \"never\", got %T", name, raw)
			}
			required, err := parsePaddingValue(s)
			if err != nil {
				return nil, fmt.Errorf("padding group %q: %w", name, err)
			}
			policy[kind] = required
		}
		return policy, nil

	default:
		return nil, fmt.Errorf("padding config must be a string or a group map, got %T", value)
	}
}

func parsePaddingValue(s string) (bool, error) {
	switch s {
	case "always":
		return true, nil
	case "never":
		return false, nil
	default:
		return false, fmt.Errorf("expected \"always\" or \"never\", got %q", s)
	}
}

// alwaysPolicy is the default: every kind padded
func alwaysPolicy() PolicyMap {
	policy, _ := ResolvePolicy("always")
	return policy
}
