package style

import (
	"fmt"
	"strings"

	"github.com/padlint/padlint/pkg/core"
	"github.com/padlint/padlint/pkg/rules"
	"github.com/padlint/padlint/pkg/syntax"
)

func init() {
	rules.Register(NewPaddedBlocksRule())
}

const (
	msgAlwaysPadded = "Block must be padded by blank lines."
	msgNeverPadded  = "Block must not be padded by blank lines."
)

// PaddedBlocksRule requires or disallows blank lines immediately inside
// the delimiters of block-like constructs, per construct kind
type PaddedBlocksRule struct {
	*rules.BaseRule

	policy          PolicyMap
	allowSingleLine bool
}

// NewPaddedBlocksRule creates the rule with the default "always" policy
func NewPaddedBlocksRule() *PaddedBlocksRule {
	return &PaddedBlocksRule{
		BaseRule: rules.NewBaseRule(
			"padded-blocks",
			"style",
			"Requires or disallows blank lines just inside block-like constructs",
			core.SeverityLow,
		),
		policy: alwaysPolicy(),
	}
}

// HasAutoFix reports that violations carry text edits
func (r *PaddedBlocksRule) HasAutoFix() bool {
	return true
}

// Configure resolves the padding policy and the single-line exception.
// The policy map is rebuilt from scratch on every call and is never
// mutated afterward.
func (r *PaddedBlocksRule) Configure(settings map[string]interface{}) error {
	if err := r.BaseRule.Configure(settings); err != nil {
		return err
	}

	if raw, ok := settings["padding"]; ok {
		policy, err := ResolvePolicy(raw)
		if err != nil {
			return fmt.Errorf("padded-blocks: %w", err)
		}
		r.policy = policy
	}
	r.allowSingleLine = r.GetBoolSetting("allowSingleLineBlocks", r.allowSingleLine)

	return nil
}

// AnalyzeFile checks every construct in the file against the policy
func (r *PaddedBlocksRule) AnalyzeFile(ctx *core.FileContext) ([]*core.Violation, error) {
	if !ctx.HasTree() {
		return nil, nil
	}

	var violations []*core.Violation
	for _, node := range ctx.Tree.Nodes {
		// shapes with no configured specialization are not visited
		if !r.policy.observes(node.Kind) {
			continue
		}
		// empty constructs are never checked
		if !node.HasContent() {
			continue
		}

		vs, err := r.checkConstruct(ctx, node)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ctx.RelPath, err)
		}
		violations = append(violations, vs...)
	}

	return violations, nil
}

func (r *PaddedBlocksRule) checkConstruct(ctx *core.FileContext, node *syntax.Node) ([]*core.Violation, error) {
	kind, err := classifyConstruct(node)
	if err != nil {
		return nil, err
	}

	required, ok := r.policy[kind]
	if !ok {
		return nil, nil
	}

	b, ok := locateBoundaries(ctx.Tree, node)
	if !ok {
		return nil, nil
	}

	// the single-line exception suppresses both ends at once
	if r.allowSingleLine && b.before.EndLine == b.after.StartLine {
		return nil, nil
	}

	obs := observePadding(b)

	var violations []*core.Violation
	if required {
		if !obs.topPadded {
			violations = append(violations, r.missingPadding(ctx, b, true))
		}
		if !obs.bottomPadded {
			violations = append(violations, r.missingPadding(ctx, b, false))
		}
	} else {
		if obs.topPadded {
			violations = append(violations, r.extraPadding(ctx, b, true))
		}
		if obs.bottomPadded {
			violations = append(violations, r.extraPadding(ctx, b, false))
		}
	}

	return violations, nil
}

// missingPadding reports a construct end that lacks a required blank
// line; the fix inserts exactly one line break inside the delimiter
func (r *PaddedBlocksRule) missingPadding(ctx *core.FileContext, b boundaryTokens, top bool) *core.Violation {
	var v *core.Violation
	if top {
		v = r.CreateViolation(ctx.Path, b.before.StartLine, msgAlwaysPadded).
			WithColumn(b.before.StartCol).
			WithEndLine(b.firstContent.StartLine).
			WithEdit(b.before.End, b.before.End, "\n")
	} else {
		v = r.CreateViolation(ctx.Path, b.lastContent.EndLine, msgAlwaysPadded).
			WithColumn(b.lastContent.EndCol).
			WithEndLine(b.after.StartLine).
			WithEdit(b.after.Start, b.after.Start, "\n")
	}
	return v.
		WithSuggestion("Add a blank line inside the delimiter").
		WithCode(strings.TrimSpace(ctx.GetLine(v.Line)))
}

// extraPadding reports a forbidden blank line; the fix collapses the
// whole gap to a single line break. The replaced range stops short of
// the following token's leading indentation, so indentation is
// reconstructed by the untouched text rather than by the edit.
func (r *PaddedBlocksRule) extraPadding(ctx *core.FileContext, b boundaryTokens, top bool) *core.Violation {
	var v *core.Violation
	if top {
		v = r.CreateViolation(ctx.Path, b.before.StartLine, msgNeverPadded).
			WithColumn(b.before.StartCol).
			WithEndLine(b.firstContent.StartLine).
			WithEdit(b.before.End, b.firstContent.Start-(b.firstContent.StartCol-1), "\n")
	} else {
		v = r.CreateViolation(ctx.Path, b.lastContent.EndLine, msgNeverPadded).
			WithColumn(b.lastContent.EndCol).
			WithEndLine(b.after.StartLine).
			WithEdit(b.lastContent.End, b.after.Start-(b.after.StartCol-1), "\n")
	}
	return v.
		WithSuggestion("Remove the blank lines inside the delimiter").
		WithCode(strings.TrimSpace(ctx.GetLine(v.Line)))
}
