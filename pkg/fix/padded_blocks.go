package fix

import (
	"github.com/padlint/padlint/pkg/core"
)

// PaddedBlocksFixer applies the edits the padded-blocks rule attaches
// to its violations
type PaddedBlocksFixer struct{}

// NewPaddedBlocksFixer creates the fixer
func NewPaddedBlocksFixer() *PaddedBlocksFixer {
	return &PaddedBlocksFixer{}
}

// RuleName returns the rule name
func (f *PaddedBlocksFixer) RuleName() string {
	return "padded-blocks"
}

// CanFix returns true if the violation carries an edit
func (f *PaddedBlocksFixer) CanFix(v *core.Violation) bool {
	return v != nil && v.Rule == "padded-blocks" && v.Edit != nil
}

// GenerateFix wraps the violation's edit for the engine
func (f *PaddedBlocksFixer) GenerateFix(ctx *core.FileContext, v *core.Violation) *Fix {
	if ctx == nil || v == nil || v.Edit == nil {
		return nil
	}

	message := "Insert a blank line inside the delimiter"
	if v.Edit.Start != v.Edit.End {
		message = "Collapse blank lines inside the delimiter"
	}

	return &Fix{
		File:      ctx.Path,
		Edit:      *v.Edit,
		Message:   message,
		RuleName:  "padded-blocks",
		Violation: v,
	}
}

func init() {
	// Register with default registry when package is imported
	DefaultRegistry.Register(NewPaddedBlocksFixer())
}
