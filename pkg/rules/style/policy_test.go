package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePolicyString(t *testing.T) {
	policy, err := ResolvePolicy("always")
	require.NoError(t, err)
	assert.Len(t, policy, len(allConstructKinds))
	for _, kind := range allConstructKinds {
		required, ok := policy[kind]
		assert.True(t, ok)
		assert.True(t, required, "kind %s", kind)
	}

	policy, err = ResolvePolicy("never")
	require.NoError(t, err)
	for _, kind := range allConstructKinds {
		assert.False(t, policy[kind], "kind %s", kind)
	}
}

func TestResolvePolicyGroupMap(t *testing.T) {
	policy, err := ResolvePolicy(map[string]interface{}{
		"switches": "always",
		"blocks":   "never",
	})
	require.NoError(t, err)

	require.Len(t, policy, 2)
	assert.True(t, policy[SwitchBody])
	assert.False(t, policy[GenericBlock])

	// unnamed kinds are not checked at all
	_, ok := policy[IfElseBlock]
	assert.False(t, ok)
}

func TestResolvePolicyAllGroups(t *testing.T) {
	raw := make(map[string]interface{}, len(policyGroups))
	for name := range policyGroups {
		raw[name] = "always"
	}

	policy, err := ResolvePolicy(raw)
	require.NoError(t, err)
	assert.Len(t, policy, len(allConstructKinds))
}

func TestResolvePolicyErrors(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
	}{
		{"invalid string", "sometimes"},
		{"empty map", map[string]interface{}{}},
		{"unknown group", map[string]interface{}{"loops": "always"}},
		{"non-string group value", map[string]interface{}{"blocks": true}},
		{"invalid group value", map[string]interface{}{"blocks": "maybe"}},
		{"wrong type", 42},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolvePolicy(tt.value)
			assert.Error(t, err)
		})
	}
}

func TestConstructKindString(t *testing.T) {
	assert.Equal(t, "block", GenericBlock.String())
	assert.Equal(t, "switch body", SwitchBody.String())
	assert.Equal(t, "for-of block", ForOfBlock.String())
	assert.Equal(t, "unknown", ConstructKind(99).String())
}
