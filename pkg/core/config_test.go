package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "low", cfg.Settings.MinSeverity)
	assert.Equal(t, "console", cfg.Settings.Output)
	assert.Contains(t, cfg.Settings.Exclude, "node_modules/**")
	assert.Contains(t, cfg.Settings.Exclude, "dist/**")
	assert.Contains(t, cfg.Settings.Exclude, "**/*.min.js")
}

func TestConfigGetMinSeverity(t *testing.T) {
	tests := []struct {
		input    string
		expected Severity
	}{
		{"low", SeverityLow},
		{"medium", SeverityMedium},
		{"high", SeverityHigh},
		{"critical", SeverityCritical},
		{"invalid", SeverityLow}, // defaults to low on error
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Settings.MinSeverity = tt.input
			assert.Equal(t, tt.expected, cfg.GetMinSeverity())
		})
	}
}

func TestConfigIsCategoryEnabled(t *testing.T) {
	cfg := DefaultConfig()

	// Default category should be enabled
	assert.True(t, cfg.IsCategoryEnabled("style"))

	// Unknown category defaults to enabled
	assert.True(t, cfg.IsCategoryEnabled("unknown"))
}

func TestConfigIsRuleEnabled(t *testing.T) {
	cfg := DefaultConfig()

	// Default category should have all rules enabled
	assert.True(t, cfg.IsRuleEnabled("style", "any-rule"))

	// Disable the category
	cat := cfg.Categories["style"]
	cat.Enabled = false
	cfg.Categories["style"] = cat
	assert.False(t, cfg.IsRuleEnabled("style", "any-rule"))

	// Disable specific rule
	cat.Enabled = true
	cat.Rules = map[string]RuleConfig{
		"padded-blocks": {Enabled: false},
	}
	cfg.Categories["style"] = cat
	assert.False(t, cfg.IsRuleEnabled("style", "padded-blocks"))
	assert.True(t, cfg.IsRuleEnabled("style", "other-rule"))
}

func TestConfigShouldExclude(t *testing.T) {
	cfg := DefaultConfig()

	// Default exclusions use glob patterns
	// Note: filepath.Match doesn't support ** like doublestar
	// So we test with simple patterns
	cfg.Settings.Exclude = []string{
		"node_modules/*",
		"dist/*",
		"*.min.js",
	}

	assert.True(t, cfg.ShouldExclude("node_modules/pkg"))
	assert.True(t, cfg.ShouldExclude("dist/bundle"))
	assert.True(t, cfg.ShouldExclude("static/app.min.js"))
	assert.False(t, cfg.ShouldExclude("src/app.ts"))
	assert.False(t, cfg.ShouldExclude("lib/util.js"))
}

func TestLoadConfig(t *testing.T) {
	// Create a temp config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ".padlint.yaml")

	configContent := `version: 1
settings:
  min_severity: high
  output: json
  exclude:
    - "*.spec.js"
categories:
  style:
    enabled: false
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "high", cfg.Settings.MinSeverity)
	assert.Equal(t, "json", cfg.Settings.Output)
	assert.Contains(t, cfg.Settings.Exclude, "*.spec.js")
	assert.False(t, cfg.Categories["style"].Enabled)
}

func TestLoadConfigRuleSettings(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ".padlint.yaml")

	configContent := `version: 1
categories:
  style:
    enabled: true
    rules:
      padded-blocks:
        enabled: true
        settings:
          padding:
            blocks: never
            switches: always
          allowSingleLineBlocks: true
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	ruleCfg := cfg.Categories["style"].Rules["padded-blocks"]
	assert.True(t, ruleCfg.Enabled)
	assert.Equal(t, true, ruleCfg.Settings["allowSingleLineBlocks"])

	padding, ok := ruleCfg.Settings["padding"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "never", padding["blocks"])
	assert.Equal(t, "always", padding["switches"])
}

func TestFindConfig(t *testing.T) {
	// Create temp directory structure
	tmpDir := t.TempDir()
	subDir := filepath.Join(tmpDir, "sub", "dir")
	err := os.MkdirAll(subDir, 0755)
	require.NoError(t, err)

	// Create config in root
	configPath := filepath.Join(tmpDir, ".padlint.yaml")
	err = os.WriteFile(configPath, []byte("version: 1"), 0644)
	require.NoError(t, err)

	// Find from subdir should find parent config
	found, err := FindConfig(subDir)
	require.NoError(t, err)
	assert.Equal(t, configPath, found)

	// Find from root should find config
	found, err = FindConfig(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, configPath, found)
}

func TestMergeConfigs(t *testing.T) {
	base := DefaultConfig()
	base.Settings.MinSeverity = "low"

	override := &Config{
		Version: 1,
		Settings: SettingsConfig{
			MinSeverity: "high",
			Exclude:     []string{"custom/**"},
		},
		Categories: map[string]CategoryConfig{
			"custom": {Enabled: true},
		},
	}

	result := MergeConfigs(base, override)

	assert.Equal(t, "high", result.Settings.MinSeverity)
	assert.Contains(t, result.Settings.Exclude, "custom/**")
	assert.True(t, result.Categories["custom"].Enabled)
}

func TestLoadConfigWithDefaults(t *testing.T) {
	tmpDir := t.TempDir()

	// No config file - should return defaults
	cfg, err := LoadConfigWithDefaults(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "low", cfg.Settings.MinSeverity)
	assert.True(t, cfg.IsCategoryEnabled("style"))
}

func TestGetRuleExceptions(t *testing.T) {
	cfg := DefaultConfig()

	// No exceptions initially
	exceptions := cfg.GetRuleExceptions("style", "padded-blocks")
	assert.Empty(t, exceptions)

	// Add exceptions
	cat := cfg.Categories["style"]
	cat.Rules = map[string]RuleConfig{
		"padded-blocks": {
			Enabled: true,
			Exceptions: []Exception{
				{File: "legacy.js", Reason: "Legacy code"},
			},
		},
	}
	cfg.Categories["style"] = cat

	exceptions = cfg.GetRuleExceptions("style", "padded-blocks")
	assert.Len(t, exceptions, 1)
	assert.Equal(t, "legacy.js", exceptions[0].File)
}
