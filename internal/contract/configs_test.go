package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Output:        ".",
		Workers:       4,
		PageSize:      100,
		PageDelayMS:   500,
		TopActivities: 15,
		TopPerHour:    10,
		ContextWindow: 3,
		Model:         "gpt-4o",
		Temperature:   0.7,
		Color:         "yes",
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
	}{
		{
			name:        "valid minimal config",
			mutate:      func(_ *ConfigRawInput) {},
			expectError: false,
		},
		{
			name:        "zero workers",
			mutate:      func(in *ConfigRawInput) { in.Workers = 0 },
			expectError: true,
		},
		{
			name:        "page size above cap",
			mutate:      func(in *ConfigRawInput) { in.PageSize = 500 },
			expectError: true,
		},
		{
			name:        "negative page delay",
			mutate:      func(in *ConfigRawInput) { in.PageDelayMS = -1 },
			expectError: true,
		},
		{
			name:        "temperature out of range",
			mutate:      func(in *ConfigRawInput) { in.Temperature = 3 },
			expectError: true,
		},
		{
			name:        "malformed date",
			mutate:      func(in *ConfigRawInput) { in.Date = "20-04-2025" },
			expectError: true,
		},
		{
			name:        "date and month together",
			mutate:      func(in *ConfigRawInput) { in.Date = "2025-04-20"; in.Month = true },
			expectError: true,
		},
		{
			name:        "explicit date alone",
			mutate:      func(in *ConfigRawInput) { in.Date = "2025-04-20" },
			expectError: false,
		},
		{
			name:        "negative context window",
			mutate:      func(in *ConfigRawInput) { in.ContextWindow = -1 },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)

			cfg, err := in.ProcessAndValidate()
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
		})
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	in := validInput()
	in.Output = ""
	in.Prompt = ""
	in.Model = ""
	in.PageDelayMS = 250

	cfg, err := in.ProcessAndValidate()
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.OutputRoot)
	assert.Equal(t, DefaultPromptPath, cfg.PromptPath)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, 250*time.Millisecond, cfg.PageDelay)
	assert.Equal(t, DefaultRescueTimeBaseURL, cfg.RescueTimeBaseURL)
	assert.True(t, cfg.UseColors)
}

func TestProcessAndValidateZeroContextWindow(t *testing.T) {
	in := validInput()
	in.ContextWindow = 0

	cfg, err := in.ProcessAndValidate()
	require.NoError(t, err)

	// Zero survives validation unchanged: it means no recent-summary context
	assert.Zero(t, cfg.ContextWindow)
}

func TestParseBoolish(t *testing.T) {
	assert.True(t, parseBoolish("yes"))
	assert.True(t, parseBoolish("1"))
	assert.True(t, parseBoolish(""))
	assert.False(t, parseBoolish("no"))
	assert.False(t, parseBoolish("FALSE"))
	assert.False(t, parseBoolish("0"))
}

func TestCloneIsIndependent(t *testing.T) {
	cfg, err := validInput().ProcessAndValidate()
	require.NoError(t, err)

	clone := cfg.Clone()
	clone.Date = "2025-04-20"
	assert.Empty(t, cfg.Date)
}
