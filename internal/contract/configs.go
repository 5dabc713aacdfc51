package contract

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/guerrerocarlos/rescuetime-reporter/schema"
)

// Default values for configuration.
const (
	DefaultPageSize      = 100
	MaxPageSize          = 100
	DefaultPageDelayMS   = 500
	DefaultTopActivities = 15
	DefaultTopPerHour    = 10
	DefaultContextWindow = 3
	DefaultModel         = "gpt-4o"
	DefaultTemperature   = 0.7
	DefaultPromptPath    = "PROMPT.md"
)

// Default base URLs for the external providers. Overridable through config
// for tests and self-hosted mirrors.
const (
	DefaultRescueTimeBaseURL = "https://www.rescuetime.com"
	DefaultGitHubBaseURL     = "https://api.github.com"
	DefaultOpenAIBaseURL     = "https://api.openai.com"
)

// DefaultWorkers is the default bound for concurrent per-repository fetches.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// ConfigRawInput holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper unmarshals into this struct.
type ConfigRawInput struct {
	Output        string  `mapstructure:"output"`
	Prompt        string  `mapstructure:"prompt"`
	Workers       int     `mapstructure:"workers"`
	PageSize      int     `mapstructure:"page-size"`
	PageDelayMS   int     `mapstructure:"page-delay-ms"`
	TopActivities int     `mapstructure:"top-activities"`
	TopPerHour    int     `mapstructure:"top-per-hour"`
	ContextWindow int     `mapstructure:"context-window"`
	Model         string  `mapstructure:"model"`
	Temperature   float64 `mapstructure:"temperature"`
	Color         string  `mapstructure:"color"`
	Width         int     `mapstructure:"width"`

	RescueTimeBaseURL string `mapstructure:"rescuetime-base-url"`
	GitHubBaseURL     string `mapstructure:"github-base-url"`
	OpenAIBaseURL     string `mapstructure:"openai-base-url"`

	Date  string `mapstructure:"date"`
	Month bool   `mapstructure:"month"`
}

// Config holds the runtime configuration for a run. This struct remains the
// "final, validated" config.
type Config struct {
	OutputRoot    string
	PromptPath    string
	Workers       int
	PageSize      int
	PageDelay     time.Duration
	TopActivities int
	TopPerHour    int
	ContextWindow int
	Model         string
	Temperature   float64
	UseColors     bool
	Width         int // Terminal width override (0 = auto-detect)

	RescueTimeBaseURL string
	GitHubBaseURL     string
	OpenAIBaseURL     string

	Date  string // explicit target date; empty means yesterday
	Month bool   // enumerate every day of the current month
}

// ProcessAndValidate converts the raw input into a validated Config.
func (in *ConfigRawInput) ProcessAndValidate() (*Config, error) {
	if in.Workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", in.Workers)
	}
	if in.PageSize < 1 || in.PageSize > MaxPageSize {
		return nil, fmt.Errorf("page-size must be in [1, %d], got %d", MaxPageSize, in.PageSize)
	}
	if in.PageDelayMS < 0 {
		return nil, fmt.Errorf("page-delay-ms must not be negative, got %d", in.PageDelayMS)
	}
	if in.Temperature < 0 || in.Temperature > 2 {
		return nil, fmt.Errorf("temperature must be in [0, 2], got %g", in.Temperature)
	}
	// Zero is a valid window: it disables recent-summary context entirely.
	if in.ContextWindow < 0 {
		return nil, fmt.Errorf("context-window must not be negative, got %d", in.ContextWindow)
	}
	if in.Date != "" {
		if _, err := time.Parse(schema.ISODate, in.Date); err != nil {
			return nil, fmt.Errorf("invalid date %q: expected %s", in.Date, "yyyy-MM-dd")
		}
	}
	if in.Date != "" && in.Month {
		return nil, fmt.Errorf("--date and --month are mutually exclusive")
	}

	cfg := &Config{
		OutputRoot:        in.Output,
		PromptPath:        in.Prompt,
		Workers:           in.Workers,
		PageSize:          in.PageSize,
		PageDelay:         time.Duration(in.PageDelayMS) * time.Millisecond,
		TopActivities:     in.TopActivities,
		TopPerHour:        in.TopPerHour,
		ContextWindow:     in.ContextWindow,
		Model:             in.Model,
		Temperature:       in.Temperature,
		UseColors:         parseBoolish(in.Color),
		Width:             in.Width,
		RescueTimeBaseURL: in.RescueTimeBaseURL,
		GitHubBaseURL:     in.GitHubBaseURL,
		OpenAIBaseURL:     in.OpenAIBaseURL,
		Date:              in.Date,
		Month:             in.Month,
	}
	if cfg.OutputRoot == "" {
		cfg.OutputRoot = "."
	}
	if cfg.PromptPath == "" {
		cfg.PromptPath = DefaultPromptPath
	}
	if cfg.TopActivities < 1 {
		cfg.TopActivities = DefaultTopActivities
	}
	if cfg.TopPerHour < 1 {
		cfg.TopPerHour = DefaultTopPerHour
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.RescueTimeBaseURL == "" {
		cfg.RescueTimeBaseURL = DefaultRescueTimeBaseURL
	}
	if cfg.GitHubBaseURL == "" {
		cfg.GitHubBaseURL = DefaultGitHubBaseURL
	}
	if cfg.OpenAIBaseURL == "" {
		cfg.OpenAIBaseURL = DefaultOpenAIBaseURL
	}
	return cfg, nil
}

// Clone returns a shallow copy of the config for per-request overrides.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// parseBoolish interprets yes/no/true/false/1/0 the way the CLI accepts them.
func parseBoolish(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "no", "false", "0", "off":
		return false
	default:
		return true
	}
}
