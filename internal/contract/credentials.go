package contract

import (
	"errors"

	"github.com/kelseyhightower/envconfig"
)

// Credentials holds the static API credentials read from the environment.
// Each field is required only by the commands that use the corresponding
// provider.
type Credentials struct {
	RescueTimeKey string `envconfig:"RESCUETIME_API_KEY"`
	GitHubUser    string `envconfig:"GH_USERNAME"`
	GitHubToken   string `envconfig:"GH_TOKEN"`
	OpenAIKey     string `envconfig:"OPENAI_API_KEY"`
}

// LoadCredentials reads credentials from the environment. Missing values are
// not an error here; commands check their own requirements.
func LoadCredentials() (*Credentials, error) {
	var c Credentials
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// RequireRescueTime returns an error when the time-tracking API key is absent.
func (c *Credentials) RequireRescueTime() error {
	if c.RescueTimeKey == "" {
		return errors.New("RESCUETIME_API_KEY is not set")
	}
	return nil
}

// RequireGitHub returns an error when the source-control credentials are absent.
func (c *Credentials) RequireGitHub() error {
	if c.GitHubUser == "" {
		return errors.New("GH_USERNAME is not set")
	}
	if c.GitHubToken == "" {
		return errors.New("GH_TOKEN is not set")
	}
	return nil
}

// RequireOpenAI returns an error when the language-model API key is absent.
func (c *Credentials) RequireOpenAI() error {
	if c.OpenAIKey == "" {
		return errors.New("OPENAI_API_KEY is not set")
	}
	return nil
}
