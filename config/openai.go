package config

import (
	llmopenai "github.com/aschepis/backscratcher/chatgpt/llm/openai"
	"github.com/rs/zerolog"
)

// OpenAIClientConfig maps the configuration onto OpenAI client settings.
func (c Config) OpenAIClientConfig() llmopenai.ClientConfig {
	return llmopenai.ClientConfig{
		APIKey:       c.APIKey,
		BaseURL:      c.BaseURL,
		Model:        c.Model,
		Organization: c.OrganizationID,
		Project:      c.ProjectID,
	}
}

// NewOpenAIClient creates a new OpenAI LLM client from the configuration.
func NewOpenAIClient(cfg Config, logger zerolog.Logger) (*llmopenai.OpenAIClient, error) {
	return llmopenai.NewOpenAIClient(cfg.OpenAIClientConfig(), logger)
}
