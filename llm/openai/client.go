package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aschepis/backscratcher/chatgpt/llm"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultBaseURL is the official API root. The chat-completions and models
// endpoints are resolved relative to it.
const DefaultBaseURL = "https://api.openai.com/v1"

// ClientConfig holds the connection settings for an OpenAIClient.
type ClientConfig struct {
	APIKey       string
	BaseURL      string // Default: DefaultBaseURL
	Model        string // Used when a request does not name a model
	Organization string // Sent as OpenAI-Organization when set
	Project      string // Sent as OpenAI-Project when set

	// Transport overrides the underlying HTTP transport (tests).
	Transport http.RoundTripper
}

// OpenAIClient implements llm.Client and llm.ModelLister for OpenAI's API.
type OpenAIClient struct {
	client *openai.Client
	model  string
	logger zerolog.Logger
}

// NewOpenAIClient creates a new OpenAIClient.
// An empty API key yields a configuration error.
func NewOpenAIClient(cfg ClientConfig, logger zerolog.Logger) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, llm.NewConfigurationError("API Key is mandatory.")
	}

	config := openai.DefaultConfig(cfg.APIKey)

	// Set custom base URL if provided
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	// Set organization if provided
	if cfg.Organization != "" {
		config.OrgID = cfg.Organization
	}

	config.HTTPClient = &http.Client{
		Transport: newLoggingTransport(cfg.Transport, cfg.Project, logger),
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(config),
		model:  cfg.Model,
		logger: logger.With().Str("component", "openaiClient").Logger(),
	}, nil
}

// Synchronous implements llm.Client.Synchronous.
// The content of the first choice is returned verbatim; no choices yields empty content.
func (c *OpenAIClient) Synchronous(ctx context.Context, req *llm.Request) (*llm.Response, error) {
	if req == nil {
		return nil, fmt.Errorf("request is required")
	}

	// Determine model to use
	model := req.Model
	if model == "" {
		model = c.model
	}
	if model == "" {
		return nil, llm.NewConfigurationError("Model is mandatory.")
	}

	chatReq := openai.ChatCompletionRequest{
		Model:    model,
		Messages: toOpenAIMessages(req),
	}

	ctx, ex := withExchange(ctx)
	chatResp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, convertOpenAIError(err, ex)
	}

	resp := &llm.Response{
		Model: chatResp.Model,
		Usage: &llm.Usage{
			InputTokens:  int64(chatResp.Usage.PromptTokens),
			OutputTokens: int64(chatResp.Usage.CompletionTokens),
		},
	}
	if len(chatResp.Choices) > 0 {
		choice := chatResp.Choices[0]
		resp.Content = choice.Message.Content
		resp.StopReason = string(choice.FinishReason)
	}

	c.logger.Debug().
		Str("requestId", ex.requestID).
		Int("choices", len(chatResp.Choices)).
		Msg("Parsed chat completion")

	return resp, nil
}

// ListModels implements llm.ModelLister.ListModels.
func (c *OpenAIClient) ListModels(ctx context.Context) ([]string, error) {
	ctx, ex := withExchange(ctx)
	list, err := c.client.ListModels(ctx)
	if err != nil {
		return nil, convertOpenAIError(err, ex)
	}

	return lo.Map(list.Models, func(m openai.Model, _ int) string {
		return m.ID
	}), nil
}

// toOpenAIMessages flattens the request into OpenAI messages, system first.
func toOpenAIMessages(req *llm.Request) []openai.ChatCompletionMessage {
	msgs := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.System != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	for _, m := range req.Messages {
		role := openai.ChatMessageRoleUser
		switch m.Role {
		case llm.RoleAssistant:
			role = openai.ChatMessageRoleAssistant
		case llm.RoleSystem:
			role = openai.ChatMessageRoleSystem
		}
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}
	return msgs
}

// convertOpenAIError converts go-openai errors to llm.Error types.
// A recorded non-success response always becomes an upstream error carrying the raw body.
func convertOpenAIError(err error, ex *exchange) error {
	if err == nil {
		return nil
	}

	// Rejected by go-openai before anything went on the wire.
	if ex != nil && !ex.sent {
		return llm.NewInvalidRequestError("invalid OpenAI request", err)
	}

	if ex != nil && ex.failed() {
		return llm.NewUpstreamError(ex.statusCode, string(ex.body), err)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return llm.NewUpstreamError(apiErr.HTTPStatusCode, apiErr.Message, err)
	}

	if ex != nil && ex.statusCode != 0 {
		return llm.NewDecodeError("failed to decode OpenAI response", err)
	}

	return llm.NewNetworkError("OpenAI request failed", err)
}
