// Package review implements the two operations of the tool: submitting a
// review request read from a file, and listing the available models.
package review

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/aschepis/backscratcher/chatgpt/clipboard"
	"github.com/aschepis/backscratcher/chatgpt/config"
	"github.com/aschepis/backscratcher/chatgpt/llm"
	"github.com/rs/zerolog"
)

// Service runs review requests against an LLM provider.
type Service struct {
	cfg       config.Config
	client    llm.Client
	models    llm.ModelLister
	clipboard clipboard.Reader
	logger    zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClipboard sets the clipboard source used for request augmentation.
func WithClipboard(r clipboard.Reader) Option {
	return func(s *Service) {
		s.clipboard = r
	}
}

// NewService creates a new Service. The configuration is copied and not modified afterwards.
func NewService(cfg config.Config, client llm.Client, models llm.ModelLister, logger zerolog.Logger, opts ...Option) *Service {
	s := &Service{
		cfg:       cfg,
		client:    client,
		models:    models,
		clipboard: clipboard.System{},
		logger:    logger.With().Str("component", "review").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit sends the contents of requestFile, optionally followed by the
// clipboard text as a fenced code block, and returns the reply content
// exactly as received.
func (s *Service) Submit(ctx context.Context, requestFile string) (string, error) {
	s.logger.Info().
		Str("model", s.cfg.Model).
		Str("requestFile", requestFile).
		Str("url", s.cfg.CompletionsURL()).
		Msg("Submitting review request")
	s.logger.Debug().Str("system", s.cfg.SystemMessage).Msg("System message")

	if s.cfg.APIKey == "" {
		return "", llm.NewConfigurationError("API Key is mandatory.")
	}
	if s.cfg.SystemMessage == "" {
		return "", llm.NewConfigurationError("System Message is mandatory.")
	}

	data, err := os.ReadFile(requestFile) //#nosec 304 -- user-supplied request file
	if err != nil {
		return "", fmt.Errorf("failed to read request file %q: %w", requestFile, err)
	}
	request := string(data)

	if s.cfg.AppendClipboard() {
		code := clipboard.ReadText(ctx, s.clipboard, s.logger)
		if code != "" {
			s.logger.Debug().Int("length", len(code)).Msg("Appending code from clipboard")
		}
		request = AppendCode(request, code)
	}

	s.logger.Info().Int("requestLength", len(request)).Msg("Built review request")

	resp, err := s.client.Synchronous(ctx, &llm.Request{
		Model:  s.cfg.Model,
		System: s.cfg.SystemMessage,
		Messages: []llm.Message{
			llm.NewTextMessage(llm.RoleUser, request),
		},
	})
	if err != nil {
		return "", err
	}

	s.logger.Debug().Str("content", resp.Content).Msg("Review content")
	return resp.Content, nil
}

// ListModels returns the provider's model identifiers in the order received.
// The identifiers are logged in sorted order.
func (s *Service) ListModels(ctx context.Context) ([]string, error) {
	s.logger.Info().Str("url", s.cfg.ModelsURL()).Msg("Listing models")

	if s.cfg.APIKey == "" {
		return nil, llm.NewConfigurationError("API Key is mandatory.")
	}

	models, err := s.models.ListModels(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("count", len(models)).Msg("Listed models")
	for _, model := range Sorted(models) {
		s.logger.Info().Str("model", model).Msg("Model")
	}

	return models, nil
}

// AppendCode appends code to request as a fenced block tagged "code".
// Empty code leaves the request unchanged.
func AppendCode(request, code string) string {
	if code == "" {
		return request
	}
	return request + "\n```code\n" + code + "\n```\n"
}

// Sorted returns a lexicographically sorted copy of models.
func Sorted(models []string) []string {
	sorted := slices.Clone(models)
	slices.Sort(sorted)
	return sorted
}
