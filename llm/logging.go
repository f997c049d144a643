package llm

import (
	"context"

	"github.com/rs/zerolog"
)

// LoggingMiddleware logs each request and its outcome.
// Message bodies are only emitted at debug level.
type LoggingMiddleware struct {
	logger zerolog.Logger
}

// NewLoggingMiddleware creates a new LoggingMiddleware.
func NewLoggingMiddleware(logger zerolog.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{
		logger: logger.With().Str("component", "llmLogging").Logger(),
	}
}

// BeforeRequest implements Middleware.BeforeRequest.
func (m *LoggingMiddleware) BeforeRequest(ctx context.Context, req *Request) (*Request, error) {
	m.logger.Info().
		Str("model", req.Model).
		Int("requestLength", req.UserContentLength()).
		Int("messages", len(req.Messages)).
		Msg("Sending completion request")
	if m.logger.GetLevel() <= zerolog.DebugLevel {
		if raw, err := req.ToJSON(); err == nil {
			m.logger.Debug().RawJSON("request", raw).Msg("Completion request payload")
		}
	}
	return req, nil
}

// AfterResponse implements Middleware.AfterResponse.
func (m *LoggingMiddleware) AfterResponse(ctx context.Context, req *Request, resp *Response) (*Response, error) {
	evt := m.logger.Info().
		Str("model", resp.Model).
		Int("contentLength", len(resp.Content)).
		Str("stopReason", resp.StopReason)
	if resp.Usage != nil {
		evt = evt.Int64("inputTokens", resp.Usage.InputTokens).Int64("outputTokens", resp.Usage.OutputTokens)
	}
	evt.Msg("Received completion response")
	m.logger.Debug().Str("content", resp.Content).Msg("Completion content")
	return resp, nil
}

// OnError implements Middleware.OnError.
func (m *LoggingMiddleware) OnError(ctx context.Context, req *Request, err error) error {
	m.logger.Error().Err(err).Str("model", req.Model).Msg("Completion request failed")
	return err
}

var _ Middleware = (*LoggingMiddleware)(nil)
