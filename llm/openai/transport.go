package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// exchange records the raw outcome of the HTTP round trip behind a single
// client call. go-openai parses error bodies into its own types, so the raw
// body is kept here for upstream errors.
type exchange struct {
	sent       bool
	requestID  string
	statusCode int
	body       []byte
}

type exchangeKey struct{}

func withExchange(ctx context.Context) (context.Context, *exchange) {
	ex := &exchange{}
	return context.WithValue(ctx, exchangeKey{}, ex), ex
}

func exchangeFrom(ctx context.Context) *exchange {
	ex, _ := ctx.Value(exchangeKey{}).(*exchange)
	return ex
}

// loggingTransport adds the OpenAI-Project header, logs request and response
// bodies, and records the response in the call's exchange.
type loggingTransport struct {
	base      http.RoundTripper
	projectID string
	logger    zerolog.Logger
}

func newLoggingTransport(base http.RoundTripper, projectID string, logger zerolog.Logger) *loggingTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &loggingTransport{
		base:      base,
		projectID: projectID,
		logger:    logger.With().Str("component", "openaiTransport").Logger(),
	}
}

// RoundTrip implements http.RoundTripper.
func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	requestID := uuid.NewString()
	if ex := exchangeFrom(req.Context()); ex != nil {
		ex.sent = true
	}
	req = req.Clone(req.Context())
	if t.projectID != "" {
		req.Header.Set("OpenAI-Project", t.projectID)
	}

	var reqBody []byte
	if req.Body != nil {
		var err error
		reqBody, err = io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}
		reqBody = fillMessageContent(reqBody)
		body := reqBody
		req.Body = io.NopCloser(bytes.NewReader(body))
		req.ContentLength = int64(len(body))
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
	}

	t.logger.Debug().
		Str("requestId", requestID).
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("bodyLength", len(reqBody)).
		Str("body", string(reqBody)).
		Msg("HTTP request")

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.logger.Error().Err(err).Str("requestId", requestID).Msg("HTTP request failed")
		return nil, err
	}

	respBody, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	resp.Body = io.NopCloser(bytes.NewReader(respBody))

	t.logger.Info().
		Str("requestId", requestID).
		Str("url", req.URL.String()).
		Int("statusCode", resp.StatusCode).
		Msg("HTTP response")
	t.logger.Debug().
		Str("requestId", requestID).
		Str("body", string(respBody)).
		Msg("HTTP response body")

	if ex := exchangeFrom(req.Context()); ex != nil {
		ex.requestID = requestID
		ex.statusCode = resp.StatusCode
		ex.body = respBody
	}

	return resp, nil
}

// failed reports whether the recorded response carried a non-success status.
func (ex *exchange) failed() bool {
	return ex.statusCode != 0 && (ex.statusCode < http.StatusOK || ex.statusCode >= http.StatusMultipleChoices)
}

// fillMessageContent puts "content":"" back on chat messages whose empty
// content was dropped by go-openai's omitempty marshalling. Messages carrying
// tool or function calls are left alone. Bodies that are not chat requests
// are returned unchanged.
func fillMessageContent(body []byte) []byte {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return body
	}
	raw, ok := payload["messages"]
	if !ok {
		return body
	}
	var msgs []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return body
	}

	changed := false
	for _, m := range msgs {
		_, hasContent := m["content"]
		_, hasToolCalls := m["tool_calls"]
		_, hasFunctionCall := m["function_call"]
		if hasContent || hasToolCalls || hasFunctionCall {
			continue
		}
		m["content"] = json.RawMessage(`""`)
		changed = true
	}
	if !changed {
		return body
	}

	encoded, err := json.Marshal(msgs)
	if err != nil {
		return body
	}
	payload["messages"] = encoded
	out, err := json.Marshal(payload)
	if err != nil {
		return body
	}
	return out
}
