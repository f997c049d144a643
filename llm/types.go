package llm

import (
	"encoding/json"
)

// MessageRole represents the role of a message in a conversation.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleSystem    MessageRole = "system"
)

// Message represents a single message in a conversation.
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// Request represents a complete single-shot completion request.
// System, when non-empty, is sent as the first message ahead of Messages.
type Request struct {
	Model    string    `json:"model"`
	System   string    `json:"system,omitempty"`
	Messages []Message `json:"messages"`
}

// Response represents a completion response.
// Content is empty when the provider returned no choices.
type Response struct {
	Content    string
	Model      string
	Usage      *Usage
	StopReason string
}

// Usage represents token usage information from an LLM response.
type Usage struct {
	InputTokens  int64
	OutputTokens int64
}

// NewTextMessage creates a new message with text content.
func NewTextMessage(role MessageRole, text string) Message {
	return Message{
		Role:    role,
		Content: text,
	}
}

// UserContentLength returns the total length of the user messages in the request.
func (r *Request) UserContentLength() int {
	n := 0
	for _, m := range r.Messages {
		if m.Role == RoleUser {
			n += len(m.Content)
		}
	}
	return n
}

// ToJSON marshals a request to JSON for debugging/logging purposes.
func (r *Request) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}
