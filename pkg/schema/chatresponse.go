package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ChatCompletionResponse is the response body from POST /chat/completions
type ChatCompletionResponse struct {
	ID                string                 `json:"id" yaml:"id"`
	Object            string                 `json:"object" yaml:"object"` // Always chat.completion
	Created           uint64                 `json:"created" yaml:"created"`
	Model             string                 `json:"model" yaml:"model"` // May name a dated snapshot
	SystemFingerprint string                 `json:"system_fingerprint" yaml:"system_fingerprint"`
	Choices           []ChatCompletionChoice `json:"choices" yaml:"choices"`
	Usage             Usage                  `json:"usage" yaml:"usage"`
}

// ChatCompletionChoice is one of the generated completions. There is more
// than one choice when n is greater than one.
type ChatCompletionChoice struct {
	Index        uint64           `json:"index" yaml:"index"`
	Message      AssistantMessage `json:"message" yaml:"message"`
	FinishReason FinishReason     `json:"finish_reason" yaml:"finish_reason"`
}

// Usage reports token counts for a completion request
type Usage struct {
	PromptTokens     uint64 `json:"prompt_tokens" yaml:"prompt_tokens"`
	CompletionTokens uint64 `json:"completion_tokens" yaml:"completion_tokens"`
	TotalTokens      uint64 `json:"total_tokens" yaml:"total_tokens"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r ChatCompletionResponse) String() string {
	return types.Stringify(r)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Text returns the content of the first choice, or an empty string
func (r ChatCompletionResponse) Text() string {
	if len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}

// ToolCalls returns the tool calls of the first choice
func (r ChatCompletionResponse) ToolCalls() []ToolCall {
	if len(r.Choices) == 0 {
		return nil
	}
	return r.Choices[0].Message.ToolCalls
}
