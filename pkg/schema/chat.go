package schema

import (
	"encoding/json"
	"slices"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ChatCompletionRequest is the request body for POST /chat/completions.
// It is created with a ChatCompletionRequestBuilder and cannot be modified
// once built. Fields which were not set are omitted from the JSON.
type ChatCompletionRequest struct {
	messages         Messages
	model            *Model
	frequencyPenalty *float64
	maxTokens        *uint64
	n                *uint64
	presencePenalty  *float64
	responseFormat   *ResponseFormatObject
	seed             *uint64
	stop             []string
	stream           *bool
	temperature      *float64
	topP             *float64
	tools            []Tool
	toolChoice       *ToolChoice
	user             *string
}

// ChatCompletionRequestBuilder builds a ChatCompletionRequest. Messages
// are required, all other fields are optional.
type ChatCompletionRequestBuilder struct {
	req         ChatCompletionRequest
	hasMessages bool
}

type chatCompletionRequest struct {
	Messages         Messages              `json:"messages"`
	Model            *Model                `json:"model,omitempty"`
	FrequencyPenalty *float64              `json:"frequency_penalty,omitempty"`
	MaxTokens        *uint64               `json:"max_tokens,omitempty"`
	N                *uint64               `json:"n,omitempty"`
	PresencePenalty  *float64              `json:"presence_penalty,omitempty"`
	ResponseFormat   *ResponseFormatObject `json:"response_format,omitempty"`
	Seed             *uint64               `json:"seed,omitempty"`
	Stop             any                   `json:"stop,omitempty"` // string or []string
	Stream           *bool                 `json:"stream,omitempty"`
	Temperature      *float64              `json:"temperature,omitempty"`
	TopP             *float64              `json:"top_p,omitempty"`
	Tools            []Tool                `json:"tools,omitempty"`
	ToolChoice       *ToolChoice           `json:"tool_choice,omitempty"`
	User             *string               `json:"user,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewChatCompletionRequestBuilder returns an empty builder
func NewChatCompletionRequestBuilder() *ChatCompletionRequestBuilder {
	return new(ChatCompletionRequestBuilder)
}

// Build validates the builder state and returns the request. It fails if
// the messages were never set.
func (b *ChatCompletionRequestBuilder) Build() (ChatCompletionRequest, error) {
	if !b.hasMessages {
		return ChatCompletionRequest{}, openai.ErrBadParameter.With("messages is required")
	}
	for i, message := range b.req.messages {
		if message == nil {
			return ChatCompletionRequest{}, openai.ErrBadParameter.Withf("message %d is nil", i)
		}
	}
	if b.req.model != nil && !models.valid(*b.req.model) {
		return ChatCompletionRequest{}, openai.ErrBadParameter.Withf("invalid model %d", *b.req.model)
	}
	if b.req.responseFormat != nil && !responseFormats.valid(b.req.responseFormat.Type) {
		return ChatCompletionRequest{}, openai.ErrBadParameter.Withf("invalid response_format %d", b.req.responseFormat.Type)
	}
	if b.req.toolChoice != nil && b.req.toolChoice.mode == toolChoiceFunc && b.req.toolChoice.name == "" {
		return ChatCompletionRequest{}, openai.ErrBadParameter.With("tool_choice: function name is required")
	}
	for _, tool := range b.req.tools {
		if tool.Function.Name == "" {
			return ChatCompletionRequest{}, openai.ErrBadParameter.With("tool name is required")
		}
	}

	// Return a copy, so the builder can't modify the request
	req := b.req
	req.messages = slices.Clone(b.req.messages)
	req.stop = slices.Clone(b.req.stop)
	req.tools = slices.Clone(b.req.tools)
	return req, nil
}

////////////////////////////////////////////////////////////////////////////////
// BUILDER METHODS

// Messages sets the conversation so far
func (b *ChatCompletionRequestBuilder) Messages(messages ...Message) *ChatCompletionRequestBuilder {
	b.req.messages = append(Messages{}, messages...)
	b.hasMessages = true
	return b
}

// Model sets the model. When not set, DefaultModel is used.
func (b *ChatCompletionRequestBuilder) Model(model Model) *ChatCompletionRequestBuilder {
	b.req.model = types.Ptr(model)
	return b
}

// FrequencyPenalty penalises tokens by how often they already appeared
func (b *ChatCompletionRequestBuilder) FrequencyPenalty(value float64) *ChatCompletionRequestBuilder {
	b.req.frequencyPenalty = types.Ptr(value)
	return b
}

// MaxTokens sets the maximum number of tokens to generate
func (b *ChatCompletionRequestBuilder) MaxTokens(value uint64) *ChatCompletionRequestBuilder {
	b.req.maxTokens = types.Ptr(value)
	return b
}

// N sets how many completion choices to generate for each input message
func (b *ChatCompletionRequestBuilder) N(value uint64) *ChatCompletionRequestBuilder {
	b.req.n = types.Ptr(value)
	return b
}

// PresencePenalty penalises tokens which already appeared at all
func (b *ChatCompletionRequestBuilder) PresencePenalty(value float64) *ChatCompletionRequestBuilder {
	b.req.presencePenalty = types.Ptr(value)
	return b
}

// ResponseFormat sets the format of the generated message
func (b *ChatCompletionRequestBuilder) ResponseFormat(format ResponseFormat) *ChatCompletionRequestBuilder {
	b.req.responseFormat = &ResponseFormatObject{Type: format}
	return b
}

// Seed makes sampling deterministic for the same input and parameters
func (b *ChatCompletionRequestBuilder) Seed(value uint64) *ChatCompletionRequestBuilder {
	b.req.seed = types.Ptr(value)
	return b
}

// Stop sets the sequences where the model stops generating
func (b *ChatCompletionRequestBuilder) Stop(values ...string) *ChatCompletionRequestBuilder {
	b.req.stop = append([]string{}, values...)
	return b
}

// Stream requests partial message deltas. Streamed responses are not
// decoded by this package.
func (b *ChatCompletionRequestBuilder) Stream(value bool) *ChatCompletionRequestBuilder {
	b.req.stream = types.Ptr(value)
	return b
}

// Temperature sets the sampling temperature
func (b *ChatCompletionRequestBuilder) Temperature(value float64) *ChatCompletionRequestBuilder {
	b.req.temperature = types.Ptr(value)
	return b
}

// TopP sets nucleus sampling, where only tokens within the top_p
// probability mass are considered
func (b *ChatCompletionRequestBuilder) TopP(value float64) *ChatCompletionRequestBuilder {
	b.req.topP = types.Ptr(value)
	return b
}

// Tools sets the tools the model may call
func (b *ChatCompletionRequestBuilder) Tools(tools ...Tool) *ChatCompletionRequestBuilder {
	b.req.tools = append([]Tool{}, tools...)
	return b
}

// ToolChoice controls which (if any) tool is called by the model
func (b *ChatCompletionRequestBuilder) ToolChoice(choice ToolChoice) *ChatCompletionRequestBuilder {
	b.req.toolChoice = types.Ptr(choice)
	return b
}

// User sets a unique identifier representing the end-user
func (b *ChatCompletionRequestBuilder) User(value string) *ChatCompletionRequestBuilder {
	b.req.user = types.Ptr(value)
	return b
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Model returns the model, or DefaultModel when it was not set
func (r ChatCompletionRequest) Model() Model {
	if r.model == nil {
		return DefaultModel
	}
	return *r.model
}

// Messages returns a copy of the conversation
func (r ChatCompletionRequest) Messages() Messages {
	return slices.Clone(r.messages)
}

// Stream returns true when partial message deltas were requested
func (r ChatCompletionRequest) Stream() bool {
	return r.stream != nil && *r.stream
}

// WithDefaults returns a copy of the request with the default model set
// when the model was not set
func (r ChatCompletionRequest) WithDefaults() ChatCompletionRequest {
	if r.model == nil {
		r.model = types.Ptr(DefaultModel)
	}
	return r
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r ChatCompletionRequest) String() string {
	return types.Stringify(r)
}

////////////////////////////////////////////////////////////////////////////////
// JSON MARSHAL

func (r ChatCompletionRequest) MarshalJSON() ([]byte, error) {
	req := chatCompletionRequest{
		Messages:         r.messages,
		Model:            r.model,
		FrequencyPenalty: r.frequencyPenalty,
		MaxTokens:        r.maxTokens,
		N:                r.n,
		PresencePenalty:  r.presencePenalty,
		ResponseFormat:   r.responseFormat,
		Seed:             r.seed,
		Stream:           r.stream,
		Temperature:      r.temperature,
		TopP:             r.topP,
		Tools:            r.tools,
		ToolChoice:       r.toolChoice,
		User:             r.user,
	}
	if req.Messages == nil {
		req.Messages = Messages{}
	}
	switch len(r.stop) {
	case 0:
		// Omitted
	case 1:
		req.Stop = r.stop[0]
	default:
		req.Stop = r.stop
	}
	return json.Marshal(req)
}
