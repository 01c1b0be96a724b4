package schema_test

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

func Test_chat_001(t *testing.T) {
	// Only the fields which were set are serialized
	assert := assert.New(t)
	req, err := schema.NewChatCompletionRequestBuilder().
		ToolChoice(schema.ToolChoiceAuto).
		Messages(
			schema.NewSystemMessage("这是系统消息", ""),
			schema.NewUserMessage("这是用户消息", ""),
		).
		Build()
	if !assert.NoError(err) {
		t.FailNow()
	}

	data, err := json.Marshal(req)
	if assert.NoError(err) {
		assert.JSONEq(`{
			"tool_choice": "auto",
			"messages": [
				{"role": "system", "content": "这是系统消息"},
				{"role": "user", "content": "这是用户消息"}
			]
		}`, string(data))
	}
}

func Test_chat_002(t *testing.T) {
	// Messages are required
	assert := assert.New(t)
	_, err := schema.NewChatCompletionRequestBuilder().
		Temperature(0.5).
		Build()
	assert.Error(err)
	assert.True(errors.Is(err, openai.ErrBadParameter))
}

func Test_chat_003(t *testing.T) {
	// An empty message list is accepted
	assert := assert.New(t)
	req, err := schema.NewChatCompletionRequestBuilder().Messages().Build()
	if assert.NoError(err) {
		data, err := json.Marshal(req)
		assert.NoError(err)
		assert.JSONEq(`{"messages":[]}`, string(data))
	}
}

func Test_chat_004(t *testing.T) {
	// All optional fields set
	assert := assert.New(t)
	tool, err := schema.NewFunctionTool("weather_in_city", "Return the weather", nil)
	if !assert.NoError(err) {
		t.FailNow()
	}
	req, err := schema.NewChatCompletionRequestBuilder().
		Messages(schema.NewUserMessage("hi", "")).
		Model(schema.ModelGPT4Turbo).
		FrequencyPenalty(0.5).
		MaxTokens(100).
		N(2).
		PresencePenalty(-0.5).
		ResponseFormat(schema.ResponseFormatText).
		Seed(42).
		Stop("END").
		Stream(false).
		Temperature(0).
		TopP(1).
		Tools(tool).
		ToolChoice(schema.ToolChoiceFunction("weather_in_city")).
		User("user-1").
		Build()
	if !assert.NoError(err) {
		t.FailNow()
	}

	data, err := json.Marshal(req)
	if assert.NoError(err) {
		assert.JSONEq(`{
			"messages": [{"role": "user", "content": "hi"}],
			"model": "gpt-4-1106-preview",
			"frequency_penalty": 0.5,
			"max_tokens": 100,
			"n": 2,
			"presence_penalty": -0.5,
			"response_format": {"type": "text"},
			"seed": 42,
			"stop": "END",
			"stream": false,
			"temperature": 0,
			"top_p": 1,
			"tools": [{
				"type": "function",
				"function": {"name": "weather_in_city", "description": "Return the weather", "parameters": {"type": "object"}}
			}],
			"tool_choice": {"type": "function", "function": {"name": "weather_in_city"}},
			"user": "user-1"
		}`, string(data))
	}
}

func Test_chat_005(t *testing.T) {
	// Setters are independent
	assert := assert.New(t)
	req, err := schema.NewChatCompletionRequestBuilder().
		Messages(schema.NewUserMessage("hi", "")).
		Temperature(0.2).
		Build()
	if !assert.NoError(err) {
		t.FailNow()
	}
	data, err := json.Marshal(req)
	if assert.NoError(err) {
		assert.JSONEq(`{"messages":[{"role":"user","content":"hi"}],"temperature":0.2}`, string(data))
	}
}

func Test_chat_006(t *testing.T) {
	// Model resolves to the default when not set
	assert := assert.New(t)
	req, err := schema.NewChatCompletionRequestBuilder().
		Messages(schema.NewUserMessage("hi", "")).
		Build()
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal(schema.DefaultModel, req.Model())

	data, err := json.Marshal(req.WithDefaults())
	if assert.NoError(err) {
		assert.JSONEq(`{"messages":[{"role":"user","content":"hi"}],"model":"gpt-3.5-turbo-1106"}`, string(data))
	}

	// The first request is unchanged
	data, err = json.Marshal(req)
	if assert.NoError(err) {
		assert.JSONEq(`{"messages":[{"role":"user","content":"hi"}]}`, string(data))
	}

	// An explicit model is kept
	req, err = schema.NewChatCompletionRequestBuilder().
		Messages(schema.NewUserMessage("hi", "")).
		Model(schema.ModelGPT4TurboVision).
		Build()
	if assert.NoError(err) {
		assert.Equal(schema.ModelGPT4TurboVision, req.WithDefaults().Model())
	}
}

func Test_chat_007(t *testing.T) {
	// Multiple stop sequences are sent as an array
	assert := assert.New(t)
	req, err := schema.NewChatCompletionRequestBuilder().
		Messages(schema.NewUserMessage("hi", "")).
		Stop("a", "b").
		Build()
	if !assert.NoError(err) {
		t.FailNow()
	}
	data, err := json.Marshal(req)
	if assert.NoError(err) {
		assert.JSONEq(`{"messages":[{"role":"user","content":"hi"}],"stop":["a","b"]}`, string(data))
	}
}

func Test_chat_008(t *testing.T) {
	// The built request is not affected by later builder calls
	assert := assert.New(t)
	builder := schema.NewChatCompletionRequestBuilder().Messages(schema.NewUserMessage("first", ""))
	req, err := builder.Build()
	if !assert.NoError(err) {
		t.FailNow()
	}
	builder.Messages(schema.NewUserMessage("second", "")).Temperature(1)

	messages := req.Messages()
	assert.Len(messages, 1)
	assert.Equal(schema.NewUserMessage("first", ""), messages[0])
	data, err := json.Marshal(req)
	if assert.NoError(err) {
		assert.JSONEq(`{"messages":[{"role":"user","content":"first"}]}`, string(data))
	}
}

func Test_chat_009(t *testing.T) {
	// Invalid values are rejected by Build
	assert := assert.New(t)
	_, err := schema.NewChatCompletionRequestBuilder().
		Messages(schema.NewUserMessage("hi", "")).
		Model(schema.Model(42)).
		Build()
	assert.True(errors.Is(err, openai.ErrBadParameter))

	_, err = schema.NewChatCompletionRequestBuilder().
		Messages(schema.NewUserMessage("hi", "")).
		Model(schema.Model(math.MaxUint)).
		Build()
	assert.True(errors.Is(err, openai.ErrBadParameter))

	_, err = schema.NewChatCompletionRequestBuilder().
		Messages(schema.NewUserMessage("hi", "")).
		ResponseFormat(schema.ResponseFormat(math.MaxUint)).
		Build()
	assert.True(errors.Is(err, openai.ErrBadParameter))

	_, err = schema.NewChatCompletionRequestBuilder().
		Messages(schema.NewUserMessage("hi", "")).
		ToolChoice(schema.ToolChoiceFunction("")).
		Build()
	assert.True(errors.Is(err, openai.ErrBadParameter))

	_, err = schema.NewChatCompletionRequestBuilder().
		Messages(schema.NewUserMessage("hi", ""), nil).
		Build()
	assert.True(errors.Is(err, openai.ErrBadParameter))
}

func Test_chat_010(t *testing.T) {
	// Decode a response
	assert := assert.New(t)
	var response schema.ChatCompletionResponse
	err := json.Unmarshal([]byte(`{
		"id": "chatcmpl-123",
		"object": "chat.completion",
		"created": 1677652288,
		"model": "gpt-3.5-turbo-1106",
		"system_fingerprint": "fp_44709d6fcb",
		"choices": [{
			"index": 0,
			"message": {"role": "assistant", "content": "Hello there, how may I assist you today?"},
			"finish_reason": "stop"
		}],
		"usage": {"prompt_tokens": 9, "completion_tokens": 12, "total_tokens": 21}
	}`), &response)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal("chatcmpl-123", response.ID)
	assert.Equal("chat.completion", response.Object)
	assert.Equal(uint64(1677652288), response.Created)
	assert.Equal(schema.ModelGPT35Turbo.String(), response.Model)
	assert.Equal("fp_44709d6fcb", response.SystemFingerprint)
	assert.Len(response.Choices, 1)
	assert.Equal(schema.FinishReasonStop, response.Choices[0].FinishReason)
	assert.Equal("Hello there, how may I assist you today?", response.Text())
	assert.Nil(response.ToolCalls())
	assert.Equal(schema.Usage{PromptTokens: 9, CompletionTokens: 12, TotalTokens: 21}, response.Usage)
}

func Test_chat_011(t *testing.T) {
	// Decode a response with a tool call
	assert := assert.New(t)
	var response schema.ChatCompletionResponse
	err := json.Unmarshal([]byte(`{
		"id": "chatcmpl-456",
		"object": "chat.completion",
		"created": 1,
		"model": "gpt-4-1106-preview",
		"system_fingerprint": "fp",
		"choices": [{
			"index": 0,
			"message": {
				"role": "assistant",
				"content": null,
				"tool_calls": [{"id": "call_1", "type": "function", "function": {"name": "weather_in_city", "arguments": "{\"city\":\"Paris\"}"}}]
			},
			"finish_reason": "tool_calls"
		}],
		"usage": {"prompt_tokens": 1, "completion_tokens": 1, "total_tokens": 2}
	}`), &response)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal(schema.FinishReasonToolCalls, response.Choices[0].FinishReason)
	assert.Equal("", response.Text())
	calls := response.ToolCalls()
	if assert.Len(calls, 1) {
		assert.Equal("weather_in_city", calls[0].Function.Name)
		assert.Equal(schema.ToolTypeFunction, calls[0].Type)
	}
}

func Test_chat_012(t *testing.T) {
	// Responses with no choices
	assert := assert.New(t)
	var response schema.ChatCompletionResponse
	assert.NoError(json.Unmarshal([]byte(`{"choices":[]}`), &response))
	assert.Equal("", response.Text())
	assert.Nil(response.ToolCalls())
}

func Test_chat_013(t *testing.T) {
	// Stream reports whether partial deltas were requested
	assert := assert.New(t)
	req, err := schema.NewChatCompletionRequestBuilder().Messages(schema.NewUserMessage("hi", "")).Build()
	assert.NoError(err)
	assert.False(req.Stream())

	req, err = schema.NewChatCompletionRequestBuilder().Messages(schema.NewUserMessage("hi", "")).Stream(false).Build()
	assert.NoError(err)
	assert.False(req.Stream())

	req, err = schema.NewChatCompletionRequestBuilder().Messages(schema.NewUserMessage("hi", "")).Stream(true).Build()
	assert.NoError(err)
	assert.True(req.Stream())
}
