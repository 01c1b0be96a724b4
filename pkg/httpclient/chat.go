package httpclient

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	openai "github.com/mutablelogic/go-openai"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ChatCompletion sends a chat completion request and returns the
// response. The default model is sent when the request has no model set.
// Streamed responses are not supported.
func (c *Client) ChatCompletion(ctx context.Context, req schema.ChatCompletionRequest) (*schema.ChatCompletionResponse, error) {
	if req.Stream() {
		return nil, openai.ErrNotImplemented.With("streamed chat completions")
	}
	payload, err := client.NewJSONRequest(req.WithDefaults())
	if err != nil {
		return nil, err
	}

	var response schema.ChatCompletionResponse
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("chat", "completions")); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}
