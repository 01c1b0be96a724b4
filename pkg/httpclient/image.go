package httpclient

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// CreateImage sends an image generation request and returns the generated
// images, either as URLs or base64 data depending on the response format
func (c *Client) CreateImage(ctx context.Context, req schema.CreateImageRequest) (*schema.CreateImageResponse, error) {
	payload, err := client.NewJSONRequest(req)
	if err != nil {
		return nil, err
	}

	var response schema.CreateImageResponse
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("images", "generations")); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}
