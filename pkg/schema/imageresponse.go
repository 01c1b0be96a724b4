package schema

import (
	"encoding/base64"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// CreateImageResponse is the response body from POST /images/generations
type CreateImageResponse struct {
	Created uint64        `json:"created" yaml:"created"`
	Data    []ImageObject `json:"data" yaml:"data"`
}

// ImageObject is a generated image. Either URL or B64JSON is set,
// depending on the requested response format.
type ImageObject struct {
	B64JSON       string `json:"b64_json,omitempty" yaml:"b64_json,omitempty"`
	URL           string `json:"url,omitempty" yaml:"url,omitempty"`
	RevisedPrompt string `json:"revised_prompt,omitempty" yaml:"revised_prompt,omitempty"` // Set when the prompt was revised
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r CreateImageResponse) String() string {
	return types.Stringify(r)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Decode returns the image data when the image was returned as base64
func (i ImageObject) Decode() ([]byte, error) {
	if i.B64JSON == "" {
		return nil, openai.ErrUnexpectedResponse.With("image has no b64_json data")
	}
	return base64.StdEncoding.DecodeString(i.B64JSON)
}
