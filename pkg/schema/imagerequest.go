package schema

import (
	"encoding/json"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// CreateImageRequest is the request body for POST /images/generations.
// It is created with a CreateImageRequestBuilder and cannot be modified
// once built. Fields which were not set are omitted from the JSON, except
// for the model.
type CreateImageRequest struct {
	prompt         string
	model          ImageModel
	n              *uint64
	quality        *ImageQuality
	responseFormat *ImageResponseFormat
	size           *ImageSize
	style          *ImageStyle
	user           *string
}

// CreateImageRequestBuilder builds a CreateImageRequest. The prompt is
// required, all other fields are optional.
type CreateImageRequestBuilder struct {
	req       CreateImageRequest
	hasPrompt bool
}

type createImageRequest struct {
	Prompt         string               `json:"prompt"`
	Model          ImageModel           `json:"model"`
	N              *uint64              `json:"n,omitempty"`
	Quality        *ImageQuality        `json:"quality,omitempty"`
	ResponseFormat *ImageResponseFormat `json:"response_format,omitempty"`
	Size           *ImageSize           `json:"size,omitempty"`
	Style          *ImageStyle          `json:"style,omitempty"`
	User           *string              `json:"user,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewCreateImageRequestBuilder returns an empty builder, with the model
// set to DefaultImageModel
func NewCreateImageRequestBuilder() *CreateImageRequestBuilder {
	b := new(CreateImageRequestBuilder)
	b.req.model = DefaultImageModel
	return b
}

// NewCreateImageRequest returns a request with a prompt, and all other
// fields left unset
func NewCreateImageRequest(prompt string) CreateImageRequest {
	return CreateImageRequest{prompt: prompt, model: DefaultImageModel}
}

// Build validates the builder state and returns the request. It fails if
// the prompt was never set.
func (b *CreateImageRequestBuilder) Build() (CreateImageRequest, error) {
	if !b.hasPrompt {
		return CreateImageRequest{}, openai.ErrBadParameter.With("prompt is required")
	}
	if !imageModels.valid(b.req.model) {
		return CreateImageRequest{}, openai.ErrBadParameter.Withf("invalid model %d", b.req.model)
	}
	if b.req.quality != nil && !imageQualities.valid(*b.req.quality) {
		return CreateImageRequest{}, openai.ErrBadParameter.Withf("invalid quality %d", *b.req.quality)
	}
	if b.req.responseFormat != nil && !imageResponseFormats.valid(*b.req.responseFormat) {
		return CreateImageRequest{}, openai.ErrBadParameter.Withf("invalid response_format %d", *b.req.responseFormat)
	}
	if b.req.size != nil && !imageSizes.valid(*b.req.size) {
		return CreateImageRequest{}, openai.ErrBadParameter.Withf("invalid size %d", *b.req.size)
	}
	if b.req.style != nil && !imageStyles.valid(*b.req.style) {
		return CreateImageRequest{}, openai.ErrBadParameter.Withf("invalid style %d", *b.req.style)
	}
	return b.req, nil
}

////////////////////////////////////////////////////////////////////////////////
// BUILDER METHODS

// Prompt sets the text description of the images to generate. The maximum
// length is 1000 characters for dall-e-2 and 4000 characters for dall-e-3.
func (b *CreateImageRequestBuilder) Prompt(value string) *CreateImageRequestBuilder {
	b.req.prompt = value
	b.hasPrompt = true
	return b
}

// Model sets the model used to generate images
func (b *CreateImageRequestBuilder) Model(model ImageModel) *CreateImageRequestBuilder {
	b.req.model = model
	return b
}

// N sets the number of images to generate, between 1 and 10. Only 1 is
// supported for dall-e-3.
func (b *CreateImageRequestBuilder) N(value uint64) *CreateImageRequestBuilder {
	b.req.n = types.Ptr(value)
	return b
}

// Quality sets the quality of the generated images
func (b *CreateImageRequestBuilder) Quality(quality ImageQuality) *CreateImageRequestBuilder {
	b.req.quality = types.Ptr(quality)
	return b
}

// ResponseFormat sets whether images are returned as URLs or base64 data
func (b *CreateImageRequestBuilder) ResponseFormat(format ImageResponseFormat) *CreateImageRequestBuilder {
	b.req.responseFormat = types.Ptr(format)
	return b
}

// Size sets the resolution of the generated images
func (b *CreateImageRequestBuilder) Size(size ImageSize) *CreateImageRequestBuilder {
	b.req.size = types.Ptr(size)
	return b
}

// Style sets the style of the generated images
func (b *CreateImageRequestBuilder) Style(style ImageStyle) *CreateImageRequestBuilder {
	b.req.style = types.Ptr(style)
	return b
}

// User sets a unique identifier representing the end-user
func (b *CreateImageRequestBuilder) User(value string) *CreateImageRequestBuilder {
	b.req.user = types.Ptr(value)
	return b
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Prompt returns the text description of the images
func (r CreateImageRequest) Prompt() string {
	return r.prompt
}

// Model returns the image model
func (r CreateImageRequest) Model() ImageModel {
	return r.model
}

// ResponseFormat returns the requested response format, or
// DefaultImageResponseFormat when it was not set
func (r CreateImageRequest) ResponseFormat() ImageResponseFormat {
	if r.responseFormat == nil {
		return DefaultImageResponseFormat
	}
	return *r.responseFormat
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r CreateImageRequest) String() string {
	return types.Stringify(r)
}

////////////////////////////////////////////////////////////////////////////////
// JSON MARSHAL

func (r CreateImageRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(createImageRequest{
		Prompt:         r.prompt,
		Model:          r.model,
		N:              r.n,
		Quality:        r.quality,
		ResponseFormat: r.responseFormat,
		Size:           r.size,
		Style:          r.style,
		User:           r.user,
	})
}
