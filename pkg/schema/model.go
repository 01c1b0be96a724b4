package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Chat completion model. Pricing differs per model,
// see https://openai.com/pricing
type Model uint

// Image generation model
type ImageModel uint

////////////////////////////////////////////////////////////////////////////////
// CONSTANTS

const (
	ModelGPT35Turbo Model = iota
	ModelGPT35TurboInstruct
	ModelGPT4Turbo
	ModelGPT4TurboVision
)

const (
	ImageModelDallE3 ImageModel = iota
	ImageModelDallE2
)

const (
	DefaultModel      = ModelGPT35Turbo
	DefaultImageModel = ImageModelDallE3
)

var models = enum[Model]{
	"gpt-3.5-turbo-1106",
	"gpt-3.5-turbo-instruct",
	"gpt-4-1106-preview",
	"gpt-4-1106-vision-preview",
}

var imageModels = enum[ImageModel]{
	"dall-e-3",
	"dall-e-2",
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// ParseModel returns the chat model for a model identifier
func ParseModel(s string) (Model, error) {
	return models.parse(s)
}

// ParseImageModel returns the image model for a model identifier
func ParseImageModel(s string) (ImageModel, error) {
	return imageModels.parse(s)
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Model) String() string {
	return models.string(m)
}

func (m ImageModel) String() string {
	return imageModels.string(m)
}

////////////////////////////////////////////////////////////////////////////////
// TEXT MARSHAL

func (m Model) MarshalText() ([]byte, error) {
	return models.text(m)
}

func (m *Model) UnmarshalText(data []byte) error {
	v, err := models.parse(string(data))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (m ImageModel) MarshalText() ([]byte, error) {
	return imageModels.text(m)
}

func (m *ImageModel) UnmarshalText(data []byte) error {
	v, err := imageModels.parse(string(data))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
