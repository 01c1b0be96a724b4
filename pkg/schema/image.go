package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Quality of a generated image. HD is only supported by dall-e-3.
type ImageQuality uint

// Format in which generated images are returned
type ImageResponseFormat uint

// Resolution of a generated image
type ImageSize uint

// Style of a generated image. Only supported by dall-e-3.
type ImageStyle uint

////////////////////////////////////////////////////////////////////////////////
// CONSTANTS

const (
	ImageQualityHD ImageQuality = iota
	ImageQualityStandard
)

const (
	ImageResponseFormatURL ImageResponseFormat = iota
	ImageResponseFormatB64JSON
)

const (
	ImageSize1024x1024 ImageSize = iota
	ImageSize1792x1024
	ImageSize1024x1792
)

const (
	ImageStyleVivid   ImageStyle = iota // Hyper-real and dramatic
	ImageStyleNatural                   // More natural, less hyper-real
)

const (
	DefaultImageQuality        = ImageQualityHD
	DefaultImageResponseFormat = ImageResponseFormatURL
	DefaultImageSize           = ImageSize1024x1024
	DefaultImageStyle          = ImageStyleVivid
)

var (
	imageQualities       = enum[ImageQuality]{"hd", "standard"}
	imageResponseFormats = enum[ImageResponseFormat]{"url", "b64_json"}
	imageSizes           = enum[ImageSize]{"1024x1024", "1792x1024", "1024x1792"}
	imageStyles          = enum[ImageStyle]{"vivid", "natural"}
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func ParseImageQuality(s string) (ImageQuality, error) {
	return imageQualities.parse(s)
}

func ParseImageResponseFormat(s string) (ImageResponseFormat, error) {
	return imageResponseFormats.parse(s)
}

func ParseImageSize(s string) (ImageSize, error) {
	return imageSizes.parse(s)
}

func ParseImageStyle(s string) (ImageStyle, error) {
	return imageStyles.parse(s)
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (q ImageQuality) String() string {
	return imageQualities.string(q)
}

func (f ImageResponseFormat) String() string {
	return imageResponseFormats.string(f)
}

func (s ImageSize) String() string {
	return imageSizes.string(s)
}

func (s ImageStyle) String() string {
	return imageStyles.string(s)
}

////////////////////////////////////////////////////////////////////////////////
// TEXT MARSHAL

func (q ImageQuality) MarshalText() ([]byte, error) {
	return imageQualities.text(q)
}

func (q *ImageQuality) UnmarshalText(data []byte) error {
	v, err := imageQualities.parse(string(data))
	if err != nil {
		return err
	}
	*q = v
	return nil
}

func (f ImageResponseFormat) MarshalText() ([]byte, error) {
	return imageResponseFormats.text(f)
}

func (f *ImageResponseFormat) UnmarshalText(data []byte) error {
	v, err := imageResponseFormats.parse(string(data))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (s ImageSize) MarshalText() ([]byte, error) {
	return imageSizes.text(s)
}

func (s *ImageSize) UnmarshalText(data []byte) error {
	v, err := imageSizes.parse(string(data))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s ImageStyle) MarshalText() ([]byte, error) {
	return imageStyles.text(s)
}

func (s *ImageStyle) UnmarshalText(data []byte) error {
	v, err := imageStyles.parse(string(data))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
