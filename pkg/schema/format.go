package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// The data format of a chat completion response
type ResponseFormat uint

// ResponseFormatObject is the wire shape of the response_format field
type ResponseFormatObject struct {
	Type ResponseFormat `json:"type"`
}

////////////////////////////////////////////////////////////////////////////////
// CONSTANTS

const (
	ResponseFormatJSON ResponseFormat = iota
	ResponseFormatText
)

const (
	DefaultResponseFormat = ResponseFormatJSON
)

var responseFormats = enum[ResponseFormat]{
	"json",
	"text",
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// ParseResponseFormat returns the response format for a wire string
func ParseResponseFormat(s string) (ResponseFormat, error) {
	return responseFormats.parse(s)
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (f ResponseFormat) String() string {
	return responseFormats.string(f)
}

////////////////////////////////////////////////////////////////////////////////
// TEXT MARSHAL

func (f ResponseFormat) MarshalText() ([]byte, error) {
	return responseFormats.text(f)
}

func (f *ResponseFormat) UnmarshalText(data []byte) error {
	v, err := responseFormats.parse(string(data))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
