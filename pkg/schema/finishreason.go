package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// The reason the model stopped generating a completion
type FinishReason uint

////////////////////////////////////////////////////////////////////////////////
// CONSTANTS

const (
	FinishReasonStop          FinishReason = iota // Natural stop or a stop sequence was reached
	FinishReasonLength                            // Truncated due to max tokens
	FinishReasonContentFilter                     // Omitted by the content filter
	FinishReasonToolCalls                         // Model requested a tool call
)

var finishReasons = enum[FinishReason]{
	"stop",
	"length",
	"content_filter",
	"tool_calls",
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// ParseFinishReason returns the finish reason for a wire string
func ParseFinishReason(s string) (FinishReason, error) {
	return finishReasons.parse(s)
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r FinishReason) String() string {
	return finishReasons.string(r)
}

////////////////////////////////////////////////////////////////////////////////
// TEXT MARSHAL

func (r FinishReason) MarshalText() ([]byte, error) {
	return finishReasons.text(r)
}

func (r *FinishReason) UnmarshalText(data []byte) error {
	v, err := finishReasons.parse(string(data))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
