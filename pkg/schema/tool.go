package schema

import (
	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	openai "github.com/mutablelogic/go-openai"
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// The type of a tool. Only functions are currently supported.
type ToolType uint

// Tool is a tool the model may call
type Tool struct {
	Type     ToolType     `json:"type"`
	Function FunctionInfo `json:"function"`
}

// FunctionInfo describes the function behind a tool
type FunctionInfo struct {
	// Used by the model to choose when and how to call the function
	Description string `json:"description"`

	// a-z, A-Z, 0-9, underscores and dashes, maximum length of 64
	Name string `json:"name"`

	// Parameters accepted by the function
	Parameters *jsonschema.Schema `json:"parameters"`
}

////////////////////////////////////////////////////////////////////////////////
// CONSTANTS

const (
	ToolTypeFunction ToolType = iota
)

var toolTypes = enum[ToolType]{
	"function",
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewFunctionTool returns a function tool with the given parameter schema
func NewFunctionTool(name, description string, parameters *jsonschema.Schema) (Tool, error) {
	if name == "" {
		return Tool{}, openai.ErrBadParameter.With("tool name is required")
	}
	if parameters == nil {
		parameters = &jsonschema.Schema{Type: "object"}
	}
	return Tool{
		Type: ToolTypeFunction,
		Function: FunctionInfo{
			Name:        name,
			Description: description,
			Parameters:  parameters,
		},
	}, nil
}

// NewFunctionToolFor returns a function tool whose parameter schema
// is reflected from the type T
func NewFunctionToolFor[T any](name, description string) (Tool, error) {
	parameters, err := jsonschema.For[T](nil)
	if err != nil {
		return Tool{}, openai.ErrBadParameter.Withf("%s: %v", name, err)
	}
	return NewFunctionTool(name, description, parameters)
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (t Tool) String() string {
	return types.Stringify(t)
}

func (t ToolType) String() string {
	return toolTypes.string(t)
}

////////////////////////////////////////////////////////////////////////////////
// TEXT MARSHAL

func (t ToolType) MarshalText() ([]byte, error) {
	return toolTypes.text(t)
}

func (t *ToolType) UnmarshalText(data []byte) error {
	v, err := toolTypes.parse(string(data))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
