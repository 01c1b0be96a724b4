package schema

import (
	"encoding/json"
	"strings"

	// Packages
	openai "github.com/mutablelogic/go-openai"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ToolChoice controls which (if any) function is called by the model
type ToolChoice struct {
	mode toolChoiceMode
	name string
}

type toolChoiceMode uint

type toolChoiceFunction struct {
	Type     ToolType `json:"type"`
	Function struct {
		Name string `json:"name"`
	} `json:"function"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	toolChoiceNone toolChoiceMode = iota
	toolChoiceAuto
	toolChoiceFunc
)

var (
	// The model will not call a function and generates a message instead
	ToolChoiceNone = ToolChoice{mode: toolChoiceNone}

	// The model picks between generating a message or calling a function
	ToolChoiceAuto = ToolChoice{mode: toolChoiceAuto}

	DefaultToolChoice = ToolChoiceNone
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// ToolChoiceFunction forces the model to call the named function
func ToolChoiceFunction(name string) ToolChoice {
	return ToolChoice{mode: toolChoiceFunc, name: strings.TrimSpace(name)}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Name returns the forced function name, or an empty string
func (c ToolChoice) Name() string {
	return c.name
}

func (c ToolChoice) String() string {
	switch c.mode {
	case toolChoiceNone:
		return "none"
	case toolChoiceAuto:
		return "auto"
	case toolChoiceFunc:
		return "function:" + c.name
	default:
		return "unknown"
	}
}

////////////////////////////////////////////////////////////////////////////////
// JSON MARSHAL

func (c ToolChoice) MarshalJSON() ([]byte, error) {
	switch c.mode {
	case toolChoiceNone:
		return json.Marshal("none")
	case toolChoiceAuto:
		return json.Marshal("auto")
	case toolChoiceFunc:
		if c.name == "" {
			return nil, openai.ErrBadParameter.With("tool_choice: function name is required")
		}
		var fn toolChoiceFunction
		fn.Type = ToolTypeFunction
		fn.Function.Name = c.name
		return json.Marshal(fn)
	default:
		return nil, openai.ErrBadParameter.Withf("tool_choice: invalid mode %d", c.mode)
	}
}

func (c *ToolChoice) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch s {
		case "none":
			*c = ToolChoiceNone
		case "auto":
			*c = ToolChoiceAuto
		default:
			return openai.ErrBadParameter.Withf("tool_choice: unknown value %q", s)
		}
		return nil
	}

	var fn toolChoiceFunction
	if err := json.Unmarshal(data, &fn); err != nil {
		return err
	} else if fn.Function.Name == "" {
		return openai.ErrBadParameter.With("tool_choice: function name is required")
	}
	*c = ToolChoiceFunction(fn.Function.Name)
	return nil
}
