package schema

import (
	"encoding/json"

	// Packages
	openai "github.com/mutablelogic/go-openai"
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Role of the participant which authored a message
type Role string

// Message is one of SystemMessage, UserMessage, AssistantMessage or
// ToolMessage. On the wire the role is a sibling of the message fields.
type Message interface {
	Role() Role
}

// Messages is a conversation, which can be decoded from the wire
type Messages []Message

// SystemMessage contains instructions for the model
type SystemMessage struct {
	Content string `json:"content" yaml:"content"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"` // Distinguishes participants with the same role
}

// UserMessage contains a prompt from the user
type UserMessage struct {
	Content string `json:"content" yaml:"content"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"` // Distinguishes participants with the same role
}

// AssistantMessage is a message generated by the model, which may
// request one or more tool calls
type AssistantMessage struct {
	Content   string     `json:"content" yaml:"content"`
	Name      string     `json:"name,omitempty" yaml:"name,omitempty"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty" yaml:"tool_calls,omitempty"`
}

// ToolMessage is the result of a tool call, sent back to the model
type ToolMessage struct {
	Content    string `json:"content" yaml:"content"`
	ToolCallID string `json:"tool_call_id" yaml:"tool_call_id"`
}

// ToolCall is a tool invocation requested by the model
type ToolCall struct {
	ID       string       `json:"id" yaml:"id"`
	Type     ToolType     `json:"type" yaml:"type"`
	Function FunctionCall `json:"function" yaml:"function"`
}

// FunctionCall is the function name and JSON-encoded arguments of a tool call
type FunctionCall struct {
	Name      string `json:"name" yaml:"name"`
	Arguments string `json:"arguments" yaml:"arguments"`
}

var _ Message = SystemMessage{}
var _ Message = UserMessage{}
var _ Message = AssistantMessage{}
var _ Message = ToolMessage{}

////////////////////////////////////////////////////////////////////////////////
// CONSTANTS

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewSystemMessage returns a system message. An empty name is omitted.
func NewSystemMessage(content, name string) SystemMessage {
	return SystemMessage{Content: content, Name: name}
}

// NewUserMessage returns a user message. An empty name is omitted.
func NewUserMessage(content, name string) UserMessage {
	return UserMessage{Content: content, Name: name}
}

// NewToolMessage returns the result of the tool call with identifier id
func NewToolMessage(content, id string) ToolMessage {
	return ToolMessage{Content: content, ToolCallID: id}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (SystemMessage) Role() Role    { return RoleSystem }
func (UserMessage) Role() Role      { return RoleUser }
func (AssistantMessage) Role() Role { return RoleAssistant }
func (ToolMessage) Role() Role      { return RoleTool }

// Decode the JSON-encoded arguments of a function call into v
func (f FunctionCall) Decode(v any) error {
	if f.Arguments == "" {
		return openai.ErrBadParameter.Withf("%s: no arguments", f.Name)
	}
	return json.Unmarshal([]byte(f.Arguments), v)
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m SystemMessage) String() string {
	return types.Stringify(m)
}

func (m UserMessage) String() string {
	return types.Stringify(m)
}

func (m AssistantMessage) String() string {
	return types.Stringify(m)
}

func (m ToolMessage) String() string {
	return types.Stringify(m)
}

////////////////////////////////////////////////////////////////////////////////
// JSON MARSHAL

func (m SystemMessage) MarshalJSON() ([]byte, error) {
	type wire SystemMessage
	return json.Marshal(struct {
		Role Role `json:"role" yaml:"role"`
		wire
	}{m.Role(), wire(m)})
}

func (m UserMessage) MarshalJSON() ([]byte, error) {
	type wire UserMessage
	return json.Marshal(struct {
		Role Role `json:"role" yaml:"role"`
		wire
	}{m.Role(), wire(m)})
}

func (m AssistantMessage) MarshalJSON() ([]byte, error) {
	type wire AssistantMessage
	return json.Marshal(struct {
		Role Role `json:"role" yaml:"role"`
		wire
	}{m.Role(), wire(m)})
}

func (m ToolMessage) MarshalJSON() ([]byte, error) {
	type wire ToolMessage
	return json.Marshal(struct {
		Role Role `json:"role" yaml:"role"`
		wire
	}{m.Role(), wire(m)})
}

func (m *Messages) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	result := make(Messages, 0, len(raw))
	for i, data := range raw {
		message, err := unmarshalMessage(data)
		if err != nil {
			return openai.ErrBadParameter.Withf("message %d: %v", i, err)
		}
		result = append(result, message)
	}
	*m = result
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func unmarshalMessage(data []byte) (Message, error) {
	var header struct {
		Role Role `json:"role" yaml:"role"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, err
	}
	var message Message
	switch header.Role {
	case RoleSystem:
		var m SystemMessage
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		message = m
	case RoleUser:
		var m UserMessage
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		message = m
	case RoleAssistant:
		var m AssistantMessage
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		message = m
	case RoleTool:
		var m ToolMessage
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		message = m
	default:
		return nil, openai.ErrBadParameter.Withf("unknown role %q", header.Role)
	}
	return message, nil
}
