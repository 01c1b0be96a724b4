package schema_test

import (
	"encoding/json"
	"testing"

	// Packages
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

type weatherParams struct {
	City string `json:"city" jsonschema:"The city to return the weather for"`
	Days int    `json:"days,omitempty"`
}

func Test_tool_001(t *testing.T) {
	// Parameter schema reflected from a type
	assert := assert.New(t)
	tool, err := schema.NewFunctionToolFor[weatherParams]("weather_in_city", "Return the weather in a city")
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal(schema.ToolTypeFunction, tool.Type)
	assert.Equal("weather_in_city", tool.Function.Name)
	if assert.NotNil(tool.Function.Parameters) {
		assert.Equal("object", tool.Function.Parameters.Type)
		assert.Contains(tool.Function.Parameters.Properties, "city")
		assert.Contains(tool.Function.Parameters.Properties, "days")
		assert.Contains(tool.Function.Parameters.Required, "city")
	}

	data, err := json.Marshal(tool)
	if assert.NoError(err) {
		var v struct {
			Type     string `json:"type"`
			Function struct {
				Name        string         `json:"name"`
				Description string         `json:"description"`
				Parameters  map[string]any `json:"parameters"`
			} `json:"function"`
		}
		assert.NoError(json.Unmarshal(data, &v))
		assert.Equal("function", v.Type)
		assert.Equal("Return the weather in a city", v.Function.Description)
		assert.Equal("object", v.Function.Parameters["type"])
	}
}

func Test_tool_002(t *testing.T) {
	// A name is required
	assert := assert.New(t)
	_, err := schema.NewFunctionTool("", "nameless", nil)
	assert.Error(err)
}
