package main

import (
	"fmt"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ChatCmd struct {
	Prompt      string   `arg:"" help:"User prompt"`
	System      string   `name:"system" help:"System message"`
	Name        string   `name:"name" help:"Name of the user"`
	Model       string   `name:"model" help:"Model identifier (default gpt-3.5-turbo-1106)"`
	Temperature *float64 `name:"temperature" help:"Sampling temperature"`
	TopP        *float64 `name:"top-p" help:"Nucleus sampling probability mass"`
	MaxTokens   *uint64  `name:"max-tokens" help:"Maximum number of tokens to generate"`
	Seed        *uint64  `name:"seed" help:"Seed for deterministic sampling"`
	Stop        []string `name:"stop" help:"Stop sequences"`
	JSON        bool     `name:"json" help:"Generate a JSON response"`
	User        string   `name:"user" help:"End-user identifier"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ChatCmd) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ChatCommand")
	defer func() { endSpan(err) }()

	// Build the request
	req, err := cmd.request()
	if err != nil {
		return err
	}

	// Send the request
	response, err := client.ChatCompletion(parent, req)
	if err != nil {
		return err
	}

	// Print the response
	if ctx.YAML || ctx.Verbose {
		return ctx.Write(response)
	}
	for _, choice := range response.Choices {
		if choice.Message.Content != "" {
			fmt.Fprintln(ctx.stdout(), choice.Message.Content)
		}
		for _, call := range choice.Message.ToolCalls {
			fmt.Fprintf(ctx.stdout(), "%s(%s)\n", call.Function.Name, call.Function.Arguments)
		}
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (cmd *ChatCmd) request() (schema.ChatCompletionRequest, error) {
	messages := make([]schema.Message, 0, 2)
	if cmd.System != "" {
		messages = append(messages, schema.NewSystemMessage(cmd.System, ""))
	}
	messages = append(messages, schema.NewUserMessage(cmd.Prompt, cmd.Name))

	builder := schema.NewChatCompletionRequestBuilder().Messages(messages...)
	if cmd.Model != "" {
		model, err := schema.ParseModel(cmd.Model)
		if err != nil {
			return schema.ChatCompletionRequest{}, err
		}
		builder.Model(model)
	}
	if cmd.Temperature != nil {
		builder.Temperature(*cmd.Temperature)
	}
	if cmd.TopP != nil {
		builder.TopP(*cmd.TopP)
	}
	if cmd.MaxTokens != nil {
		builder.MaxTokens(*cmd.MaxTokens)
	}
	if cmd.Seed != nil {
		builder.Seed(*cmd.Seed)
	}
	if len(cmd.Stop) > 0 {
		builder.Stop(cmd.Stop...)
	}
	if cmd.JSON {
		builder.ResponseFormat(schema.ResponseFormatJSON)
	}
	if cmd.User != "" {
		builder.User(cmd.User)
	}
	return builder.Build()
}
