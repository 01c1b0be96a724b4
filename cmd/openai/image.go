package main

import (
	"fmt"
	"os"
	"path/filepath"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	schema "github.com/mutablelogic/go-openai/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ImageCmd struct {
	Prompt  string  `arg:"" help:"Description of the image"`
	Model   string  `name:"model" help:"Model identifier (dall-e-2 or dall-e-3)"`
	Size    string  `name:"size" help:"Image size (1024x1024, 1792x1024 or 1024x1792)"`
	Quality string  `name:"quality" help:"Image quality (standard or hd)"`
	Style   string  `name:"style" help:"Image style (vivid or natural)"`
	Format  string  `name:"format" help:"Response format (url or b64_json)"`
	N       *uint64 `name:"n" help:"Number of images to generate"`
	User    string  `name:"user" help:"End-user identifier"`
	Out     string  `name:"out" help:"Directory for base64 images" default:"." type:"existingdir"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ImageCmd) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ImageCommand")
	defer func() { endSpan(err) }()

	// Build the request
	req, err := cmd.request()
	if err != nil {
		return err
	}

	// Send the request
	response, err := client.CreateImage(parent, req)
	if err != nil {
		return err
	}
	return cmd.write(ctx, response)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// write prints the response as YAML, or prints the URLs and writes base64
// images into the output directory
func (cmd *ImageCmd) write(ctx *Globals, response *schema.CreateImageResponse) error {
	if ctx.YAML {
		return ctx.Write(response)
	} else if ctx.Verbose {
		if err := ctx.Write(response); err != nil {
			return err
		}
	}
	for i, image := range response.Data {
		switch {
		case image.URL != "":
			fmt.Fprintln(ctx.stdout(), image.URL)
		case image.B64JSON != "":
			data, err := image.Decode()
			if err != nil {
				return err
			}
			path := filepath.Join(cmd.Out, fmt.Sprintf("image-%d-%d.png", response.Created, i))
			if err := os.WriteFile(path, data, 0644); err != nil {
				return err
			}
			fmt.Fprintln(ctx.stdout(), path)
		}
	}
	return nil
}

func (cmd *ImageCmd) request() (schema.CreateImageRequest, error) {
	builder := schema.NewCreateImageRequestBuilder().Prompt(cmd.Prompt)
	if cmd.Model != "" {
		model, err := schema.ParseImageModel(cmd.Model)
		if err != nil {
			return schema.CreateImageRequest{}, err
		}
		builder.Model(model)
	}
	if cmd.Size != "" {
		size, err := schema.ParseImageSize(cmd.Size)
		if err != nil {
			return schema.CreateImageRequest{}, err
		}
		builder.Size(size)
	}
	if cmd.Quality != "" {
		quality, err := schema.ParseImageQuality(cmd.Quality)
		if err != nil {
			return schema.CreateImageRequest{}, err
		}
		builder.Quality(quality)
	}
	if cmd.Style != "" {
		style, err := schema.ParseImageStyle(cmd.Style)
		if err != nil {
			return schema.CreateImageRequest{}, err
		}
		builder.Style(style)
	}
	if cmd.Format != "" {
		format, err := schema.ParseImageResponseFormat(cmd.Format)
		if err != nil {
			return schema.CreateImageRequest{}, err
		}
		builder.ResponseFormat(format)
	}
	if cmd.N != nil {
		builder.N(*cmd.N)
	}
	if cmd.User != "" {
		builder.User(cmd.User)
	}
	return builder.Build()
}
