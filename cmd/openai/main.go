package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	client "github.com/mutablelogic/go-client"
	httpclient "github.com/mutablelogic/go-openai/pkg/httpclient"
	version "github.com/mutablelogic/go-openai/pkg/version"
	gootel "go.opentelemetry.io/otel"
	trace "go.opentelemetry.io/otel/trace"
	yaml "gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Output
	YAML bool `name:"yaml" help:"Write the full response as YAML"`

	// API
	OpenAI `embed:"" help:"OpenAI configuration"`

	// Context
	ctx    context.Context
	tracer trace.Tracer
	out    io.Writer
}

type OpenAI struct {
	OpenAIKey      string `name:"openai-key" env:"OPENAI_API_KEY" help:"OpenAI API Key"`
	OpenAIEndpoint string `name:"openai-endpoint" env:"OPENAI_ENDPOINT" help:"OpenAI API endpoint"`
}

type CLI struct {
	Globals

	// Commands
	Chat    ChatCmd    `cmd:"" help:"Generate a chat completion"`
	Image   ImageCmd   `cmd:"" help:"Generate images from a prompt"`
	Version VersionCmd `cmd:"" help:"Print the version"`
}

type VersionCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("OpenAI command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx
	cli.Globals.tracer = gootel.Tracer(execName())

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Client returns a client configured from the global flags
func (g *Globals) Client() (*httpclient.Client, error) {
	opts := []client.ClientOpt{
		client.OptUserAgent(version.UserAgent(execName())),
	}
	if g.OpenAIEndpoint != "" {
		opts = append(opts, client.OptEndpoint(g.OpenAIEndpoint))
	}
	if g.Debug || g.Verbose {
		opts = append(opts, client.OptTrace(os.Stderr, g.Verbose))
	}
	if g.tracer != nil {
		opts = append(opts, client.OptTracer(g.tracer))
	}
	return httpclient.New(g.OpenAIKey, opts...)
}

// Write a value to stdout, as YAML or as indented JSON
func (g *Globals) Write(v fmt.Stringer) error {
	if g.YAML {
		enc := yaml.NewEncoder(g.stdout())
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(g.stdout(), v)
	return err
}

func (cmd *VersionCmd) Run(ctx *Globals) error {
	return ctx.Write(version.Get(execName()))
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (g *Globals) stdout() io.Writer {
	if g.out == nil {
		return os.Stdout
	}
	return g.out
}

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
