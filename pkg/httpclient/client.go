/*
httpclient implements an API client for the OpenAI chat completion and
image generation endpoints.
https://platform.openai.com/docs/api-reference
*/
package httpclient

import (
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client sends requests built in package schema. It is safe for
// concurrent use.
type Client struct {
	*client.Client
}

// defaults are applied before any caller options
type defaults struct {
	endpoint string
	timeout  time.Duration
	token    *client.Token
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint = "https://api.openai.com/v1"

	// DefaultTimeout bounds every request
	DefaultTimeout = 30 * time.Second
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client with the given API key. When the key is empty,
// no Authorization header is sent. Options are applied after the defaults,
// so they can replace the endpoint or the timeout.
func New(apiKey string, opts ...client.ClientOpt) (*Client, error) {
	c := new(Client)
	if client, err := client.New(append(newDefaults(apiKey).opts(), opts...)...); err != nil {
		return nil, err
	} else {
		c.Client = client
	}
	return c, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func newDefaults(apiKey string) defaults {
	d := defaults{
		endpoint: endPoint,
		timeout:  DefaultTimeout,
	}
	if apiKey != "" {
		d.token = &client.Token{Scheme: client.Bearer, Value: apiKey}
	}
	return d
}

func (d defaults) opts() []client.ClientOpt {
	opts := []client.ClientOpt{
		client.OptEndpoint(d.endpoint),
		client.OptTimeout(d.timeout),
	}
	if d.token != nil {
		opts = append(opts, client.OptReqToken(*d.token))
	}
	return opts
}
