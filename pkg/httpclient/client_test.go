package httpclient_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	client "github.com/mutablelogic/go-client"
	httpclient "github.com/mutablelogic/go-openai/pkg/httpclient"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// HELPERS

// captured is the request as seen by the test server
type captured struct {
	Method        string
	Path          string
	ContentType   string
	Authorization string
	Body          map[string]any
}

// newTestServer creates an httptest.Server which records the request on
// path and responds with the given status and body
func newTestServer(t *testing.T, path string, status int, body string, req *captured) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		req.Method = r.Method
		req.Path = r.URL.Path
		req.ContentType = r.Header.Get("Content-Type")
		req.Authorization = r.Header.Get("Authorization")
		if data, err := io.ReadAll(r.Body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		} else if err := json.Unmarshal(data, &req.Body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	})
	return httptest.NewServer(mux)
}

func newClient(t *testing.T, apiKey, serverURL string, opts ...client.ClientOpt) *httpclient.Client {
	t.Helper()
	c, err := httpclient.New(apiKey, append([]client.ClientOpt{client.OptEndpoint(serverURL + "/v1")}, opts...)...)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_client_001(t *testing.T) {
	// Creating a client with an empty API key succeeds
	assert := assert.New(t)
	c, err := httpclient.New("")
	assert.NoError(err)
	assert.NotNil(c)
}

func Test_client_002(t *testing.T) {
	// Creating a client with an API key succeeds
	assert := assert.New(t)
	c, err := httpclient.New("sk-test")
	assert.NoError(err)
	assert.NotNil(c)
}
