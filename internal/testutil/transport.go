package testutil

import (
	"io"
	"net/http"
	"strings"
	"sync/atomic"
)

// RoundTripFunc adapts a function to http.RoundTripper for transport fakes.
type RoundTripFunc func(req *http.Request) (*http.Response, error)

func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// JSONResponse builds a canned *http.Response with the given status and body.
func JSONResponse(status int, body string) *http.Response {
	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     header,
	}
}

// CountingTransport records every outbound request it sees. Useful for
// asserting that a handler short-circuited before calling upstream.
type CountingTransport struct {
	Calls atomic.Int32
	Next  RoundTripFunc
}

func (c *CountingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	c.Calls.Add(1)
	if c.Next != nil {
		return c.Next(req)
	}
	return JSONResponse(http.StatusOK, "{}"), nil
}
