// Package apperr defines the error taxonomy shared by every adapter: a
// configuration error (required secret absent), a request error (bad or
// missing client parameter), and an upstream error (provider responded with a
// non-success status or an unparsable body). Anything else is an internal
// error and maps to a generic 500.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// excerptLimit bounds how much raw upstream body is carried in diagnostics.
const excerptLimit = 200

// ConfigError indicates a required secret or setting is missing. The request
// never reached the upstream.
type ConfigError struct {
	Name string
}

func (e *ConfigError) Error() string {
	return "Missing " + e.Name
}

// RequestError indicates the client sent a bad or incomplete request.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// UpstreamError indicates the upstream API responded with a non-success
// status or a body we could not parse. Body holds a bounded excerpt for
// diagnosis, never the full payload.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("Upstream %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("Non-JSON from %s: %s", e.Provider, e.Body)
}

// MissingConfig reports an absent required environment setting.
func MissingConfig(name string) error {
	return &ConfigError{Name: name}
}

// BadRequest reports an invalid client request.
func BadRequest(message string) error {
	return &RequestError{Message: message}
}

// UpstreamStatus reports a non-success upstream response.
func UpstreamStatus(provider string, status int, body string) error {
	return &UpstreamError{Provider: provider, StatusCode: status, Body: Excerpt(body)}
}

// UpstreamBody reports an upstream body that failed to parse.
func UpstreamBody(provider string, body string) error {
	return &UpstreamError{Provider: provider, Body: Excerpt(body)}
}

// Excerpt truncates raw upstream text to a bounded, trimmed diagnostic.
func Excerpt(body string) string {
	body = strings.TrimSpace(body)
	if len(body) > excerptLimit {
		return body[:excerptLimit]
	}
	return body
}

// HTTPStatus maps an error to the response status its class calls for.
func HTTPStatus(err error) int {
	var cfg *ConfigError
	var req *RequestError
	var up *UpstreamError
	switch {
	case errors.As(err, &cfg):
		return http.StatusInternalServerError
	case errors.As(err, &req):
		return http.StatusBadRequest
	case errors.As(err, &up):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var up *UpstreamError
	if errors.As(err, &up) {
		return up, true
	}
	return nil, false
}
