// Package hopwire is a small outbound HTTP/1.1 request engine. It models
// a mutable request descriptor, dials a fresh plain or TLS connection per
// hop, writes the request onto the wire itself, and follows redirects
// until a terminal response is reached. Connections are never reused;
// every request goes out with Connection: close.
package hopwire

import (
	"net/http"

	"github.com/avaserth/hopwire/internal"
	"github.com/avaserth/hopwire/internal/model"
)

type Header = http.Header
type Client = internal.Client
type Request = model.Request
type Response = model.Response
type PreparedRequest = model.PreparedRequest

type Handler = internal.Handler
type Middleware = internal.Middleware

// DefaultMaxRedirects is the redirect cap applied when a Client does not
// set its own.
const DefaultMaxRedirects = internal.DefaultMaxRedirects

// NewRequest parses baseURL and returns a descriptor for one send.
func NewRequest(baseURL string) (*Request, error) {
	return model.New(baseURL)
}
