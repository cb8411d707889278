// Package transport serializes prepared requests onto a hop's stream and
// parses the response coming back. It speaks HTTP/1.1 only; every stream
// carries exactly one request/response exchange.
package transport

import (
	"io"

	"github.com/avaserth/hopwire/internal/model"
)

type Transport interface {
	Write(w io.Writer, req *model.PreparedRequest) error
	Read(r io.Reader, resp *model.Response) error
}

var h1 = &http1{}

// Write serializes req onto w using the HTTP/1.1 wire format.
func Write(w io.Writer, req *model.PreparedRequest) error {
	return h1.Write(w, req)
}

// Read parses the response from r into resp. When r is closeable,
// closing resp.Body closes it.
func Read(r io.Reader, resp *model.Response) error {
	return h1.Read(r, resp)
}
