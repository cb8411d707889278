package model

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// Dialer opens the byte stream one hop writes its request to and reads
// its response from. Implementations may wrap another Dialer; Unwrap
// exposes the chain.
type Dialer interface {
	Dial(ctx context.Context, r *PreparedRequest) (io.ReadWriteCloser, error)
	Unwrap() Dialer
}

// PreparedRequest is the per-hop view of a Request: the hop URL plus a
// header snapshot with the engine-owned fields forced. Each hop gets its
// own view, so nothing a hop forces leaks into the next one.
type PreparedRequest struct {
	Method     string
	U          *url.URL
	Header     http.Header
	HeaderHost string
}

// Prepare renders the descriptor against hopURL. Caller headers are
// cloned; Connection is forced to close because the engine never keeps a
// connection alive past one response, and Host is forced to the hop
// URL's host, overriding any caller-set value for either name.
func (r *Request) Prepare(hopURL *url.URL) *PreparedRequest {
	header := r.header.Clone()
	if header == nil {
		header = http.Header{}
	}
	header.Set("Connection", "close")
	header.Del("Host")
	return &PreparedRequest{
		Method:     r.method,
		U:          hopURL,
		Header:     header,
		HeaderHost: hopURL.Host,
	}
}
