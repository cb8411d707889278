package model

import (
	"fmt"
	"net/http"
	"net/url"
	"sync/atomic"

	"golang.org/x/text/encoding"
)

// Request is a mutable descriptor for one outbound HTTP/1.1 request.
// It is built up through its setters and then consumed by a single send;
// reusing it for a second send fails with [ErrRequestReused].
type Request struct {
	u               *url.URL
	method          string
	header          http.Header
	followRedirects bool
	defaultEncoding encoding.Encoding

	sent atomic.Bool
}

// New parses baseURL and returns a fresh descriptor for it. The method
// defaults to GET and redirects are followed. An unparsable URL is an
// error; a missing host or unsupported scheme is accepted here and
// surfaces when the send tries to connect.
func New(baseURL string) (*Request, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, InvalidURLError(err.Error())
	}
	return &Request{
		u:               u,
		method:          http.MethodGet,
		header:          http.Header{},
		followRedirects: true,
	}, nil
}

// SetMethod sets the request method verbatim, e.g. "POST".
func (r *Request) SetMethod(method string) {
	r.method = method
}

// AddQueryParam appends one key/value pair to the URL query. The value is
// rendered through its display form and percent-encoded. Repeated calls
// append repeated pairs; nothing is de-duplicated.
func (r *Request) AddQueryParam(key string, value interface{}) {
	pair := url.QueryEscape(key) + "=" + url.QueryEscape(fmt.Sprint(value))
	if r.u.RawQuery == "" {
		r.u.RawQuery = pair
	} else {
		r.u.RawQuery += "&" + pair
	}
}

// SetHeader replaces all values of the named header. It fails if the name
// or the converted value is not a valid header token.
func (r *Request) SetHeader(name string, value interface{}) error {
	return headerInsert(r.header, name, value)
}

// AppendHeader adds one more value for the named header, keeping any
// existing ones.
func (r *Request) AppendHeader(name string, value interface{}) error {
	return headerAppend(r.header, name, value)
}

// SetFollowRedirects controls whether 3xx responses are chased or
// returned verbatim.
func (r *Request) SetFollowRedirects(follow bool) {
	r.followRedirects = follow
}

// SetDefaultEncoding sets the text encoding assumed for response bodies
// whose Content-Type carries no charset. nil clears the hint.
func (r *Request) SetDefaultEncoding(enc encoding.Encoding) {
	r.defaultEncoding = enc
}

func (r *Request) FollowRedirects() bool { return r.followRedirects }

func (r *Request) DefaultEncoding() encoding.Encoding { return r.defaultEncoding }

// Consume marks the request as driving a send and returns a copy of its
// URL for the loop to work on. Exactly one send may consume a request.
func (r *Request) Consume() (*url.URL, error) {
	if !r.sent.CompareAndSwap(false, true) {
		return nil, ErrRequestReused
	}
	u := *r.u
	return &u, nil
}
