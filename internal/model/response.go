package model

import (
	"io"
	"mime"
	"net/http"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
)

type Response struct {
	Proto      string
	Status     string
	StatusCode int
	Header     http.Header

	ContentLength int64
	Body          io.ReadCloser

	// DefaultEncoding is the request's text-encoding hint, consulted by
	// TextReader when the response itself declares no charset.
	DefaultEncoding encoding.Encoding
}

// IsRedirect reports whether the status is in the redirection class.
func (r *Response) IsRedirect() bool {
	return r.StatusCode >= 300 && r.StatusCode <= 399
}

// TextReader returns the body decoded to UTF-8. The charset parameter of
// Content-Type wins; otherwise DefaultEncoding applies; otherwise the
// body is passed through as-is. The reader still draws from Body, so
// closing Body releases the connection either way.
func (r *Response) TextReader() io.Reader {
	if _, params, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err == nil {
		if name, ok := params["charset"]; ok {
			if enc, _ := charset.Lookup(name); enc != nil {
				return enc.NewDecoder().Reader(r.Body)
			}
		}
	}
	if r.DefaultEncoding != nil {
		return r.DefaultEncoding.NewDecoder().Reader(r.Body)
	}
	return r.Body
}

// Text reads the whole body through TextReader and closes it.
func (r *Response) Text() (string, error) {
	defer r.Body.Close()
	b, err := io.ReadAll(r.TextReader())
	return string(b), err
}
