package transport

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/avaserth/hopwire/internal/model"
	"github.com/avaserth/hopwire/internal/transport/chunked"
)

type bodyCloser struct {
	io.Reader
	close func() error
}

func (b bodyCloser) Close() error { return b.close() }

type http1 struct{}

// Write renders the request line and header block of an HTTP/1.1 request
// and flushes it, e.g.:
//
//	GET /a?q=1 HTTP/1.1\r\n
//	Host: example.com\r\n
//	Connection: close\r\n
//	\r\n
//
// The engine sends no request body, so the blank line ends the message.
func (t *http1) Write(w io.Writer, r *model.PreparedRequest) error {
	header := bufio.NewWriter(w) // default bufsize is 4096

	if _, err := header.WriteString(r.Method); err != nil {
		return err
	}
	header.WriteByte(' ')
	header.WriteString(r.U.RequestURI())
	header.WriteString(" HTTP/1.1\r\n")

	if r.HeaderHost != "" {
		header.WriteString("Host: ")
		header.WriteString(r.HeaderHost)
		header.WriteString("\r\n")
	}
	for k, vs := range r.Header {
		for _, v := range vs {
			header.WriteString(k)
			header.WriteString(": ")
			header.WriteString(v)
			if _, err := header.WriteString("\r\n"); err != nil {
				return err
			}
		}
	}
	if _, err := header.WriteString("\r\n"); err != nil {
		return err
	}
	return header.Flush()
}

func (t *http1) Read(r io.Reader, resp *model.Response) (err error) {
	closer := io.NopCloser
	if cr, ok := r.(io.Closer); ok {
		closer = func(r io.Reader) io.ReadCloser { return bodyCloser{r, cr.Close} }
	}
	tp := textproto.NewReader(bufio.NewReader(r))

	line, err := tp.ReadLine()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return err
	}
	proto, status, ok := strings.Cut(line, " ")
	if !ok {
		return errors.New("malformed HTTP response")
	}
	resp.Proto = proto
	resp.Status = strings.TrimLeft(status, " ")

	statusCode, _, _ := strings.Cut(resp.Status, " ")
	if len(statusCode) != 3 {
		return errors.New("malformed HTTP status code " + statusCode)
	}
	resp.StatusCode, err = strconv.Atoi(statusCode)
	if err != nil || resp.StatusCode < 0 {
		return errors.New("malformed HTTP status code")
	}

	mimeHeader, err := tp.ReadMIMEHeader()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return err
	}
	resp.Header = http.Header(mimeHeader)

	return t.readTransfer(tp.R, resp, closer)
}

func (t *http1) readTransfer(r *bufio.Reader, resp *model.Response, closer func(io.Reader) io.ReadCloser) error {
	contentLens := resp.Header["Content-Length"]

	// Hardening against HTTP request smuggling, taken from standard library
	if len(contentLens) > 1 {
		// Per RFC 7230 Section 3.3.2
		first := textproto.TrimString(contentLens[0])
		for _, ct := range contentLens[1:] {
			if first != textproto.TrimString(ct) {
				return fmt.Errorf("http: message cannot contain multiple Content-Length headers; got %q", contentLens)
			}
		}
		resp.Header.Del("Content-Length")
		resp.Header.Add("Content-Length", first)
		contentLens = resp.Header["Content-Length"]
	}

	if resp.Header.Get("Transfer-Encoding") == "chunked" {
		resp.ContentLength = -1
		resp.Body = closer(chunked.NewReader(r))
		return nil
	}

	cl := int64(-1)
	if len(contentLens) > 0 {
		n, err := strconv.ParseUint(textproto.TrimString(contentLens[0]), 10, 63)
		if err != nil {
			return fmt.Errorf("http: invalid Content-Length %q", contentLens[0])
		}
		cl = int64(n)
	}

	resp.ContentLength = cl
	switch {
	case cl > 0:
		resp.Body = closer(io.LimitReader(r, cl))
	case cl == 0:
		closer(nil).Close()
		resp.Body = http.NoBody
	default:
		// no framing information: the peer signals the end of the body
		// by closing, which Connection: close guarantees it will
		resp.Body = closer(r)
	}
	return nil
}
