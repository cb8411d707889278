package internal_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/avaserth/hopwire/internal"
	"github.com/avaserth/hopwire/internal/model"
)

// conn is a scripted hop connection: reads serve a canned response,
// writes capture the serialized request.
type conn struct {
	io.Reader
	wrote  bytes.Buffer
	closed bool
}

func (c *conn) Write(p []byte) (int, error) { return c.wrote.Write(p) }

func (c *conn) Close() error {
	c.closed = true
	return nil
}

// scriptDialer serves one canned response per dialed connection, in
// order, and records every connection it handed out.
type scriptDialer struct {
	responses []string
	conns     []*conn
}

func (d *scriptDialer) Dial(ctx context.Context, r *model.PreparedRequest) (io.ReadWriteCloser, error) {
	if len(d.conns) >= len(d.responses) {
		return nil, errors.New("unexpected extra connection")
	}
	c := &conn{Reader: strings.NewReader(d.responses[len(d.conns)])}
	d.conns = append(d.conns, c)
	return c, nil
}

func (d *scriptDialer) Unwrap() model.Dialer { return nil }

func newScriptedClient(responses ...string) (*internal.Client, *scriptDialer) {
	d := &scriptDialer{responses: responses}
	c := &internal.Client{}
	c.UseDialer(func(model.Dialer) model.Dialer { return d })
	return c, d
}

func mustRequest(t *testing.T, rawURL string) *model.Request {
	t.Helper()
	req, err := model.New(rawURL)
	if err != nil {
		t.Fatalf("New(%q): %v", rawURL, err)
	}
	return req
}

// requestLine returns the first line a connection saw.
func requestLine(t *testing.T, c *conn) string {
	t.Helper()
	line, _, ok := strings.Cut(c.wrote.String(), "\r\n")
	if !ok {
		t.Fatalf("connection saw no complete request line: %q", c.wrote.String())
	}
	return line
}

func wroteHeader(c *conn, name, value string) bool {
	return strings.Contains(c.wrote.String(), "\r\n"+name+": "+value+"\r\n")
}
