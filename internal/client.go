package internal

import (
	"context"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/avaserth/hopwire/internal/model"
	"github.com/avaserth/hopwire/internal/transport"
)

type PreparedRequest = model.PreparedRequest
type Dialer = model.Dialer

type Handler = func(ctx context.Context, req *PreparedRequest) (*model.Response, error)
type Middleware func(next Handler) Handler

// DefaultMaxRedirects bounds the redirect chase when [Client.MaxRedirects]
// is left at zero.
const DefaultMaxRedirects = 10

// Client drives sends. The zero value is ready to use; independent sends
// share no mutable state and need no coordination.
type Client struct {
	// MaxRedirects caps how many redirects one send may follow. Zero or
	// negative selects DefaultMaxRedirects. Exceeding the cap fails the
	// send with ErrTooManyRedirects.
	MaxRedirects int

	// Logger receives hop-level debug events: pre-connect, the status of
	// each response, and every redirect decision. The zero value logs
	// nowhere.
	Logger zerolog.Logger

	middlewares []Middleware
	dialer      Dialer
}

// Use appends mw to the end of the chain. The last "Use"d mw executes first
func (c *Client) Use(mws ...Middleware) {
	c.middlewares = append(c.middlewares, mws...)
}

// UseDialer replaces the client's dialer with wrap's return value. wrap
// receives the current dialer (the default one if none was set) so it can
// decorate instead of replace.
func (c *Client) UseDialer(wrap func(Dialer) Dialer) {
	if c.dialer == nil {
		c.dialer = defaultDialer.Clone()
	}
	c.dialer = wrap(c.dialer)
}

// Do is CtxDo with a background context.
func (c *Client) Do(req *model.Request) (*model.Response, error) {
	return c.CtxDo(context.Background(), req)
}

// CtxDo sends req, following redirects per the request's policy, and
// returns the terminal response. req is consumed: the returned response's
// Body owns the last hop's connection, and req cannot drive another send.
//
// Every hop dials a fresh connection. The first failure at any step
// aborts the whole send; there are no retries.
func (c *Client) CtxDo(ctx context.Context, req *model.Request) (*model.Response, error) {
	u, err := req.Consume()
	if err != nil {
		return nil, err
	}

	next := func(ctx context.Context, pr *PreparedRequest) (*model.Response, error) {
		c.Logger.Debug().Str("url", pr.U.String()).Msg("connecting")
		conn, err := c.dial(ctx, pr)
		if err != nil {
			return nil, err
		}
		if err := transport.Write(conn, pr); err != nil {
			conn.Close()
			return nil, err
		}
		resp := &model.Response{DefaultEncoding: req.DefaultEncoding()}
		if err := transport.Read(conn, resp); err != nil {
			conn.Close()
			return nil, err
		}
		return resp, nil
	}
	for i := len(c.middlewares) - 1; i >= 0; i-- {
		next = c.middlewares[i](next)
	}

	max := c.MaxRedirects
	if max <= 0 {
		max = DefaultMaxRedirects
	}

	for hops := 0; ; hops++ {
		resp, err := next(ctx, req.Prepare(u))
		if err != nil {
			return nil, err
		}
		c.Logger.Debug().Int("status", resp.StatusCode).Msg("response status")

		if !req.FollowRedirects() || !resp.IsRedirect() {
			return resp, nil
		}

		location := resp.Header.Get("Location")
		resp.Body.Close() // this hop's connection is done with
		if location == "" {
			return nil, model.InvalidResponseError("redirect has no location header")
		}
		if hops >= max {
			return nil, model.ErrTooManyRedirects
		}
		target, err := redirectURL(u, location)
		if err != nil {
			return nil, err
		}
		c.Logger.Debug().Str("location", location).Str("url", target.String()).Msg("redirected")
		u = target
	}
}

// redirectURL resolves a Location value against the URL of the hop that
// produced it. Absolute locations stand on their own; relative ones join
// the current hop URL, never the original base.
func redirectURL(base *url.URL, location string) (*url.URL, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, model.InvalidURLError("invalid redirection url")
	}
	if u.IsAbs() {
		return u, nil
	}
	return base.ResolveReference(u), nil
}
