// Package middlewares carries optional per-hop middlewares for the
// hopwire client. A middleware wraps the hop handler, so it runs once per
// connection the redirect loop makes, not once per send.
package middlewares

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/avaserth/hopwire"
)

// RequestID stamps each hop with a fresh X-Request-Id unless the caller
// already set one, so multi-hop sends can be correlated server-side.
func RequestID() hopwire.Middleware {
	return func(next hopwire.Handler) hopwire.Handler {
		return func(ctx context.Context, req *hopwire.PreparedRequest) (*hopwire.Response, error) {
			if req.Header.Get("X-Request-Id") == "" {
				req.Header.Set("X-Request-Id", uuid.NewString())
			}
			return next(ctx, req)
		}
	}
}

// RateLimit gates every hop on lim, blocking until a token is available
// or ctx is done. Redirect hops count against the limit like any other
// connection.
func RateLimit(lim *rate.Limiter) hopwire.Middleware {
	return func(next hopwire.Handler) hopwire.Handler {
		return func(ctx context.Context, req *hopwire.PreparedRequest) (*hopwire.Response, error) {
			if err := lim.Wait(ctx); err != nil {
				return nil, err
			}
			return next(ctx, req)
		}
	}
}

// UserAgent sets a default User-Agent on hops that don't carry one.
func UserAgent(ua string) hopwire.Middleware {
	return func(next hopwire.Handler) hopwire.Handler {
		return func(ctx context.Context, req *hopwire.PreparedRequest) (*hopwire.Response, error) {
			if req.Header.Get("User-Agent") == "" {
				req.Header.Set("User-Agent", ua)
			}
			return next(ctx, req)
		}
	}
}
