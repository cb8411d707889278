package internal

import (
	"context"
	"io"

	"github.com/avaserth/hopwire/internal/dialer"
)

var defaultDialer = &dialer.CoreDialer{}

func (c *Client) dial(ctx context.Context, req *PreparedRequest) (io.ReadWriteCloser, error) {
	if c.dialer != nil {
		return c.dialer.Dial(ctx, req)
	}
	return defaultDialer.Dial(ctx, req)
}
