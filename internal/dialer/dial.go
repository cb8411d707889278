package dialer

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	"net/url"

	"github.com/avaserth/hopwire/internal/model"
)

var schemes = map[string]string{
	"http": "80", "https": "443",
}

var zeroDialer net.Dialer
var customDnsDialer = net.Dialer{
	Resolver: &customServerResolver,
}

// HostPort extracts the address a hop connects to: the URL's host, and
// its port or the scheme's well-known default.
func HostPort(u *url.URL) (host, port string, err error) {
	host = u.Hostname()
	if host == "" {
		return "", "", model.InvalidURLError("url has no host")
	}
	port = u.Port()
	if port == "" {
		port = schemes[u.Scheme]
	}
	if port == "" {
		return "", "", model.InvalidURLError("url has no port")
	}
	return host, port, nil
}

// Dial opens a fresh stream for one hop, plaintext for http and a TLS
// client connection for https. Any other scheme is rejected before any
// network activity happens.
func (d *CoreDialer) Dial(ctx context.Context, r *model.PreparedRequest) (io.ReadWriteCloser, error) {
	host, port, err := HostPort(r.U)
	if err != nil {
		return nil, err
	}
	switch r.U.Scheme {
	case "http", "https":
	default:
		return nil, model.InvalidURLError("url contains unsupported scheme")
	}

	conn, err := d.dialTCP(ctx, host, port)
	if err != nil {
		return nil, err
	}
	if r.U.Scheme == "https" {
		config := d.TLSConfig.Clone()
		if config == nil {
			config = &tls.Config{}
		}
		if config.ServerName == "" {
			config.ServerName = host
		}
		if config.NextProtos == nil {
			config.NextProtos = []string{"http/1.1"}
		}
		c := tls.Client(conn, config)
		if err := c.HandshakeContext(ctx); err != nil {
			conn.Close()
			return nil, err
		}
		return c, nil
	}
	return conn, nil
}

func (d *CoreDialer) dialTCP(ctx context.Context, host, port string) (net.Conn, error) {
	// as of now net.Dialer could handle current DNS configurations
	network, dialer, dialctx, dst := "tcp", &zeroDialer, ctx, net.JoinHostPort(host, port)

	if cfg := d.ResolveConfig; cfg != nil {
		if cfg.Network == "ip4" {
			network = "tcp4"
		} else if cfg.Network == "ip6" {
			network = "tcp6"
		}
		if static, ok := cfg.StaticHosts[host]; ok {
			dst = net.JoinHostPort(static, port)
		}
		if dns := cfg.CustomDNSServer; dns != "" {
			dialctx = dnsServerCtx{dialctx, dns}
			dialer = &customDnsDialer
		}
	}
	return dialer.DialContext(dialctx, network, dst)
}
