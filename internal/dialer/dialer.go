// Package dialer opens the transport stream for one hop: a plaintext TCP
// connection for http URLs, a TLS client connection for https URLs. Every
// hop dials fresh; nothing is pooled or reused.
package dialer

import (
	"crypto/tls"

	"github.com/avaserth/hopwire/internal/model"
)

// Dialer is re-exported here so wrappers in this package stay close to
// the implementation they wrap.
type Dialer = model.Dialer

// CoreDialer is the default Dialer. The zero value is usable.
type CoreDialer struct {
	ResolveConfig *ResolveConfig

	TLSConfig *tls.Config // the config to use for https hops
}

func (d *CoreDialer) Clone() *CoreDialer {
	return &CoreDialer{
		ResolveConfig: d.ResolveConfig.Clone(),
		TLSConfig:     d.TLSConfig.Clone(),
	}
}

func (d *CoreDialer) Unwrap() Dialer {
	return nil
}
