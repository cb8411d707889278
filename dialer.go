package hopwire

import (
	"github.com/avaserth/hopwire/internal/dialer"
	"github.com/avaserth/hopwire/internal/model"
)

type Dialer = model.Dialer
type CoreDialer = dialer.CoreDialer

type ResolveConfig = dialer.ResolveConfig
