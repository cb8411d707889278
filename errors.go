package hopwire

import "github.com/avaserth/hopwire/internal/model"

type InvalidURLError = model.InvalidURLError
type InvalidResponseError = model.InvalidResponseError

var (
	ErrTooManyRedirects = model.ErrTooManyRedirects
	ErrRequestReused    = model.ErrRequestReused
)
