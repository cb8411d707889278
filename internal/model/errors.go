package model

import "errors"

// InvalidURLError reports a URL that cannot be used to open a connection
// or to resolve a redirect: a missing host, a port that is neither explicit
// nor defaultable from the scheme, an unsupported scheme, or an unparsable
// redirect target.
type InvalidURLError string

func (e InvalidURLError) Error() string { return "hopwire: invalid url: " + string(e) }

// InvalidResponseError reports a response the redirect loop cannot act on,
// such as a redirection status without a usable Location header.
type InvalidResponseError string

func (e InvalidResponseError) Error() string { return "hopwire: invalid response: " + string(e) }

// ErrTooManyRedirects is returned when a send exceeds the client's
// redirect cap. See [Client.MaxRedirects].
var ErrTooManyRedirects = errors.New("hopwire: too many redirects")

// ErrRequestReused is returned when a Request that already drove a send
// is passed to a second one. A Request is consumed by its send.
var ErrRequestReused = errors.New("hopwire: request already sent")
