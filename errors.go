package basita

import "github.com/rotisserie/eris"

// ErrMalformedHandle is returned when the textual form of a handle is not a valid uuid.
var ErrMalformedHandle = eris.New("malformed handle")

// ErrMalformedCollection is returned when the wire form of a Collection or
// an EntityCollection can not be decoded.
var ErrMalformedCollection = eris.New("malformed collection")
