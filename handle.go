package basita

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
)

// Handle identifies a single value within the Collection that issued it.
//
// The type parameter binds the handle to one component type. It has no
// runtime footprint: equality and hashing only look at the underlying id.
// A handle does not keep its value alive. Looking up a handle after its value
// was removed from the collection is a programming error.
//
// The zero Handle is never issued by a collection and can be used to
// express the absence of a reference.
type Handle[T any] struct {
	id uuid.UUID
}

const canonicalHandleLength = 36

func handleOf[T any](id uuid.UUID) Handle[T] {
	return Handle[T]{id: id}
}

func newHandle[T any]() Handle[T] {
	return handleOf[T](uuid.New())
}

// ParseHandle parses the canonical textual form of a handle, the 36 character
// dashed uuid. The error matches ErrMalformedHandle for any other input. The
// handle is not checked to refer to a live value, this is only discovered on lookup.
func ParseHandle[T any](text string) (Handle[T], error) {
	// uuid.Parse also accepts urn, braced and undashed forms
	if len(text) != canonicalHandleLength {
		return Handle[T]{}, eris.Wrapf(ErrMalformedHandle,
			"parse %q: expected %d characters, got %d", text, canonicalHandleLength, len(text))
	}

	id, err := uuid.Parse(text)
	if err != nil {
		return Handle[T]{}, eris.Wrapf(ErrMalformedHandle, "parse %q: %s", text, err)
	}

	return handleOf[T](id), nil
}

func (h Handle[T]) Id() uuid.UUID {
	return h.id
}

func (h Handle[T]) IsZero() bool {
	return h.id == uuid.Nil
}

func (h Handle[T]) String() string {
	return h.id.String()
}

func (h Handle[T]) LogValue() slog.Value {
	return slog.StringValue(h.String())
}

func (h Handle[T]) MarshalText() ([]byte, error) {
	return h.id.MarshalText()
}

func (h *Handle[T]) UnmarshalText(text []byte) error {
	parsed, err := ParseHandle[T](string(text))
	if err != nil {
		return err
	}

	*h = parsed
	return nil
}
