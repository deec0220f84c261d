package basita

import (
	"bytes"
	"fmt"
	"iter"
	"reflect"
	"slices"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

// Collection stores values in insertion order and addresses them by a Handle
// minted when the value is added.
//
// The sequence of (handle, value) pairs is the source of truth and the wire form.
// The handle to position index is derived from it and rebuilt after decoding.
//
// Pointers returned by Get, Lookup, GetAt and IterMut stay valid until the next
// call to Add, Remove or Clear. A Collection is not safe for concurrent use.
// The zero value is an empty collection ready to use.
type Collection[T any] struct {
	entries []entry[T]

	// derived from entries, never serialized
	index map[Handle[T]]int

	// incremented on every structural change
	version uint64
}

type entry[T any] struct {
	Handle Handle[T]
	Value  T
}

func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{
		index: map[Handle[T]]int{},
	}
}

func (c *Collection[T]) Len() int {
	return len(c.entries)
}

// Add appends the value and returns a new handle to it.
func (c *Collection[T]) Add(value T) Handle[T] {
	handle := newHandle[T]()

	if c.index == nil {
		c.index = map[Handle[T]]int{}
	}

	c.index[handle] = len(c.entries)
	c.entries = append(c.entries, entry[T]{Handle: handle, Value: value})
	c.version++

	return handle
}

// Get returns a pointer to the value of the given handle.
// It panics if the handle was not issued by this collection or its value was removed.
func (c *Collection[T]) Get(handle Handle[T]) *T {
	value, ok := c.Lookup(handle)
	if !ok {
		panic(fmt.Sprintf("invalid handle %s for collection of %s", handle, reflect.TypeFor[T]()))
	}

	return value
}

// Lookup is like Get but reports a missing handle instead of panicking.
func (c *Collection[T]) Lookup(handle Handle[T]) (*T, bool) {
	idx, ok := c.index[handle]
	if !ok {
		return nil, false
	}

	return &c.entries[idx].Value, true
}

func (c *Collection[T]) Contains(handle Handle[T]) bool {
	_, ok := c.index[handle]
	return ok
}

// GetAt returns the value at the given position. It panics if index is out of range.
func (c *Collection[T]) GetAt(index int) *T {
	return &c.entries[index].Value
}

// HandleAt returns the handle of the value at the given position.
// It panics if index is out of range.
func (c *Collection[T]) HandleAt(index int) Handle[T] {
	return c.entries[index].Handle
}

func (c *Collection[T]) At(index int) (*T, bool) {
	if index < 0 || index >= len(c.entries) {
		return nil, false
	}

	return &c.entries[index].Value, true
}

// Iter yields copies of all values in insertion order.
func (c *Collection[T]) Iter() iter.Seq2[Handle[T], T] {
	return func(yield func(Handle[T], T) bool) {
		version := c.version

		for idx := range c.entries {
			entry := &c.entries[idx]
			if !yield(entry.Handle, entry.Value) {
				return
			}

			c.checkUnchanged(version)
		}
	}
}

// IterMut yields pointers to all values in insertion order.
// Values may be modified, but values must not be added or removed while iterating.
func (c *Collection[T]) IterMut() iter.Seq2[Handle[T], *T] {
	return func(yield func(Handle[T], *T) bool) {
		version := c.version

		for idx := range c.entries {
			entry := &c.entries[idx]
			if !yield(entry.Handle, &entry.Value) {
				return
			}

			c.checkUnchanged(version)
		}
	}
}

func (c *Collection[T]) Handles() iter.Seq[Handle[T]] {
	return func(yield func(Handle[T]) bool) {
		for handle := range c.Iter() {
			if !yield(handle) {
				return
			}
		}
	}
}

// Remove deletes the value of the given handle. Values after it move down
// by one position, the iteration order of the remaining values is unchanged.
// Returns false if the handle is not part of this collection.
func (c *Collection[T]) Remove(handle Handle[T]) bool {
	idx, ok := c.index[handle]
	if !ok {
		return false
	}

	delete(c.index, handle)
	c.entries = slices.Delete(c.entries, idx, idx+1)

	for pos := idx; pos < len(c.entries); pos++ {
		c.index[c.entries[pos].Handle] = pos
	}

	c.version++

	return true
}

// Clear removes all values. All handles issued so far become invalid.
func (c *Collection[T]) Clear() {
	clear(c.entries)
	c.entries = c.entries[:0]
	clear(c.index)
	c.version++
}

func (c *Collection[T]) checkUnchanged(version uint64) {
	if c.version != version {
		panic(fmt.Sprintf("collection of %s modified during iteration", reflect.TypeFor[T]()))
	}
}

// reindex rebuilds the handle index from the entries.
func (c *Collection[T]) reindex() error {
	index := make(map[Handle[T]]int, len(c.entries))

	for idx, entry := range c.entries {
		if entry.Handle.IsZero() {
			return eris.Wrapf(ErrMalformedCollection, "entry %d: zero handle", idx)
		}

		if prev, exists := index[entry.Handle]; exists {
			return eris.Wrapf(ErrMalformedCollection,
				"entry %d: handle %s already used by entry %d", idx, entry.Handle, prev)
		}

		index[entry.Handle] = idx
	}

	c.index = index

	return nil
}

// MarshalJSON encodes the collection as an array of [handle, value] pairs.
func (c *Collection[T]) MarshalJSON() ([]byte, error) {
	pairs := make([][2]any, 0, len(c.entries))
	for _, entry := range c.entries {
		pairs = append(pairs, [2]any{entry.Handle, entry.Value})
	}

	bz, err := json.Marshal(pairs)
	if err != nil {
		return nil, eris.Wrapf(err, "encode collection of %s", reflect.TypeFor[T]())
	}

	return bz, nil
}

// UnmarshalJSON replaces the content of the collection with the decoded
// pairs and rebuilds the handle index. On error the collection is unchanged.
// A json null leaves the collection unchanged.
func (c *Collection[T]) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}

	var pairs []json.RawMessage
	if err := json.Unmarshal(data, &pairs); err != nil {
		return eris.Wrapf(ErrMalformedCollection, "decode sequence: %s", err)
	}

	decoded := Collection[T]{
		entries: make([]entry[T], 0, len(pairs)),
	}

	for idx, raw := range pairs {
		var handleText string
		var value T

		if err := decodePair(raw, &handleText, &value); err != nil {
			return eris.Wrapf(ErrMalformedCollection, "entry %d: %s", idx, err)
		}

		handle, err := ParseHandle[T](handleText)
		if err != nil {
			return eris.Wrapf(ErrMalformedCollection, "entry %d: %s", idx, err)
		}

		decoded.entries = append(decoded.entries, entry[T]{Handle: handle, Value: value})
	}

	if err := decoded.reindex(); err != nil {
		return err
	}

	c.entries = decoded.entries
	c.index = decoded.index
	c.version++

	return nil
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// decodePair decodes a two element json array into key and value.
func decodePair(raw json.RawMessage, key, value any) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(raw, &pair); err != nil {
		return err
	}

	if len(pair) != 2 {
		return fmt.Errorf("expected [key, value] pair, got %d elements", len(pair))
	}

	if err := json.Unmarshal(pair[0], key); err != nil {
		return fmt.Errorf("key: %w", err)
	}

	if err := json.Unmarshal(pair[1], value); err != nil {
		return fmt.Errorf("value: %w", err)
	}

	return nil
}
