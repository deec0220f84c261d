package basita

import (
	"iter"
	"log/slog"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

// EntityId is the numeric identity of an entity. Entity ids are owned by the caller,
// storages only use them as an index.
type EntityId uint32

func (e EntityId) String() string {
	return strconv.Itoa(int(e))
}

func (e EntityId) LogValue() slog.Value {
	return slog.StringValue(e.String())
}

// EntityIds hands out entity ids in increasing order, starting at zero.
type EntityIds struct {
	next EntityId
}

func (e *EntityIds) Reserve() EntityId {
	id := e.next
	e.next++
	return id
}

// Observe makes sure that ids reserved later do not collide with the given one.
func (e *EntityIds) Observe(id EntityId) {
	e.next = max(e.next, id+1)
}

// the largest entity id accepted when decoding, protects against
// allocating gigabytes of empty slots for a single bogus id.
const maxDecodedEntityId = 1 << 20

// EntityCollection stores at most one value per entity, backed by a SlotStorage.
type EntityCollection[T any] struct {
	slots SlotStorage[T]
}

func NewEntityCollection[T any]() *EntityCollection[T] {
	return &EntityCollection[T]{}
}

func (c *EntityCollection[T]) Set(entity EntityId, value T) {
	c.slots.Set(int(entity), value)
}

// Get returns the value of the given entity, if there is one.
func (c *EntityCollection[T]) Get(entity EntityId) (*T, bool) {
	return c.slots.Get(int(entity))
}

func (c *EntityCollection[T]) Lookup(entity EntityId) (*T, bool) {
	return c.Get(entity)
}

func (c *EntityCollection[T]) Has(entity EntityId) bool {
	_, ok := c.slots.Get(int(entity))
	return ok
}

func (c *EntityCollection[T]) Remove(entity EntityId) bool {
	return c.slots.Remove(int(entity))
}

func (c *EntityCollection[T]) Clear() {
	c.slots.Clear()
}

// Len returns the number of slots, use it as the bound for At.
func (c *EntityCollection[T]) Len() int {
	return c.slots.Len()
}

// Count returns the number of entities that have a value.
func (c *EntityCollection[T]) Count() int {
	return c.slots.Count()
}

// At returns the value at the given slot position, for linear scans that
// do not care about entity identity.
func (c *EntityCollection[T]) At(index int) (*T, bool) {
	return c.slots.Get(index)
}

func (c *EntityCollection[T]) IterMut() iter.Seq2[EntityId, *T] {
	return func(yield func(EntityId, *T) bool) {
		for id, value := range c.slots.All() {
			if !yield(EntityId(id), value) {
				return
			}
		}
	}
}

func (c *EntityCollection[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for id, value := range c.slots.All() {
			if !yield(EntityId(id), *value) {
				return
			}
		}
	}
}

// MarshalJSON encodes the collection as an array of [entity, value] pairs in ascending entity order.
func (c *EntityCollection[T]) MarshalJSON() ([]byte, error) {
	pairs := make([][2]any, 0, c.Count())
	for entity, value := range c.IterMut() {
		pairs = append(pairs, [2]any{entity, value})
	}

	bz, err := json.Marshal(pairs)
	if err != nil {
		return nil, eris.Wrap(err, "encode entity collection")
	}

	return bz, nil
}

func (c *EntityCollection[T]) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}

	var pairs []json.RawMessage
	if err := json.Unmarshal(data, &pairs); err != nil {
		return eris.Wrapf(ErrMalformedCollection, "decode sequence: %s", err)
	}

	var decoded SlotStorage[T]

	for idx, raw := range pairs {
		var entity EntityId
		var value T

		if err := decodePair(raw, &entity, &value); err != nil {
			return eris.Wrapf(ErrMalformedCollection, "entry %d: %s", idx, err)
		}

		if entity > maxDecodedEntityId {
			return eris.Wrapf(ErrMalformedCollection, "entry %d: entity %s out of range", idx, entity)
		}

		if _, exists := decoded.Get(int(entity)); exists {
			return eris.Wrapf(ErrMalformedCollection, "entry %d: duplicate entity %s", idx, entity)
		}

		decoded.Set(int(entity), value)
	}

	c.slots = decoded

	return nil
}
