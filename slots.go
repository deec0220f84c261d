package basita

import (
	"fmt"
	"iter"
)

// SlotStorage stores at most one value per slot id, using the id as
// a direct index into a slice. Slots between the occupied ones stay empty.
//
// Pointers returned by Get and All stay valid until the storage grows.
// The zero value is an empty storage ready to use.
type SlotStorage[T any] struct {
	slots []slot[T]
	count int
}

type slot[T any] struct {
	value    T
	occupied bool
}

// Set places the value at the given slot, replacing any previous value.
// The storage grows to fit the slot id. Panics on a negative slot id.
func (s *SlotStorage[T]) Set(id int, value T) {
	if id < 0 {
		panic(fmt.Sprintf("negative slot id %d", id))
	}

	if id >= len(s.slots) {
		s.grow(id + 1)
	}

	slot := &s.slots[id]
	if !slot.occupied {
		slot.occupied = true
		s.count++
	}

	slot.value = value
}

func (s *SlotStorage[T]) grow(size int) {
	prevSize := len(s.slots)

	if size > cap(s.slots) {
		// at least double the capacity so runs of increasing ids do not reallocate every time
		slots := make([]slot[T], size, max(size, 2*cap(s.slots)))
		copy(slots, s.slots)
		s.slots = slots
		return
	}

	s.slots = s.slots[:size]
	clear(s.slots[prevSize:])
}

// Get returns the value in the given slot. An out of range or empty slot is absent.
func (s *SlotStorage[T]) Get(id int) (*T, bool) {
	if id < 0 || id >= len(s.slots) {
		return nil, false
	}

	slot := &s.slots[id]
	if !slot.occupied {
		return nil, false
	}

	return &slot.value, true
}

// Remove empties the given slot. Returns false if the slot was already empty.
func (s *SlotStorage[T]) Remove(id int) bool {
	if id < 0 || id >= len(s.slots) || !s.slots[id].occupied {
		return false
	}

	s.slots[id] = slot[T]{}
	s.count--

	return true
}

// Clear empties all slots. The allocated slots are kept.
func (s *SlotStorage[T]) Clear() {
	clear(s.slots)
	s.count = 0
}

// Len returns the number of slots, including empty ones.
func (s *SlotStorage[T]) Len() int {
	return len(s.slots)
}

// Count returns the number of occupied slots.
func (s *SlotStorage[T]) Count() int {
	return s.count
}

// All yields the occupied slots in ascending id order.
func (s *SlotStorage[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for id := range s.slots {
			slot := &s.slots[id]
			if !slot.occupied {
				continue
			}

			if !yield(id, &slot.value) {
				return
			}
		}
	}
}
