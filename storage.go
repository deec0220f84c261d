package basita

import "iter"

// Storage is the read and iterate contract shared by Collection and EntityCollection.
// Len is the exclusive upper bound for positional access through At.
type Storage[K comparable, T any] interface {
	Lookup(key K) (*T, bool)
	At(index int) (*T, bool)
	Len() int
	IterMut() iter.Seq2[K, *T]
}

var _ Storage[Handle[struct{}], struct{}] = (*Collection[struct{}])(nil)
var _ Storage[EntityId, struct{}] = (*EntityCollection[struct{}])(nil)
