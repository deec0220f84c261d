// Package assets loads assets from a file system once and addresses them by index.
package assets

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"reflect"
	"time"

	"github.com/rotisserie/eris"
)

var ErrLoadAsset = eris.New("load asset")

type Loader[T any] interface {
	Load(path string, r io.Reader) (T, error)
}

type LoaderFunc[T any] func(path string, r io.Reader) (T, error)

func (f LoaderFunc[T]) Load(path string, r io.Reader) (T, error) {
	return f(path, r)
}

// Id is the index of an asset in its Store.
type Id int

// Store caches loaded assets by their cleaned path. Assets are never unloaded.
type Store[T any] struct {
	fs     fs.FS
	loader Loader[T]

	values []T
	paths  map[string]Id
}

func NewStore[T any](fsys fs.FS, loader Loader[T]) *Store[T] {
	return &Store[T]{
		fs:     fsys,
		loader: loader,
		paths:  map[string]Id{},
	}
}

// Load returns the id of the asset at path, loading it on first use.
// A failed load is not cached, the next call tries again.
func (s *Store[T]) Load(p string) (Id, error) {
	// cleanup path to improve cache hits
	p = path.Clean(p)

	if id, ok := s.paths[p]; ok {
		return id, nil
	}

	startTime := time.Now()

	value, err := s.load(p)
	if err != nil {
		slog.Warn("Failed to load asset",
			slog.String("type", reflect.TypeFor[T]().String()),
			slog.String("path", p),
			slog.Duration("duration", time.Since(startTime)),
			slog.String("error", err.Error()))

		return 0, err
	}

	slog.Debug("Finish loading asset",
		slog.String("type", reflect.TypeFor[T]().String()),
		slog.String("path", p),
		slog.Duration("duration", time.Since(startTime)))

	id := Id(len(s.values))
	s.values = append(s.values, value)
	s.paths[p] = id

	return id, nil
}

func (s *Store[T]) load(p string) (T, error) {
	var tZero T

	fp, err := s.fs.Open(p)
	if err != nil {
		return tZero, eris.Wrapf(ErrLoadAsset, "open %q: %s", p, err)
	}

	defer func() { _ = fp.Close() }()

	value, err := s.loader.Load(p, fp)
	if err != nil {
		return tZero, eris.Wrapf(ErrLoadAsset, "%q with loader %T: %s", p, s.loader, err)
	}

	return value, nil
}

// At returns the asset with the given id. Panics if no such asset was loaded.
func (s *Store[T]) At(id Id) T {
	if id < 0 || int(id) >= len(s.values) {
		panic(fmt.Sprintf("invalid asset id %d for store of %s", id, reflect.TypeFor[T]()))
	}

	return s.values[id]
}

// Get returns the asset at path if it was loaded before.
func (s *Store[T]) Get(p string) (T, bool) {
	id, ok := s.paths[path.Clean(p)]
	if !ok {
		var tZero T
		return tZero, false
	}

	return s.values[id], true
}

func (s *Store[T]) Len() int {
	return len(s.values)
}
