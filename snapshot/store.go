// Package snapshot persists serialized worlds under a name.
package snapshot

import (
	"context"

	"github.com/oliverbestmann/basita/scene"
	"github.com/rotisserie/eris"
)

var ErrNotFound = eris.New("snapshot not found")

type Store interface {
	Save(ctx context.Context, name string, data []byte) error

	// Load returns the snapshot with the given name. The error matches
	// ErrNotFound if no such snapshot exists.
	Load(ctx context.Context, name string) ([]byte, error)
}

func SaveWorld(ctx context.Context, store Store, name string, world *scene.World) error {
	bz, err := scene.Marshal(world)
	if err != nil {
		return err
	}

	return eris.Wrapf(store.Save(ctx, name, bz), "save snapshot %q", name)
}

func LoadWorld(ctx context.Context, store Store, name string) (*scene.World, error) {
	bz, err := store.Load(ctx, name)
	if err != nil {
		return nil, eris.Wrapf(err, "load snapshot %q", name)
	}

	return scene.Unmarshal(bz)
}

func validName(name string) error {
	if name == "" {
		return eris.New("snapshot name must not be empty")
	}

	return nil
}
