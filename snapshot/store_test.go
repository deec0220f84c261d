package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/oliverbestmann/basita/components"
	"github.com/oliverbestmann/basita/gm"
	"github.com/oliverbestmann/basita/scene"
	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	s := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: s.Addr(),
	})

	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client), s
}

func stores(t *testing.T) map[string]Store {
	redisStore, _ := newRedisStore(t)

	return map[string]Store{
		"file":  FileStore{Dir: filepath.Join(t.TempDir(), "snapshots")},
		"redis": redisStore,
	}
}

func TestStore(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := store.Load(ctx, "missing")
			require.True(t, eris.Is(err, ErrNotFound))

			require.NoError(t, store.Save(ctx, "slot1", []byte(`first`)))
			require.NoError(t, store.Save(ctx, "slot1", []byte(`second`)))

			bz, err := store.Load(ctx, "slot1")
			require.NoError(t, err)
			require.Equal(t, "second", string(bz))

			require.Error(t, store.Save(ctx, "", []byte(`x`)))
		})
	}
}

func TestStore_World(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			world := scene.NewWorld()
			transform := world.Transforms.Add(components.NewTransform(gm.VecOf(3, 4)))
			world.Actors.Set(2, components.Actor{Transform: transform})

			require.NoError(t, SaveWorld(ctx, store, "quicksave", world))

			loaded, err := LoadWorld(ctx, store, "quicksave")
			require.NoError(t, err)

			actor, ok := loaded.Actors.Get(2)
			require.True(t, ok)
			require.Equal(t, gm.VecOf(3, 4), loaded.Transforms.Get(actor.Transform).Position)

			_, err = LoadWorld(ctx, store, "other")
			require.True(t, eris.Is(err, ErrNotFound))
		})
	}
}

func TestRedisStore_Key(t *testing.T) {
	store, server := newRedisStore(t)

	require.NoError(t, store.Save(context.Background(), "level", []byte(`{}`)))

	value, err := server.Get("basita:snapshot:level")
	require.NoError(t, err)
	require.Equal(t, `{}`, value)
}

func TestDialRedis(t *testing.T) {
	server := miniredis.RunT(t)

	store, err := DialRedis(context.Background(), server.Addr())
	require.NoError(t, err)
	require.NoError(t, store.Close())
}

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	store := FileStore{Dir: dir}
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "level", []byte(`{}`)))

	// only the snapshot remains, no temporary files
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "level.json", entries[0].Name())

	require.Error(t, store.Save(ctx, "../escape", []byte(`{}`)))
	require.Error(t, store.Save(ctx, "..", []byte(`{}`)))

	canceled, cancel := context.WithCancel(ctx)
	cancel()

	require.Error(t, store.Save(canceled, "level", []byte(`{}`)))
}

func TestStore_ErrorContext(t *testing.T) {
	t.Run("redis", func(t *testing.T) {
		store, server := newRedisStore(t)
		server.Close()

		err := store.Save(context.Background(), "level", []byte(`{}`))
		require.ErrorContains(t, err, `set snapshot key "basita:snapshot:level"`)

		_, err = store.Load(context.Background(), "level")
		require.ErrorContains(t, err, `get snapshot key "basita:snapshot:level"`)
	})

	t.Run("file", func(t *testing.T) {
		store := FileStore{Dir: t.TempDir()}

		canceled, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := store.Load(canceled, "level")
		require.ErrorContains(t, err, `load snapshot "level"`)

		err = store.Save(canceled, "level", []byte(`{}`))
		require.ErrorContains(t, err, `save snapshot "level"`)
	})
}
