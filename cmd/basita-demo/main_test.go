package main

import (
	"context"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/basita"
	"github.com/oliverbestmann/basita/input"
	"github.com/oliverbestmann/basita/snapshot"
	"github.com/stretchr/testify/require"
)

type keys map[ebiten.Key]bool

func (k keys) IsKeyPressed(key input.Key) bool {
	return k[ebiten.Key(key)]
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 800, cfg.Width)
	require.Equal(t, "resources/worlds/world1.json", cfg.World)

	t.Setenv("BASITA_WIDTH", "1024")
	t.Setenv("BASITA_SNAPSHOT", "quicksave")

	cfg, err = LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 1024, cfg.Width)
	require.Equal(t, 600, cfg.Height)
	require.Equal(t, "quicksave", cfg.Snapshot)
}

func TestLoadWorld(t *testing.T) {
	world, err := loadWorld("resources/worlds/world1.json")
	require.NoError(t, err)

	_, ok := world.EntityNamed("player")
	require.True(t, ok)

	_, err = loadWorld("resources/worlds/missing.json")
	require.Error(t, err)
}

func TestPlayerSystem(t *testing.T) {
	world, err := loadWorld("resources/worlds/world1.json")
	require.NoError(t, err)

	pressed := keys{}
	state := &State{World: world}

	scheduler := basita.NewScheduler[*State](
		input.System[*State](pressed),
		&PlayerSystem{},
	)

	scheduler.Init(state)

	pressed[ebiten.KeyArrowRight] = true
	require.True(t, scheduler.Step(state))

	body, ok := (&PlayerSystem{}).playerBody(state)
	require.True(t, ok)
	require.Equal(t, float64(playerSpeed), body.Velocity.X)

	pressed[ebiten.KeySpace] = true
	require.True(t, scheduler.Step(state))
	require.Equal(t, float64(-jumpSpeed), body.Velocity.Y)

	pressed[ebiten.KeyEscape] = true
	require.True(t, scheduler.Step(state))
	require.False(t, state.Running())
	require.False(t, scheduler.Step(state))
}

func TestSnapshotSystem(t *testing.T) {
	world, err := loadWorld("resources/worlds/world1.json")
	require.NoError(t, err)

	store := snapshot.FileStore{Dir: t.TempDir()}
	pressed := keys{}
	state := &State{World: world}

	scheduler := basita.NewScheduler[*State](
		input.System[*State](pressed),
		&SnapshotSystem{Store: store, Name: "quicksave"},
	)

	scheduler.Init(state)

	pressed[ebiten.KeyF5] = true
	scheduler.Step(state)

	_, err = store.Load(context.Background(), "quicksave")
	require.NoError(t, err)

	// move the only body and restore it from the snapshot
	transform := world.Transforms.HandleAt(0)
	original := world.Transforms.Get(transform).Position
	world.Transforms.Get(transform).Position.X += 100

	pressed[ebiten.KeyF5] = false
	pressed[ebiten.KeyF9] = true
	scheduler.Step(state)

	require.Equal(t, original, state.World.Transforms.Get(transform).Position)
}
