package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/basita"
	"github.com/oliverbestmann/basita/assets"
	"github.com/oliverbestmann/basita/basitaebiten"
	"github.com/oliverbestmann/basita/gm"
	"github.com/oliverbestmann/basita/input"
	"github.com/oliverbestmann/basita/physics"
	"github.com/oliverbestmann/basita/scene"
	"github.com/oliverbestmann/basita/snapshot"
	"github.com/pkg/profile"
	"github.com/rotisserie/eris"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Demo failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	switch cfg.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	world, err := loadWorld(cfg.World)
	if err != nil {
		return err
	}

	ctx := context.Background()

	state := &State{World: world}

	physicsSystem := physics.NewSystem[*State](physics.Config{
		Gravity: gm.VecOf(0, 600),
	})

	scheduler := basita.NewScheduler[*State](
		basita.TimeSystem[*State](nil),
		input.System[*State](basitaebiten.Keyboard{}),
		&PlayerSystem{},
		physicsSystem,
	)

	var store snapshot.Store
	if cfg.Snapshot != "" {
		store, err = openSnapshotStore(ctx, cfg)
		if err != nil {
			return err
		}

		scheduler.Add(&SnapshotSystem{Store: store, Name: cfg.Snapshot})
	}

	images := assets.NewStore[*ebiten.Image](os.DirFS("resources"), basitaebiten.ImageLoader{})

	game := basitaebiten.NewGame(scheduler, state)
	game.AddDrawer(&basitaebiten.SpriteRenderer[*State]{Images: images})

	if cfg.DebugColliders {
		game.AddDrawer(basitaebiten.DebugDraw[*State]{Space: physicsSystem.Space()})
	}

	if cfg.ShowTimings {
		game.AddDrawer(basitaebiten.TimingsOverlay[*State]{Scheduler: scheduler})
	}

	window := basitaebiten.WindowConfig{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
		TPS:    cfg.TPS,
	}

	if err := basitaebiten.Run(window, game); err != nil {
		return err
	}

	slog.Info("Game stopped", slog.Uint64("frames", scheduler.Frame()))

	if store != nil {
		if err := snapshot.SaveWorld(ctx, store, cfg.Snapshot, state.World); err != nil {
			return err
		}

		slog.Info("Saved snapshot on exit", slog.String("name", cfg.Snapshot))
	}

	return nil
}

func loadWorld(path string) (*scene.World, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "open world %q", path)
	}

	defer func() { _ = fp.Close() }()

	world, err := scene.Load(fp)
	if err != nil {
		return nil, eris.Wrapf(err, "load world %q", path)
	}

	return world, nil
}
