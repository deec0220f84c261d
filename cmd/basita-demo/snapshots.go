package main

import (
	"context"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/basita"
	"github.com/oliverbestmann/basita/basitaebiten"
	"github.com/oliverbestmann/basita/input"
	"github.com/oliverbestmann/basita/snapshot"
)

func openSnapshotStore(ctx context.Context, cfg Config) (snapshot.Store, error) {
	if cfg.RedisAddress != "" {
		return snapshot.DialRedis(ctx, cfg.RedisAddress)
	}

	return snapshot.FileStore{Dir: cfg.SnapshotDir}, nil
}

// SnapshotSystem saves the world on F5 and restores it on F9.
type SnapshotSystem struct {
	Store snapshot.Store
	Name  string

	save, restore input.Button
}

func (s *SnapshotSystem) String() string {
	return "SnapshotSystem"
}

func (s *SnapshotSystem) Init(state *State) {
	s.save = state.Input.NewButton(basitaebiten.KeyOf(ebiten.KeyF5))
	s.restore = state.Input.NewButton(basitaebiten.KeyOf(ebiten.KeyF9))
}

func (s *SnapshotSystem) Update(state *State) {
	ctx := context.Background()

	if state.Input.WasPressed(s.save) {
		if err := snapshot.SaveWorld(ctx, s.Store, s.Name, state.World); err != nil {
			slog.Warn("Failed to save snapshot", slog.String("error", err.Error()))
		} else {
			slog.Info("Saved snapshot", slog.String("name", s.Name))
		}
	}

	if state.Input.WasPressed(s.restore) {
		world, err := snapshot.LoadWorld(ctx, s.Store, s.Name)
		if err != nil {
			slog.Warn("Failed to load snapshot", slog.String("error", err.Error()))
			return
		}

		// handles are kept by the snapshot, the physics system reuses its bodies
		*state.World = *world
		slog.Info("Restored snapshot", slog.String("name", s.Name))
	}
}

var _ basita.System[*State] = (*SnapshotSystem)(nil)
