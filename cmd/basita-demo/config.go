package main

import (
	"github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
)

type Config struct {
	Title  string `config:"BASITA_TITLE"`
	Width  int    `config:"BASITA_WIDTH"`
	Height int    `config:"BASITA_HEIGHT"`
	TPS    int    `config:"BASITA_TPS"`

	// scene file to start with
	World string `config:"BASITA_WORLD"`

	// name of the snapshot written on exit, empty disables snapshots
	Snapshot string `config:"BASITA_SNAPSHOT"`

	// snapshots go to redis if set, to SnapshotDir otherwise
	RedisAddress string `config:"BASITA_REDIS_ADDRESS"`
	SnapshotDir  string `config:"BASITA_SNAPSHOT_DIR"`

	LogLevel string `config:"BASITA_LOG_LEVEL"`

	// one of cpu, mem or empty
	Profile string `config:"BASITA_PROFILE"`

	DebugColliders bool `config:"BASITA_DEBUG_COLLIDERS"`
	ShowTimings    bool `config:"BASITA_SHOW_TIMINGS"`
}

func LoadConfig() (Config, error) {
	cfg := Config{
		Title:       "basita",
		Width:       800,
		Height:      600,
		TPS:         60,
		World:       "resources/worlds/world1.json",
		SnapshotDir: "snapshots",
		LogLevel:    "info",
	}

	if err := config.FromEnv().To(&cfg); err != nil {
		return Config{}, eris.Wrap(err, "load config from env")
	}

	return cfg, nil
}
