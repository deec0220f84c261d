package main

import (
	"github.com/oliverbestmann/basita"
	"github.com/oliverbestmann/basita/input"
	"github.com/oliverbestmann/basita/scene"
)

type State struct {
	basita.Core

	World *scene.World
	Input input.Input
}

func (s *State) Scene() *scene.World {
	return s.World
}

func (s *State) PlayerInput() *input.Input {
	return &s.Input
}
