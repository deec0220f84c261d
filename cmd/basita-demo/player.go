package main

import (
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/basita"
	"github.com/oliverbestmann/basita/basitaebiten"
	"github.com/oliverbestmann/basita/components"
	"github.com/oliverbestmann/basita/input"
)

const playerSpeed = 150
const jumpSpeed = 320

// PlayerSystem moves the actor named "player" and stops the game on escape.
type PlayerSystem struct {
	left, right, jump, exit input.Button
}

func (p *PlayerSystem) String() string {
	return "PlayerSystem"
}

func (p *PlayerSystem) Init(state *State) {
	p.left = state.Input.NewButton(basitaebiten.KeyOf(ebiten.KeyArrowLeft))
	p.right = state.Input.NewButton(basitaebiten.KeyOf(ebiten.KeyArrowRight))
	p.jump = state.Input.NewButton(basitaebiten.KeyOf(ebiten.KeySpace))
	p.exit = state.Input.NewButton(basitaebiten.KeyOf(ebiten.KeyEscape))

	if _, ok := state.World.EntityNamed("player"); !ok {
		slog.Warn("World has no player")
	}
}

func (p *PlayerSystem) Update(state *State) {
	if state.Input.WasPressed(p.exit) {
		slog.Info("Exit requested")
		state.Stop()
		return
	}

	body, ok := p.playerBody(state)
	if !ok {
		return
	}

	var direction float64
	if state.Input.IsPressed(p.left) {
		direction -= 1
	}

	if state.Input.IsPressed(p.right) {
		direction += 1
	}

	body.Velocity.X = direction * playerSpeed

	// only jump while standing
	if state.Input.WasPressed(p.jump) && math.Abs(body.Velocity.Y) < 1 {
		body.Velocity.Y = -jumpSpeed
	}
}

func (p *PlayerSystem) playerBody(state *State) (*components.PhysicBody, bool) {
	// looked up every frame, a snapshot may replace the world content
	entity, ok := state.World.EntityNamed("player")
	if !ok {
		return nil, false
	}

	actor, ok := state.World.Actors.Get(entity)
	if !ok || actor.Body.IsZero() {
		return nil, false
	}

	return state.World.Bodies.Lookup(actor.Body)
}

var _ basita.System[*State] = (*PlayerSystem)(nil)
