package components

import (
	"github.com/oliverbestmann/basita"
	"github.com/oliverbestmann/basita/gm"
)

type PhysicBody struct {
	Velocity     gm.Vec `json:"velocity"`
	Acceleration gm.Vec `json:"acceleration"`

	// zero means infinite mass, the body does not move
	InvertedMass float64 `json:"inverted_mass"`
	Bounciness   float64 `json:"bounciness"`

	Transform basita.Handle[Transform] `json:"transform"`
}

func (b PhysicBody) IsStatic() bool {
	return b.InvertedMass == 0
}

// Mass returns the mass of a dynamic body. Must not be called for static bodies.
func (b PhysicBody) Mass() float64 {
	return 1 / b.InvertedMass
}
