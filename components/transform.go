package components

import (
	"github.com/oliverbestmann/basita/gm"
)

type Transform struct {
	Position gm.Vec `json:"position"`
	Rotation gm.Rad `json:"rotation,omitempty"`
	Scale    gm.Vec `json:"scale"`
}

func NewTransform(position gm.Vec) Transform {
	return Transform{
		Position: position,
		Scale:    gm.VecOne,
	}
}

// Apply transforms a point from local into world space.
func (t Transform) Apply(local gm.Vec) gm.Vec {
	return local.MulEach(t.Scale).Rotated(t.Rotation).Add(t.Position)
}
