package components

import (
	"github.com/oliverbestmann/basita"
	"github.com/oliverbestmann/basita/gm"
)

type Sprite struct {
	Depth int `json:"depth"`

	// path of the image asset, the storage never interprets it.
	// Sprites without image are drawn as a rectangle of Size.
	Image string `json:"image,omitempty"`

	Size gm.Vec `json:"size"`

	// a nil tint draws the image unchanged
	Tint *Tint `json:"tint,omitempty"`

	Transform basita.Handle[Transform] `json:"transform"`
}

// TintOrWhite returns the tint of the sprite, white if no tint is set.
func (s Sprite) TintOrWhite() Tint {
	if s.Tint == nil {
		return TintWhite
	}

	return *s.Tint
}
