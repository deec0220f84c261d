package basitaebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/basita/input"
)

// Keyboard reads the ebiten keyboard. Keys are ebiten.Key values.
type Keyboard struct{}

var _ input.Source = Keyboard{}

func (Keyboard) IsKeyPressed(key input.Key) bool {
	return ebiten.IsKeyPressed(ebiten.Key(key))
}

func KeyOf(key ebiten.Key) input.Key {
	return input.Key(key)
}
