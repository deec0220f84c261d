package components

import (
	"github.com/oliverbestmann/basita"
)

// Name labels an entity.
type Name string

// Actor binds an entity to the components it is made of.
// Any of the handles may be zero.
type Actor struct {
	Transform basita.Handle[Transform]  `json:"transform"`
	Sprite    basita.Handle[Sprite]     `json:"sprite"`
	Body      basita.Handle[PhysicBody] `json:"body"`
}
