// Package scene bundles the component collections of the engine into a World
// that can be loaded from and saved to scene files.
package scene

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/goccy/go-json"
	"github.com/oliverbestmann/basita"
	"github.com/oliverbestmann/basita/components"
	"github.com/rotisserie/eris"
)

type World struct {
	Transforms *basita.Collection[components.Transform]  `json:"transforms"`
	Sprites    *basita.Collection[components.Sprite]     `json:"sprites"`
	Colliders  *basita.Collection[components.Collider]   `json:"colliders"`
	Bodies     *basita.Collection[components.PhysicBody] `json:"bodies"`

	Names  *basita.EntityCollection[components.Name]  `json:"names"`
	Actors *basita.EntityCollection[components.Actor] `json:"actors"`
}

func NewWorld() *World {
	return &World{
		Transforms: basita.NewCollection[components.Transform](),
		Sprites:    basita.NewCollection[components.Sprite](),
		Colliders:  basita.NewCollection[components.Collider](),
		Bodies:     basita.NewCollection[components.PhysicBody](),
		Names:      basita.NewEntityCollection[components.Name](),
		Actors:     basita.NewEntityCollection[components.Actor](),
	}
}

// Clear removes every component from the world.
func (w *World) Clear() {
	w.Transforms.Clear()
	w.Sprites.Clear()
	w.Colliders.Clear()
	w.Bodies.Clear()
	w.Names.Clear()
	w.Actors.Clear()
}

// EntityNamed returns the first entity with the given name.
func (w *World) EntityNamed(name components.Name) (basita.EntityId, bool) {
	for entity, value := range w.Names.Iter() {
		if value == name {
			return entity, true
		}
	}

	return 0, false
}

// Entities returns an allocator that continues after the highest entity in the world.
func (w *World) Entities() *basita.EntityIds {
	var ids basita.EntityIds

	for entity := range w.Names.Iter() {
		ids.Observe(entity)
	}

	for entity := range w.Actors.Iter() {
		ids.Observe(entity)
	}

	return &ids
}

// Load decodes a world from a scene file. Sections missing from the
// file stay empty. The decoded world is validated.
func Load(r io.Reader) (*World, error) {
	world := NewWorld()

	if err := json.NewDecoder(r).Decode(world); err != nil {
		return nil, eris.Wrap(err, "decode world")
	}

	world.fillMissing()

	if err := Validate(world); err != nil {
		return nil, err
	}

	slog.Debug(
		"Loaded world",
		slog.Int("transforms", world.Transforms.Len()),
		slog.Int("sprites", world.Sprites.Len()),
		slog.Int("colliders", world.Colliders.Len()),
		slog.Int("bodies", world.Bodies.Len()),
		slog.Int("names", world.Names.Count()),
		slog.Int("actors", world.Actors.Count()),
	)

	return world, nil
}

func Unmarshal(data []byte) (*World, error) {
	return Load(bytes.NewReader(data))
}

// Save writes the world as an indented scene file.
func Save(w io.Writer, world *World) error {
	bz, err := json.MarshalIndent(world, "", "  ")
	if err != nil {
		return eris.Wrap(err, "encode world")
	}

	if _, err := w.Write(bz); err != nil {
		return eris.Wrap(err, "write world")
	}

	return nil
}

func Marshal(world *World) ([]byte, error) {
	var buf bytes.Buffer
	if err := Save(&buf, world); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// an explicit null in a scene file resets a section to nil
func (w *World) fillMissing() {
	if w.Transforms == nil {
		w.Transforms = basita.NewCollection[components.Transform]()
	}

	if w.Sprites == nil {
		w.Sprites = basita.NewCollection[components.Sprite]()
	}

	if w.Colliders == nil {
		w.Colliders = basita.NewCollection[components.Collider]()
	}

	if w.Bodies == nil {
		w.Bodies = basita.NewCollection[components.PhysicBody]()
	}

	if w.Names == nil {
		w.Names = basita.NewEntityCollection[components.Name]()
	}

	if w.Actors == nil {
		w.Actors = basita.NewEntityCollection[components.Actor]()
	}
}
