package scene

import (
	"github.com/oliverbestmann/basita"
	"github.com/oliverbestmann/basita/components"
	"github.com/rotisserie/eris"
)

// ErrDanglingHandle is returned if a component references a value
// that does not exist in the world.
var ErrDanglingHandle = eris.New("dangling handle")

// Validate checks that every handle in the world resolves. Sprites, colliders
// and bodies must reference a transform. The body of a collider and all
// handles of an actor are optional and may be zero.
func Validate(world *World) error {
	for handle, sprite := range world.Sprites.Iter() {
		if err := required(world.Transforms, sprite.Transform); err != nil {
			return eris.Wrapf(err, "sprite %s", handle)
		}
	}

	for handle, collider := range world.Colliders.Iter() {
		if err := collider.Shape.Validate(); err != nil {
			return eris.Wrapf(err, "collider %s", handle)
		}

		if err := required(world.Transforms, collider.Transform); err != nil {
			return eris.Wrapf(err, "collider %s", handle)
		}

		if err := optional(world.Bodies, collider.Body); err != nil {
			return eris.Wrapf(err, "collider %s", handle)
		}
	}

	for handle, body := range world.Bodies.Iter() {
		if err := required(world.Transforms, body.Transform); err != nil {
			return eris.Wrapf(err, "body %s", handle)
		}
	}

	for entity, actor := range world.Actors.Iter() {
		errs := []error{
			optional(world.Transforms, actor.Transform),
			optional(world.Sprites, actor.Sprite),
			optional(world.Bodies, actor.Body),
		}

		for _, err := range errs {
			if err != nil {
				return eris.Wrapf(err, "actor %s", entity)
			}
		}
	}

	return nil
}

func required[T any](collection *basita.Collection[T], handle basita.Handle[T]) error {
	if handle.IsZero() {
		return eris.Wrapf(ErrDanglingHandle, "missing %T", *new(T))
	}

	return optional(collection, handle)
}

func optional[T any](collection *basita.Collection[T], handle basita.Handle[T]) error {
	if handle.IsZero() || collection.Contains(handle) {
		return nil
	}

	return eris.Wrapf(ErrDanglingHandle, "%T %s", *new(T), handle)
}
