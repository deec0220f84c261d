// Package physics simulates the bodies and colliders of a scene.World
// using the chipmunk port github.com/jakecoffman/cp.
package physics

import (
	"log/slog"
	"time"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/basita"
	"github.com/oliverbestmann/basita/components"
	"github.com/oliverbestmann/basita/gm"
	"github.com/oliverbestmann/basita/internal/set"
	"github.com/oliverbestmann/basita/scene"
)

type State interface {
	basita.Runnable
	Scene() *scene.World
	FrameTime() *basita.Time
}

type Config struct {
	Gravity gm.Vec

	// duration of a single simulation step, defaults to 1/120s
	Step time.Duration
}

type BodyHandle = basita.Handle[components.PhysicBody]
type ColliderHandle = basita.Handle[components.Collider]

// System mirrors the bodies and colliders of the world into a cp.Space.
// The components stay the source of truth: positions and velocities are
// copied into the space before and back into the components after stepping.
type System[S State] struct {
	config Config
	space  *cp.Space

	bodies map[BodyHandle]*cp.Body
	shapes map[ColliderHandle]*cp.Shape

	// world space position of static shapes at the time they were added
	placements map[ColliderHandle]gm.Vec

	accumulator time.Duration
}

func NewSystem[S State](config Config) *System[S] {
	if config.Step <= 0 {
		config.Step = time.Second / 120
	}

	space := cp.NewSpace()
	space.SetGravity(cp.Vector(config.Gravity))

	return &System[S]{
		config: config,
		space:  space,
		bodies:     map[BodyHandle]*cp.Body{},
		shapes:     map[ColliderHandle]*cp.Shape{},
		placements: map[ColliderHandle]gm.Vec{},
	}
}

// Space returns the simulated space, e.g. for debug drawing.
func (s *System[S]) Space() *cp.Space {
	return s.space
}

func (s *System[S]) String() string {
	return "PhysicsSystem"
}

func (s *System[S]) Init(state S) {
	s.sync(state.Scene())
}

func (s *System[S]) Update(state S) {
	world := state.Scene()

	s.sync(world)

	s.accumulator += state.FrameTime().Delta

	step := s.config.Step
	for s.accumulator >= step {
		s.accumulator -= step
		s.integrate(world, step.Seconds())
		s.space.Step(step.Seconds())
	}

	s.writeBack(world)
}

func (s *System[S]) sync(world *scene.World) {
	var seenBodies set.Set[BodyHandle]

	for handle, body := range world.Bodies.Iter() {
		seenBodies.Insert(handle)

		cpBody, ok := s.bodies[handle]
		if !ok {
			cpBody = s.addBody(handle, body)
		}

		if !body.IsStatic() && cpBody.Mass() != body.Mass() {
			cpBody.SetMass(body.Mass())
		}

		transform := world.Transforms.Get(body.Transform)
		cpBody.SetPosition(cp.Vector(transform.Position))
		cpBody.SetVelocityVector(cp.Vector(body.Velocity))
	}

	for handle, cpBody := range s.bodies {
		if !seenBodies.Has(handle) {
			s.removeBody(handle, cpBody)
		}
	}

	var seenColliders set.Set[ColliderHandle]

	for handle, collider := range world.Colliders.Iter() {
		seenColliders.Insert(handle)

		if shape, ok := s.shapes[handle]; ok {
			placement, static := s.placements[handle]
			if !static || placement == staticPlacement(world, collider) {
				continue
			}

			// static shapes can not move, replace it at its new position
			s.removeShape(handle, shape)
		}

		s.addShape(world, handle, collider)
	}

	for handle, shape := range s.shapes {
		if !seenColliders.Has(handle) {
			s.removeShape(handle, shape)
		}
	}
}

func staticPlacement(world *scene.World, collider components.Collider) gm.Vec {
	transform := world.Transforms.Get(collider.Transform)
	return transform.Position.Add(collider.Offset)
}

func (s *System[S]) removeShape(handle ColliderHandle, shape *cp.Shape) {
	s.space.RemoveShape(shape)
	delete(s.shapes, handle)
	delete(s.placements, handle)
}

func (s *System[S]) addBody(handle BodyHandle, body components.PhysicBody) *cp.Body {
	var cpBody *cp.Body

	if body.IsStatic() {
		// not affected by gravity or collisions, still moves with its velocity
		cpBody = cp.NewKinematicBody()
	} else {
		// bodies do not rotate, the rotation of a transform is not simulated
		cpBody = cp.NewBody(body.Mass(), cp.INFINITY)
	}

	cpBody.UserData = handle

	slog.Debug("Add physics body", slog.Any("body", handle), slog.Bool("static", body.IsStatic()))

	s.space.AddBody(cpBody)
	s.bodies[handle] = cpBody

	return cpBody
}

func (s *System[S]) removeBody(handle BodyHandle, cpBody *cp.Body) {
	slog.Debug("Remove physics body", slog.Any("body", handle))

	var shapes []*cp.Shape
	cpBody.EachShape(func(shape *cp.Shape) {
		shapes = append(shapes, shape)
	})

	for _, shape := range shapes {
		s.space.RemoveShape(shape)

		if collider, ok := shape.UserData.(ColliderHandle); ok {
			delete(s.shapes, collider)
			delete(s.placements, collider)
		}
	}

	s.space.RemoveBody(cpBody)
	delete(s.bodies, handle)
}

func (s *System[S]) addShape(world *scene.World, handle ColliderHandle, collider components.Collider) {
	offset := collider.Offset
	elasticity := 1.0

	cpBody := s.space.StaticBody

	static := collider.Body.IsZero()
	if static {
		// static shapes live in world space
		offset = staticPlacement(world, collider)
	} else {
		body, ok := s.bodies[collider.Body]
		if !ok {
			slog.Warn("Collider references unknown body",
				slog.Any("collider", handle),
				slog.Any("body", collider.Body))

			return
		}

		cpBody = body
		elasticity = world.Bodies.Get(collider.Body).Bounciness
	}

	var shape *cp.Shape

	switch {
	case collider.Shape.Box != nil:
		bounds := collider.Shape.Bounds(offset)
		bb := cp.BB{L: bounds.Min.X, B: bounds.Min.Y, R: bounds.Max.X, T: bounds.Max.Y}
		shape = cp.NewBox2(cpBody, bb, 0)

	case collider.Shape.Circle != nil:
		shape = cp.NewCircle(cpBody, collider.Shape.Circle.Radius, cp.Vector(offset))

	default:
		slog.Warn("Collider without shape", slog.Any("collider", handle))
		return
	}

	// elasticity of two shapes is multiplied, the body decides how bouncy a contact is
	shape.SetElasticity(elasticity)
	shape.SetFriction(0)
	shape.SetSensor(collider.IsTrigger)
	shape.UserData = handle

	s.space.AddShape(shape)
	s.shapes[handle] = shape

	if static {
		s.placements[handle] = offset
	}
}

func (s *System[S]) integrate(world *scene.World, dt float64) {
	for handle, body := range world.Bodies.Iter() {
		if body.Acceleration.IsZero() {
			continue
		}

		cpBody := s.bodies[handle]

		velocity := cpBody.Velocity().Add(cp.Vector(body.Acceleration.Mul(dt)))
		cpBody.SetVelocityVector(velocity)
	}
}

func (s *System[S]) writeBack(world *scene.World) {
	for handle, body := range world.Bodies.IterMut() {
		cpBody := s.bodies[handle]

		body.Velocity = gm.Vec(cpBody.Velocity())
		body.Acceleration = gm.VecZero

		transform := world.Transforms.Get(body.Transform)
		transform.Position = gm.Vec(cpBody.Position())
	}
}
