package components

import (
	"github.com/oliverbestmann/basita"
	"github.com/oliverbestmann/basita/gm"
	"github.com/rotisserie/eris"
)

type BoxShape struct {
	HalfSize gm.Vec `json:"half_size"`
}

type CircleShape struct {
	Radius float64 `json:"radius"`
}

// Shape holds exactly one of the shape kinds.
type Shape struct {
	Box    *BoxShape    `json:"box,omitempty"`
	Circle *CircleShape `json:"circle,omitempty"`
}

func BoxOf(halfSize gm.Vec) Shape {
	return Shape{Box: &BoxShape{HalfSize: halfSize}}
}

func CircleOf(radius float64) Shape {
	return Shape{Circle: &CircleShape{Radius: radius}}
}

func (s Shape) Validate() error {
	switch {
	case s.Box != nil && s.Circle != nil:
		return eris.New("shape must not be both a box and a circle")

	case s.Box != nil:
		if s.Box.HalfSize.X <= 0 || s.Box.HalfSize.Y <= 0 {
			return eris.Errorf("box half size must be positive, got %s", s.Box.HalfSize)
		}

	case s.Circle != nil:
		if s.Circle.Radius <= 0 {
			return eris.Errorf("circle radius must be positive, got %v", s.Circle.Radius)
		}

	default:
		return eris.New("shape has no kind")
	}

	return nil
}

// Bounds returns the axis aligned bounding box of the shape centered at the given position.
func (s Shape) Bounds(center gm.Vec) gm.Rect {
	switch {
	case s.Box != nil:
		return gm.RectWithCenterAndSize(center, s.Box.HalfSize.Mul(2))
	case s.Circle != nil:
		return gm.RectWithCenterAndSize(center, gm.VecSplat(2*s.Circle.Radius))
	default:
		return gm.Rect{Min: center, Max: center}
	}
}

type Collider struct {
	Shape     Shape  `json:"shape"`
	Offset    gm.Vec `json:"offset"`
	IsTrigger bool   `json:"is_trigger,omitempty"`

	Transform basita.Handle[Transform] `json:"transform"`

	// the zero handle marks a static collider
	Body basita.Handle[PhysicBody] `json:"body"`
}
