package gm

import (
	"fmt"
	"math"
)

var VecZero = Vec{}
var VecOne = Vec{X: 1, Y: 1}

type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func VecOf(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// VecSplat returns a vector with both components set to the given value.
func VecSplat(value float64) Vec {
	return Vec{X: value, Y: value}
}

func (v Vec) Add(other Vec) Vec {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v Vec) Sub(other Vec) Vec {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v Vec) Mul(scalar float64) Vec {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v Vec) MulEach(other Vec) Vec {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

func (v Vec) DivEach(other Vec) Vec {
	v.X /= other.X
	v.Y /= other.Y
	return v
}

// Rotated rotates the vector counter clockwise around the origin.
func (v Vec) Rotated(angle Rad) Vec {
	sin, cos := math.Sincos(float64(angle))
	return Vec{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vec) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}
