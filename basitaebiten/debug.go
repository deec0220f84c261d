package basitaebiten

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp/v2"
)

// DebugDraw draws the shapes of a physics space on top of the screen.
type DebugDraw[S any] struct {
	Space *cp.Space
}

func (d DebugDraw[S]) Draw(screen *ebiten.Image, state S) {
	cp.DrawSpace(d.Space, debugImage{Image: screen})
}

type debugImage struct {
	Image *ebiten.Image
}

func (d debugImage) draw(p vector.Path, outline cp.FColor, fill cp.FColor) {
	dpo := &vector.DrawPathOptions{}
	dpo.ColorScale.Scale(fill.R*fill.A, fill.G*fill.A, fill.B*fill.A, fill.A)
	vector.FillPath(d.Image, &p, &vector.FillOptions{}, dpo)

	*dpo = vector.DrawPathOptions{}
	dpo.ColorScale.Scale(outline.R*outline.A, outline.G*outline.A, outline.B*outline.A, outline.A)
	vector.StrokePath(d.Image, &p, &vector.StrokeOptions{Width: 1}, dpo)
}

func (d debugImage) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	x, y := float32(pos.X), float32(pos.Y)

	var p vector.Path
	p.Arc(x, y, float32(radius), 0, math.Pi*2, vector.Clockwise)
	p.MoveTo(x, y)
	p.LineTo(x+float32(math.Cos(angle)*radius), y+float32(math.Sin(angle)*radius))

	d.draw(p, outline, fill)
}

func (d debugImage) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	var p vector.Path
	p.MoveTo(float32(a.X), float32(a.Y))
	p.LineTo(float32(b.X), float32(b.Y))
	d.draw(p, fill, cp.FColor{})
}

func (d debugImage) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	var p vector.Path
	p.MoveTo(float32(a.X), float32(a.Y))
	p.LineTo(float32(b.X), float32(b.Y))

	dpo := &vector.DrawPathOptions{}
	dpo.ColorScale.Scale(outline.R*outline.A, outline.G*outline.A, outline.B*outline.A, outline.A)
	vector.StrokePath(d.Image, &p, &vector.StrokeOptions{Width: float32(max(1, 2*radius))}, dpo)
}

func (d debugImage) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count == 0 {
		return
	}

	var p vector.Path
	p.MoveTo(float32(verts[0].X), float32(verts[0].Y))
	for _, vert := range verts[1:count] {
		p.LineTo(float32(vert.X), float32(vert.Y))
	}
	p.Close()

	d.draw(p, outline, fill)
}

func (d debugImage) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	d.DrawCircle(pos, 0, size/2, fill, fill, data)
}

func (d debugImage) Flags() uint {
	return 0
}

func (d debugImage) OutlineColor() cp.FColor {
	return cp.FColor{R: 1, G: 1, B: 1, A: 1}
}

func (d debugImage) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape.Sensor() {
		return cp.FColor{R: 1, G: 1, A: 0.25}
	}

	return cp.FColor{G: 1, A: 0.5}
}

func (d debugImage) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.75, A: 1}
}

func (d debugImage) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, A: 1}
}

func (d debugImage) Data() interface{} {
	return nil
}
