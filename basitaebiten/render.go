package basitaebiten

import (
	"cmp"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/oliverbestmann/basita/assets"
	"github.com/oliverbestmann/basita/components"
	"github.com/oliverbestmann/basita/gm"
	"github.com/oliverbestmann/basita/internal/set"
	"github.com/oliverbestmann/basita/scene"
)

// SpriteRenderer draws the sprites of the scene. Sprites with a lower
// depth are drawn first, sprites of the same depth in collection order.
// Sprites outside of the screen are skipped.
type SpriteRenderer[S SceneState] struct {
	Images *assets.Store[*ebiten.Image]

	order  []int
	failed set.Set[string]
}

func (r *SpriteRenderer[S]) Draw(screen *ebiten.Image, state S) {
	world := state.Scene()

	r.order = drawOrder(world, r.order[:0])

	screenRect := gm.Rect{Max: imageSize(screen)}

	for _, idx := range r.order {
		sprite := world.Sprites.GetAt(idx)
		transform := world.Transforms.Get(sprite.Transform)

		img := r.image(sprite.Image)

		size := sprite.Size
		if img != nil && size.IsZero() {
			size = imageSize(img)
		}

		corners := spriteCorners(size, *transform)
		if !isVisible(screenRect, corners) {
			continue
		}

		if img != nil {
			drawImage(screen, img, *sprite, *transform)
		} else {
			drawRect(screen, corners, sprite.TintOrWhite())
		}
	}
}

func (r *SpriteRenderer[S]) image(path string) *ebiten.Image {
	if path == "" || r.Images == nil || r.failed.Has(path) {
		return nil
	}

	id, err := r.Images.Load(path)
	if err != nil {
		// draw the placeholder instead, do not retry every frame
		r.failed.Insert(path)
		return nil
	}

	return r.Images.At(id)
}

func drawOrder(world *scene.World, order []int) []int {
	for idx := range world.Sprites.Len() {
		order = append(order, idx)
	}

	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(world.Sprites.GetAt(a).Depth, world.Sprites.GetAt(b).Depth)
	})

	return order
}

func imageSize(img *ebiten.Image) gm.Vec {
	return gm.VecOf(float64(img.Bounds().Dx()), float64(img.Bounds().Dy()))
}

// spriteCorners returns the corners of a sprite of the given size in world space.
func spriteCorners(size gm.Vec, transform components.Transform) [4]gm.Vec {
	half := size.Mul(0.5)

	return [4]gm.Vec{
		transform.Apply(gm.VecOf(-half.X, -half.Y)),
		transform.Apply(gm.VecOf(half.X, -half.Y)),
		transform.Apply(gm.VecOf(half.X, half.Y)),
		transform.Apply(gm.VecOf(-half.X, half.Y)),
	}
}

func isVisible(screen gm.Rect, corners [4]gm.Vec) bool {
	return gm.RectEnclosing(corners[:]...).Intersects(screen)
}

func drawImage(screen *ebiten.Image, img *ebiten.Image, sprite components.Sprite, transform components.Transform) {
	imgSize := imageSize(img)

	scale := transform.Scale
	if !sprite.Size.IsZero() {
		scale = scale.MulEach(sprite.Size.DivEach(imgSize))
	}

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-imgSize.X/2, -imgSize.Y/2)
	op.GeoM.Scale(scale.X, scale.Y)
	op.GeoM.Rotate(float64(transform.Rotation))
	op.GeoM.Translate(transform.Position.X, transform.Position.Y)
	op.ColorScale.ScaleWithColor(sprite.TintOrWhite())
	op.Filter = ebiten.FilterLinear

	screen.DrawImage(img, &op)
}

func drawRect(screen *ebiten.Image, corners [4]gm.Vec, tint components.Tint) {
	var p vector.Path
	p.MoveTo(float32(corners[0].X), float32(corners[0].Y))
	for _, corner := range corners[1:] {
		p.LineTo(float32(corner.X), float32(corner.Y))
	}
	p.Close()

	dpo := &vector.DrawPathOptions{}
	dpo.ColorScale.ScaleWithColor(tint)
	vector.FillPath(screen, &p, &vector.FillOptions{}, dpo)
}
