package basitaebiten

import (
	"image"
	"io"

	_ "image/jpeg"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/basita/assets"
	"github.com/rotisserie/eris"
)

type ImageLoader struct{}

var _ assets.Loader[*ebiten.Image] = ImageLoader{}

func (ImageLoader) Load(path string, r io.Reader) (*ebiten.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, eris.Wrap(err, "decode image")
	}

	return ebiten.NewImageFromImage(img), nil
}
