package components

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rotisserie/eris"
)

// Tint is a color multiplied into a sprite. It serializes as a hex string like "#ff8800".
type Tint struct {
	colorful.Color
}

var TintWhite = Tint{Color: colorful.Color{R: 1, G: 1, B: 1}}

func ParseTint(hex string) (Tint, error) {
	color, err := colorful.Hex(hex)
	if err != nil {
		return Tint{}, eris.Wrapf(err, "parse tint %q", hex)
	}

	return Tint{Color: color}, nil
}

func (t Tint) MarshalText() ([]byte, error) {
	return []byte(t.Hex()), nil
}

func (t *Tint) UnmarshalText(text []byte) error {
	parsed, err := ParseTint(string(text))
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}
