package basita

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/require"
)

type Transform struct {
	X, Y float64
}

type Sprite struct {
	Depth     int               `json:"depth"`
	Name      string            `json:"name"`
	Transform Handle[Transform] `json:"transform"`
}

func TestHandle_Equality(t *testing.T) {
	id := uuid.New()

	a := handleOf[Transform](id)
	b := handleOf[Transform](id)
	c := newHandle[Transform]()

	require.Equal(t, a, b)
	require.True(t, a == b)
	require.True(t, a != c)

	set := map[Handle[Transform]]int{a: 1}
	set[b] = 2
	set[c] = 3
	require.Len(t, set, 2)
	require.Equal(t, 2, set[a])
}

func TestHandle_Text(t *testing.T) {
	handle := newHandle[Transform]()

	text, err := handle.MarshalText()
	require.NoError(t, err)
	require.Equal(t, handle.Id().String(), string(text))
	require.Equal(t, handle.String(), string(text))

	parsed, err := ParseHandle[Transform](string(text))
	require.NoError(t, err)
	require.Equal(t, handle, parsed)
}

func TestHandle_Malformed(t *testing.T) {
	handle, err := ParseHandle[Transform]("not-a-uuid")
	require.Error(t, err)
	require.True(t, eris.Is(err, ErrMalformedHandle))
	require.True(t, handle.IsZero())

	var target Handle[Transform]
	err = target.UnmarshalText([]byte("1234"))
	require.True(t, eris.Is(err, ErrMalformedHandle))

	t.Run("only the canonical form", func(t *testing.T) {
		canonical := newHandle[Transform]().String()
		undashed := strings.ReplaceAll(canonical, "-", "")

		for _, text := range []string{"urn:uuid:" + canonical, "{" + canonical + "}", undashed} {
			_, err := ParseHandle[Transform](text)
			require.True(t, eris.Is(err, ErrMalformedHandle), "accepted %q", text)
		}

		parsed, err := ParseHandle[Transform](canonical)
		require.NoError(t, err)
		require.Equal(t, canonical, parsed.String())
	})
}

func TestHandle_EmbeddedInComponent(t *testing.T) {
	transform := newHandle[Transform]()

	bz, err := json.Marshal(Sprite{Depth: 2, Transform: transform})
	require.NoError(t, err)
	require.JSONEq(t, `{"depth": 2, "name": "", "transform": "`+transform.String()+`"}`, string(bz))

	var decoded Sprite
	require.NoError(t, json.Unmarshal(bz, &decoded))
	require.Equal(t, transform, decoded.Transform)

	err = json.Unmarshal([]byte(`{"transform": "not-a-uuid"}`), &decoded)
	require.Error(t, err)
}

func TestHandle_Zero(t *testing.T) {
	var handle Handle[Transform]
	require.True(t, handle.IsZero())
	require.False(t, newHandle[Transform]().IsZero())
}
