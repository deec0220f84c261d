package basitaebiten

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/basita"
	"github.com/oliverbestmann/basita/components"
	"github.com/oliverbestmann/basita/gm"
	"github.com/oliverbestmann/basita/scene"
	"github.com/stretchr/testify/require"
)

type testState struct {
	basita.Core
	World   *scene.World
	Inits   int
	Updates int
}

func (s *testState) Scene() *scene.World {
	return s.World
}

func counting(stopAfter int) basita.System[*testState] {
	return basita.SystemFuncs[*testState]{
		Name:   "Counting",
		OnInit: func(state *testState) { state.Inits++ },
		OnUpdate: func(state *testState) {
			state.Updates++
			if state.Updates == stopAfter {
				state.Stop()
			}
		},
	}
}

func TestGame_Update(t *testing.T) {
	state := &testState{}
	game := NewGame(basita.NewScheduler(counting(3)), state)

	// the first update initializes and runs the first frame
	require.NoError(t, game.Update())
	require.Equal(t, 1, state.Inits)
	require.Equal(t, 1, state.Updates)

	require.NoError(t, game.Update())
	require.NoError(t, game.Update())
	require.Equal(t, 3, state.Updates)

	// the stop is observed at the start of the next frame
	require.ErrorIs(t, game.Update(), ebiten.Termination)
	require.ErrorIs(t, game.Update(), ebiten.Termination)
	require.Equal(t, 1, state.Inits)
	require.Equal(t, 3, state.Updates)
}

func TestGame_StopDuringInit(t *testing.T) {
	state := &testState{}

	stopper := basita.SystemFuncs[*testState]{
		OnInit: func(state *testState) { state.Stop() },
	}

	game := NewGame(basita.NewScheduler[*testState](stopper, counting(-1)), state)

	require.ErrorIs(t, game.Update(), ebiten.Termination)
	require.Equal(t, 1, state.Inits)
	require.Zero(t, state.Updates)
}

func TestGame_Layout(t *testing.T) {
	game := NewGame(basita.NewScheduler[*testState](), &testState{})

	w, h := game.Layout(640, 480)
	require.Equal(t, 640, w)
	require.Equal(t, 480, h)
	require.Equal(t, gm.VecOf(640, 480), game.ScreenSize())
}

func TestDrawOrder(t *testing.T) {
	world := scene.NewWorld()
	transform := world.Transforms.Add(components.NewTransform(gm.VecZero))

	for _, depth := range []int{2, 0, 1, 0, 2} {
		world.Sprites.Add(components.Sprite{Depth: depth, Transform: transform})
	}

	order := drawOrder(world, nil)

	// ties keep their collection order
	require.Equal(t, []int{1, 3, 2, 0, 4}, order)
}

func TestSpriteVisibility(t *testing.T) {
	screen := gm.Rect{Max: gm.VecOf(800, 600)}

	visible := func(position gm.Vec, size gm.Vec) bool {
		return isVisible(screen, spriteCorners(size, components.NewTransform(position)))
	}

	require.True(t, visible(gm.VecOf(400, 300), gm.VecOf(32, 32)))

	// partially on screen
	require.True(t, visible(gm.VecOf(-10, 300), gm.VecOf(32, 32)))
	require.True(t, visible(gm.VecOf(400, 610), gm.VecOf(32, 32)))

	require.False(t, visible(gm.VecOf(-20, 300), gm.VecOf(32, 32)))
	require.False(t, visible(gm.VecOf(400, 700), gm.VecOf(32, 32)))
	require.False(t, visible(gm.VecOf(900, -100), gm.VecOf(32, 32)))

	t.Run("rotated", func(t *testing.T) {
		transform := components.NewTransform(gm.VecOf(-10, 300))
		transform.Rotation = math.Pi / 4

		// the rotated corner reaches into the screen
		corners := spriteCorners(gm.VecOf(24, 24), transform)
		require.True(t, isVisible(screen, corners))

		transform.Rotation = 0
		corners = spriteCorners(gm.VecOf(18, 18), transform)
		require.False(t, isVisible(screen, corners))
	})
}

func TestTimingLines(t *testing.T) {
	scheduler := basita.NewScheduler(counting(-1))
	state := &testState{}

	scheduler.Init(state)
	scheduler.Step(state)

	lines := timingLines(scheduler.Timings())
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], "Counting")
	require.Contains(t, lines[0], "runs=    1")
}
