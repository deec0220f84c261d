package input

import (
	"testing"

	"github.com/oliverbestmann/basita"
	"github.com/oliverbestmann/basita/internal/set"
	"github.com/stretchr/testify/require"
)

const (
	KeyLeft Key = iota
	KeyRight
	KeyJump
)

type fakeSource struct {
	down    set.Set[Key]
	sampled map[Key]int
}

func (f *fakeSource) IsKeyPressed(key Key) bool {
	if f.sampled == nil {
		f.sampled = map[Key]int{}
	}

	f.sampled[key]++
	return f.down.Has(key)
}

func TestInput(t *testing.T) {
	var source fakeSource
	var in Input

	jump := in.NewButton(KeyJump)
	left := in.NewButton(KeyLeft)

	in.Update(&source)
	require.False(t, in.IsPressed(jump))
	require.False(t, in.WasPressed(jump))
	require.False(t, in.WasReleased(jump))

	source.down.Insert(KeyJump)
	in.Update(&source)
	require.True(t, in.IsPressed(jump))
	require.True(t, in.WasPressed(jump))
	require.False(t, in.IsPressed(left))

	// held down, no edge anymore
	in.Update(&source)
	require.True(t, in.IsPressed(jump))
	require.False(t, in.WasPressed(jump))

	source.down.Remove(KeyJump)
	in.Update(&source)
	require.False(t, in.IsPressed(jump))
	require.True(t, in.WasReleased(jump))

	in.Update(&source)
	require.False(t, in.WasReleased(jump))
}

func TestInput_SharedKey(t *testing.T) {
	var source fakeSource
	var in Input

	a := in.NewButton(KeyRight)
	b := in.NewButton(KeyRight)

	source.down.Insert(KeyRight)
	in.Update(&source)

	require.True(t, in.WasPressed(a))
	require.True(t, in.WasPressed(b))

	// each key is sampled once per update
	require.Equal(t, 1, source.sampled[KeyRight])
}

func TestInput_UnboundButton(t *testing.T) {
	var in Input
	require.Panics(t, func() { in.IsPressed(0) })
	require.Panics(t, func() { in.WasPressed(-1) })
}

type testState struct {
	basita.Core
	Input Input
}

func (s *testState) PlayerInput() *Input {
	return &s.Input
}

func TestSystem(t *testing.T) {
	var source fakeSource
	source.down.Insert(KeyLeft)

	state := &testState{}
	left := state.Input.NewButton(KeyLeft)

	scheduler := basita.NewScheduler[*testState](System[*testState](&source))
	scheduler.Init(state)
	require.True(t, state.Input.WasPressed(left))

	require.True(t, scheduler.Step(state))
	require.True(t, state.Input.IsPressed(left))
	require.False(t, state.Input.WasPressed(left))
}
