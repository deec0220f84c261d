package basita

import (
	"time"
)

// MaxFrameDelta caps the delta of a single frame, so a long pause (a debugger,
// a dragged window) does not teleport everything in the next frame.
const MaxFrameDelta = 250 * time.Millisecond

// Time tracks the progression of frames.
type Time struct {
	Elapsed   time.Duration
	Delta     time.Duration
	DeltaSecs float64

	// number of frames advanced
	Frame uint64

	lastTime time.Time
}

// Advance moves time to now. The first call only records the starting point.
func (t *Time) Advance(now time.Time) {
	if t.lastTime.IsZero() {
		t.lastTime = now
		return
	}

	delta := min(max(now.Sub(t.lastTime), 0), MaxFrameDelta)
	t.lastTime = now

	t.Delta = delta
	t.DeltaSecs = delta.Seconds()
	t.Elapsed += delta
	t.Frame++
}

type TimeSource interface {
	Runnable
	FrameTime() *Time
}

// TimeSystem advances the state's Time once per frame. A nil clock uses time.Now.
func TimeSystem[S TimeSource](clock func() time.Time) System[S] {
	if clock == nil {
		clock = time.Now
	}

	return timeSystem[S]{clock: clock}
}

type timeSystem[S TimeSource] struct {
	clock func() time.Time
}

func (t timeSystem[S]) Init(state S) {
	state.FrameTime().Advance(t.clock())
}

func (t timeSystem[S]) Update(state S) {
	state.FrameTime().Advance(t.clock())
}

func (t timeSystem[S]) String() string {
	return "TimeSystem"
}
