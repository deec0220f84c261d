package basitaebiten

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/oliverbestmann/basita"
)

// TimingsOverlay prints the timings of every system of the scheduler.
type TimingsOverlay[S basita.Runnable] struct {
	Scheduler *basita.Scheduler[S]
}

func (t TimingsOverlay[S]) Draw(screen *ebiten.Image, state S) {
	for row, text := range timingLines(t.Scheduler.Timings()) {
		ebitenutil.DebugPrintAt(screen, text, 16, 16+16*row)
	}
}

func timingLines(systems []basita.SystemTimings) []string {
	var maxNameLength int
	for _, sys := range systems {
		maxNameLength = max(maxNameLength, len(sys.Name))
	}

	lines := make([]string, 0, len(systems))

	for _, sys := range systems {
		text := fmt.Sprintf("%-[1]*s runs=%5d, latest:%6.2fms, min:%6.2fms, max:%6.2fms, avg:%6.2fms",
			maxNameLength,
			sys.Name,
			sys.Timings.Count,
			sys.Timings.Latest.Seconds()*1000,
			sys.Timings.Min.Seconds()*1000,
			sys.Timings.Max.Seconds()*1000,
			sys.Timings.MovingAverage.Seconds()*1000,
		)

		lines = append(lines, text)
	}

	return lines
}
