package basita

import (
	"fmt"
	"log/slog"
	"time"
)

// Runnable is implemented by engine states. The scheduler keeps running
// frames as long as Running returns true.
type Runnable interface {
	Running() bool
}

type Phase uint8

const (
	PhaseInitializing Phase = iota
	PhaseRunning
	PhaseStopped
)

func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "Initializing"
	case PhaseRunning:
		return "Running"
	case PhaseStopped:
		return "Stopped"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// Scheduler drives a fixed, ordered list of systems. Systems are initialized
// once in registration order, then updated every frame in the same order
// until the state stops running. Panics raised by a system are not recovered.
type Scheduler[S Runnable] struct {
	systems     []scheduledSystem[S]
	phase       Phase
	initialized bool
	frame       uint64
}

type scheduledSystem[S Runnable] struct {
	System  System[S]
	Name    string
	Timings Timings
}

func NewScheduler[S Runnable](systems ...System[S]) *Scheduler[S] {
	var scheduler Scheduler[S]

	for _, system := range systems {
		scheduler.Add(system)
	}

	return &scheduler
}

// Add appends a system. Systems can only be added before Init.
func (s *Scheduler[S]) Add(system System[S]) {
	name := systemNameOf(system)

	if s.initialized {
		panic(fmt.Sprintf("can not add system %s after initialization", name))
	}

	slog.Debug("Register system",
		slog.String("name", name),
		slog.Int("position", len(s.systems)))

	s.systems = append(s.systems, scheduledSystem[S]{
		System: system,
		Name:   name,
	})
}

// Init runs the init phase of every system. It must be called exactly once.
func (s *Scheduler[S]) Init(state S) {
	if s.initialized {
		panic("scheduler already initialized")
	}

	s.initialized = true

	slog.Info("Initialize systems", slog.Int("count", len(s.systems)))

	for idx := range s.systems {
		s.systems[idx].System.Init(state)
	}

	s.phase = PhaseRunning
}

// Step runs a single frame. If the state is not running anymore, Step moves
// the scheduler to PhaseStopped and returns false without calling any system.
// A system stopping the state during a frame does not skip the systems after it.
func (s *Scheduler[S]) Step(state S) bool {
	if !s.initialized {
		panic("scheduler must be initialized before running a frame")
	}

	if s.phase == PhaseStopped {
		return false
	}

	if !state.Running() {
		s.phase = PhaseStopped
		slog.Info("Stop systems", slog.Uint64("frames", s.frame))
		return false
	}

	for idx := range s.systems {
		system := &s.systems[idx]

		startTime := time.Now()
		system.System.Update(state)
		system.Timings = system.Timings.Add(time.Since(startTime))
	}

	s.frame++

	return true
}

// Run initializes all systems and then runs frames until the state stops running.
func (s *Scheduler[S]) Run(state S) {
	s.Init(state)

	for s.Step(state) {
	}
}

func (s *Scheduler[S]) Phase() Phase {
	return s.phase
}

// Frame returns the number of completed frames.
func (s *Scheduler[S]) Frame() uint64 {
	return s.frame
}

// Timings returns the update timings of all systems in registration order.
func (s *Scheduler[S]) Timings() []SystemTimings {
	timings := make([]SystemTimings, 0, len(s.systems))
	for _, system := range s.systems {
		timings = append(timings, SystemTimings{
			Name:    system.Name,
			Timings: system.Timings,
		})
	}

	return timings
}
