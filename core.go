package basita

// Core is meant to be embedded into an engine state. It carries the running
// flag checked by the Scheduler and the frame Time. The zero value is running.
type Core struct {
	stopped bool

	Time Time
}

func (c *Core) Running() bool {
	return !c.stopped
}

// Stop asks the scheduler to stop. The current frame is completed,
// no other frame is started.
func (c *Core) Stop() {
	c.stopped = true
}

func (c *Core) FrameTime() *Time {
	return &c.Time
}
