package playback

import (
	"time"

	"github.com/avelis/sortlab/internal/trace"
)

// Status is the playback state. Transitions:
//
//	Load     any      -> Ready
//	Play     Ready, Paused -> Playing
//	Pause    Playing  -> Paused
//	Step*    Ready, Paused, Finished -> Paused (Finished at the last step)
//	Tick     Playing, at last step -> Finished
//	Restart  any loaded -> Ready
type Status int

const (
	Idle Status = iota
	Ready
	Playing
	Paused
	Finished
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

const DefaultDelay = 80 * time.Millisecond

// Controller is a cursor over a loaded trace. It is the single writer of
// its own state; the presentation layer only reads. Auto-advance happens
// exclusively inside Tick, so pausing or reloading halts it immediately
// and no partial step is ever observable.
type Controller struct {
	tr     *trace.Trace
	cursor int
	status Status
	delay  time.Duration
	last   time.Time
}

func NewController() *Controller {
	return &Controller{status: Idle, delay: DefaultDelay}
}

// Load installs a trace and resets the cursor, discarding any prior
// playback position.
func (c *Controller) Load(tr *trace.Trace) {
	c.tr = tr
	c.cursor = 0
	c.status = Ready
	c.last = time.Time{}
	if tr == nil {
		c.status = Idle
	}
}

// Play starts auto-advance. Only Ready and Paused may start playing.
func (c *Controller) Play() {
	if c.status == Ready || c.status == Paused {
		c.status = Playing
		c.last = time.Time{}
	}
}

// Pause halts auto-advance immediately.
func (c *Controller) Pause() {
	if c.status == Playing {
		c.status = Paused
	}
}

// StepForward advances the cursor by one, clamped to the last step.
func (c *Controller) StepForward() {
	if c.tr == nil || c.status == Playing {
		return
	}
	c.seek(c.cursor + 1)
}

// StepBackward moves the cursor back by one, clamped to zero. Stepping
// back out of Finished resumes Paused.
func (c *Controller) StepBackward() {
	if c.tr == nil || c.status == Playing {
		return
	}
	c.seek(c.cursor - 1)
}

// Seek jumps to step i, clamped to [0, len-1].
func (c *Controller) Seek(i int) {
	if c.tr == nil || c.status == Playing {
		return
	}
	c.seek(i)
}

// Restart rewinds to the first step and pauses.
func (c *Controller) Restart() {
	if c.tr == nil {
		return
	}
	c.cursor = 0
	c.status = Ready
	c.last = time.Time{}
}

// Tick advances the cursor while Playing, honoring the configured delay.
// It reports whether the cursor moved. Reaching the final step transitions
// to Finished.
func (c *Controller) Tick(now time.Time) bool {
	if c.status != Playing || c.tr == nil {
		return false
	}
	if !c.last.IsZero() && now.Sub(c.last) < c.delay {
		return false
	}
	c.last = now
	if c.cursor >= c.tr.Len()-1 {
		c.status = Finished
		return false
	}
	c.cursor++
	if c.cursor == c.tr.Len()-1 {
		c.status = Finished
	}
	return true
}

// SetDelay sets the cadence between automatic advances. Non-positive
// values fall back to the default.
func (c *Controller) SetDelay(d time.Duration) {
	if d <= 0 {
		d = DefaultDelay
	}
	c.delay = d
}

func (c *Controller) Delay() time.Duration { return c.delay }
func (c *Controller) Status() Status       { return c.status }
func (c *Controller) Cursor() int          { return c.cursor }
func (c *Controller) Trace() *trace.Trace  { return c.tr }

// Current returns the step under the cursor.
func (c *Controller) Current() (trace.Step, bool) {
	if c.tr == nil || c.tr.Len() == 0 {
		return trace.Step{}, false
	}
	return c.tr.Steps[c.cursor], true
}

// Progress is the cursor position as a fraction of the trace length.
func (c *Controller) Progress() float64 {
	if c.tr == nil || c.tr.Len() <= 1 {
		return 1.0
	}
	return float64(c.cursor) / float64(c.tr.Len()-1)
}

func (c *Controller) seek(i int) {
	last := c.tr.Len() - 1
	if i < 0 {
		i = 0
	}
	if i > last {
		i = last
	}
	c.cursor = i
	if i == last {
		c.status = Finished
	} else {
		c.status = Paused
	}
}
