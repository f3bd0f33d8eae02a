package manager

import (
	"time"

	"wurm-game/ai"
	"wurm-game/game/types"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

type Mode int

const (
	ModeTitle Mode = iota
	ModePlaying
	ModeGameOver
	ModeCleared
)

func (m Mode) String() string {
	switch m {
	case ModeTitle:
		return "title"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game over"
	case ModeCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Controls is the input sampled by a frontend for one frame.
type Controls struct {
	Keys  types.Keys // direction keys currently held
	Start bool       // start key pressed this frame
	Pause bool       // pause key pressed this frame
}

type Options struct {
	Grid     types.Grid
	Interval time.Duration
	Length   int
	Rand     *rand.Rand
	Autoplay bool // steer the played session with the autopilot
	Attract  bool // run a demo session behind the title screen
}

// Driver sequences title, play, pause and end screens around a StateManager
// and feeds it fixed ticks from frame deltas.
type Driver struct {
	opts    Options
	mode    Mode
	paused  bool
	clock   *Clock
	pilot   *ai.Autopilot
	session *StateManager
	demo    *StateManager
	best    int
}

func NewDriver(opts Options) (*Driver, error) {
	if err := checkStart(opts.Grid, opts.Length); err != nil {
		return nil, err
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	d := &Driver{
		opts:  opts,
		mode:  ModeTitle,
		clock: NewClock(opts.Interval),
		pilot: ai.NewAutopilot(opts.Grid),
	}
	if opts.Attract {
		demo, err := NewStateManager(opts.Grid, opts.Length, opts.Rand)
		if err != nil {
			return nil, errors.Wrap(err, "start demo")
		}
		d.demo = demo
	}
	return d, nil
}

func (d *Driver) Mode() Mode {
	return d.mode
}

func (d *Driver) Paused() bool {
	return d.paused
}

// Session is the played session, nil until the first start.
func (d *Driver) Session() *StateManager {
	return d.session
}

// Demo is the attract-mode session, nil when attract mode is off.
func (d *Driver) Demo() *StateManager {
	return d.demo
}

// Best is the highest score reached during this process.
func (d *Driver) Best() int {
	return d.best
}

// Update advances the driver by one frame of dt wall-clock time.
func (d *Driver) Update(dt time.Duration, in Controls) error {
	switch d.mode {
	case ModeTitle:
		if in.Start {
			return d.start()
		}
		return d.runDemo(dt)
	case ModePlaying:
		if in.Pause {
			d.paused = !d.paused
		}
		if d.paused {
			return nil
		}
		return d.play(dt, in.Keys)
	case ModeGameOver, ModeCleared:
		if in.Start {
			return d.start()
		}
	}
	return nil
}

func (d *Driver) start() error {
	session, err := NewStateManager(d.opts.Grid, d.opts.Length, d.opts.Rand)
	if err != nil {
		return errors.Wrap(err, "start session")
	}
	d.session = session
	d.mode = ModePlaying
	d.paused = false
	d.clock.Reset()
	return nil
}

func (d *Driver) play(dt time.Duration, keys types.Keys) error {
	for n := d.clock.Advance(dt); n > 0; n-- {
		var err error
		if d.opts.Autoplay {
			err = d.session.Steer(d.steer(d.session))
		} else {
			err = d.session.Tick(keys)
		}

		switch {
		case d.session.Cleared():
			d.finish(ModeCleared)
			return nil
		case err != nil:
			return err
		case !d.session.Alive():
			d.finish(ModeGameOver)
			return nil
		}
	}
	return nil
}

func (d *Driver) finish(mode Mode) {
	d.mode = mode
	if s := d.session.Score(); s > d.best {
		d.best = s
	}
}

func (d *Driver) runDemo(dt time.Duration) error {
	if d.demo == nil {
		return nil
	}
	for n := d.clock.Advance(dt); n > 0; n-- {
		if err := d.demo.Steer(d.steer(d.demo)); err != nil && !d.demo.Cleared() {
			return err
		}
		if !d.demo.Running() {
			demo, err := NewStateManager(d.opts.Grid, d.opts.Length, d.opts.Rand)
			if err != nil {
				return errors.Wrap(err, "restart demo")
			}
			d.demo = demo
		}
	}
	return nil
}

func (d *Driver) steer(sm *StateManager) types.Direction {
	snap := sm.Snapshot()
	return d.pilot.Next(snap.Snake, snap.Heading, snap.Food)
}
