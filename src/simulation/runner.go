package simulation

import (
	"math/rand"
	"sync"
	"time"

	"wraplife/src/universe"
)

/*
	Runner drives the Universe: it is the single caller of Tick
	all commands are queued to the control channel and executed one by one by the main loop goroutine
	the running status is written to the state channel on every change
*/

//Options represents the Runner's configurable options
type Options struct {
	Interval        time.Duration
	MaxSteps        int
	MaxSkippedTicks int
	HistorySize     int //number of the last population counts kept for the plot
}

//Status represents the status of the simulation at concrete moment
type Status struct {
	Generation    int
	RunningMode   RunningState
	LiveCells     int
	IterationTime time.Duration
	Storage       universe.StorageKind
}

//Frame is the copy of the current generation taken between the ticks
type Frame struct {
	Width      int
	Height     int
	Generation int
	Cells      []universe.Cell //row-major, Width*Height cells
}

//At returns the cell at x, y of the frame
func (f Frame) At(x int, y int) universe.Cell {
	return f.Cells[y*f.Width+x]
}

//Viewer is the interface to any Viewer - the object who can display simulation data or control the runner
type Viewer interface {
	Refresh()
	Register(r *Runner)
	Start()
}

//The simulation running status at the concrete moment
type RunningState int

const (
	RunningStateManual   RunningState = 0x0
	RunningStateStep     RunningState = 0x1
	RunningStateRun      RunningState = 0x2
	RunningStateFinished RunningState = 0x3
)

func (s RunningState) String() string {
	switch s {
	case RunningStateManual:
		return "manual"
	case RunningStateStep:
		return "step"
	case RunningStateRun:
		return "running"
	case RunningStateFinished:
		return "finished"
	}
	return "unknown"
}

//default options
const (
	DefSimulationInterval = time.Millisecond * 100
	DefMaxSteps           = 1000
	DefMaxSkippedTicks    = 5
	DefHistorySize        = 200
)

var DefaultOptions = Options{
	Interval:        DefSimulationInterval,
	MaxSteps:        DefMaxSteps,
	MaxSkippedTicks: DefMaxSkippedTicks,
	HistorySize:     DefHistorySize,
}

type Runner struct {
	options Options
	state   struct {
		Status
		epoch int //the run loop generation, bumped by every run
		sync.Mutex
	}
	field struct {
		*universe.Universe
		sync.Mutex
	}
	history   []int
	rnd       *rand.Rand
	stateCh   chan Status
	views     []Viewer
	controlCh chan func()
	quit      chan struct{}
	closeOnce sync.Once
}

//NewRunner creates the Runner for u and starts its main loop
//stateCh is optional, when set it must be read by the caller
func NewRunner(u *universe.Universe, o *Options, stateCh chan Status, seed int64) *Runner {
	if o == nil {
		o = &DefaultOptions
	}
	r := &Runner{
		options:   *o,
		controlCh: make(chan func(), 1),
		quit:      make(chan struct{}),
		stateCh:   stateCh,
		rnd:       rand.New(rand.NewSource(seed)),
	}
	if r.options.HistorySize <= 0 {
		r.options.HistorySize = DefHistorySize
	}
	r.field.Universe = u
	r.state.Generation = u.Generation()
	r.state.LiveCells = u.Population()
	r.state.Storage = u.Storage()
	r.pushHistory(r.state.LiveCells)
	go r.mainLoop()
	return r
}

//RegisterViewer registers the viewer - the runner will call the viewer when the state is changed
func (r *Runner) RegisterViewer(v Viewer) {
	r.views = append(r.views, v)
	v.Register(r)
}

//StateCh returns the channel with the status updates
func (r *Runner) StateCh() chan Status {
	return r.stateCh
}

//Status returns current simulation status
func (r *Runner) Status() Status {
	r.state.Lock()
	defer r.state.Unlock()
	return r.state.Status
}

//Options returns the runner configuration
func (r *Runner) Options() Options {
	return r.options
}

//Dimension returns the universe width and height
func (r *Runner) Dimension() (width int, height int) {
	r.field.Lock()
	defer r.field.Unlock()
	return int(r.field.Width()), int(r.field.Height())
}

//Snapshot copies the current generation
func (r *Runner) Snapshot() Frame {
	r.field.Lock()
	defer r.field.Unlock()
	u := r.field.Universe
	f := Frame{
		Width:      int(u.Width()),
		Height:     int(u.Height()),
		Generation: u.Generation(),
		Cells:      make([]universe.Cell, 0, int(u.Width())*int(u.Height())),
	}
	for row := uint32(0); row < u.Height(); row++ {
		for column := uint32(0); column < u.Width(); column++ {
			f.Cells = append(f.Cells, u.Get(row, column))
		}
	}
	return f
}

//History returns the population counts of the last generations, oldest first
func (r *Runner) History() []int {
	r.state.Lock()
	defer r.state.Unlock()
	h := make([]int, len(r.history))
	copy(h, r.history)
	return h
}

//Run starts the simulation, returns immediately
func (r *Runner) Run() {
	r.command(r.run)
}

//Stop stops the simulation, returns immediately
//the Status struct will be written the stateCh on finish
func (r *Runner) Stop() {
	r.command(r.stop)
}

//Step do one simulation step, returns immediately
//the Status struct will be written to the stateCh on start and on finish
func (r *Runner) Step() {
	r.command(r.step)
}

//Clear kills all cells and resets all counters, returns immediately
//the Status struct will be written to the stateCh on finish
func (r *Runner) Clear() {
	r.command(r.clear)
}

//Randomize clears the universe and settles it with random data, returns immediately
//ignored while the simulation is running
func (r *Runner) Randomize() {
	mode := r.Status().RunningMode
	if mode != RunningStateManual && mode != RunningStateFinished {
		return
	}
	r.command(r.clear)
	r.command(func() {
		r.field.Lock()
		r.field.Randomize(r.rnd)
		r.field.Unlock()
		r.updateLiveCells()
		r.refreshView()
	})
}

//Toggle inverses the cell state at x, y, returns immediately
func (r *Runner) Toggle(x int, y int) {
	r.command(func() {
		r.field.Lock()
		if x < 0 || y < 0 || x >= int(r.field.Width()) || y >= int(r.field.Height()) {
			r.field.Unlock()
			return
		}
		r.field.Toggle(uint32(y), uint32(x))
		r.field.Unlock()
		r.updateLiveCells()
		r.refreshView()
	})
}

//Stamp places the pattern with its top-left corner at x, y, returns immediately
func (r *Runner) Stamp(p *universe.Pattern, x int, y int) {
	if x < 0 || y < 0 {
		return
	}
	r.command(func() {
		r.field.Lock()
		r.field.GeneratePattern(p, uint32(x), uint32(y))
		r.field.Unlock()
		r.updateLiveCells()
		r.refreshView()
	})
}

//Close stops the main loop, returns immediately
func (r *Runner) Close() {
	r.closeOnce.Do(func() {
		close(r.quit)
	})
}

//command queues cmd for the main loop, dropped after Close
func (r *Runner) command(cmd func()) bool {
	select {
	case r.controlCh <- cmd:
		return true
	case <-r.quit:
		return false
	}
}

//mainLoop - the main cycle, should start as a goroutine
//waits for command and executes
func (r *Runner) mainLoop() {
	for {
		select {
		case cmd := <-r.controlCh:
			cmd()
		case <-r.quit:
			return
		}
	}
}

//switchRunningState switch the state to RunningState
//also writes the new state to the stateCh to signal upper control software
func (r *Runner) switchRunningState(to RunningState) {
	r.state.Lock()
	r.state.RunningMode = to
	st := r.state.Status
	r.state.Unlock()
	if r.stateCh != nil {
		select {
		case r.stateCh <- st:
		case <-r.quit:
		}
	}
}

//run starts the simulation
//simulation will stop on Stop() calling or when the boundary conditions are reached
func (r *Runner) run() {
	if r.Status().RunningMode == RunningStateRun {
		return
	}
	r.state.Lock()
	r.state.epoch++
	epoch := r.state.epoch
	r.state.Unlock()
	r.switchRunningState(RunningStateRun)
	go func() {
		skipped := 0
		done := make(chan struct{}, 1)
		for {
			mode, current := r.loopState(epoch)
			if !current || (mode != RunningStateRun && mode != RunningStateStep) {
				break
			}
			if skipped > r.options.MaxSkippedTicks {
				r.command(func() {
					if _, current := r.loopState(epoch); !current {
						return
					}
					r.switchRunningState(RunningStateFinished)
					r.refreshView()
				})
				break
			}
			//skip the tick if the runner is still in the calculation mode
			if mode != RunningStateStep {
				skipped = 0
				queued := r.command(func() {
					//Stop or another Run may be executed between the check and this command
					if mode, current := r.loopState(epoch); current && mode == RunningStateRun {
						r.step()
					}
					done <- struct{}{}
				})
				if !queued {
					return
				}
				select {
				case <-done:
				case <-r.quit:
					return
				}
			} else {
				skipped++
			}
			if r.options.Interval > 0 {
				select {
				case <-time.After(r.options.Interval):
				case <-r.quit:
					return
				}
			}
		}
	}()
}

//loopState returns the running mode and whether the loop started with epoch is still the active one
func (r *Runner) loopState(epoch int) (RunningState, bool) {
	r.state.Lock()
	defer r.state.Unlock()
	return r.state.RunningMode, r.state.epoch == epoch
}

//stop stops the running cycle
func (r *Runner) stop() {
	if r.Status().RunningMode == RunningStateRun {
		r.switchRunningState(RunningStateManual)
	}
}

//step does one tick of the universe
//the simulation is finished when MaxSteps is reached, all cells are dead or nothing changed
func (r *Runner) step() {
	finished := false
	rm := r.Status().RunningMode
	if rm == RunningStateFinished {
		rm = RunningStateManual
	}
	defer func() {
		if finished {
			r.switchRunningState(RunningStateFinished)
		} else {
			r.switchRunningState(rm)
		}
		r.refreshView()
	}()

	if r.options.MaxSteps != 0 && r.Status().Generation >= r.options.MaxSteps {
		finished = true
		return
	}
	r.switchRunningState(RunningStateStep)

	r.field.Lock()
	start := time.Now()
	r.field.Tick()
	elapsed := time.Since(start)
	generation := r.field.Generation()
	liveCells := r.field.Population()
	changed := r.field.Changed()
	r.field.Unlock()

	r.state.Lock()
	r.state.Generation = generation
	r.state.LiveCells = liveCells
	r.state.IterationTime = elapsed
	r.pushHistory(liveCells)
	r.state.Unlock()

	if liveCells == 0 || !changed {
		finished = true
	}
}

//clear clears the universe, reset all counters
func (r *Runner) clear() {
	r.field.Lock()
	r.field.Clear()
	r.field.Unlock()

	r.state.Lock()
	r.state.Generation = 0
	r.state.LiveCells = 0
	r.state.IterationTime = 0
	r.history = r.history[:0]
	r.pushHistory(0)
	r.state.Unlock()
	r.switchRunningState(RunningStateManual)
	r.refreshView()
}

//updateLiveCells recalculates the live cells counter
func (r *Runner) updateLiveCells() {
	r.field.Lock()
	n := r.field.Population()
	r.field.Unlock()
	r.state.Lock()
	r.state.LiveCells = n
	r.state.Unlock()
}

//pushHistory appends the population count, state lock must be held
func (r *Runner) pushHistory(n int) {
	if len(r.history) >= r.options.HistorySize {
		copy(r.history, r.history[1:])
		r.history = r.history[:len(r.history)-1]
	}
	r.history = append(r.history, n)
}

//refreshView calls Refresh event for all registered views
func (r *Runner) refreshView() {
	for _, v := range r.views {
		v.Refresh()
	}
}
