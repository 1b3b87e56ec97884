package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/antigen/core"
)

// ClockScheduler drives a Simulation from wall time at a fixed tick interval
// Measured frame time is handed to Step, which clamps it
type ClockScheduler struct {
	sim      *Simulation
	clock    Clock
	interval time.Duration

	onFrame func(*Snapshot)

	mu       sync.Mutex
	lastTick time.Time

	paused   atomic.Bool
	running  atomic.Bool
	ticks    atomic.Int64
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewClockScheduler creates a scheduler; onFrame may be nil
func NewClockScheduler(sim *Simulation, clock Clock, interval time.Duration, onFrame func(*Snapshot)) *ClockScheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &ClockScheduler{
		sim:      sim,
		clock:    clock,
		interval: interval,
		onFrame:  onFrame,
		lastTick: clock.Now(),
		stopChan: make(chan struct{}),
	}
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop; idempotent
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
		if cs.running.CompareAndSwap(true, false) {
			cs.wg.Wait()
		}
	})
}

// SetPaused freezes or resumes simulation time
func (cs *ClockScheduler) SetPaused(paused bool) {
	cs.paused.Store(paused)
}

// TogglePause flips the pause state and returns the new value
func (cs *ClockScheduler) TogglePause() bool {
	for {
		old := cs.paused.Load()
		if cs.paused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Paused reports the pause state
func (cs *ClockScheduler) Paused() bool {
	return cs.paused.Load()
}

// Ticks returns the number of simulation steps executed
func (cs *ClockScheduler) Ticks() int64 {
	return cs.ticks.Load()
}

// Tick runs one step using the wall time elapsed since the previous tick
// While paused, time is consumed without stepping so resume does not jump
func (cs *ClockScheduler) Tick() {
	cs.mu.Lock()
	now := cs.clock.Now()
	dt := now.Sub(cs.lastTick)
	cs.lastTick = now
	cs.mu.Unlock()

	if cs.paused.Load() {
		return
	}

	snap := cs.sim.Step(dt)
	cs.ticks.Add(1)
	if cs.onFrame != nil {
		cs.onFrame(snap)
	}
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	ticker := time.NewTicker(cs.interval)
	defer ticker.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-ticker.C:
			cs.Tick()
		}
	}
}
