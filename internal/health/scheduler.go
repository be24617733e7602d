package health

import (
	"sync"
	"time"
)

// DefaultInterval is the time between scheduler ticks.
const DefaultInterval = 10 * time.Second

// Scheduler fires a fixed-interval tick and fans each tick out into one
// dispatch per service, each in its own goroutine.
//
// It never waits for a tick's dispatches to finish, so a slow service can have
// several checks in flight at once.
type Scheduler struct {
	interval time.Duration
	count    int
	dispatch func(index int)

	mu      sync.Mutex
	stop    chan struct{}
	done    chan struct{}
	started bool
	stopped bool
}

// NewScheduler creates a scheduler for count services.
// A non-positive interval uses DefaultInterval.
func NewScheduler(interval time.Duration, count int, dispatch func(index int)) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		interval: interval,
		count:    count,
		dispatch: dispatch,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Interval returns the tick period.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Start fires the first tick immediately and then every interval.
// Calling Start more than once, or after Stop, does nothing.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.stopped {
		return
	}
	s.started = true

	s.fire()
	go s.loop()
}

// Stop cancels future ticks. Dispatches already started keep running and
// are not waited for. Safe to call more than once.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	started := s.started
	close(s.stop)
	s.mu.Unlock()

	// The loop only spawns goroutines, so this returns within one fire.
	if started {
		<-s.done
	}
}

func (s *Scheduler) loop() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			select {
			case <-s.stop:
				return
			default:
			}
			s.fire()
		}
	}
}

// fire starts one dispatch per service and returns immediately.
func (s *Scheduler) fire() {
	for i := 0; i < s.count; i++ {
		go s.dispatch(i)
	}
}
