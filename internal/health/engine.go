package health

import (
	"context"
	"sync"
	"time"

	"github.com/rileyhilliard/panicribbon/internal/errors"
	"github.com/rileyhilliard/panicribbon/internal/logger"
)

// Launcher starts a restart command. Restarter is the real implementation.
type Launcher interface {
	Restart(spec ServiceSpec) (*RestartTask, error)
}

// Options configures an Engine. Zero values pick the defaults.
type Options struct {
	Interval time.Duration
	Prober   Prober
	Launcher Launcher
	Logger   logger.Logger
}

// Engine owns the registry, the status store, and the workers that update
// them. It is created once by the process and passed to whoever renders or
// handles input; there is no package-level state.
type Engine struct {
	registry  *Registry
	store     *Store
	prober    Prober
	launcher  Launcher
	scheduler *Scheduler
	log       logger.Logger

	invalidate chan struct{}
	now        func() time.Time

	shutdownOnce sync.Once
}

// NewEngine wires an engine for the services in reg.
func NewEngine(reg *Registry, opts Options) *Engine {
	log := opts.Logger
	if log == nil {
		log = logger.Noop()
	}

	e := &Engine{
		registry:   reg,
		store:      NewStore(reg.Len()),
		prober:     opts.Prober,
		launcher:   opts.Launcher,
		log:        log,
		invalidate: make(chan struct{}, 1),
		now:        time.Now,
	}
	if e.prober == nil {
		e.prober = NewChecker()
	}
	if e.launcher == nil {
		e.launcher = NewRestarter(log, "")
	}
	e.scheduler = NewScheduler(opts.Interval, reg.Len(), e.Check)

	return e
}

// Registry returns the service registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Store returns the status store.
func (e *Engine) Store() *Store {
	return e.store
}

// Scheduler returns the tick driver.
func (e *Engine) Scheduler() *Scheduler {
	return e.scheduler
}

// Start begins periodic checking. The first round is dispatched immediately.
func (e *Engine) Start() {
	e.scheduler.Start()
}

// Invalidations delivers a value whenever the store changed.
//
// Sends never block: with one redraw already pending, further signals are
// folded into it. The receiver must read the store after receiving rather
// than assume which update caused the signal.
func (e *Engine) Invalidations() <-chan struct{} {
	return e.invalidate
}

// Check probes the service at index, replaces its store entry, logs the
// outcome, and signals an invalidation. It runs on the caller's goroutine
// and blocks for at most the probe timeout. Failures never escape.
func (e *Engine) Check(index int) {
	spec, ok := e.registry.At(index)
	if !ok {
		return
	}

	obs := e.prober.Probe(context.Background(), spec)
	e.store.Put(index, obs.Status(e.now()))
	e.logObservation(spec, obs)
	e.notify()
}

// Refresh runs an out-of-cycle check for one service in the background.
func (e *Engine) Refresh(index int) {
	spec, ok := e.registry.At(index)
	if !ok {
		return
	}
	e.log.Info("Manual refresh requested for: %s", spec.Name)
	go e.Check(index)
}

// Restart launches the restart command for the service at index.
// The returned task is only for logging and tests; the store is not touched.
func (e *Engine) Restart(index int) (*RestartTask, error) {
	spec, ok := e.registry.At(index)
	if !ok {
		return nil, errors.New(errors.ErrRestart, "No service at that position", "")
	}
	return e.launcher.Restart(spec)
}

// Shutdown stops future ticks and logs the shutdown. In-flight checks and
// restart processes are left alone. Safe to call more than once.
func (e *Engine) Shutdown() {
	e.shutdownOnce.Do(func() {
		e.log.Info("Shutting down application")
		e.scheduler.Stop()
	})
}

func (e *Engine) notify() {
	select {
	case e.invalidate <- struct{}{}:
	default:
	}
}

func (e *Engine) logObservation(spec ServiceSpec, obs Observation) {
	switch {
	case obs.StatusCode != 0:
		verdict := "UNHEALTHY"
		if obs.Healthy {
			verdict = "HEALTHY"
		}
		e.log.Info("Health check: %s - %s (%d) - %dms", spec.Name, verdict, obs.StatusCode, obs.Elapsed.Milliseconds())
	case obs.TimedOut:
		e.log.Warn("Health check timeout: %s", spec.Name)
	default:
		e.log.Warn("Health check error: %s - %s", spec.Name, errors.Short(obs.Err))
	}
}
