package health

import (
	stderrors "errors"
	"os/exec"
	"strings"

	"github.com/rileyhilliard/panicribbon/internal/errors"
	"github.com/rileyhilliard/panicribbon/internal/logger"
	"github.com/rileyhilliard/panicribbon/internal/util"
)

// RestartTask is the handle for one launched restart command.
// Its outcome is for logging only; nothing in the ribbon waits on it.
type RestartTask struct {
	Service string
	Command string
	PID     int

	done     chan struct{}
	exitCode int
	err      error
}

// Done is closed once the process has exited.
func (t *RestartTask) Done() <-chan struct{} {
	return t.done
}

// ExitCode returns the process exit code, or -1 if it could not be
// determined. Only meaningful after Done is closed.
func (t *RestartTask) ExitCode() int {
	<-t.done
	return t.exitCode
}

// Err returns the wait error for processes that did not exit normally.
func (t *RestartTask) Err() error {
	<-t.done
	return t.err
}

// Restarter launches restart commands through the platform shell.
// No retries, no rate limiting, and concurrent restarts of the same service
// are not deduplicated.
type Restarter struct {
	log     logger.Logger
	workDir string
}

// NewRestarter creates a restarter that runs commands in workDir ("" = current directory).
func NewRestarter(log logger.Logger, workDir string) *Restarter {
	if log == nil {
		log = logger.Noop()
	}
	return &Restarter{log: log, workDir: workDir}
}

// Restart starts spec.RestartCommand verbatim and returns without waiting.
// A background goroutine waits for the exit and logs the exit code.
func (r *Restarter) Restart(spec ServiceSpec) (*RestartTask, error) {
	if strings.TrimSpace(spec.RestartCommand) == "" {
		r.log.Info("No restart script configured for: %s", spec.Name)
		return nil, errors.New(errors.ErrRestart,
			"No restart command configured for "+spec.Name,
			"Set restartScriptPath for this service")
	}

	r.log.Info("Executing restart script for: %s (%s)", spec.Name, spec.RestartCommand)

	shell, args := util.ShellArgs(spec.RestartCommand)
	r.log.Debug("exec %s %s %s", shell, args[0], util.ShellQuote(spec.RestartCommand))
	cmd := exec.Command(shell, args...)
	if r.workDir != "" {
		cmd.Dir = r.workDir
	}

	if err := cmd.Start(); err != nil {
		r.log.Error("Error executing restart script for %s: %v", spec.Name, err)
		return nil, errors.WrapWithCode(err, errors.ErrRestart,
			"Couldn't start the restart command for "+spec.Name,
			"Make sure the command exists and is executable.")
	}

	task := &RestartTask{
		Service: spec.Name,
		Command: spec.RestartCommand,
		PID:     cmd.Process.Pid,
		done:    make(chan struct{}),
	}

	go r.await(cmd, task)

	return task, nil
}

// await records the exit of a launched command.
func (r *Restarter) await(cmd *exec.Cmd, task *RestartTask) {
	defer close(task.done)

	err := cmd.Wait()
	if err == nil {
		task.exitCode = 0
		r.log.Info("Restart script completed for %s with exit code: %d", task.Service, 0)
		return
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		task.exitCode = exitErr.ExitCode()
		r.log.Info("Restart script completed for %s with exit code: %d", task.Service, task.exitCode)
		return
	}

	task.exitCode = -1
	task.err = err
	r.log.Error("Restart script interrupted for: %s (%v)", task.Service, err)
}
