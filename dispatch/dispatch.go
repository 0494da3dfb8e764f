package dispatch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Dispatcher runs exec invocations against selected targets, one at a
// time in selection order. Env is never mutated across targets.
type Dispatcher struct {
	Env      Env
	Launcher Launcher
	Out      io.Writer

	// OnLaunch observes every successful terminal-mode launch.
	OnLaunch func(target Target, pid int, argv []string)
}

func NewDispatcher(env Env) *Dispatcher {
	return &Dispatcher{
		Env:      env,
		Launcher: NewOSLauncher(),
		Out:      os.Stdout,
	}
}

// Exec runs one request: to completion in foreground mode, to successful
// process creation in terminal mode. There is no cancellation once the
// process is launched.
func (d *Dispatcher) Exec(req Request) error {
	if !req.Target.IsPod() {
		return &Error{Kind: ErrPrecondition, Msg: "Exec only possible on pods"}
	}
	argv := Args(d.Env, req)
	if req.Mode.Detached() {
		return d.startTerminal(req.Target, argv)
	}
	return d.runForeground(argv)
}

func (d *Dispatcher) runForeground(argv []string) error {
	err := d.Launcher.Run(argv[0], argv[1:])
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &Error{
			Kind: ErrExternal,
			Msg:  fmt.Sprintf("%s exited abnormally", d.Env.binary()),
		}
	}
	return classifyLaunch(argv[0], err)
}

func (d *Dispatcher) startTerminal(target Target, argv []string) error {
	fmt.Fprintf(d.Out, "Starting on %s in terminal\n", target.Name)
	pid, err := d.Launcher.Start(argv[0], argv[1:])
	if err != nil {
		return classifyLaunch(argv[0], err)
	}
	if d.OnLaunch != nil {
		d.OnLaunch(target, pid, argv)
	}
	return nil
}

// classifyLaunch sorts a process-creation failure into binary-not-found
// or plain I/O. name is the program that failed to start: the exec binary
// in foreground mode, the terminal launcher in terminal mode.
func classifyLaunch(name string, err error) error {
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		msg := fmt.Sprintf("Could not find %s. Is it in your PATH?", name)
		if strings.HasPrefix(name, "/") {
			msg = fmt.Sprintf("Could not find %s. Does it exist?", name)
		}
		return &Error{Kind: ErrBinaryNotFound, Msg: msg}
	}
	return &Error{Kind: ErrIo, Err: err}
}
