package engine

import (
	"fmt"
	"os"

	"github.com/deepnoodle-ai/except/errors"
)

// TerminateHandler is called when an exception propagates past every open
// region. The runtime is passed so the handler can inspect Current. A
// handler must not return; if it does, Terminate panics with an E3002 fault.
type TerminateHandler func(rt *Runtime)

// AbortExitCode is the process exit status used by the default terminate
// handler, the status of a process killed by SIGABRT.
const AbortExitCode = 134

// exit is replaced in tests.
var exit = os.Exit

// DefaultTerminateHandler writes a diagnostic naming the current exception
// to the runtime's diagnostics writer and exits the process with
// AbortExitCode.
func DefaultTerminateHandler(rt *Runtime) {
	err := errors.NewUncaughtError(rt.current)
	fmt.Fprint(rt.diagnostics, errors.NewFormatter(rt.color).Format(err.ToFormatted()))
	exit(AbortExitCode)
}

// TerminateHandler returns the installed terminate handler.
func (rt *Runtime) TerminateHandler() TerminateHandler {
	return rt.terminate
}

// SetTerminateHandler installs a new terminate handler and returns the
// previous one. A nil handler restores DefaultTerminateHandler.
func (rt *Runtime) SetTerminateHandler(handler TerminateHandler) TerminateHandler {
	prev := rt.terminate
	if handler == nil {
		handler = DefaultTerminateHandler
	}
	rt.terminate = handler
	return prev
}

// Terminate calls the installed terminate handler. It is called by the
// engine when propagation finds no region to resume, and does not return.
func (rt *Runtime) Terminate() {
	rt.observer.OnTerminate(ThrowEvent{Kind: rt.current, Depth: rt.frames.depth()})
	rt.log.Error().
		Stringer("exception", rt.current).
		Str("what", rt.current.Describe()).
		Msg("terminate called after an uncaught exception")
	rt.terminate(rt)
	rt.fault(errors.E3002, "terminate handler returned after %s", rt.current)
}
