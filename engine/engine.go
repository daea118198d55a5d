// Package engine implements nested try/catch/throw semantics over a bounded
// frame stack.
//
// A Runtime owns the frame stack, the current exception and the terminate
// handler. It is not safe for concurrent use: each goroutine that needs
// protected regions must own its own Runtime.
//
//	rt := engine.New()
//	rt.Try(func() {
//		parse(rt, input) // may call rt.Throw(exception.InvalidArgument)
//	},
//		engine.Catch(exception.LogicError, func(k exception.Kind) {
//			fmt.Println("caught", k.Describe())
//		}),
//	)
//
// Throw never returns. It transfers control to the innermost open region
// whose body is still running, where the region's catch clauses are
// evaluated in order. If none matches, the exception moves on to the next
// region out. When no region is left, the terminate handler runs.
package engine

import (
	"fmt"
	"io"
	"os"

	"github.com/deepnoodle-ai/except/errors"
	"github.com/deepnoodle-ai/except/exception"
	"github.com/gofrs/uuid"
	"github.com/rs/zerolog"
)

// Runtime is the per-goroutine context of the exception engine.
type Runtime struct {
	id          uuid.UUID
	frames      *frameStack
	maxDepth    int
	current     exception.Kind
	taxonomy    *exception.Taxonomy
	terminate   TerminateHandler
	observer    Observer
	log         zerolog.Logger
	diagnostics io.Writer
	color       bool
}

// transfer is the panic value carrying an exception to the frame at index.
type transfer struct {
	rt    *Runtime
	index int
	kind  exception.Kind
}

func (t *transfer) Error() string {
	return fmt.Sprintf("exception %s in flight to frame %d", t.kind, t.index)
}

// New creates a Runtime with an empty frame stack.
func New(opts ...Option) *Runtime {
	rt := &Runtime{
		id:          uuid.Must(uuid.NewV4()),
		maxDepth:    DefaultMaxDepth,
		taxonomy:    exception.DefaultTaxonomy(),
		observer:    NoOpObserver{},
		log:         zerolog.Nop(),
		diagnostics: os.Stderr,
	}
	for _, opt := range opts {
		opt(rt)
	}
	if rt.observer == nil {
		rt.observer = NoOpObserver{}
	}
	if rt.terminate == nil {
		rt.terminate = DefaultTerminateHandler
	}
	rt.frames = newFrameStack(rt.maxDepth)
	rt.log = rt.log.With().Str("runtime", rt.id.String()).Logger()
	return rt
}

// ID returns the unique identifier of the runtime.
func (rt *Runtime) ID() uuid.UUID {
	return rt.id
}

// Current returns the most recently thrown exception, or exception.None if
// nothing was thrown yet. It is never cleared.
func (rt *Runtime) Current() exception.Kind {
	return rt.current
}

// Depth returns the number of open protected regions.
func (rt *Runtime) Depth() int {
	return rt.frames.depth()
}

// Capacity returns the maximum number of nested protected regions.
func (rt *Runtime) Capacity() int {
	return rt.frames.capacity()
}

// Taxonomy returns the taxonomy used for catch matching.
func (rt *Runtime) Taxonomy() *exception.Taxonomy {
	return rt.taxonomy
}

// Throw raises an exception of the given kind. It does not return.
//
// If the innermost open region is running one of its handlers, that region
// is discarded first and the exception goes to the next region out. With no
// region left, Terminate is called.
//
// Throwing a sentinel kind (None, Any) or an undeclared value is a fault.
func (rt *Runtime) Throw(kind exception.Kind) {
	rt.raise(kind, false)
}

// Rethrow raises the current exception again. It does not return.
//
// Rethrow must only be called after an exception was thrown on this runtime,
// typically from inside a handler. Calling it before any throw is a contract
// violation that surfaces as an E1001 fault.
//
// Current is not cleared when a handler completes, so calling Rethrow after a
// catch has finished raises that stale exception again.
func (rt *Runtime) Rethrow() {
	rt.raise(rt.current, true)
}

func (rt *Runtime) raise(kind exception.Kind, rethrow bool) {
	if !kind.IsConcrete() {
		rt.fault(errors.E1001, "cannot throw %s (%d)", kind, int(kind))
	}
	rt.current = kind
	rt.observer.OnThrow(ThrowEvent{Kind: kind, Rethrow: rethrow, Depth: rt.frames.depth()})

	rt.frames.discardHandling()
	if rt.frames.empty() {
		rt.Terminate()
	}
	panic(&transfer{rt: rt, index: rt.frames.top, kind: kind})
}

// enter pushes a frame for a new protected region.
func (rt *Runtime) enter() int {
	index, ok := rt.frames.push()
	if !ok {
		rt.fault(errors.E2001, "maximum nesting depth of %d protected regions exceeded", rt.frames.capacity())
	}
	rt.observer.OnEnter(FrameEvent{Index: index, Depth: rt.frames.depth()})
	return index
}

// leave pops the frame at index, which must be on top.
func (rt *Runtime) leave(index int) {
	if rt.frames.top != index {
		rt.fault(errors.E2002, "closing region %d while region %d is innermost", index, rt.frames.top)
	}
	rt.frames.pop()
	rt.observer.OnLeave(FrameEvent{Index: index, Depth: rt.frames.depth()})
}

// fault logs and panics with an engine fault.
func (rt *Runtime) fault(code errors.ErrorCode, format string, args ...any) {
	err := errors.NewRuntimeError(code, rt.frames.depth(), format, args...)
	rt.log.Error().Err(err).Str("code", string(code)).Int("depth", err.Depth).Msg("engine fault")
	panic(err)
}
