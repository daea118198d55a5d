package engine

import (
	"github.com/deepnoodle-ai/except/exception"
	"github.com/rs/zerolog"
)

// Observer is an interface for observing engine events. Implementations can
// be used for tracing exception flow in tests and tools.
//
// Implementations can embed NoOpObserver to provide default no-op
// implementations for methods they don't need.
//
// Observer methods are called synchronously on the goroutine that owns the
// Runtime. They must not throw.
type Observer interface {
	// OnEnter is called after a protected region pushed its frame.
	OnEnter(event FrameEvent)

	// OnThrow is called when an exception starts propagating, before any
	// frame is discarded.
	OnThrow(event ThrowEvent)

	// OnCatch is called when a catch clause accepts the current exception,
	// before its handler runs.
	OnCatch(event CatchEvent)

	// OnLeave is called after a protected region popped its frame on normal
	// completion.
	OnLeave(event FrameEvent)

	// OnTerminate is called when propagation found no frame to resume.
	OnTerminate(event ThrowEvent)
}

// FrameEvent describes a frame being pushed or popped.
type FrameEvent struct {
	// Index is the frame's position in the stack.
	Index int

	// Depth is the stack depth after the operation.
	Depth int
}

// ThrowEvent describes a thrown exception.
type ThrowEvent struct {
	Kind exception.Kind

	// Rethrow is true when the exception was re-raised by Rethrow or by the
	// fallback path of a region with no matching clause.
	Rethrow bool

	// Depth is the stack depth at the throw site.
	Depth int
}

// CatchEvent describes a catch clause accepting an exception.
type CatchEvent struct {
	// Kind is the exception being handled.
	Kind exception.Kind

	// Declared is the kind named by the clause.
	Declared exception.Kind

	// Index is the frame's position in the stack.
	Index int
}

// NoOpObserver is an Observer implementation that does nothing.
type NoOpObserver struct{}

func (NoOpObserver) OnEnter(FrameEvent)     {}
func (NoOpObserver) OnThrow(ThrowEvent)     {}
func (NoOpObserver) OnCatch(CatchEvent)     {}
func (NoOpObserver) OnLeave(FrameEvent)     {}
func (NoOpObserver) OnTerminate(ThrowEvent) {}

// Ensure NoOpObserver implements Observer.
var _ Observer = NoOpObserver{}

// LogObserver returns an Observer that writes every event to the logger at
// debug level.
func LogObserver(logger zerolog.Logger) Observer {
	return &logObserver{log: logger}
}

type logObserver struct {
	log zerolog.Logger
}

func (o *logObserver) OnEnter(e FrameEvent) {
	o.log.Debug().Int("frame", e.Index).Int("depth", e.Depth).Msg("enter region")
}

func (o *logObserver) OnThrow(e ThrowEvent) {
	o.log.Debug().
		Stringer("kind", e.Kind).
		Bool("rethrow", e.Rethrow).
		Int("depth", e.Depth).
		Msg("throw")
}

func (o *logObserver) OnCatch(e CatchEvent) {
	o.log.Debug().
		Stringer("kind", e.Kind).
		Stringer("declared", e.Declared).
		Int("frame", e.Index).
		Msg("catch")
}

func (o *logObserver) OnLeave(e FrameEvent) {
	o.log.Debug().Int("frame", e.Index).Int("depth", e.Depth).Msg("leave region")
}

func (o *logObserver) OnTerminate(e ThrowEvent) {
	o.log.Debug().Stringer("kind", e.Kind).Msg("terminate")
}
