package engine

import (
	"io"

	"github.com/deepnoodle-ai/except/exception"
	"github.com/rs/zerolog"
)

// Option is a configuration function for a Runtime.
type Option func(*Runtime)

// WithMaxDepth sets the maximum number of nested protected regions. Values
// below one select DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(rt *Runtime) {
		if depth < 1 {
			depth = DefaultMaxDepth
		}
		rt.maxDepth = depth
	}
}

// WithLogger sets the logger used for faults and terminations. The runtime
// adds its own id to the logger context.
func WithLogger(logger zerolog.Logger) Option {
	return func(rt *Runtime) {
		rt.log = logger
	}
}

// WithObserver sets an observer for engine events.
func WithObserver(observer Observer) Option {
	return func(rt *Runtime) {
		rt.observer = observer
	}
}

// WithTaxonomy replaces the default taxonomy used for catch matching.
func WithTaxonomy(taxonomy *exception.Taxonomy) Option {
	return func(rt *Runtime) {
		if taxonomy != nil {
			rt.taxonomy = taxonomy
		}
	}
}

// WithTerminateHandler installs the initial terminate handler. A nil handler
// keeps the default.
func WithTerminateHandler(handler TerminateHandler) Option {
	return func(rt *Runtime) {
		rt.terminate = handler
	}
}

// WithDiagnostics sets where the default terminate handler writes its report.
// The default is os.Stderr.
func WithDiagnostics(w io.Writer) Option {
	return func(rt *Runtime) {
		rt.diagnostics = w
	}
}

// WithColor enables colored diagnostics from the default terminate handler.
func WithColor(enabled bool) Option {
	return func(rt *Runtime) {
		rt.color = enabled
	}
}
