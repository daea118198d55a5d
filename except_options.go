package except

import (
	"github.com/deepnoodle-ai/except/engine"
	"github.com/deepnoodle-ai/except/exception"
	"github.com/rs/zerolog"
)

// Option configures a Runtime created by New or Run.
type Option func(*options)

type options struct {
	maxDepth int
	logger   *zerolog.Logger
	observer engine.Observer
	taxonomy *exception.Taxonomy
	trace    bool
}

func collectOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *options) engineOpts() []engine.Option {
	var opts []engine.Option
	if o.maxDepth > 0 {
		opts = append(opts, engine.WithMaxDepth(o.maxDepth))
	}
	if o.logger != nil {
		opts = append(opts, engine.WithLogger(*o.logger))
	}
	if o.taxonomy != nil {
		opts = append(opts, engine.WithTaxonomy(o.taxonomy))
	}
	switch {
	case o.observer != nil:
		opts = append(opts, engine.WithObserver(o.observer))
	case o.trace && o.logger != nil:
		opts = append(opts, engine.WithObserver(engine.LogObserver(*o.logger)))
	}
	return opts
}

// WithMaxDepth sets the maximum number of nested protected regions.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithLogger sets the logger for engine faults and terminations.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &logger
	}
}

// WithTrace logs every engine event at debug level on the logger given with
// WithLogger. It is ignored when WithObserver is also supplied.
func WithTrace() Option {
	return func(o *options) {
		o.trace = true
	}
}

// WithObserver sets an observer for engine events.
func WithObserver(observer engine.Observer) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// WithTaxonomy replaces the default taxonomy.
func WithTaxonomy(taxonomy *exception.Taxonomy) Option {
	return func(o *options) {
		o.taxonomy = taxonomy
	}
}
