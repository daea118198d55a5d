// Package except provides structured exception handling for Go code:
// nested protected regions, catch clauses matched through a fixed
// single-level taxonomy, rethrow, and a replaceable terminate handler.
//
// The engine itself lives in the engine package. This package adds an
// error-returning boundary around it:
//
//	err := except.Run(func(rt *engine.Runtime) {
//		rt.Try(func() {
//			rt.Throw(exception.OutOfRange)
//		}, engine.Catch(exception.DomainError, nil))
//	})
//	// err is an *errors.UncaughtError for out_of_range
package except

import (
	"github.com/deepnoodle-ai/except/engine"
	"github.com/deepnoodle-ai/except/errors"
)

// uncaught unwinds from the terminate handler installed by Run.
type uncaught struct {
	err *errors.UncaughtError
}

// New creates a Runtime configured by the given options.
func New(opts ...Option) *engine.Runtime {
	return engine.New(collectOptions(opts...).engineOpts()...)
}

// Run executes fn with a fresh Runtime and reports how it ended. It returns
// nil on normal completion, an *errors.UncaughtError when an exception
// escaped every region, and an *errors.RuntimeError when the engine faulted
// (too many nested regions, regions closed out of order, ...). Any other
// panic is propagated unchanged.
//
// fn may replace the terminate handler; Run then no longer observes uncaught
// exceptions.
func Run(fn func(rt *engine.Runtime), opts ...Option) (err error) {
	o := collectOptions(opts...)
	rt := engine.New(o.engineOpts()...)
	rt.SetTerminateHandler(func(rt *engine.Runtime) {
		panic(uncaught{err: errors.NewUncaughtError(rt.Current())})
	})

	defer func() {
		v := recover()
		switch v := v.(type) {
		case nil:
		case uncaught:
			err = v.err
		case *errors.RuntimeError:
			err = v
		default:
			panic(v)
		}
	}()
	fn(rt)
	return nil
}
